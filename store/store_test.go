package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := NewSQLiteStore(filepath.Join(dir, "db", "bland.db"))
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	file, err := NewFileStore(filepath.Join(dir, "files"))
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}
	stores := map[string]Store{
		"sqlite": sqlite,
		"file":   file,
		"memory": NewMemStore(),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(ctx, DefaultKey); err != nil || ok {
				t.Fatalf("empty get: ok=%v err=%v", ok, err)
			}

			markup := `<div class="line h1"><span class="md-syntax"># </span>Hi</div>`
			if err := s.Set(ctx, DefaultKey, markup); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, ok, err := s.Get(ctx, DefaultKey)
			if err != nil || !ok || got != markup {
				t.Fatalf("get=%q ok=%v err=%v", got, ok, err)
			}

			if err := s.Set(ctx, DefaultKey, "second"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if got, _, _ := s.Get(ctx, DefaultKey); got != "second" {
				t.Fatalf("get after overwrite=%q", got)
			}

			if err := s.Delete(ctx, DefaultKey); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := s.Get(ctx, DefaultKey); ok {
				t.Fatalf("key still present after delete")
			}
			if err := s.Delete(ctx, DefaultKey); err != nil {
				t.Fatalf("delete missing: %v", err)
			}
		})
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(ctx, "a/b", "1"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "a", "2"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if got, _, _ := s.Get(ctx, "a/b"); got != "1" {
				t.Fatalf("a/b=%q", got)
			}
			if got, _, _ := s.Get(ctx, "a"); got != "2" {
				t.Fatalf("a=%q", got)
			}
		})
	}
}

func TestSQLiteStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bland.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, DefaultKey, "kept"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if got, ok, err := s.Get(ctx, DefaultKey); err != nil || !ok || got != "kept" {
		t.Fatalf("get=%q ok=%v err=%v", got, ok, err)
	}
}

func TestOpen(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	for _, driver := range []string{DriverSQLite, DriverFile, DriverMemory, ""} {
		s, err := Open(driver, "")
		if err != nil {
			t.Fatalf("Open(%q): %v", driver, err)
		}
		s.Close()
	}

	if _, err := Open("redis", ""); err == nil || !strings.Contains(err.Error(), "redis") {
		t.Fatalf("expected unknown driver error, got %v", err)
	}
}

func TestFileStore_CanceledContext(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Set(ctx, "k", "v"); err == nil {
		t.Fatalf("expected error on canceled context")
	}
}
