package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/bland/document"
	"github.com/iw2rmb/bland/store"
)

type failingStore struct {
	store.MemStore
}

func (*failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

func saveResults(msgs []tea.Msg) []saveResultMsg {
	var out []saveResultMsg
	for _, msg := range msgs {
		if r, ok := msg.(saveResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

func TestAutosave_WritesSnapshotOnTick(t *testing.T) {
	st := store.NewMemStore()
	m := New(Config{
		Document:         document.New("# a"),
		Store:            st,
		AutosaveInterval: time.Millisecond,
	})
	if m.Init() == nil {
		t.Fatalf("expected autosave tick from Init")
	}
	if !m.Dirty() {
		t.Fatalf("new model should be dirty until first save")
	}

	m, cmd := m.Update(autosaveTickMsg{})
	results := saveResults(runCmd(cmd))
	if len(results) != 1 {
		t.Fatalf("save results=%d, want 1", len(results))
	}
	m, _ = m.Update(results[0])

	got, ok, err := st.Get(context.Background(), store.DefaultKey)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != m.Document().Serialize() {
		t.Fatalf("stored=%q, want %q", got, m.Document().Serialize())
	}
	if m.Dirty() {
		t.Fatalf("expected clean model after save")
	}

	// Unchanged document: the tick only reschedules itself.
	m, cmd = m.Update(autosaveTickMsg{})
	if results := saveResults(runCmd(cmd)); len(results) != 0 {
		t.Fatalf("unexpected save of unchanged document")
	}

	m = typeRunes(m, "b")
	if !m.Dirty() {
		t.Fatalf("expected dirty model after typing")
	}
}

func TestAutosave_DisabledWithoutStore(t *testing.T) {
	m := New(Config{Document: document.New(""), AutosaveInterval: time.Second})
	if m.Init() != nil {
		t.Fatalf("expected no tick without a store")
	}
}

func TestSave_KeyAndFailure(t *testing.T) {
	m := New(Config{
		Document: document.New("x"),
		Store:    &failingStore{},
		StoreKey: "notes",
	})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	results := saveResults(runCmd(cmd))
	if len(results) != 1 {
		t.Fatalf("save results=%d, want 1", len(results))
	}
	m, _ = m.Update(results[0])
	if m.SaveErr() == nil {
		t.Fatalf("expected save error")
	}
	if !m.Dirty() {
		t.Fatalf("failed save must leave the model dirty")
	}
}

func TestSave_KeyKeepsOneSaveInFlight(t *testing.T) {
	st := store.NewMemStore()
	m := New(Config{Document: document.New("x"), Store: st})

	m, first := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if first == nil {
		t.Fatalf("expected a save command")
	}
	m, second := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if second != nil {
		t.Fatalf("second save started while the first is in flight")
	}

	results := saveResults(runCmd(first))
	if len(results) != 1 {
		t.Fatalf("save results=%d, want 1", len(results))
	}
	m, _ = m.Update(results[0])
	if m.Dirty() {
		t.Fatalf("model dirty after a successful save")
	}
	if got, ok, err := st.Get(context.Background(), store.DefaultKey); err != nil || !ok || got == "" {
		t.Fatalf("stored=%q ok=%v err=%v", got, ok, err)
	}
}

func TestNew_LoadsSnapshot(t *testing.T) {
	m := New(Config{Snapshot: `<div class="line h2"><span class="md-syntax">## </span>Notes</div>loose`})
	if got := m.Document().Text(); got != "## Notes\nloose" {
		t.Fatalf("text=%q", got)
	}

	m = New(Config{})
	if got := m.Document().Text(); got != document.WelcomeText+"\n" {
		t.Fatalf("empty snapshot text=%q", got)
	}
}
