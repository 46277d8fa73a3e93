// Package store persists editor snapshots in a small key-value store.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultKey is the key the editor snapshot is stored under.
const DefaultKey = "markdown-content"

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Open creates the store for driver. path is the database file for sqlite
// and the directory for file; memory ignores it. An empty path uses the
// default location under the data directory.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		if path == "" {
			dir, err := DataDir()
			if err != nil {
				return nil, fmt.Errorf("get data dir: %w", err)
			}
			path = filepath.Join(dir, "bland.db")
		}
		return NewSQLiteStore(path)
	case DriverFile:
		if path == "" {
			dir, err := DataDir()
			if err != nil {
				return nil, fmt.Errorf("get data dir: %w", err)
			}
			path = filepath.Join(dir, "snapshots")
		}
		return NewFileStore(path)
	case DriverMemory:
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// DataDir returns the XDG data directory for bland.
// Uses $XDG_DATA_HOME if set, otherwise ~/.local/share
func DataDir() (string, error) {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "bland"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "bland"), nil
}
