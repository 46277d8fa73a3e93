package editor

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const saveTimeout = 5 * time.Second

type autosaveTickMsg struct{}

type saveResultMsg struct {
	textVersion uint64
	bytes       int
	err         error
}

func (m Model) autosaveTick() tea.Cmd {
	if m.cfg.Store == nil || m.cfg.AutosaveInterval <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.AutosaveInterval, func(time.Time) tea.Msg {
		return autosaveTickMsg{}
	})
}

// Dirty reports whether the document changed since the last successful save.
func (m Model) Dirty() bool {
	return !m.saved || m.savedTextVersion != m.doc.TextVersion()
}

// SaveErr returns the error of the most recent failed save, if the last save
// failed.
func (m Model) SaveErr() error { return m.saveErr }

func (m *Model) handleAutosaveTick() tea.Cmd {
	next := m.autosaveTick()
	if !m.Dirty() {
		return next
	}
	return tea.Batch(next, m.saveCmd())
}

// saveCmd writes the serialized document to the store off the update loop.
// Only one save is in flight at a time.
func (m *Model) saveCmd() tea.Cmd {
	if m.cfg.Store == nil || m.saving {
		return nil
	}
	m.saving = true

	st := m.cfg.Store
	key := m.cfg.storeKey()
	snapshot := m.doc.Serialize()
	ver := m.doc.TextVersion()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err := st.Set(ctx, key, snapshot)
		return saveResultMsg{textVersion: ver, bytes: len(snapshot), err: err}
	}
}

func (m *Model) handleSaveResult(msg saveResultMsg) {
	m.saving = false
	if msg.err != nil {
		m.saveErr = msg.err
		slog.Warn("autosave failed", "key", m.cfg.storeKey(), "error", msg.err)
		return
	}
	m.saveErr = nil
	m.saved = true
	m.savedTextVersion = msg.textVersion
	slog.Debug("snapshot saved", "key", m.cfg.storeKey(), "bytes", msg.bytes)
}
