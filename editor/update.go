package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/bland/document"
)

// repairMsg asks the model to repair document structure. It is emitted after
// every mutation and handled on the next update.
type repairMsg struct{}

// activeLineMsg asks the model to refresh marker visibility.
type activeLineMsg struct{}

func repairCmd() tea.Msg { return repairMsg{} }

func activeLineCmd() tea.Msg { return activeLineMsg{} }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case repairMsg:
		if m.doc.Repair() {
			slog.Debug("document structure repaired", "rows", m.doc.Len())
		}
	case activeLineMsg:
		// Marker visibility is view state; force a redraw.
		m.doc.UpdateActiveLine()
		m.rebuildContent()
	case autosaveTickMsg:
		cmd = m.handleAutosaveTick()
	case saveResultMsg:
		m.handleSaveResult(msg)
	}

	if m.sync() {
		m.followCursor()
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.doc))
		}
	}
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.doc == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		cmd := m.typeText(string(msg.Runes))
		return m, cmd
	}

	var cmd tea.Cmd
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.doc.Move(document.Move{Unit: document.MoveGrapheme, Dir: document.DirLeft})
	case key.Matches(msg, km.Right):
		m.doc.Move(document.Move{Unit: document.MoveGrapheme, Dir: document.DirRight})
	case key.Matches(msg, km.Up):
		m.doc.Move(document.Move{Unit: document.MoveLine, Dir: document.DirUp})
	case key.Matches(msg, km.Down):
		m.doc.Move(document.Move{Unit: document.MoveLine, Dir: document.DirDown})

	case key.Matches(msg, km.WordLeft):
		m.doc.Move(document.Move{Unit: document.MoveWord, Dir: document.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.doc.Move(document.Move{Unit: document.MoveWord, Dir: document.DirRight})

	case key.Matches(msg, km.Home):
		m.doc.Move(document.Move{Unit: document.MoveLine, Dir: document.DirHome})
	case key.Matches(msg, km.End):
		m.doc.Move(document.Move{Unit: document.MoveLine, Dir: document.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.doc.Move(document.Move{Unit: document.MoveDoc, Dir: document.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.doc.Move(document.Move{Unit: document.MoveDoc, Dir: document.DirEnd})

	case key.Matches(msg, km.Backspace):
		if m.cfg.ReadOnly {
			return m, nil
		}
		m.doc.DeleteBackward()
		m.doc.Input()
		return m, repairCmd
	case key.Matches(msg, km.Delete):
		if m.cfg.ReadOnly {
			return m, nil
		}
		m.doc.DeleteForward()
		m.doc.Input()
		return m, repairCmd
	case key.Matches(msg, km.Enter):
		if m.cfg.ReadOnly {
			return m, nil
		}
		cmd = m.splitLine()

	case key.Matches(msg, km.CopyLine):
		m.copyLine()
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			cmd = m.pasteClipboard()
		}
	case key.Matches(msg, km.Save):
		// saveCmd marks the model as saving; m must be returned after it ran.
		cmd = m.saveCmd()

	default:
		switch {
		case msg.Type == tea.KeyTab:
			cmd = m.typeText("\t")
		case msg.Type == tea.KeySpace:
			cmd = m.typeText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			cmd = m.typeText(string(msg.Runes))
		}
	}

	return m, cmd
}

// typeText is the text-changed path: insert, reformat the line, then let
// repair run on the next update.
func (m *Model) typeText(s string) tea.Cmd {
	if m.cfg.ReadOnly || s == "" {
		return nil
	}
	m.doc.InsertText(s)
	m.doc.Input()
	return repairCmd
}

// splitLine is the Enter path. The active line is refreshed on the next
// update, after repair had a chance to run.
func (m *Model) splitLine() tea.Cmd {
	if !m.doc.SplitLine() {
		cur, _ := m.doc.Cursor()
		slog.Info("enter outside a line, inserted native line break", "row", cur.Row)
	}
	return tea.Batch(repairCmd, activeLineCmd)
}

func (m Model) copyLine() {
	if m.cfg.Clipboard == nil {
		return
	}
	cur, ok := m.doc.Cursor()
	if !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.doc.RowText(cur.Row)); err != nil {
		slog.Warn("clipboard write failed", "error", err)
	}
}

func (m *Model) pasteClipboard() tea.Cmd {
	if m.cfg.Clipboard == nil {
		return nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		slog.Warn("clipboard read failed", "error", err)
		return nil
	}
	return m.typeText(s)
}
