package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/bland/document"
)

// Model is a Bubble Tea component that renders and edits a live-markdown
// document.
type Model struct {
	cfg Config
	doc *document.Document

	focused bool

	viewport viewport.Model

	lastVersion   uint64
	lastCursor    document.Pos
	lastHasCursor bool

	// cursor kept while blurred; the document itself has no selection then
	blurCursor    document.Pos
	hasBlurCursor bool

	saving           bool
	saved            bool
	savedTextVersion uint64
	saveErr          error
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	doc := cfg.Document
	if doc == nil {
		doc = document.FromSnapshot(cfg.Snapshot)
	}
	m := Model{
		cfg:      cfg,
		doc:      doc,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = doc.Version()
	m.lastCursor, m.lastHasCursor = doc.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Document() *document.Document { return m.doc }

// Init starts the autosave ticker when autosave is configured.
func (m Model) Init() tea.Cmd { return m.autosaveTick() }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

// Focus restores the cursor held while blurred.
func (m Model) Focus() Model {
	if m.focused {
		return m
	}
	m.focused = true
	if m.hasBlurCursor {
		m.doc.SetCursor(m.blurCursor)
		m.hasBlurCursor = false
	}
	m.sync()
	m.followCursor()
	return m
}

// Blur drops the document selection, which hides every syntax marker.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	if cur, ok := m.doc.Cursor(); ok {
		m.blurCursor, m.hasBlurCursor = cur, true
		m.doc.ClearCursor()
	}
	m.sync()
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

// sync rebuilds the view when the document changed since the last call and
// reports whether it did.
func (m *Model) sync() bool {
	if m.doc == nil {
		return false
	}
	ver := m.doc.Version()
	cur, hasCur := m.doc.Cursor()
	if ver == m.lastVersion && cur == m.lastCursor && hasCur == m.lastHasCursor {
		return false
	}
	m.lastVersion = ver
	m.lastCursor, m.lastHasCursor = cur, hasCur
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
