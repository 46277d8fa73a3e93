package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/bland/document"
	"github.com/iw2rmb/bland/editor"
)

func testApp() app {
	keys := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{Document: document.New("# Title"), KeyMap: keys})
	return newApp(ed, keys)
}

func TestApp_QuitKey(t *testing.T) {
	a := testApp()
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestApp_ForwardsTyping(t *testing.T) {
	a := testApp()
	a.editor = a.editor.SetSize(40, 5)
	a.editor.Document().SetCursor(document.Pos{Row: 0, Col: 7})

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	got := m.(app).editor.Document().Text()
	if got != "# Title!" {
		t.Fatalf("text=%q, want %q", got, "# Title!")
	}
}

func TestApp_StatusLine(t *testing.T) {
	a := testApp()
	if s := a.statusLine(); !strings.Contains(s, "modified") || !strings.Contains(s, "quit") {
		t.Fatalf("status=%q", s)
	}
}

func TestApp_BlurHidesMarkers(t *testing.T) {
	a := testApp()
	m, _ := a.Update(tea.BlurMsg{})
	l, _ := m.(app).editor.Document().Line(0)
	if l.MarkerVisible() {
		t.Fatalf("marker visible after blur")
	}
	m, _ = m.(app).Update(tea.FocusMsg{})
	l, _ = m.(app).editor.Document().Line(0)
	if !l.MarkerVisible() {
		t.Fatalf("marker hidden after focus")
	}
}
