package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/bland/document"
)

func mouseClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestHitTest_NoLineNums_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Document: document.New("abc\ndef\nghi")})
	m.viewport.YOffset = 1

	if got := m.screenToDocPos(2, 0); got != (document.Pos{Row: 1, Col: 2}) {
		t.Fatalf("pos at (2,0) with yoffset=1: got %v", got)
	}
	if got := m.screenToDocPos(999, 0); got != (document.Pos{Row: 1, Col: 3}) {
		t.Fatalf("pos at (999,0): got %v", got)
	}
	if got := m.screenToDocPos(0, 99); got != (document.Pos{Row: 2, Col: 0}) {
		t.Fatalf("pos at (0,99): got %v", got)
	}
}

func TestHitTest_HiddenMarkerTakesNoCells(t *testing.T) {
	d := document.New("## Sub\nplain")
	d.SetCursor(document.Pos{Row: 1})
	m := New(Config{Document: d})

	// Row 0 is inactive: "Sub" starts at x=0.
	if got := m.screenToDocPos(0, 0); got != (document.Pos{Row: 0, Col: 3}) {
		t.Fatalf("pos at (0,0): got %v, want content start", got)
	}
	if got := m.screenToDocPos(1, 0); got != (document.Pos{Row: 0, Col: 4}) {
		t.Fatalf("pos at (1,0): got %v", got)
	}

	d.SetCursor(document.Pos{Row: 0})
	if got := m.screenToDocPos(0, 0); got != (document.Pos{Row: 0, Col: 0}) {
		t.Fatalf("pos on active row: got %v, want marker start", got)
	}
}

func TestHitTest_WithLineNums_GutterMapsToStartOfLine(t *testing.T) {
	m := New(Config{Document: document.New("abcd\nefgh"), ShowLineNums: true})

	// 2 lines => 1 digit + 1 gutter space => width 2.
	if got := m.screenToDocPos(0, 0); got != (document.Pos{Row: 0, Col: 0}) {
		t.Fatalf("gutter click x=0: got %v", got)
	}
	if got := m.screenToDocPos(3, 0); got != (document.Pos{Row: 0, Col: 1}) {
		t.Fatalf("second cell x=3: got %v", got)
	}
}

func TestDocToScreenPos(t *testing.T) {
	d := document.New("# ab\nx")
	d.SetCursor(document.Pos{Row: 1})
	m := New(Config{Document: d})
	m = m.SetSize(10, 2)

	x, y, ok := m.docToScreenPos(document.Pos{Row: 0, Col: 3})
	if !ok || x != 1 || y != 0 {
		t.Fatalf("docToScreenPos=(%d,%d,%v), want (1,0,true)", x, y, ok)
	}
	if _, _, ok := m.docToScreenPos(document.Pos{Row: 0, Col: 99}); !ok {
		t.Fatalf("end of row should be visible")
	}
}

func TestUpdateMouse_ClickMovesCursorAndActiveLine(t *testing.T) {
	d := document.New("# a\nb")
	d.SetCursor(document.Pos{Row: 1, Col: 1})
	m := New(Config{Document: d})
	m = m.SetSize(20, 5)

	m, _ = m.Update(mouseClick(0, 0))
	if got := cursorOf(t, m); got != (document.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want {0 2}", got)
	}
	if l, _ := d.Line(0); !l.MarkerVisible() {
		t.Fatalf("expected clicked heading to show its marker")
	}
}
