package editor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/bland/document"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Document: document.New("a\nb\nc")})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_FollowsCursorDown(t *testing.T) {
	d := document.New("1\n2\n3\n4\n5")
	m := New(Config{Document: d})
	m = m.SetSize(10, 2)

	d.SetCursor(document.Pos{Row: 4})
	m, _ = m.Update(nil)
	if got := m.viewport.YOffset; got != 3 {
		t.Fatalf("yoffset=%d, want 3", got)
	}
}

func TestLayoutRow_WideGraphemes(t *testing.T) {
	m := New(Config{Document: document.New("- 世界")})
	m = m.Blur()

	lay := m.layoutRow(0)
	if lay.cellWidth != 4 {
		t.Fatalf("cell width=%d, want 4", lay.cellWidth)
	}
	if got := lay.colAtCell(1); got != 2 {
		t.Fatalf("colAtCell(1)=%d, want 2", got)
	}
	if got := lay.colAtCell(2); got != 3 {
		t.Fatalf("colAtCell(2)=%d, want 3", got)
	}
}
