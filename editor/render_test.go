package editor

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/bland/document"
)

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return Style{
		Text:     r.NewStyle(),
		Marker:   r.NewStyle().Faint(true),
		Heading1: r.NewStyle().Bold(true),
		Heading2: r.NewStyle().Italic(true),
		ListItem: r.NewStyle().Underline(true),
		Cursor:   r.NewStyle().Reverse(true),
	}
}

func TestRender_ActiveLineShowsStyledMarker(t *testing.T) {
	st := testStyle()
	d := document.New("# a\n- b")
	d.SetCursor(document.Pos{Col: 3})
	m := New(Config{Document: d, Style: st})

	got := strings.Split(m.renderContent(), "\n")
	want0 := st.Marker.Render("#") + st.Marker.Render(" ") + st.Heading1.Render("a") + st.Cursor.Render(" ")
	want1 := st.ListItem.Render("b")
	if got[0] != want0 {
		t.Fatalf("row 0:\n got: %q\nwant: %q", got[0], want0)
	}
	if got[1] != want1 {
		t.Fatalf("row 1:\n got: %q\nwant: %q", got[1], want1)
	}
}

func TestRender_CursorProducesANSIWhenFocused(t *testing.T) {
	m := New(Config{
		Document: document.New("ab"),
		Style:    Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorOnHiddenMarkerSnapsToContent(t *testing.T) {
	d := document.New("# ab")
	d.ClearCursor()
	m := New(Config{Document: d, Style: Style{Cursor: lipgloss.NewStyle().PaddingLeft(1)}})

	lay := m.layoutRow(0)
	if len(lay.cells) != 2 || lay.rawLen != 4 {
		t.Fatalf("layout=%+v, want two content cells", lay)
	}
	if idx := lay.cursorCell(0); idx != 0 || lay.cells[idx].col != 2 {
		t.Fatalf("cursor cell=%d, want first content cell", idx)
	}
	if got, want := m.renderRow(lay, 0), " ab"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Document:     document.New(sb.String()),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d ", digits, i+1)
		if !strings.HasPrefix(line, wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_TabsExpand(t *testing.T) {
	d := document.New("a\tb")
	m := New(Config{Document: d, TabWidth: 4})
	m = m.Blur()

	if got, want := m.renderContent(), "a   b"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_DriftedRowsRenderAsText(t *testing.T) {
	d := document.New("a")
	d.InsertRootText(1, "loose")
	m := New(Config{Document: d})
	m = m.Blur()

	if got, want := m.renderContent(), "a\nloose"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}
