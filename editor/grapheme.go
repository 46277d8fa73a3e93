package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/bland/document"
	graphemeutil "github.com/iw2rmb/bland/internal/grapheme"
)

type cellRole uint8

const (
	cellContent cellRole = iota
	cellMarker
)

// cell is one visible grapheme of a row.
type cell struct {
	text  string // tabs expanded to spaces
	col   int    // grapheme column in the row's raw text
	width int
	role  cellRole
}

// rowLayout is what a row looks like on screen. Hidden markers produce no
// cells but still occupy columns, so cells may start past column 0.
type rowLayout struct {
	kind      document.Kind
	cells     []cell
	rawLen    int
	cellWidth int // total cell width
}

func (m *Model) layoutRow(row int) rowLayout {
	tab := m.cfg.tabWidth()
	var lay rowLayout
	add := func(text string, col int, role cellRole) {
		w := graphemeCellWidth(text, lay.cellWidth, tab)
		if text == "\t" {
			text = strings.Repeat(" ", w)
		}
		lay.cells = append(lay.cells, cell{text: text, col: col, width: w, role: role})
		lay.cellWidth += w
	}

	l, ok := m.doc.Line(row)
	if !ok {
		for i, g := range graphemeutil.Split(m.doc.RowText(row)) {
			add(g, i, cellContent)
		}
		lay.rawLen = graphemeutil.Count(m.doc.RowText(row))
		return lay
	}

	lay.kind = l.Kind()
	col := 0
	for _, n := range l.Nodes() {
		clusters := graphemeutil.Split(n.Text)
		if n.Role == document.NodeMarker && !n.Visible {
			col += len(clusters)
			continue
		}
		role := cellContent
		if n.Role == document.NodeMarker {
			role = cellMarker
		}
		for _, g := range clusters {
			add(g, col, role)
			col++
		}
	}
	lay.rawLen = col
	return lay
}

// cursorCell returns the index of the cell the cursor at col is drawn on.
// A cursor on a hidden column snaps to the next visible cell. -1 means the
// cursor sits past the last cell.
func (lay rowLayout) cursorCell(col int) int {
	for i, c := range lay.cells {
		if c.col >= col {
			return i
		}
	}
	return -1
}

// colAtCell maps a cell offset to a grapheme column.
func (lay rowLayout) colAtCell(x int) int {
	if x < 0 {
		x = 0
	}
	acc := 0
	for _, c := range lay.cells {
		if x < acc+c.width {
			return c.col
		}
		acc += c.width
	}
	return lay.rawLen
}

// cellOfCol returns the screen cell offset of col.
func (lay rowLayout) cellOfCol(col int) int {
	acc := 0
	for _, c := range lay.cells {
		if c.col >= col {
			return acc
		}
		acc += c.width
	}
	return acc
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - visualCol%tabWidth
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
