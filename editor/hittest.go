package editor

import "github.com/iw2rmb/bland/document"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region.
//
// Mapping rules:
//   - gutter clicks map to the first visible column of the row
//   - hidden markers take no cells, so a click at the start of an inactive
//     heading lands at the start of its content
//   - x/y are clamped into document bounds
func (m *Model) screenToDocPos(x, y int) document.Pos {
	if m.doc == nil || m.doc.Len() == 0 {
		return document.Pos{}
	}
	row := clampInt(m.viewport.YOffset+y, 0, m.doc.Len()-1)
	lay := m.layoutRow(row)

	x -= m.gutterWidth()
	if x < 0 {
		x = 0
	}
	return document.Pos{Row: row, Col: lay.colAtCell(x)}
}

// docToScreenPos maps a document position to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) docToScreenPos(pos document.Pos) (x int, y int, ok bool) {
	if m.doc == nil || m.doc.Len() == 0 {
		return 0, 0, false
	}
	row := clampInt(pos.Row, 0, m.doc.Len()-1)
	lay := m.layoutRow(row)

	x = m.gutterWidth() + lay.cellOfCol(pos.Col)
	y = row - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < 0 || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
