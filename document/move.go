package document

import "github.com/iw2rmb/bland/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move moves the cursor and refreshes the active line. It is a no-op without
// a cursor.
func (d *Document) Move(m Move) {
	if !d.hasCursor || len(d.nodes) == 0 {
		return
	}
	next := d.clampPos(d.moveCursor(d.cursor, m))
	if next == d.cursor {
		return
	}
	d.cursor = next
	d.version++
	d.UpdateActiveLine()
}

func (d *Document) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return d.moveGrapheme(p, m.Dir)
	case MoveWord:
		return d.moveWord(p, m.Dir)
	case MoveLine:
		return d.moveLine(p, m.Dir)
	case MoveDoc:
		return d.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (d *Document) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(d.nodes) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Col: d.lineLen(row - 1)}
	case DirRight:
		if col < d.lineLen(row) {
			return Pos{Row: row, Col: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, Col: 0}
	default:
		return d.moveLine(p, dir)
	}
}

func (d *Document) moveWord(p Pos, dir MoveDir) Pos {
	line := grapheme.Split(d.RowText(p.Row))

	switch dir {
	case DirLeft:
		if p.Col == 0 && p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: d.lineLen(p.Row - 1)}
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col >= len(line) && p.Row < len(d.nodes)-1 {
			return Pos{Row: p.Row + 1}
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return d.moveLine(p, dir)
	}
}

func (d *Document) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(d.nodes) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: d.lineLen(row)}
	case DirUp:
		if row == 0 {
			return Pos{Row: row}
		}
		return Pos{Row: row - 1, Col: min(col, d.lineLen(row-1))}
	case DirDown:
		if row == lastRow {
			return Pos{Row: row, Col: d.lineLen(row)}
		}
		return Pos{Row: row + 1, Col: min(col, d.lineLen(row+1))}
	default:
		return p
	}
}

func (d *Document) moveDoc(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return d.endPos()
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - the row end is a hard boundary
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
