package document

import (
	"strings"

	"github.com/iw2rmb/bland/internal/grapheme"
)

// NeedsRepair reports whether the root holds anything other than lines, or
// nothing at all.
func (d *Document) NeedsRepair() bool {
	if len(d.nodes) == 0 {
		return true
	}
	for _, n := range d.nodes {
		if _, ok := n.(*Line); !ok {
			return true
		}
	}
	return false
}

// Repair restores the structural invariant: every root child is a Line.
//
// Bare text is wrapped into formatted lines (one per '\n'), whitespace-only
// text is dropped, a <br> becomes an empty line and any other element becomes
// a line holding its text. An empty root gets one empty line. A cursor that
// pointed at dropped content is lost and placed at the end of the last line;
// a surviving cursor is clamped. Repair reports whether anything was fixed.
func (d *Document) Repair() bool {
	if !d.NeedsRepair() {
		return false
	}
	cb := d.beginChange(OpRepair)

	out := make([]node, 0, len(d.nodes))
	cursor, hasCursor := d.cursor, d.hasCursor
	cursorFound := false

	for i, n := range d.nodes {
		start := len(out)
		switch n := n.(type) {
		case *Line:
			out = append(out, n)
		case *strayText:
			if strings.TrimSpace(n.text) != "" {
				out = appendLines(out, n.text)
			}
		case *strayElement:
			if n.tag == "br" && n.text == "" {
				out = append(out, NewLine(""))
			} else {
				out = appendLines(out, n.text)
			}
		}
		if !hasCursor || cursorFound || d.cursor.Row != i {
			continue
		}
		cursorFound = true
		if len(out) == start {
			hasCursor = false
			continue
		}
		if _, ok := n.(*Line); ok {
			cursor = Pos{Row: start, Col: d.cursor.Col}
			continue
		}
		row, col := locateInParts(d.RowText(i), d.cursor.Col)
		cursor = Pos{Row: start + row, Col: col}
	}
	if len(out) == 0 {
		out = append(out, NewLine(""))
	}
	d.nodes = out

	if hasCursor && cursorFound {
		d.cursor = d.clampPos(cursor)
	} else {
		d.cursor = d.endPos()
	}
	d.hasCursor = true

	d.touchText()
	d.UpdateActiveLine()
	d.commitChange(cb)
	return true
}

func appendLines(out []node, text string) []node {
	for _, part := range strings.Split(normalizeNewlines(text), "\n") {
		out = append(out, NewLine(part))
	}
	return out
}

// locateInParts maps a column over text containing newlines to a (part, col)
// pair over its '\n'-separated parts.
func locateInParts(text string, col int) (int, int) {
	parts := strings.Split(normalizeNewlines(text), "\n")
	for i, p := range parts {
		n := grapheme.Count(p)
		if col <= n || i == len(parts)-1 {
			return i, col
		}
		col -= n + 1
	}
	return 0, 0
}
