package document

import (
	"strings"

	"github.com/iw2rmb/bland/internal/grapheme"
)

// InsertText inserts s at the cursor into the node under the caret, the way
// a host editing surface does: the line is not reformatted until Input runs.
// At the marker/content boundary the text goes into the content.
// Each '\n' in s splits the line.
func (d *Document) InsertText(s string) {
	if s == "" || !d.hasCursor {
		return
	}
	cb := d.beginChange(OpInsert)
	for i, part := range strings.Split(normalizeNewlines(s), "\n") {
		if i > 0 {
			if !d.splitLine(&cb) {
				break
			}
		}
		d.insertSegment(part)
	}
	d.commitChange(cb)
}

func (d *Document) insertSegment(s string) {
	if s == "" || len(d.nodes) == 0 {
		return
	}
	row, col := d.cursor.Row, d.cursor.Col
	switch n := d.nodes[row].(type) {
	case *Line:
		n.ensureContent()
		c := n.CaretAt(col, BiasRight)
		n.setNodeText(c.Node, grapheme.Insert(n.nodeText(c.Node), c.Offset, s))
	case *strayText:
		n.text = grapheme.Insert(n.text, col, s)
	case *strayElement:
		n.text = grapheme.Insert(n.text, col, s)
	}
	d.cursor = d.clampPos(Pos{Row: row, Col: col + grapheme.Count(s)})
	d.touchText()
}

// DeleteBackward removes the grapheme before the cursor. At the start of a
// row the row is merged into the previous one.
func (d *Document) DeleteBackward() {
	if !d.hasCursor || len(d.nodes) == 0 {
		return
	}
	row, col := d.cursor.Row, d.cursor.Col
	if col > 0 {
		cb := d.beginChange(OpDelete)
		d.deleteCols(row, col-1, col)
		d.cursor = d.clampPos(Pos{Row: row, Col: col - 1})
		d.touchText()
		d.commitChange(cb)
		return
	}
	if row == 0 {
		return
	}
	cb := d.beginChange(OpMerge)
	d.mergeRows(row-1, &cb)
	d.commitChange(cb)
}

// DeleteForward removes the grapheme after the cursor. At the end of a row
// the next row is merged into it.
func (d *Document) DeleteForward() {
	if !d.hasCursor || len(d.nodes) == 0 {
		return
	}
	row, col := d.cursor.Row, d.cursor.Col
	if col < d.lineLen(row) {
		cb := d.beginChange(OpDelete)
		d.deleteCols(row, col, col+1)
		d.touchText()
		d.commitChange(cb)
		return
	}
	if row >= len(d.nodes)-1 {
		return
	}
	cb := d.beginChange(OpMerge)
	d.mergeRows(row, &cb)
	d.commitChange(cb)
}

// deleteCols removes graphemes [start,end) of the row's raw text, touching
// whichever nodes the range overlaps. Structure is left for Input.
func (d *Document) deleteCols(row, start, end int) {
	switch n := d.nodes[row].(type) {
	case *Line:
		pos := 0
		for i := 0; i < n.nodeCount(); i++ {
			text := n.nodeText(i)
			size := grapheme.Count(text)
			lo := clampInt(start-pos, 0, size)
			hi := clampInt(end-pos, 0, size)
			if lo < hi {
				n.setNodeText(i, grapheme.Delete(text, lo, hi))
			}
			pos += size
		}
	case *strayText:
		n.text = grapheme.Delete(n.text, start, end)
	case *strayElement:
		n.text = grapheme.Delete(n.text, start, end)
	}
}

// mergeRows appends row+1 to row, removes row+1 and leaves the cursor at the
// join point. The merged line is reformatted.
func (d *Document) mergeRows(row int, cb *changeBuilder) {
	joinCol := d.lineLen(row)
	tail := d.RowText(row + 1)

	switch n := d.nodes[row].(type) {
	case *Line:
		before := n.Kind()
		if tail != "" {
			n.spans = append(n.spans, tail)
		}
		n.Format(n.RawText())
		cb.addKind(row, before, n.Kind())
	case *strayText:
		n.text += tail
	case *strayElement:
		n.text += tail
	}
	d.nodes = append(d.nodes[:row+1], d.nodes[row+2:]...)
	d.cursor = d.clampPos(Pos{Row: row, Col: joinCol})
	d.touchText()
	d.UpdateActiveLine()
}

// Input is the text-changed handler. It reformats the line under the cursor
// and keeps the cursor where the user was typing. It reports whether the
// line's structure changed.
//
// An empty document is reset to a single blank line. A cursor sitting on
// drifted root content triggers an immediate repair.
func (d *Document) Input() bool {
	if len(d.nodes) == 0 {
		d.reset()
		return true
	}
	if !d.hasCursor {
		return false
	}
	row := d.cursor.Row
	l, ok := d.Line(row)
	if !ok {
		return d.Repair()
	}

	cb := d.beginChange(OpFormat)
	before := l.State()
	at := l.CaretAt(d.cursor.Col, BiasRight)
	at.Row = row

	l.Format(l.RawText())
	c := Remap(l, before, at)
	col := l.ColOf(c)

	changed := !l.sameStructure(&before.line)
	if changed || col != d.cursor.Col {
		d.cursor.Col = col
		d.version++
	}
	cb.addKind(row, before.Kind(), l.Kind())
	d.UpdateActiveLine()
	d.commitChange(cb)
	return changed
}

// Click is the pointer-click handler: it moves the cursor and refreshes the
// active line.
func (d *Document) Click(p Pos) {
	d.SetCursor(p)
	d.UpdateActiveLine()
}

// InsertRootText inserts a bare text node at root index i, bypassing the
// line model. It simulates a host mutation and leaves the document in need
// of repair.
func (d *Document) InsertRootText(i int, text string) {
	d.insertRoot(i, &strayText{text: text})
}

// InsertRootElement inserts a non-line element at root index i. A "br" tag
// models a native line break.
func (d *Document) InsertRootElement(i int, tag, text string) {
	d.insertRoot(i, &strayElement{tag: strings.ToLower(tag), text: text})
}

func (d *Document) insertRoot(i int, n node) {
	cb := d.beginChange(OpExternal)
	i = clampInt(i, 0, len(d.nodes))
	d.nodes = append(d.nodes, nil)
	copy(d.nodes[i+1:], d.nodes[i:])
	d.nodes[i] = n
	if d.hasCursor && len(d.nodes) > 1 && d.cursor.Row >= i {
		d.cursor.Row++
	}
	d.touchText()
	d.commitChange(cb)
}

// Reset replaces the whole document with one empty line and puts the cursor
// on it.
func (d *Document) Reset() {
	d.reset()
}

func (d *Document) reset() {
	cb := d.beginChange(OpReset)
	d.nodes = []node{NewLine("")}
	d.cursor = Pos{}
	d.hasCursor = true
	d.touchText()
	d.UpdateActiveLine()
	d.commitChange(cb)
}

// RemoveRoot deletes the root node at index i, bypassing the line model.
func (d *Document) RemoveRoot(i int) {
	if i < 0 || i >= len(d.nodes) {
		return
	}
	cb := d.beginChange(OpExternal)
	d.nodes = append(d.nodes[:i], d.nodes[i+1:]...)
	switch {
	case len(d.nodes) == 0:
		d.cursor = Pos{}
	case d.hasCursor && d.cursor.Row > i:
		d.cursor.Row--
	default:
		d.cursor = d.clampPos(d.cursor)
	}
	d.touchText()
	d.commitChange(cb)
}
