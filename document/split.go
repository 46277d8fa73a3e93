package document

import "github.com/iw2rmb/bland/internal/grapheme"

// SplitLine is the Enter handler. The text from the cursor to the end of the
// line moves into a new line inserted right after it, both lines are
// reformatted and the cursor lands at the start of the new line's content.
//
// When the cursor is not inside a line the native line break is emulated
// instead: a bare <br> element is inserted at the root for Repair to clean
// up, and SplitLine returns false.
//
// The active line is not refreshed here; callers schedule UpdateActiveLine.
func (d *Document) SplitLine() bool {
	cb := d.beginChange(OpSplit)
	ok := d.splitLine(&cb)
	d.commitChange(cb)
	return ok
}

func (d *Document) splitLine(cb *changeBuilder) bool {
	l, ok := d.Line(d.cursor.Row)
	if !d.hasCursor || !ok {
		d.nativeBreak()
		return false
	}

	row, col := d.cursor.Row, d.cursor.Col
	raw := l.RawText()
	n := grapheme.Count(raw)
	col = clampInt(col, 0, n)

	// Pasted text reaches here unclassified, so the head is always formatted.
	head := grapheme.Slice(raw, 0, col)
	tail := grapheme.Slice(raw, col, n)
	before, shown := l.Kind(), l.MarkerVisible()
	l.Format(head)
	if l.marker != nil {
		// visibility stays as it was until the active line is refreshed
		l.marker.visible = shown
	}
	cb.addKind(row, before, l.Kind())

	next := &Line{spans: []string{tail}}
	next.Format(tail)
	cb.addKind(row+1, Paragraph, next.Kind())

	d.nodes = append(d.nodes, nil)
	copy(d.nodes[row+2:], d.nodes[row+1:])
	d.nodes[row+1] = next

	d.cursor = Pos{Row: row + 1, Col: next.markerLen()}
	d.touchText()
	return true
}

// nativeBreak inserts a <br> after the cursor row, or at the end of the
// document when there is no cursor.
func (d *Document) nativeBreak() {
	at := len(d.nodes)
	if d.hasCursor && d.cursor.Row < len(d.nodes) {
		at = d.cursor.Row + 1
	}
	br := &strayElement{tag: "br"}
	d.nodes = append(d.nodes, nil)
	copy(d.nodes[at+1:], d.nodes[at:])
	d.nodes[at] = br
	d.touchText()
}
