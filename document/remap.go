package document

import "github.com/iw2rmb/bland/internal/grapheme"

// Remap relocates a caret captured in before's layout into l's current
// layout after l was reformatted.
//
// Rules:
//   - unchanged structure: the caret is returned as is.
//   - l has a marker: a caret that was inside the old marker, or at a column
//     not past the new marker, snaps to the start of the first content span.
//     Otherwise the marker length is subtracted and the remainder is walked
//     through the content spans; overflow lands at the end of the last span.
//   - l has no marker: the column is walked through the content spans; if it
//     cannot be placed the caret goes to the end of the line.
//
// Remap may append an empty content span so the caret has a text node to
// sit in.
func Remap(l *Line, before LineState, at Caret) Caret {
	if l.sameStructure(&before.line) {
		return at
	}

	logical := before.ColOf(at)
	inMarker := before.line.marker != nil && at.Node == 0

	if l.marker != nil {
		l.ensureContent()
		markerLen := l.markerLen()
		if inMarker || logical <= markerLen {
			return Caret{Row: at.Row, Node: l.contentNode(0)}
		}
		adjusted := logical - markerLen
		if adjusted < 0 {
			adjusted = 0
		}
		if span, off, ok := l.locateContent(adjusted); ok {
			return Caret{Row: at.Row, Node: l.contentNode(span), Offset: off}
		}
		c := l.endCaret()
		c.Row = at.Row
		return c
	}

	if span, off, ok := l.locateContent(logical); ok {
		return Caret{Row: at.Row, Node: l.contentNode(span), Offset: off}
	}
	c := l.endCaret()
	c.Row = at.Row
	return c
}

// locateContent finds the content span holding offset, counted from the start
// of the content. A boundary offset belongs to the earlier span.
func (l *Line) locateContent(offset int) (span, off int, ok bool) {
	pos := 0
	for i, s := range l.spans {
		size := grapheme.Count(s)
		if pos+size >= offset {
			return i, offset - pos, true
		}
		pos += size
	}
	return 0, 0, false
}
