package document

// UpdateActiveLine hides every syntax marker, then shows the marker of the
// line under the cursor. Without a cursor all markers stay hidden.
func (d *Document) UpdateActiveLine() {
	for i, n := range d.nodes {
		l, ok := n.(*Line)
		if !ok || l.marker == nil {
			continue
		}
		l.marker.visible = d.hasCursor && i == d.cursor.Row
	}
}

// ActiveLine returns the row whose markers are shown.
func (d *Document) ActiveLine() (int, bool) {
	if !d.hasCursor {
		return 0, false
	}
	if _, ok := d.Line(d.cursor.Row); !ok {
		return 0, false
	}
	return d.cursor.Row, true
}
