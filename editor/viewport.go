package editor

func (m *Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

// followCursor scrolls vertically so the cursor row is visible.
func (m *Model) followCursor() {
	if m.doc == nil {
		return
	}
	cur, ok := m.doc.Cursor()
	if !ok {
		return
	}
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
