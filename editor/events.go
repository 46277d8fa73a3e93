package editor

import "github.com/iw2rmb/bland/document"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64

	Cursor    document.Pos
	HasCursor bool

	// Change is the document's most recent effective change, if any.
	Change    document.Change
	HasChange bool

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(d *document.Document) ChangeEvent {
	ev := ChangeEvent{
		Version:     d.Version(),
		TextVersion: d.TextVersion(),
		Text:        d.Text(),
	}
	ev.Cursor, ev.HasCursor = d.Cursor()
	ev.Change, ev.HasChange = d.LastChange()
	return ev
}
