// Package editor provides a Bubble Tea live-markdown editor component backed
// by the document package.
//
// Every keystroke reformats the line under the cursor; syntax markers are
// shown only on the active line. Structure repair and active-line refreshes
// that the document defers are delivered as messages on the next update.
// When a Store is configured the document is autosaved on a tick.
package editor
