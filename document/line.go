package document

import (
	"strings"

	"github.com/iw2rmb/bland/internal/grapheme"
)

type syntaxMarker struct {
	text    string
	visible bool
}

// Line is one block of the document.
//
// Invariant (outside a formatting pass): marker text + content == RawText(),
// and Classify(RawText()).Kind == Kind().
type Line struct {
	kind   Kind
	marker *syntaxMarker
	spans  []string
}

// NewLine returns a formatted line holding raw.
func NewLine(raw string) *Line {
	l := &Line{spans: []string{raw}}
	l.Format(raw)
	return l
}

func (l *Line) isNode() {}

func (l *Line) Kind() Kind { return l.kind }

// HasMarker reports whether the line carries a syntax marker.
func (l *Line) HasMarker() bool { return l.marker != nil }

// MarkerText returns the syntax marker text, or "" for paragraphs.
func (l *Line) MarkerText() string {
	if l.marker == nil {
		return ""
	}
	return l.marker.text
}

// MarkerVisible reports whether the marker is currently shown.
func (l *Line) MarkerVisible() bool {
	return l.marker != nil && l.marker.visible
}

// Spans returns a copy of the content spans.
func (l *Line) Spans() []string {
	return append([]string(nil), l.spans...)
}

// Content returns the text after the marker.
func (l *Line) Content() string {
	return strings.Join(l.spans, "")
}

// RawText returns the full line text, marker included.
func (l *Line) RawText() string {
	return l.MarkerText() + l.Content()
}

// Len returns the grapheme length of RawText.
func (l *Line) Len() int { return grapheme.Count(l.RawText()) }

func (l *Line) markerLen() int { return grapheme.Count(l.MarkerText()) }

// Format re-derives the line's structure from raw.
//
// The existing marker is always removed and its text folded back into the
// content, so classification sees the full raw text. For non-paragraph kinds
// a fresh marker is created and the matching prefix is stripped from the
// content. Calling Format again with the same text is a no-op.
func (l *Line) Format(raw string) {
	l.kind = Paragraph
	l.unwrapMarker()
	if l.Content() != raw {
		l.spans = []string{raw}
	}

	c := Classify(raw)
	if c.Kind != Paragraph {
		l.kind = c.Kind
		l.stripPrefix(c.Marker)
		l.marker = &syntaxMarker{text: c.Marker}
	} else if len(l.spans) == 0 {
		l.spans = []string{""}
	}

	l.formatInline()
}

// formatInline is where bold/italic/code spans would be split out of the
// content. Inline styling is not supported; content spans are left as typed.
func (l *Line) formatInline() {}

func (l *Line) unwrapMarker() {
	if l.marker == nil {
		return
	}
	text := l.marker.text
	l.marker = nil
	if len(l.spans) == 0 {
		l.spans = []string{text}
		return
	}
	l.spans[0] = text + l.spans[0]
}

// stripPrefix removes prefix (which the content must start with) from the
// leading spans, dropping spans it consumes entirely.
func (l *Line) stripPrefix(prefix string) {
	n := len(prefix)
	for n > 0 && len(l.spans) > 0 {
		if len(l.spans[0]) <= n {
			n -= len(l.spans[0])
			l.spans = l.spans[1:]
			continue
		}
		l.spans[0] = l.spans[0][n:]
		n = 0
	}
	if len(l.spans) == 0 {
		l.spans = nil
	}
}

// ensureContent guarantees at least one content span.
func (l *Line) ensureContent() {
	if len(l.spans) == 0 {
		l.spans = []string{""}
	}
}

func (l *Line) clone() Line {
	out := Line{kind: l.kind, spans: append([]string(nil), l.spans...)}
	if l.marker != nil {
		m := *l.marker
		out.marker = &m
	}
	return out
}

// sameStructure compares kind, marker text and spans. Marker visibility is
// view state and is ignored.
func (l *Line) sameStructure(o *Line) bool {
	if l.kind != o.kind || (l.marker == nil) != (o.marker == nil) {
		return false
	}
	if l.marker != nil && l.marker.text != o.marker.text {
		return false
	}
	if len(l.spans) != len(o.spans) {
		return false
	}
	for i := range l.spans {
		if l.spans[i] != o.spans[i] {
			return false
		}
	}
	return true
}

// State captures the line before a reformatting pass.
func (l *Line) State() LineState {
	return LineState{line: l.clone(), markup: l.Markup()}
}

// LineState is an immutable copy of a line taken before formatting.
type LineState struct {
	line   Line
	markup string
}

func (s LineState) Markup() string { return s.markup }

func (s LineState) Kind() Kind { return s.line.kind }

func (s LineState) RawText() string { return s.line.RawText() }

// ColOf translates a caret in the captured layout to a logical column.
func (s LineState) ColOf(c Caret) int {
	return s.line.ColOf(c)
}
