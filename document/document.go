package document

import (
	"strings"

	"github.com/iw2rmb/bland/internal/grapheme"
)

// WelcomeText is the first line of a fresh document.
const WelcomeText = "# Welcome to bland.md"

// node is a direct child of the document root. Outside of structural drift
// every node is a *Line.
type node interface{ isNode() }

// strayText is raw text sitting directly under the root.
type strayText struct{ text string }

// strayElement is a non-line element sitting directly under the root.
type strayElement struct {
	tag  string
	text string
}

func (*strayText) isNode()    {}
func (*strayElement) isNode() {}

// Document is the ordered sequence of lines plus a logical cursor.
type Document struct {
	nodes []node

	cursor    Pos
	hasCursor bool

	version     uint64
	textVersion uint64

	lastChange    Change
	hasLastChange bool
}

// New builds a document from plain markdown text, one line per '\n'.
// The cursor starts at (0, 0).
func New(text string) *Document {
	text = normalizeNewlines(text)
	parts := strings.Split(text, "\n")
	d := &Document{
		nodes:     make([]node, 0, len(parts)),
		hasCursor: true,
	}
	for _, p := range parts {
		d.nodes = append(d.nodes, NewLine(p))
	}
	d.UpdateActiveLine()
	return d
}

// Welcome returns the default document: a heading followed by an empty line,
// with the cursor at the end of the heading.
func Welcome() *Document {
	d := New(WelcomeText + "\n")
	d.cursor = Pos{Row: 0, Col: d.lineLen(0)}
	d.UpdateActiveLine()
	return d
}

// Len returns the number of root nodes (rows).
func (d *Document) Len() int { return len(d.nodes) }

// Line returns the line at row. ok is false when row is out of range or the
// row holds content that is not a line (structural drift).
func (d *Document) Line(row int) (*Line, bool) {
	if row < 0 || row >= len(d.nodes) {
		return nil, false
	}
	l, ok := d.nodes[row].(*Line)
	return l, ok
}

// Lines returns every line in order, skipping drifted root content.
func (d *Document) Lines() []*Line {
	out := make([]*Line, 0, len(d.nodes))
	for _, n := range d.nodes {
		if l, ok := n.(*Line); ok {
			out = append(out, l)
		}
	}
	return out
}

// RowText returns the full raw text of row, whatever the row holds.
func (d *Document) RowText(row int) string {
	if row < 0 || row >= len(d.nodes) {
		return ""
	}
	switch n := d.nodes[row].(type) {
	case *Line:
		return n.RawText()
	case *strayText:
		return n.text
	case *strayElement:
		return n.text
	default:
		return ""
	}
}

// Text returns the document as markdown source.
func (d *Document) Text() string {
	var sb strings.Builder
	for i := range d.nodes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.RowText(i))
	}
	return sb.String()
}

// Version increments on every effective change, including cursor moves.
func (d *Document) Version() uint64 { return d.version }

// TextVersion increments only when text or line structure changes.
func (d *Document) TextVersion() uint64 { return d.textVersion }

// Cursor returns the logical cursor. ok is false when there is no selection.
func (d *Document) Cursor() (Pos, bool) { return d.cursor, d.hasCursor }

// Caret translates the cursor into a host-level caret on its line.
func (d *Document) Caret() (Caret, bool) {
	if !d.hasCursor {
		return Caret{}, false
	}
	l, ok := d.Line(d.cursor.Row)
	if !ok {
		return Caret{Row: d.cursor.Row, Offset: d.cursor.Col}, true
	}
	c := l.CaretAt(d.cursor.Col, BiasRight)
	c.Row = d.cursor.Row
	return c, true
}

// SetCursor moves the cursor, clamped into bounds, and refreshes the active
// line.
func (d *Document) SetCursor(p Pos) {
	next := d.clampPos(p)
	if d.hasCursor && next == d.cursor {
		return
	}
	d.cursor = next
	d.hasCursor = true
	d.version++
	d.UpdateActiveLine()
}

// SetCaret moves the cursor to a host caret.
func (d *Document) SetCaret(c Caret) {
	l, ok := d.Line(c.Row)
	if !ok {
		d.SetCursor(Pos{Row: c.Row, Col: c.Offset})
		return
	}
	d.SetCursor(Pos{Row: c.Row, Col: l.ColOf(c)})
}

// ClearCursor drops the selection, as when focus leaves the document.
func (d *Document) ClearCursor() {
	if !d.hasCursor {
		return
	}
	d.hasCursor = false
	d.version++
	d.UpdateActiveLine()
}

func (d *Document) lineLen(row int) int {
	if row < 0 || row >= len(d.nodes) {
		return 0
	}
	if l, ok := d.nodes[row].(*Line); ok {
		return l.Len()
	}
	return grapheme.Count(d.RowText(row))
}

func (d *Document) clampPos(p Pos) Pos {
	return ClampPos(p, len(d.nodes), d.lineLen)
}

func (d *Document) endPos() Pos {
	if len(d.nodes) == 0 {
		return Pos{}
	}
	last := len(d.nodes) - 1
	return Pos{Row: last, Col: d.lineLen(last)}
}

func (d *Document) touchText() {
	d.version++
	d.textVersion++
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
