package document

import "github.com/iw2rmb/bland/internal/grapheme"

// NodeRole identifies what a line node holds.
type NodeRole uint8

const (
	NodeMarker NodeRole = iota
	NodeText
)

// Node is one child of a line as seen by a host: the syntax marker (always
// first when present) followed by the content spans.
type Node struct {
	Role    NodeRole
	Text    string
	Visible bool // markers only; text nodes are always visible
}

// Caret is a host-level cursor handle: a node within a line and a grapheme
// offset inside that node. It is only valid until the line is next mutated.
type Caret struct {
	Row    int
	Node   int
	Offset int
}

// Bias selects which node owns a column that falls on a node boundary.
type Bias uint8

const (
	// BiasLeft keeps the caret at the end of the earlier node.
	BiasLeft Bias = iota
	// BiasRight moves the caret to the start of the later node, so a column
	// equal to the marker length lands at the start of the content.
	BiasRight
)

// Nodes returns the line's children in order.
func (l *Line) Nodes() []Node {
	out := make([]Node, 0, len(l.spans)+1)
	if l.marker != nil {
		out = append(out, Node{Role: NodeMarker, Text: l.marker.text, Visible: l.marker.visible})
	}
	for _, s := range l.spans {
		out = append(out, Node{Role: NodeText, Text: s, Visible: true})
	}
	return out
}

func (l *Line) nodeCount() int {
	n := len(l.spans)
	if l.marker != nil {
		n++
	}
	return n
}

func (l *Line) nodeText(i int) string {
	if l.marker != nil {
		if i == 0 {
			return l.marker.text
		}
		i--
	}
	if i < 0 || i >= len(l.spans) {
		return ""
	}
	return l.spans[i]
}

func (l *Line) setNodeText(i int, text string) {
	if l.marker != nil {
		if i == 0 {
			l.marker.text = text
			return
		}
		i--
	}
	if i >= 0 && i < len(l.spans) {
		l.spans[i] = text
	}
}

// contentNode returns the node index of content span i.
func (l *Line) contentNode(i int) int {
	if l.marker != nil {
		return i + 1
	}
	return i
}

// ColOf translates a caret into a logical column over RawText.
// Out-of-range nodes and offsets are clamped.
func (l *Line) ColOf(c Caret) int {
	n := l.nodeCount()
	if n == 0 {
		return 0
	}
	node := clampInt(c.Node, 0, n-1)
	col := 0
	for i := 0; i < node; i++ {
		col += grapheme.Count(l.nodeText(i))
	}
	return col + clampInt(c.Offset, 0, grapheme.Count(l.nodeText(node)))
}

// CaretAt translates a logical column into a caret. Row is left zero.
func (l *Line) CaretAt(col int, bias Bias) Caret {
	n := l.nodeCount()
	if n == 0 {
		return Caret{}
	}
	col = clampInt(col, 0, l.Len())
	pos := 0
	for i := 0; i < n; i++ {
		size := grapheme.Count(l.nodeText(i))
		last := i == n-1
		if col < pos+size || (col == pos+size && (bias == BiasLeft || last)) {
			return Caret{Node: i, Offset: col - pos}
		}
		pos += size
	}
	return Caret{Node: n - 1, Offset: grapheme.Count(l.nodeText(n - 1))}
}

// endCaret returns a caret at the end of the last node, creating an empty
// content span when the line has none.
func (l *Line) endCaret() Caret {
	l.ensureContent()
	last := l.nodeCount() - 1
	return Caret{Node: last, Offset: grapheme.Count(l.nodeText(last))}
}
