package document

import (
	"fmt"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	lineClass   = "line"
	markerClass = "md-syntax"
)

// Markup renders the line as a snapshot fragment:
//
//	<div class="line h1"><span class="md-syntax"># </span>Title</div>
//
// An empty line holds a single <br>. Marker visibility is view state and is
// not part of the markup.
func (l *Line) Markup() string {
	var sb strings.Builder
	sb.WriteString(`<div class="`)
	sb.WriteString(lineClass)
	if cls := l.kind.Class(); cls != "" {
		sb.WriteByte(' ')
		sb.WriteString(cls)
	}
	sb.WriteString(`">`)
	if l.marker != nil {
		sb.WriteString(`<span class="` + markerClass + `">`)
		sb.WriteString(nethtml.EscapeString(l.marker.text))
		sb.WriteString(`</span>`)
	}
	if l.RawText() == "" {
		sb.WriteString("<br>")
	}
	for _, s := range l.spans {
		sb.WriteString(nethtml.EscapeString(s))
	}
	sb.WriteString("</div>")
	return sb.String()
}

// Serialize renders the whole document as a snapshot, root children in order.
func (d *Document) Serialize() string {
	var sb strings.Builder
	for _, n := range d.nodes {
		switch n := n.(type) {
		case *Line:
			sb.WriteString(n.Markup())
		case *strayText:
			sb.WriteString(nethtml.EscapeString(n.text))
		case *strayElement:
			if n.tag == "br" {
				sb.WriteString("<br>")
				continue
			}
			fmt.Fprintf(&sb, "<%s>%s</%s>", n.tag, nethtml.EscapeString(n.text), n.tag)
		}
	}
	return sb.String()
}

// Parse reads a snapshot. Every line element is reformatted from its text, so
// stale classes or markers in the input do not survive. Content that is not a
// line is kept as root drift for Repair. The cursor is placed at the end of
// the document.
func Parse(markup string) (*Document, error) {
	ctx := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	frag, err := nethtml.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	d := &Document{hasCursor: true}
	for _, n := range frag {
		switch n.Type {
		case nethtml.TextNode:
			d.nodes = append(d.nodes, &strayText{text: n.Data})
		case nethtml.ElementNode:
			if n.DataAtom == atom.Div && hasClass(n, lineClass) {
				d.nodes = append(d.nodes, lineFromNode(n))
				continue
			}
			d.nodes = append(d.nodes, &strayElement{tag: n.Data, text: flatten(n)})
		}
	}
	d.cursor = d.endPos()
	d.UpdateActiveLine()
	return d, nil
}

// FromSnapshot seeds a document from a stored snapshot. A blank or unreadable
// snapshot yields the welcome document. Drift in the snapshot is repaired.
func FromSnapshot(markup string) *Document {
	if strings.TrimSpace(markup) == "" {
		return Welcome()
	}
	d, err := Parse(markup)
	if err != nil || d.Len() == 0 {
		return Welcome()
	}
	d.Repair()
	return d
}

func lineFromNode(n *nethtml.Node) *Line {
	l := &Line{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case nethtml.TextNode:
			l.spans = append(l.spans, c.Data)
		case nethtml.ElementNode:
			if c.DataAtom == atom.Br {
				continue
			}
			if text := flatten(c); text != "" {
				l.spans = append(l.spans, text)
			}
		}
	}
	l.Format(l.Content())
	return l
}

func hasClass(n *nethtml.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, f := range strings.Fields(a.Val) {
			if f == class {
				return true
			}
		}
	}
	return false
}

// flatten returns the text content of n. Line breaks inside n become '\n'.
func flatten(n *nethtml.Node) string {
	var sb strings.Builder
	var walk func(*nethtml.Node)
	walk = func(n *nethtml.Node) {
		switch {
		case n.Type == nethtml.TextNode:
			sb.WriteString(n.Data)
		case n.Type == nethtml.ElementNode && n.DataAtom == atom.Br:
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
