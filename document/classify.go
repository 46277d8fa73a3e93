package document

import "strings"

// Kind is the block kind of a line.
type Kind uint8

const (
	Paragraph Kind = iota
	Heading1
	Heading2
	Heading3
	ListItem
)

func (k Kind) String() string {
	switch k {
	case Heading1:
		return "heading1"
	case Heading2:
		return "heading2"
	case Heading3:
		return "heading3"
	case ListItem:
		return "list-item"
	default:
		return "paragraph"
	}
}

// Class returns the style tag stored on a line element in snapshots.
// Paragraphs carry no tag.
func (k Kind) Class() string {
	switch k {
	case Heading1:
		return "h1"
	case Heading2:
		return "h2"
	case Heading3:
		return "h3"
	case ListItem:
		return "list-item"
	default:
		return ""
	}
}

// Classification is the result of classifying a line's raw text.
type Classification struct {
	Kind   Kind
	Marker string // matched syntax prefix; empty for paragraphs
}

// Rules are checked in order; longer heading markers come first so that
// "### " is never read as "# ".
var prefixRules = [...]struct {
	prefix string
	kind   Kind
}{
	{prefix: "### ", kind: Heading3},
	{prefix: "## ", kind: Heading2},
	{prefix: "# ", kind: Heading1},
	{prefix: "- ", kind: ListItem},
	{prefix: "* ", kind: ListItem},
}

// Classify maps a line's full raw text to its block kind and syntax marker.
// Unmatched input is a paragraph.
func Classify(raw string) Classification {
	for _, r := range prefixRules {
		if strings.HasPrefix(raw, r.prefix) {
			return Classification{Kind: r.kind, Marker: r.prefix}
		}
	}
	return Classification{Kind: Paragraph}
}
