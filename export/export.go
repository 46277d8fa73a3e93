// Package export renders a document into formats outside the editor:
// markdown source, HTML, a styled terminal preview and a YAML dump of the
// line structure.
package export

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/iw2rmb/bland/document"
)

// Format names an export format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatYAML     Format = "yaml"
)

// ParseFormat accepts the short names used on the command line.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "md", "markdown", "":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Render dispatches to the renderer for f.
func Render(d *document.Document, f Format) (string, error) {
	switch f {
	case FormatMarkdown:
		return Markdown(d), nil
	case FormatHTML:
		return HTML(d)
	case FormatYAML:
		return YAML(d)
	default:
		return "", fmt.Errorf("unknown export format %q", f)
	}
}

// Every editor line is its own block, so soft line breaks are kept as hard
// breaks instead of being folded into one paragraph.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown returns the document source with a trailing newline.
func Markdown(d *document.Document) string {
	return d.Text() + "\n"
}

// HTML converts the document source to an HTML fragment.
func HTML(d *document.Document) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(d.Text()), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// DefaultStyle is the glamour style used when none is given.
const DefaultStyle = "dark"

// Terminal renders the document for a terminal of the given width using a
// glamour standard style ("dark", "light", "notty", ...).
func Terminal(d *document.Document, width int, style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(d.Text())
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
