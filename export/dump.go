package export

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/bland/document"
)

// Dump is the YAML view of a document's structure.
type Dump struct {
	Version     uint64    `yaml:"version"`
	TextVersion uint64    `yaml:"text_version"`
	Cursor      *DumpPos  `yaml:"cursor,omitempty"`
	ActiveLine  *int      `yaml:"active_line,omitempty"`
	Rows        []DumpRow `yaml:"rows"`
}

type DumpPos struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// DumpRow describes one root row. Drift is set for rows that hold content
// other than a formatted line.
type DumpRow struct {
	Kind          string   `yaml:"kind"`
	Marker        string   `yaml:"marker,omitempty"`
	MarkerVisible bool     `yaml:"marker_visible,omitempty"`
	Content       string   `yaml:"content"`
	Spans         []string `yaml:"spans,flow,omitempty"`
	Drift         bool     `yaml:"drift,omitempty"`
}

// Structure builds the dump of d.
func Structure(d *document.Document) Dump {
	out := Dump{
		Version:     d.Version(),
		TextVersion: d.TextVersion(),
		Rows:        make([]DumpRow, 0, d.Len()),
	}
	if p, ok := d.Cursor(); ok {
		out.Cursor = &DumpPos{Row: p.Row, Col: p.Col}
	}
	if row, ok := d.ActiveLine(); ok {
		out.ActiveLine = &row
	}
	for row := 0; row < d.Len(); row++ {
		l, ok := d.Line(row)
		if !ok {
			out.Rows = append(out.Rows, DumpRow{
				Kind:    "drift",
				Content: d.RowText(row),
				Drift:   true,
			})
			continue
		}
		dr := DumpRow{
			Kind:          l.Kind().String(),
			Marker:        l.MarkerText(),
			MarkerVisible: l.MarkerVisible(),
			Content:       l.Content(),
		}
		if spans := l.Spans(); len(spans) > 1 {
			dr.Spans = spans
		}
		out.Rows = append(out.Rows, dr)
	}
	return out
}

// YAML encodes the structure dump of d.
func YAML(d *document.Document) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Structure(d)); err != nil {
		return "", fmt.Errorf("encode dump: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode dump: %w", err)
	}
	return buf.String(), nil
}
