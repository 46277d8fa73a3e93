package export

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/bland/document"
)

func TestStructure(t *testing.T) {
	d := document.New("# Title\nbody")
	d.InsertRootText(2, "loose")

	got := Structure(d)
	if got.Cursor == nil || *got.Cursor != (DumpPos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want {0 0}", got.Cursor)
	}
	if got.ActiveLine == nil || *got.ActiveLine != 0 {
		t.Fatalf("active line=%v, want 0", got.ActiveLine)
	}
	if len(got.Rows) != 3 {
		t.Fatalf("rows=%d, want 3", len(got.Rows))
	}

	h := got.Rows[0]
	if h.Kind != "heading1" || h.Marker != "# " || !h.MarkerVisible || h.Content != "Title" {
		t.Fatalf("row 0=%+v", h)
	}
	p := got.Rows[1]
	if p.Kind != "paragraph" || p.Marker != "" || p.Content != "body" || p.Drift {
		t.Fatalf("row 1=%+v", p)
	}
	s := got.Rows[2]
	if !s.Drift || s.Content != "loose" {
		t.Fatalf("row 2=%+v", s)
	}
}

func TestStructure_NoCursor(t *testing.T) {
	d := document.New("- item")
	d.ClearCursor()

	got := Structure(d)
	if got.Cursor != nil || got.ActiveLine != nil {
		t.Fatalf("cursor=%v active=%v, want none", got.Cursor, got.ActiveLine)
	}
	if got.Rows[0].MarkerVisible {
		t.Fatalf("marker visible without a cursor")
	}
}

func TestYAML(t *testing.T) {
	d := document.New("## Plan\n- a")
	out, err := YAML(d)
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if !strings.Contains(out, "kind: heading2") || !strings.Contains(out, "kind: list-item") {
		t.Fatalf("unexpected dump:\n%s", out)
	}

	var back Dump
	if err := yaml.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(back.Rows) != 2 || back.Rows[1].Marker != "- " || back.Rows[1].Content != "a" {
		t.Fatalf("decoded rows=%+v", back.Rows)
	}
}
