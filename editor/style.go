package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/bland/document"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text     lipgloss.Style // paragraphs and drifted rows
	Marker   lipgloss.Style // visible syntax markers
	Heading1 lipgloss.Style
	Heading2 lipgloss.Style
	Heading3 lipgloss.Style
	ListItem lipgloss.Style
	Cursor   lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Heading1:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true).Underline(true),
		Heading2:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Heading3:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		ListItem:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

// ThemeColors overrides the foreground colors of DefaultStyle. Empty values
// keep the default.
type ThemeColors struct {
	Marker, Heading1, Heading2, Heading3, ListItem, Cursor string
}

func (tc ThemeColors) Apply(st Style) Style {
	fg := func(s lipgloss.Style, c string) lipgloss.Style {
		if c == "" {
			return s
		}
		return s.Foreground(lipgloss.Color(c))
	}
	st.Marker = fg(st.Marker, tc.Marker)
	st.Heading1 = fg(st.Heading1, tc.Heading1)
	st.Heading2 = fg(st.Heading2, tc.Heading2)
	st.Heading3 = fg(st.Heading3, tc.Heading3)
	st.ListItem = fg(st.ListItem, tc.ListItem)
	if tc.Cursor != "" {
		st.Cursor = lipgloss.NewStyle().Background(lipgloss.Color(tc.Cursor)).Foreground(lipgloss.Color("0"))
	}
	return st
}

func (st Style) forKind(k document.Kind) lipgloss.Style {
	switch k {
	case document.Heading1:
		return st.Heading1
	case document.Heading2:
		return st.Heading2
	case document.Heading3:
		return st.Heading3
	case document.ListItem:
		return st.ListItem
	default:
		return st.Text
	}
}
