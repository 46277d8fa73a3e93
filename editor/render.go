package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderContent() string {
	if m.doc == nil {
		return ""
	}

	cursor, hasCursor := m.doc.Cursor()
	hasCursor = hasCursor && m.focused
	rows := m.doc.Len()
	digits := gutterDigits(rows)

	out := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if hasCursor && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		cursorCol := -1
		if hasCursor && row == cursor.Row {
			cursorCol = cursor.Col
		}
		sb.WriteString(m.renderRow(m.layoutRow(row), cursorCol))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderRow draws one row. cursorCol < 0 means no cursor on the row.
func (m *Model) renderRow(lay rowLayout, cursorCol int) string {
	st := m.cfg.Style
	content := st.forKind(lay.kind)

	cursorIdx := -1
	if cursorCol >= 0 {
		cursorIdx = lay.cursorCell(cursorCol)
	}

	var sb strings.Builder
	for i, c := range lay.cells {
		style := content
		if c.role == cellMarker {
			style = st.Marker
		}
		if i == cursorIdx {
			text := c.text
			if isBlank(text) && trailingBlank(lay.cells[i:]) {
				// Trailing spaces can be elided by terminals at line end.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
			sb.WriteString(st.Cursor.Render(text))
			continue
		}
		sb.WriteString(style.Render(c.text))
	}
	if cursorCol >= 0 && cursorIdx == -1 {
		// Cursor at EOL is rendered as a 1-cell placeholder space.
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func isBlank(s string) bool {
	return s != "" && strings.Trim(s, " ") == ""
}

func trailingBlank(cells []cell) bool {
	for _, c := range cells {
		if !isBlank(c.text) {
			return false
		}
	}
	return true
}

func gutterDigits(rows int) int {
	if rows < 1 {
		rows = 1
	}
	return len(strconv.Itoa(rows))
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.doc.Len()) + lipgloss.Width(m.cfg.Style.Gutter.Render(" "))
}
