package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows under headers with columns padded to the widest cell
// and separated by '|'.
func Table(styles Styles, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var sb strings.Builder
	writeRow(&sb, styles.Header, styles.Muted, widths, headers)

	total := len(widths) - 1
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteByte('\n')

	for _, row := range rows {
		writeRow(&sb, lipgloss.NewStyle(), styles.Muted, widths, row)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, style, sep lipgloss.Style, widths []int, cells []string) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			sb.WriteString(sep.Render("|"))
		}
		sb.WriteString(style.Padding(0, 1).Width(w + 2).Render(cell))
	}
	sb.WriteByte('\n')
}
