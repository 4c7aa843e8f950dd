package monitor

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gravito-framework/sysmon-go/pkg/types"
)

const bannerWidth = 50

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable draws a GitHub-style pipe table with no ANSI styling, so the
// same text can go to the terminal and the log.
func renderTable(t *types.MetricTable) string {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, []string(r))
	}

	return table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(t.Headers...).
		Rows(rows...).
		String()
}

// palette holds the display styles for one output stream.
// Color support is detected per writer, so piping to a file yields plain text.
type palette struct {
	title  lipgloss.Style
	err    lipgloss.Style
	banner lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title:  r.NewStyle().Foreground(lipgloss.Color("6")),
		err:    r.NewStyle().Foreground(lipgloss.Color("1")),
		banner: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// center pads s with fill on both sides up to width; the extra rune goes right
func center(s string, width int, fill rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	pad := width - n
	left := pad / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}
