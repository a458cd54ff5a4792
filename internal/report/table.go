package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func writeTable(rep *Report, w io.Writer, st styler) error {
	header := append([]string{"Test name", "query"}, rep.Schema...)
	const lead = 2

	cells := make([][]string, len(rep.Rows))
	for i, row := range rep.Rows {
		line := make([]string, 0, len(header))
		line = append(line, row.Test, strconv.Itoa(row.Query))
		for _, r := range row.Results {
			line = append(line, r.Label())
		}
		cells[i] = line
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, line := range cells {
		for i, c := range line {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	padded := make([]string, len(header))
	for i, h := range header {
		padded[i] = padLeft(h, widths[i])
	}
	headerLine := strings.Join(padded, " ")
	width := lipgloss.Width(headerLine)
	rule := strings.Repeat("-", width)

	var b strings.Builder
	b.WriteString(banner(rep.Folder, width))
	b.WriteByte('\n')
	b.WriteString(headerLine)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
	for i, line := range cells {
		row := rep.Rows[i]
		out := make([]string, len(line))
		for j, c := range line {
			out[j] = padLeft(c, widths[j])
			if j >= lead {
				out[j] = st.cell(out[j], row.Results[j-lead], row.Matches[j-lead])
			}
		}
		b.WriteString(strings.Join(out, " "))
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total queries:\t\t%d\n", rep.Stats.TotalQueries)
	fmt.Fprintf(&b, "Solver coverage:\t%d\n", rep.Stats.Coverage)
	if rep.Stats.BestSolver == "" {
		b.WriteString("Best solver:\t\tnone\n")
	} else {
		fmt.Fprintf(&b, "Best %s with score:\t%d\n", rep.Stats.BestSolver, rep.Stats.BestScore)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// banner centres title in a line of '=' that is width wide; the left side
// takes the odd extra character.
func banner(title string, width int) string {
	n := max(width-lipgloss.Width(title), 0)
	left, right := n/2+n%2, n/2
	return strings.Repeat("=", left) + title + strings.Repeat("=", right)
}

func padLeft(s string, width int) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}
