package report

import (
	"fmt"
	"io"
	"strings"
)

var cellEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`)

func writeMarkdown(rep *Report, w io.Writer) error {
	header := append([]string{"Test name", "Query"}, rep.Schema...)
	for i, h := range header {
		header[i] = cellEscaper.Replace(h)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", rep.Folder)
	fmt.Fprintf(&b, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(&b, "|%s\n", strings.Repeat("---|", len(header)))
	for _, row := range rep.Rows {
		cells := []string{cellEscaper.Replace(row.Test), fmt.Sprint(row.Query)}
		for i, r := range row.Results {
			c := r.Label()
			if row.Matches[i] {
				c = "**" + c + "**"
			}
			cells = append(cells, c)
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "- Total queries: %d\n", rep.Stats.TotalQueries)
	fmt.Fprintf(&b, "- Solver coverage: %d\n", rep.Stats.Coverage)
	if rep.Stats.BestSolver != "" {
		fmt.Fprintf(&b, "- Best solver: %s (%d)\n", cellEscaper.Replace(rep.Stats.BestSolver), rep.Stats.BestScore)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
