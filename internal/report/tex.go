package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/signalnine/goldtable/internal/labels"
	"github.com/signalnine/goldtable/internal/result"
)

// writeTeX emits one LaTeX tabular row per query comparing a single solver
// with the reference. Rows where the verdicts differ are coloured red.
func writeTeX(rep *Report, opts *Options, w io.Writer) error {
	table := opts.Labels
	if table == nil {
		table = labels.Default()
	}
	postfix := texPostfix(filepath.Base(rep.Folder))
	for _, t := range rep.Tests {
		for i, q := range t.Queries {
			solver, ok := q.Results[opts.TeXSolver]
			if !ok {
				solver = result.Missing()
			}
			gold, ok := q.Results[rep.Reference]
			if !ok {
				gold = result.Missing()
			}
			var time string
			if solver.Timed {
				time = strconv.FormatInt(solver.Time, 10)
			}
			var prefix string
			if solver.Kind != gold.Kind {
				prefix = `\rowcolor{red} `
			}
			cols := []string{
				t.Name + postfix,
				strconv.Itoa(i + 1),
				table.Label(solver.Kind),
				table.Label(gold.Kind),
				time,
			}
			if _, err := fmt.Fprintf(w, "%s%s \\\\\n", prefix, strings.Join(cols, " & ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func texPostfix(folder string) string {
	lower := strings.ToLower(folder)
	switch {
	case strings.Contains(lower, "unsafe"):
		return "Unsafe"
	case strings.Contains(lower, "safe"):
		return "Safe"
	}
	return ""
}
