// Package compare lines up every solver's answers against the reference
// solver and scores them.
package compare

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/signalnine/goldtable/internal/corpus"
	"github.com/signalnine/goldtable/internal/result"
)

// DefaultReference is the solver whose answers are taken as ground truth.
const DefaultReference = "Human"

var (
	ErrNoReference = errors.New("reference solver absent from corpus")
	ErrEmptyCorpus = errors.New("no queries to score")
)

// Row is one query projected onto the schema. Matches is filled by Score.
type Row struct {
	Test    string
	Query   int
	Results []result.Result
	Matches []bool
}

// Reference returns the reference solver's answer, the last column.
func (r Row) Reference() result.Result {
	return r.Results[len(r.Results)-1]
}

type Statistics struct {
	TotalQueries int
	Coverage     int
	MatchCounts  map[string]int
	BestSolver   string
	BestScore    int
}

// BuildSchema returns every solver seen in the corpus, sorted, with the
// reference solver moved to the end.
func BuildSchema(tests []*corpus.TestSuite, reference string) ([]string, error) {
	seen := map[string]struct{}{}
	for _, t := range tests {
		for _, q := range t.Queries {
			for solver := range q.Results {
				seen[solver] = struct{}{}
			}
		}
	}
	if _, ok := seen[reference]; !ok {
		return nil, errors.Wrapf(ErrNoReference, "solver %q", reference)
	}
	delete(seen, reference)

	schema := make([]string, 0, len(seen)+1)
	for solver := range seen {
		schema = append(schema, solver)
	}
	sort.Strings(schema)
	return append(schema, reference), nil
}

// Project orders results by schema, filling absent solvers with Missing.
func Project(schema []string, results map[string]result.Result) []result.Result {
	row := make([]result.Result, len(schema))
	for i, solver := range schema {
		r, ok := results[solver]
		if !ok {
			r = result.Missing()
		}
		row[i] = r
	}
	return row
}

// Rows projects every query of every test and pools them ordered by test
// name, then query index.
func Rows(schema []string, tests []*corpus.TestSuite) []Row {
	var rows []Row
	for _, t := range tests {
		for _, q := range t.Queries {
			rows = append(rows, Row{
				Test:    t.Name,
				Query:   q.Index,
				Results: Project(schema, q.Results),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Test != rows[j].Test {
			return rows[i].Test < rows[j].Test
		}
		return rows[i].Query < rows[j].Query
	})
	return rows
}

// Score marks matching cells on every row and computes the statistics.
func Score(schema []string, rows []Row) (Statistics, error) {
	if len(rows) == 0 {
		return Statistics{}, ErrEmptyCorpus
	}
	last := len(schema) - 1
	stats := Statistics{
		TotalQueries: len(rows),
		MatchCounts:  make(map[string]int, last),
	}
	for _, solver := range schema[:last] {
		stats.MatchCounts[solver] = 0
	}

	for i := range rows {
		row := &rows[i]
		ref := row.Reference()
		row.Matches = make([]bool, len(schema))
		agreeing := 0
		for col, solver := range schema[:last] {
			if result.Matches(row.Results[col], ref) {
				row.Matches[col] = true
				stats.MatchCounts[solver]++
				agreeing++
			}
		}
		if agreeing > 0 {
			row.Matches[last] = true
			stats.Coverage++
		}
	}

	for _, solver := range schema[:last] {
		if n := stats.MatchCounts[solver]; stats.BestSolver == "" || n > stats.BestScore {
			stats.BestSolver, stats.BestScore = solver, n
		}
	}
	return stats, nil
}
