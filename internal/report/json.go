package report

import (
	"encoding/json"
	"io"

	"github.com/signalnine/goldtable/internal/result"
)

type jsonReport struct {
	Folder     string         `json:"folder"`
	Reference  string         `json:"reference"`
	Schema     []string       `json:"schema"`
	Rows       []jsonRow      `json:"rows"`
	Statistics jsonStatistics `json:"statistics"`
}

type jsonRow struct {
	Test    string     `json:"test"`
	Query   int        `json:"query"`
	Results []jsonCell `json:"results"`
}

type jsonCell struct {
	Solver  string      `json:"solver"`
	Kind    result.Kind `json:"kind"`
	Time    *int64      `json:"time,omitempty"`
	Matches bool        `json:"matches"`
}

type jsonStatistics struct {
	TotalQueries int            `json:"total_queries"`
	Coverage     int            `json:"coverage"`
	MatchCounts  map[string]int `json:"match_counts"`
	BestSolver   string         `json:"best_solver,omitempty"`
	BestScore    int            `json:"best_score"`
}

func writeJSON(rep *Report, w io.Writer) error {
	out := jsonReport{
		Folder:    rep.Folder,
		Reference: rep.Reference,
		Schema:    rep.Schema,
		Rows:      make([]jsonRow, 0, len(rep.Rows)),
		Statistics: jsonStatistics{
			TotalQueries: rep.Stats.TotalQueries,
			Coverage:     rep.Stats.Coverage,
			MatchCounts:  rep.Stats.MatchCounts,
			BestSolver:   rep.Stats.BestSolver,
			BestScore:    rep.Stats.BestScore,
		},
	}
	for _, row := range rep.Rows {
		jr := jsonRow{Test: row.Test, Query: row.Query, Results: make([]jsonCell, len(row.Results))}
		for i, r := range row.Results {
			cell := jsonCell{Solver: rep.Schema[i], Kind: r.Kind, Matches: row.Matches[i]}
			if r.Timed {
				t := r.Time
				cell.Time = &t
			}
			jr.Results[i] = cell
		}
		out.Rows = append(out.Rows, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
