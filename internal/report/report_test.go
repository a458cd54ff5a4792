package report_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/signalnine/goldtable/internal/compare"
	"github.com/signalnine/goldtable/internal/report"
	"github.com/signalnine/goldtable/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answers = map[string]result.Result

func writeCorpus(t *testing.T, folder string, tests map[string][]answers) {
	t.Helper()
	for dir, queries := range tests {
		for i, q := range queries {
			path := filepath.Join(folder, dir, strconv.Itoa(i)+".smt2.results")
			require.NoError(t, result.WriteQuery(path, q))
		}
	}
}

// scenarioCorpus is two queries of one test where SolverA never agrees with
// the reference.
func scenarioCorpus(t *testing.T) string {
	folder := filepath.Join(t.TempDir(), "ListWorking")
	writeCorpus(t, folder, map[string][]answers{
		"T1.smt2.out": {
			{"Human": result.Classify("(Sat, 10)"), "SolverA": result.Classify("(Sat, 12)")},
			{"Human": result.Classify("Unsat"), "SolverA": result.Classify("Time limit exceeded")},
		},
	})
	return folder
}

func TestGenerateTable(t *testing.T) {
	folder := scenarioCorpus(t)

	var buf bytes.Buffer
	err := report.Generate(folder, &report.Options{Format: "table", Color: "never"}, &buf)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Test name query SolverA   Human",
		"-------------------------------",
		"       T1     0 sat(12) sat(10)",
		"       T1     1      TL   unsat",
		"-------------------------------",
		"Total queries:\t\t2",
		"Solver coverage:\t0",
		"Best SolverA with score:\t0",
	}, "\n")
	output := buf.String()
	assert.Contains(t, output, want)
	assert.NotContains(t, output, "\x1b[")

	firstLine, _, _ := strings.Cut(output, "\n")
	assert.Contains(t, firstLine, folder)
}

func TestGenerateTableHighlightsMatches(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "Lists")
	writeCorpus(t, folder, map[string][]answers{
		"A.x.y": {{"Human": result.Untimed(result.Unsat), "B": result.Untimed(result.Unsat)}},
	})

	var plain, colored bytes.Buffer
	require.NoError(t, report.Generate(folder, &report.Options{Color: "never"}, &plain))
	require.NoError(t, report.Generate(folder, &report.Options{Color: "always"}, &colored))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, plain.String(), "Solver coverage:\t1")
	assert.Contains(t, plain.String(), "Best B with score:\t1")
}

func TestGenerateMissingSolverColumn(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "Mixed")
	writeCorpus(t, folder, map[string][]answers{
		"A.x.y": {
			{"Human": result.Untimed(result.Sat), "SolverA": result.Untimed(result.Sat)},
			{"Human": result.Untimed(result.Sat)},
		},
	})

	rep, err := report.Build(folder, nil)
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, result.Missing(), rep.Rows[1].Results[0])
	assert.Equal(t, 1, rep.Stats.Coverage)
	assert.Equal(t, 1, rep.Stats.MatchCounts["SolverA"])
}

func TestGenerateNoReference(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "NoGold")
	writeCorpus(t, folder, map[string][]answers{
		"A.x.y": {{"SolverA": result.Untimed(result.Sat)}},
	})

	err := report.Generate(folder, nil, &bytes.Buffer{})
	assert.True(t, errors.Is(err, compare.ErrNoReference), "got %v", err)
}

func TestGenerateCustomReference(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "Gold")
	writeCorpus(t, folder, map[string][]answers{
		"A.x.y": {{"Oracle": result.Untimed(result.Sat), "Human": result.Untimed(result.Sat)}},
	})

	rep, err := report.Build(folder, &report.Options{Reference: "Oracle"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Human", "Oracle"}, rep.Schema)
	assert.Equal(t, 1, rep.Stats.MatchCounts["Human"])
}

func TestGenerateMarkdown(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "Lists")
	writeCorpus(t, folder, map[string][]answers{
		"A.x.y": {{"Human": result.Untimed(result.Unsat), "B": result.Untimed(result.Unsat)}},
	})

	var buf bytes.Buffer
	require.NoError(t, report.Generate(folder, &report.Options{Format: "markdown"}, &buf))
	output := buf.String()
	assert.Contains(t, output, "| Test name | Query | B | Human |")
	assert.Contains(t, output, "| A | 0 | **unsat** | **unsat** |")
	assert.Contains(t, output, "- Best solver: B (1)")
}

func TestGenerateJSON(t *testing.T) {
	folder := scenarioCorpus(t)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(folder, &report.Options{Format: "json"}, &buf))

	var got struct {
		Schema []string `json:"schema"`
		Rows   []struct {
			Test    string `json:"test"`
			Results []struct {
				Solver string `json:"solver"`
				Kind   string `json:"kind"`
				Time   *int64 `json:"time"`
			} `json:"results"`
		} `json:"rows"`
		Statistics struct {
			TotalQueries int `json:"total_queries"`
			Coverage     int `json:"coverage"`
		} `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"SolverA", "Human"}, got.Schema)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "sat", got.Rows[0].Results[0].Kind)
	require.NotNil(t, got.Rows[0].Results[0].Time)
	assert.EqualValues(t, 12, *got.Rows[0].Results[0].Time)
	assert.Equal(t, "timelimit", got.Rows[1].Results[0].Kind)
	assert.Nil(t, got.Rows[1].Results[0].Time)
	assert.Equal(t, 2, got.Statistics.TotalQueries)
}

func TestGenerateTeX(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "ListsUnsafe")
	writeCorpus(t, folder, map[string][]answers{
		"Lists.x.y": {
			{"Human": result.Untimed(result.Sat), "r_type": result.WithTime(result.Sat, 31)},
			{"Human": result.Untimed(result.Unsat), "r_type": result.WithTime(result.Sat, 7)},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, report.Generate(folder, &report.Options{Format: "tex", TeXSolver: "r_type"}, &buf))
	want := "ListsUnsafe & 1 & Небезопасно & Небезопасно & 31 \\\\\n" +
		"\\rowcolor{red} ListsUnsafe & 2 & Небезопасно & Безопасно & 7 \\\\\n"
	assert.Equal(t, want, buf.String())
}

func TestResolveFolder(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "ListWorking"), report.ResolveFolder("root", "ListWorking"))
	assert.Equal(t, "/abs/dir", report.ResolveFolder("root", "/abs/dir"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateMarkdownEscapesAndReportsWriteErrors(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "Pipes")
	writeCorpus(t, folder, map[string][]answers{
		"a|b.x.y": {{"Human": result.Untimed(result.Sat), "So|ver": result.Untimed(result.Sat)}},
	})

	var buf bytes.Buffer
	require.NoError(t, report.Generate(folder, &report.Options{Format: "markdown"}, &buf))
	assert.Contains(t, buf.String(), `| Test name | Query | So\|ver | Human |`)
	assert.Contains(t, buf.String(), `| a\|b | 0 | **sat** | **sat** |`)

	err := report.Generate(folder, &report.Options{Format: "markdown"}, failingWriter{})
	assert.Error(t, err)
}

func TestWriteNilOptions(t *testing.T) {
	rep, err := report.Build(scenarioCorpus(t), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(rep, nil, &buf))
	assert.Contains(t, buf.String(), "Best SolverA with score:\t0")
}
