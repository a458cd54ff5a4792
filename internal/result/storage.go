package result

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyQuery is returned for a result file that holds no records.
var ErrEmptyQuery = errors.New("query file has no results")

// ReadQuery reads one query file of `solver<TAB>raw` lines. The last line for
// a solver wins.
func ReadQuery(path string, c Classifier) (map[string]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading query %s", path)
	}
	results := make(map[string]Result)
	// Lines have no length limit: an oversized solver dump still classifies.
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		solver, raw, _ := strings.Cut(line, "\t")
		results[solver] = c.Classify(raw)
	}
	if len(results) == 0 {
		return nil, errors.Wrapf(ErrEmptyQuery, "query %s", path)
	}
	return results, nil
}

// WriteQuery writes results in the format ReadQuery accepts, solvers sorted.
// Missing entries are omitted.
func WriteQuery(path string, results map[string]Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating query dir")
	}
	solvers := make([]string, 0, len(results))
	for s, r := range results {
		if r.Kind != Missing {
			solvers = append(solvers, s)
		}
	}
	sort.Strings(solvers)
	var buf bytes.Buffer
	for _, s := range solvers {
		buf.WriteString(s)
		buf.WriteByte('\t')
		buf.WriteString(Format(results[s]))
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
