// Package corpus discovers tests and their query result files on disk.
package corpus

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/signalnine/goldtable/internal/result"
	"github.com/signalnine/goldtable/internal/workpool"
)

// DefaultExtension marks a file in a test folder as a query result file.
const DefaultExtension = ".results"

// QueryRecord holds every solver's answer to one query.
type QueryRecord struct {
	Ordinal uint64 // parsed from the file name, only used for ordering
	Index   int    // position within the test after sorting
	Path    string
	Results map[string]result.Result
}

// TestSuite is one test folder and its queries ordered by ordinal.
type TestSuite struct {
	Name    string
	Dir     string
	Queries []QueryRecord
}

type Options struct {
	Extension  string
	Classifier result.Classifier
	Workers    int
	Logger     *slog.Logger
}

func (o *Options) extension() string {
	if o == nil || o.Extension == "" {
		return DefaultExtension
	}
	return o.Extension
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Options) classifier() result.Classifier {
	if o == nil {
		return result.Classifier{}
	}
	return o.Classifier
}

func (o *Options) workers() int {
	if o == nil {
		return 1
	}
	return o.Workers
}

// TestName strips the last two dot-separated segments of a folder name.
func TestName(folder string) string {
	name := folder
	for range 2 {
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return name
}

// ParseOrdinal reports the ordinal of a result file name, or false if the
// name does not follow `<ordinal>.<...><ext>`.
func ParseOrdinal(name, ext string) (uint64, bool) {
	if !strings.HasSuffix(name, ext) {
		return 0, false
	}
	head, _, found := strings.Cut(name, ".")
	if !found || head == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(head, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LoadTest reads every result file of one test folder.
func LoadTest(dir string, opts *Options) (*TestSuite, error) {
	log := opts.logger()
	ext := opts.extension()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading test dir %s", dir)
	}

	byOrdinal := map[uint64]string{}
	for _, e := range entries {
		if isDir(e, filepath.Join(dir, e.Name())) {
			log.Debug("skipping directory", "dir", dir, "name", e.Name())
			continue
		}
		n, ok := ParseOrdinal(e.Name(), ext)
		if !ok {
			log.Debug("skipping unrecognised entry", "dir", dir, "name", e.Name())
			continue
		}
		// os.ReadDir sorts by name, so the lexically last duplicate wins.
		if prev, dup := byOrdinal[n]; dup {
			log.Warn("duplicate query ordinal", "dir", dir, "ordinal", n, "dropped", prev, "kept", e.Name())
		}
		byOrdinal[n] = e.Name()
	}

	ordinals := make([]uint64, 0, len(byOrdinal))
	for n := range byOrdinal {
		ordinals = append(ordinals, n)
	}
	sort.Slice(ordinals, func(i, j int) bool { return ordinals[i] < ordinals[j] })

	suite := &TestSuite{
		Name:    TestName(filepath.Base(dir)),
		Dir:     dir,
		Queries: make([]QueryRecord, 0, len(ordinals)),
	}
	for i, n := range ordinals {
		path := filepath.Join(dir, byOrdinal[n])
		results, err := result.ReadQuery(path, opts.classifier())
		if err != nil {
			return nil, err
		}
		suite.Queries = append(suite.Queries, QueryRecord{
			Ordinal: n,
			Index:   i,
			Path:    path,
			Results: results,
		})
	}
	log.Debug("loaded test", "test", suite.Name, "queries", len(suite.Queries))
	return suite, nil
}

// isDir follows symlinks; a dangling link is not a test.
func isDir(e fs.DirEntry, path string) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Load reads every test folder under root. Tests are returned sorted by name.
func Load(root string, opts *Options) ([]*TestSuite, error) {
	log := opts.logger()

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading corpus %s", root)
	}
	var dirs []string
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if isDir(e, path) {
			dirs = append(dirs, path)
		}
	}

	suites := make([]*TestSuite, len(dirs))
	jobs := make([]workpool.Job, len(dirs))
	for i, dir := range dirs {
		jobs[i] = func() error {
			s, err := LoadTest(dir, opts)
			if err != nil {
				return errors.Wrapf(err, "loading test %s", filepath.Base(dir))
			}
			suites[i] = s
			return nil
		}
	}
	if err := workpool.FirstError(workpool.RunPool(opts.workers(), jobs)); err != nil {
		return nil, err
	}

	byName := map[string]*TestSuite{}
	for _, s := range suites {
		if prev, dup := byName[s.Name]; dup {
			log.Warn("duplicate test name", "test", s.Name, "dropped", prev.Dir, "kept", s.Dir)
		}
		byName[s.Name] = s
	}
	out := make([]*TestSuite, 0, len(byName))
	for _, s := range byName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	log.Debug("loaded corpus", "root", root, "tests", len(out))
	return out, nil
}
