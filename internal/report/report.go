package report

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/signalnine/goldtable/internal/compare"
	"github.com/signalnine/goldtable/internal/corpus"
	"github.com/signalnine/goldtable/internal/labels"
)

type Options struct {
	Reference string
	Corpus    corpus.Options
	Format    string
	Color     string
	TeXSolver string
	Labels    *labels.Table
}

func (o *Options) reference() string {
	if o.Reference == "" {
		return compare.DefaultReference
	}
	return o.Reference
}

func (o *Options) logger() *slog.Logger {
	if o.Corpus.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Corpus.Logger
}

// Report is the scored comparison of one corpus folder.
type Report struct {
	Folder    string
	Reference string
	Tests     []*corpus.TestSuite
	Schema    []string
	Rows      []compare.Row
	Stats     compare.Statistics
}

// Build loads folder, builds the schema and scores every row.
func Build(folder string, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	tests, err := corpus.Load(folder, &opts.Corpus)
	if err != nil {
		return nil, err
	}
	ref := opts.reference()
	schema, err := compare.BuildSchema(tests, ref)
	if err != nil {
		return nil, err
	}
	rows := compare.Rows(schema, tests)
	stats, err := compare.Score(schema, rows)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("scored folder",
		"folder", folder,
		"tests", len(tests),
		"solvers", len(schema)-1,
		"queries", stats.TotalQueries,
		"coverage", stats.Coverage)
	return &Report{
		Folder:    folder,
		Reference: ref,
		Tests:     tests,
		Schema:    schema,
		Rows:      rows,
		Stats:     stats,
	}, nil
}

// Generate builds the report for folder and writes it in opts.Format.
func Generate(folder string, opts *Options, w io.Writer) error {
	if opts == nil {
		opts = &Options{}
	}
	rep, err := Build(folder, opts)
	if err != nil {
		return err
	}
	return Write(rep, opts, w)
}

func Write(rep *Report, opts *Options, w io.Writer) error {
	if opts == nil {
		opts = &Options{}
	}
	switch opts.Format {
	case "markdown":
		return writeMarkdown(rep, w)
	case "json":
		return writeJSON(rep, w)
	case "tex":
		return writeTeX(rep, opts, w)
	default:
		return writeTable(rep, w, newStyler(w, opts.Color))
	}
}

// ResolveFolder places a relative folder name under the corpus root.
func ResolveFolder(root, folder string) string {
	if filepath.IsAbs(folder) {
		return folder
	}
	return filepath.Join(root, folder)
}

func fileDescriptor(w io.Writer) (uintptr, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return f.Fd(), true
}
