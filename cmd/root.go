package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/signalnine/goldtable/internal/config"
	"github.com/signalnine/goldtable/internal/corpus"
	"github.com/signalnine/goldtable/internal/labels"
	"github.com/signalnine/goldtable/internal/report"
	"github.com/signalnine/goldtable/internal/result"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "goldtable [folder...]",
		Short:        "Compare solver results against reference answers",
		Long:         "Read per-query solver result files and print a table comparing every solver with the reference solver. Without a subcommand this runs `report`.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runReport,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "goldtable.yaml", "config file path")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	addReportFlags(root)
	root.AddCommand(newReportCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newValidateCmd())
	return root
}

// loadConfig falls back to built-in defaults when the default config file
// is absent. An explicitly named file must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if f := cmd.Flag("config"); f != nil && !f.Changed {
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
	}
	return config.Load(cfgFile)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	log, err := newLogger(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if flagFormat != "" {
		cfg.Report.Format = flagFormat
	}
	if flagColor != "" {
		cfg.Report.Color = flagColor
	}
	if flagWorkers > 0 {
		cfg.Report.Workers = flagWorkers
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func reportOptions(cfg *config.Config, log *slog.Logger) (*report.Options, error) {
	table := labels.Default()
	if cfg.TeX.Labels != "" {
		var err error
		if table, err = labels.Load(cfg.TeX.Labels); err != nil {
			return nil, err
		}
	}
	return &report.Options{
		Reference: cfg.Reference,
		Corpus: corpus.Options{
			Extension:  cfg.Corpus.Extension,
			Classifier: result.Classifier{ErrorMarker: cfg.Classifier.ErrorMarker},
			Workers:    cfg.Report.Workers,
			Logger:     log,
		},
		Format:    cfg.Report.Format,
		Color:     cfg.Report.Color,
		TeXSolver: cfg.TeX.Solver,
		Labels:    table,
	}, nil
}

// resolveFolders maps folder arguments, or the configured defaults, under
// the corpus root.
func resolveFolders(cfg *config.Config, args []string) []string {
	names := args
	if len(names) == 0 {
		names = cfg.Corpus.DefaultFolders
	}
	folders := make([]string, len(names))
	for i, name := range names {
		folders[i] = report.ResolveFolder(cfg.Corpus.Root, name)
	}
	return folders
}

// eachFolder runs fn on every folder, logging failures without stopping.
func eachFolder(log *slog.Logger, folders []string, fn func(folder string) error) error {
	var failed int
	for _, folder := range folders {
		if err := fn(folder); err != nil {
			failed++
			log.Error("folder failed", "folder", folder, "error", err)
		}
	}
	if failed > 0 {
		return errors.Newf("%d of %d folders failed", failed, len(folders))
	}
	return nil
}
