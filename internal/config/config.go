package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Reference  string     `yaml:"reference"`
	Corpus     Corpus     `yaml:"corpus"`
	Classifier Classifier `yaml:"classifier"`
	Report     Report     `yaml:"report"`
	TeX        TeX        `yaml:"tex"`
}

type Corpus struct {
	Root           string   `yaml:"root"`
	DefaultFolders []string `yaml:"default_folders"`
	Extension      string   `yaml:"extension"`
}

type Classifier struct {
	ErrorMarker string `yaml:"error_marker"`
}

type Report struct {
	Format  string `yaml:"format"`
	Color   string `yaml:"color"`
	Workers int    `yaml:"workers"`
}

// TeX configures the typeset-table export of a single solver against the
// reference.
type TeX struct {
	Solver string `yaml:"solver"`
	Labels string `yaml:"labels"`
}

var (
	Formats    = []string{"table", "markdown", "json", "tex"}
	ColorModes = []string{"auto", "always", "never"}
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	if err := validate(cfg); err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := validate(&cfg); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	// Relative label files live next to the config that names them.
	if cfg.TeX.Labels != "" && !filepath.IsAbs(cfg.TeX.Labels) {
		cfg.TeX.Labels = filepath.Join(filepath.Dir(path), cfg.TeX.Labels)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Reference == "" {
		cfg.Reference = "Human"
	}
	if cfg.Corpus.Root == "" {
		cfg.Corpus.Root = "VSharp.Test/Golds/VSharp/Test/Tests"
	}
	if len(cfg.Corpus.DefaultFolders) == 0 {
		cfg.Corpus.DefaultFolders = []string{"ListWorking"}
	}
	for i, f := range cfg.Corpus.DefaultFolders {
		if f == "" {
			return errors.Newf("corpus.default_folders[%d]: folder name is empty", i)
		}
	}
	if cfg.Corpus.Extension == "" {
		cfg.Corpus.Extension = ".results"
	}
	if cfg.Corpus.Extension[0] != '.' {
		return errors.Newf("corpus.extension %q must start with a dot", cfg.Corpus.Extension)
	}
	if cfg.Classifier.ErrorMarker == "" {
		cfg.Classifier.ErrorMarker = "z3: "
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = "table"
	}
	if !slices.Contains(Formats, cfg.Report.Format) {
		return errors.Newf("report.format %q: want one of %v", cfg.Report.Format, Formats)
	}
	if cfg.Report.Color == "" {
		cfg.Report.Color = "auto"
	}
	if !slices.Contains(ColorModes, cfg.Report.Color) {
		return errors.Newf("report.color %q: want one of %v", cfg.Report.Color, ColorModes)
	}
	if cfg.Report.Workers == 0 {
		cfg.Report.Workers = 1
	}
	if cfg.Report.Workers < 0 {
		return errors.New("report.workers must be at least 1")
	}
	if cfg.TeX.Solver == "" {
		cfg.TeX.Solver = "r_type"
	}
	return nil
}

// Validate checks a configuration built or modified in code, filling defaults.
func (c *Config) Validate() error {
	return validate(c)
}
