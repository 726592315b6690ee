// Package config loads wordgraph settings.
//
// Settings are resolved with priority flags > environment > file > defaults.
// This package handles the last three; the CLI applies flags on top.
//
// Files are TOML (.toml) or YAML (.yaml, .yml):
//
//	input = "story.txt"
//	output_dir = "out"
//	seed = 42
//
//	[rank]
//	damping = 0.85
//
// Environment variables use the WORDGRAPH_ prefix (WORDGRAPH_INPUT,
// WORDGRAPH_SEED, WORDGRAPH_DAMPING, ...). A .env file is loaded first if
// present; variables already set in the process environment win.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wordgraph/pkg/artifact"
	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph/rank"
	"github.com/matzehuels/wordgraph/pkg/wordgraph/walk"
)

// Image formats accepted for Config.Format.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// DefaultGraphImage is the file name of the rendered graph.
const DefaultGraphImage = "output_graph.png"

// envPrefix prefixes every environment variable read by [Load].
const envPrefix = "WORDGRAPH_"

// Config holds all wordgraph settings.
type Config struct {
	// Input is the path of the text file to build the graph from.
	Input string `toml:"input" yaml:"input"`
	// OutputDir receives the walk text and rendered images.
	OutputDir  string `toml:"output_dir" yaml:"output_dir"`
	WalkFile   string `toml:"walk_file" yaml:"walk_file"`
	GraphImage string `toml:"graph_image" yaml:"graph_image"`
	// Format is the image format, "png" or "svg".
	Format string `toml:"format" yaml:"format"`
	// Seed makes random choices reproducible. Nil means unseeded.
	Seed *uint64    `toml:"seed" yaml:"seed"`
	Rank RankConfig `toml:"rank" yaml:"rank"`
}

// RankConfig holds PageRank parameters.
type RankConfig struct {
	Damping       float64 `toml:"damping" yaml:"damping"`
	MaxIterations int     `toml:"max_iterations" yaml:"max_iterations"`
	Tolerance     float64 `toml:"tolerance" yaml:"tolerance"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:  ".",
		WalkFile:   walk.DefaultArtifact,
		GraphImage: DefaultGraphImage,
		Format:     FormatPNG,
		Rank: RankConfig{
			Damping:       rank.DefaultDamping,
			MaxIterations: rank.DefaultMaxIterations,
			Tolerance:     rank.DefaultTolerance,
		},
	}
}

// Load builds a Config from defaults, the file at path (skipped when path is
// empty) and the environment. envFiles are loaded with godotenv before the
// environment is read; without any, ".env" is tried. The result is validated.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := loadDotEnv(envFiles); err != nil {
		return cfg, err
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return nil
}

func loadDotEnv(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load env file")
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v, ok := lookupEnv("INPUT"); ok {
		cfg.Input = v
	}
	if v, ok := lookupEnv("OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := lookupEnv("WALK_FILE"); ok {
		cfg.WalkFile = v
	}
	if v, ok := lookupEnv("GRAPH_IMAGE"); ok {
		cfg.GraphImage = v
	}
	if v, ok := lookupEnv("FORMAT"); ok {
		cfg.Format = strings.ToLower(v)
	}
	if v, ok := lookupEnv("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError("SEED", v, err)
		}
		cfg.Seed = &seed
	}
	if v, ok := lookupEnv("DAMPING"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("DAMPING", v, err)
		}
		cfg.Rank.Damping = f
	}
	if v, ok := lookupEnv("MAX_ITERATIONS"); ok {
		i, err := strconv.Atoi(v)
		if err != nil {
			return envError("MAX_ITERATIONS", v, err)
		}
		cfg.Rank.MaxIterations = i
	}
	if v, ok := lookupEnv("TOLERANCE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("TOLERANCE", v, err)
		}
		cfg.Rank.Tolerance = f
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func envError(key, value string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s%s: invalid value %q", envPrefix, key, value)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Rank.Damping <= 0 || c.Rank.Damping >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "rank.damping must be in (0, 1), got %v", c.Rank.Damping)
	}
	if c.Rank.MaxIterations < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "rank.max_iterations must be >= 1, got %d", c.Rank.MaxIterations)
	}
	if c.Rank.Tolerance <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rank.tolerance must be > 0, got %v", c.Rank.Tolerance)
	}
	if c.Format != FormatPNG && c.Format != FormatSVG {
		return errors.New(errors.ErrCodeInvalidConfig, "format must be %q or %q, got %q", FormatPNG, FormatSVG, c.Format)
	}
	if err := errors.ValidateArtifactName(c.WalkFile); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "walk_file")
	}
	if err := errors.ValidateArtifactName(c.GraphImage); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "graph_image")
	}
	return nil
}

// RankOptions converts the rank settings to [rank.Options].
func (c Config) RankOptions() rank.Options {
	opts := rank.DefaultOptions()
	opts.Damping = c.Rank.Damping
	opts.MaxIterations = c.Rank.MaxIterations
	opts.Tolerance = c.Rank.Tolerance
	return opts
}

// Store opens the artifact store for OutputDir.
func (c Config) Store() (*artifact.FileStore, error) {
	return artifact.NewFileStore(c.OutputDir)
}
