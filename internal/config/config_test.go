package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph/rank"
)

// inDir runs the test from dir so that no stray .env is picked up.
func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.WalkFile != "random_walk.txt" || cfg.GraphImage != "output_graph.png" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Seed != nil {
		t.Error("default should be unseeded")
	}

	opts := cfg.RankOptions()
	if opts != rank.DefaultOptions() {
		t.Errorf("RankOptions() = %+v, want defaults", opts)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)
	path := writeFile(t, dir, "wordgraph.toml", `
input = "story.txt"
output_dir = "out"
format = "svg"
seed = 42

[rank]
damping = 0.9
max_iterations = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Input != "story.txt" || cfg.OutputDir != "out" || cfg.Format != "svg" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Seed)
	}
	if cfg.Rank.Damping != 0.9 || cfg.Rank.MaxIterations != 50 {
		t.Errorf("Rank = %+v", cfg.Rank)
	}
	// Unset keys keep their defaults.
	if cfg.Rank.Tolerance != rank.DefaultTolerance || cfg.WalkFile != "random_walk.txt" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)
	path := writeFile(t, dir, "wordgraph.yaml", `
input: story.txt
walk_file: walk.txt
rank:
  tolerance: 0.001
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Input != "story.txt" || cfg.WalkFile != "walk.txt" || cfg.Rank.Tolerance != 0.001 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.toml")},
		{"unknown extension", writeFile(t, dir, "cfg.ini", "input=x")},
		{"malformed toml", writeFile(t, dir, "bad.toml", "input = ")},
		{"malformed yaml", writeFile(t, dir, "bad.yaml", "rank: [")},
		{"invalid damping", writeFile(t, dir, "damp.toml", "[rank]\ndamping = 1.5\n")},
		{"invalid format", writeFile(t, dir, "fmt.yml", "format: gif\n")},
		{"walk file with separator", writeFile(t, dir, "walk.toml", "walk_file = \"../x.txt\"\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load(%s) error = %v, want %s", tt.path, err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)
	path := writeFile(t, dir, "wordgraph.toml", "input = \"file.txt\"\nseed = 1\n")

	t.Setenv("WORDGRAPH_INPUT", "env.txt")
	t.Setenv("WORDGRAPH_SEED", "7")
	t.Setenv("WORDGRAPH_DAMPING", "0.5")
	t.Setenv("WORDGRAPH_FORMAT", "SVG")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Input != "env.txt" {
		t.Errorf("Input = %q, want env.txt", cfg.Input)
	}
	if cfg.Seed == nil || *cfg.Seed != 7 {
		t.Errorf("Seed = %v, want 7", cfg.Seed)
	}
	if cfg.Rank.Damping != 0.5 || cfg.Format != "svg" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	inDir(t, t.TempDir())

	tests := []struct{ key, value string }{
		{"WORDGRAPH_SEED", "-1"},
		{"WORDGRAPH_DAMPING", "high"},
		{"WORDGRAPH_MAX_ITERATIONS", "1.5"},
		{"WORDGRAPH_TOLERANCE", "tiny"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("%s=%s: error = %v, want %s", tt.key, tt.value, err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)
	writeFile(t, dir, ".env", "WORDGRAPH_OUTPUT_DIR=from-dotenv\nWORDGRAPH_MAX_ITERATIONS=12\n")
	t.Cleanup(func() {
		os.Unsetenv("WORDGRAPH_OUTPUT_DIR")
		os.Unsetenv("WORDGRAPH_MAX_ITERATIONS")
	})

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OutputDir != "from-dotenv" || cfg.Rank.MaxIterations != 12 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExplicitEnvFile(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)
	env := writeFile(t, dir, "custom.env", "WORDGRAPH_GRAPH_IMAGE=g.svg\nWORDGRAPH_FORMAT=svg\n")
	t.Cleanup(func() {
		os.Unsetenv("WORDGRAPH_GRAPH_IMAGE")
		os.Unsetenv("WORDGRAPH_FORMAT")
	})

	cfg, err := Load("", env)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GraphImage != "g.svg" || cfg.Format != "svg" {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := Load("", filepath.Join(dir, "missing.env")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing env file error = %v", err)
	}
}

func TestStore(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "artifacts")
	s, err := cfg.Store()
	if err != nil {
		t.Fatalf("Store() error: %v", err)
	}
	if s.Dir() != cfg.OutputDir {
		t.Errorf("Store().Dir() = %q", s.Dir())
	}
	if _, err := os.Stat(cfg.OutputDir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}
