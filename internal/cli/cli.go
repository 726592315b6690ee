package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgraph/internal/config"
	"github.com/matzehuels/wordgraph/pkg/artifact"
	"github.com/matzehuels/wordgraph/pkg/buildinfo"
	"github.com/matzehuels/wordgraph/pkg/errors"
	wgio "github.com/matzehuels/wordgraph/pkg/io"
	"github.com/matzehuels/wordgraph/pkg/observability"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "wordgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg   config.Config
	flags rootFlags
}

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	file      string
	config    string
	envFile   string
	outputDir string
	seed      uint64
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wordgraph builds word-adjacency graphs from text and queries them",
		Long: `Wordgraph turns a text file into a directed graph of adjacent words,
weighted by how often each pair occurs, and answers questions about it:
bridge words, shortest paths, PageRank importance and random walks.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.file, "file", "f", "", "input text file (or exported .json graph)")
	pf.StringVar(&c.flags.config, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&c.flags.envFile, "env-file", "", "env file to load before reading WORDGRAPH_* variables")
	pf.StringVarP(&c.flags.outputDir, "output-dir", "d", "", "directory for saved walks and images")
	pf.Uint64Var(&c.flags.seed, "seed", 0, "seed for reproducible random choices")

	// Register all subcommands
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.bridgeCommand())
	root.AddCommand(c.augmentCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.shellCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup resolves the configuration (defaults, file, environment, flags) and
// registers the logging hooks before any command runs.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	var envFiles []string
	if c.flags.envFile != "" {
		envFiles = append(envFiles, c.flags.envFile)
	}
	cfg, err := config.Load(c.flags.config, envFiles...)
	if err != nil {
		return err
	}

	if c.flags.file != "" {
		cfg.Input = c.flags.file
	}
	if c.flags.outputDir != "" {
		cfg.OutputDir = c.flags.outputDir
	}
	if cmd.Flags().Changed("seed") {
		seed := c.flags.seed
		cfg.Seed = &seed
	}
	c.cfg = cfg

	hooks := newLogHooks(c.Logger)
	observability.SetAnalysisHooks(hooks)
	observability.SetArtifactHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("configuration loaded", "input", cfg.Input, "output_dir", cfg.OutputDir, "seeded", cfg.Seed != nil)
	return nil
}

// =============================================================================
// Graph & Collaborator Factories
// =============================================================================

// loadGraph builds the graph from the configured input. Files ending in
// .json are imported as exported graphs; anything else is read as text.
func (c *CLI) loadGraph(ctx context.Context) (*wordgraph.Graph, error) {
	if c.cfg.Input == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input file: pass --file or set input in the config")
	}
	return buildGraph(ctx, c.cfg.Input)
}

// buildGraph reads path and builds its graph, reporting the build to the
// analysis hooks.
func buildGraph(ctx context.Context, path string) (*wordgraph.Graph, error) {
	logger := loggerFromContext(ctx)
	start := time.Now()

	var g *wordgraph.Graph
	if strings.EqualFold(filepath.Ext(path), ".json") {
		imported, err := wgio.ImportJSON(path)
		if err != nil {
			return nil, err
		}
		g = imported
	} else {
		raw, err := wgio.ReadText(path)
		if err != nil {
			return nil, err
		}
		g = wordgraph.FromText(raw)
	}

	observability.Analysis().OnBuild(ctx, g.NodeCount(), g.EdgeCount(), time.Since(start))
	logger.Debug("graph built", "path", path, "words", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// chooser returns the random source for augment and walk.
func (c *CLI) chooser() wordgraph.Chooser {
	if c.cfg.Seed != nil {
		return wordgraph.NewChooser(*c.cfg.Seed)
	}
	return wordgraph.RandomChooser()
}

// newStore opens the artifact store, or a null store when noSave is set.
func (c *CLI) newStore(noSave bool) (artifact.Store, error) {
	if noSave {
		return artifact.NewNullStore(), nil
	}
	return c.cfg.Store()
}

// track runs fn as the named query, reporting start and completion to the
// analysis hooks.
func track(ctx context.Context, query string, fn func() error) error {
	hooks := observability.Analysis()
	hooks.OnQueryStart(ctx, query)
	start := time.Now()
	err := fn()
	hooks.OnQueryComplete(ctx, query, time.Since(start), err)
	return err
}
