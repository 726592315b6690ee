package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordgraph/internal/config"
	"github.com/matzehuels/wordgraph/pkg/artifact"
	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/render/nodelink"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
	"github.com/matzehuels/wordgraph/pkg/wordgraph/bridge"
	"github.com/matzehuels/wordgraph/pkg/wordgraph/paths"
	"github.com/matzehuels/wordgraph/pkg/wordgraph/rank"
	"github.com/matzehuels/wordgraph/pkg/wordgraph/walk"
)

// session binds one graph to the collaborators its queries need. Commands
// and the interactive shell both go through it, so every query is reported
// to the analysis hooks the same way.
type session struct {
	g       *wordgraph.Graph
	cfg     config.Config
	chooser wordgraph.Chooser
	store   artifact.Store
	logger  *log.Logger
}

// newSession creates a session over g using the CLI's configuration.
func (c *CLI) newSession(g *wordgraph.Graph, store artifact.Store) *session {
	return &session{
		g:       g,
		cfg:     c.cfg,
		chooser: c.chooser(),
		store:   store,
		logger:  c.Logger,
	}
}

func (s *session) bridge(ctx context.Context, a, b string) string {
	var out string
	_ = track(ctx, "bridge", func() error {
		out = bridge.Describe(s.g, a, b)
		return nil
	})
	return out
}

func (s *session) augment(ctx context.Context, input string) string {
	var out string
	_ = track(ctx, "augment", func() error {
		out = bridge.Augment(s.g, input, s.chooser)
		return nil
	})
	return out
}

func (s *session) path(ctx context.Context, from, to string) (*paths.Result, error) {
	var res *paths.Result
	err := track(ctx, "path", func() error {
		var err error
		res, err = paths.Find(s.g, from, to)
		return err
	})
	return res, err
}

func (s *session) rank(ctx context.Context) *rank.Result {
	var res *rank.Result
	_ = track(ctx, "pagerank", func() error {
		opts := s.cfg.RankOptions()
		opts.Logger = s.logger
		res = rank.Compute(s.g, opts)
		return nil
	})
	return res
}

// walk performs a random walk and saves it under name (the configured walk
// file when empty). A save failure is returned together with the walk.
func (s *session) walk(ctx context.Context, name string) (*walk.Result, error) {
	if name == "" {
		name = s.cfg.WalkFile
	}
	var res *walk.Result
	err := track(ctx, "walk", func() error {
		var err error
		res, err = walk.Run(ctx, s.g, s.chooser, s.store, name)
		return err
	})
	return res, err
}

// render draws the graph and stores the image under name. The format follows
// the file extension: .svg produces SVG, anything else PNG.
func (s *session) render(ctx context.Context, name string, opts nodelink.Options) error {
	return track(ctx, "render", func() error {
		dot := nodelink.ToDOT(s.g, opts)

		var (
			img []byte
			err error
		)
		if strings.EqualFold(filepath.Ext(name), ".svg") {
			img, err = nodelink.RenderSVG(ctx, dot)
		} else {
			img, err = nodelink.RenderPNG(ctx, dot)
		}
		if err != nil {
			return err
		}
		if err := s.store.Put(ctx, name, img); err != nil {
			return errors.Wrap(errors.ErrCodePersistFailed, err, "could not save %s", name)
		}
		return nil
	})
}

// =============================================================================
// Menu
// =============================================================================

// menuItem is one entry of the interactive menu.
type menuItem struct {
	label   string
	prompts []string
}

// menuItems lists the shell options in menu order; option n is menuItems[n-1].
var menuItems = []menuItem{
	{label: "Generate and save graph visualization"},
	{label: "Query bridge words", prompts: []string{"Enter first word: ", "Enter second word: "}},
	{label: "Generate new text", prompts: []string{"Enter the text to generate new text: "}},
	{label: "Find shortest path between two words", prompts: []string{"Enter first word: ", "Enter second word: "}},
	{label: "Calculate PageRank"},
	{label: "Perform random walk"},
	{label: "Exit"},
}

// exitChoice is the menu number that ends the shell.
const exitChoice = 7

// runChoice executes menu option choice (1-based) with the answers to its
// prompts and returns the text to show.
func (s *session) runChoice(ctx context.Context, choice int, answers []string) string {
	switch choice {
	case 1:
		name := s.cfg.GraphImage
		if err := s.render(ctx, name, nodelink.Options{Styled: true}); err != nil {
			return "Generating and saving graph visualization...\n" + errors.UserMessage(err)
		}
		return fmt.Sprintf("Generating and saving graph visualization...\nGraph saved as %s.", name)
	case 2:
		return s.bridge(ctx, answers[0], answers[1])
	case 3:
		return s.augment(ctx, answers[0])
	case 4:
		res, err := s.path(ctx, answers[0], answers[1])
		if err != nil {
			return errors.UserMessage(err)
		}
		return strings.TrimRight(res.String(), "\n")
	case 5:
		var b strings.Builder
		b.WriteString("PageRank results:")
		for _, sc := range s.rank(ctx).Ranked() {
			fmt.Fprintf(&b, "\n%s: %s", sc.Word, formatScore(sc.Score))
		}
		return b.String()
	case 6:
		res, err := s.walk(ctx, "")
		if res == nil {
			return errors.UserMessage(err)
		}
		if err != nil {
			return res.String() + "\nError writing random walk to file."
		}
		return res.String()
	}
	return "Invalid choice. Try again."
}
