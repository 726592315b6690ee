package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgraph/internal/config"
	"github.com/matzehuels/wordgraph/pkg/errors"
	wgio "github.com/matzehuels/wordgraph/pkg/io"
	"github.com/matzehuels/wordgraph/pkg/render/nodelink"
)

// Output formats accepted by the graph command.
const (
	formatDOT  = "dot"
	formatJSON = "json"
)

// graphFlags holds flags for the graph command.
type graphFlags struct {
	format string
	output string
	styled bool
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var flags graphFlags

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print or render the word graph",
		Long: `Print the word graph as DOT or JSON, or render it to an image.

DOT and JSON go to stdout unless --output is given. PNG and SVG images are
saved in the output directory (default name from graph_image in the config).`,
		Example: `  # Plain DOT listing
  wordgraph graph -f story.txt

  # Export for later use with -f graph.json
  wordgraph graph -f story.txt --format json -o graph.json

  # Render to output_graph.png
  wordgraph graph -f story.txt --format png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatDOT, "output format: dot, json, png, svg")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&flags.styled, "styled", false, "add layout attributes to DOT output")

	cmd.AddCommand(c.statsCommand())
	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, flags graphFlags) error {
	ctx := cmd.Context()
	g, err := c.loadGraph(ctx)
	if err != nil {
		return err
	}

	switch format := strings.ToLower(flags.format); format {
	case formatDOT:
		dot := nodelink.ToDOT(g, nodelink.Options{Styled: flags.styled})
		if flags.output == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
			return err
		}
		if err := writeFile(flags.output, []byte(dot)); err != nil {
			return err
		}
		printSuccess("Graph written")
		printFile(flags.output)
		return nil

	case formatJSON:
		if flags.output == "" {
			return wgio.WriteJSON(g, cmd.OutOrStdout())
		}
		if err := wgio.ExportJSON(g, flags.output); err != nil {
			return err
		}
		printSuccess("Graph exported")
		printFile(flags.output)
		return nil

	case config.FormatPNG, config.FormatSVG:
		name := imageName(flags.output, c.cfg.GraphImage, format)
		store, err := c.newStore(false)
		if err != nil {
			return err
		}
		defer store.Close()

		spinner := newSpinnerWithContext(ctx, "Rendering graph...")
		spinner.Start()
		err = c.newSession(g, store).render(ctx, name, nodelink.Options{Styled: true})
		spinner.Stop()
		if err != nil {
			return err
		}
		printSuccess("Graph saved as %s.", name)
		printFile(filepath.Join(c.cfg.OutputDir, name))
		return nil

	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (use dot, json, png or svg)", flags.format)
	}
}

// imageName picks the artifact name for a rendered image: the explicit name
// if given, else the configured default with its extension set to format.
func imageName(explicit, fallback, format string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(fallback, filepath.Ext(fallback)) + "." + format
}

// statsCommand creates the "graph stats" subcommand.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show word, source and edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words: %d\n", g.NodeCount())
			fmt.Fprintf(out, "sources: %d\n", g.SourceCount())
			fmt.Fprintf(out, "edges: %d\n", g.EdgeCount())
			fmt.Fprintf(out, "fingerprint: %s\n", g.Fingerprint())
			printStats(g.NodeCount(), g.SourceCount(), g.EdgeCount())
			return nil
		},
	}
}
