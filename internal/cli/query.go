package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgraph/pkg/artifact"
	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/render/nodelink"
)

// bridgeCommand creates the bridge command.
func (c *CLI) bridgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge WORD1 WORD2",
		Short: "Find the bridge words between two words",
		Long: `Find every word m such that WORD1 -> m and m -> WORD2 are edges of
the graph.`,
		Example: `  wordgraph bridge -f story.txt do work`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			s := c.newSession(g, artifact.NewNullStore())
			fmt.Fprintln(cmd.OutOrStdout(), s.bridge(cmd.Context(), args[0], args[1]))
			return nil
		},
	}
}

// augmentCommand creates the augment command.
func (c *CLI) augmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "augment TEXT...",
		Short: "Insert bridge words into new text",
		Long: `Normalize TEXT and insert a randomly chosen bridge word between every
pair of adjacent words that has one. Use --seed for reproducible output.`,
		Example: `  wordgraph augment -f story.txt "do work, or rest"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			s := c.newSession(g, artifact.NewNullStore())
			fmt.Fprintln(cmd.OutOrStdout(), s.augment(cmd.Context(), strings.Join(args, " ")))
			return nil
		},
	}
}

// pathFlags holds flags for the path command.
type pathFlags struct {
	render string
}

// pathCommand creates the path command.
func (c *CLI) pathCommand() *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:   "path FROM [TO]",
		Short: "Find all shortest paths from a word",
		Long: `Find every minimum-weight path from FROM to TO, or from FROM to every
other word when TO is omitted. Words are matched case-insensitively.

With --render, the graph is saved as an image with the first shortest path
highlighted.`,
		Example: `  wordgraph path -f story.txt are student
  wordgraph path -f story.txt you
  wordgraph path -f story.txt are student --render path.png`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}

			var to string
			if len(args) == 2 {
				to = args[1]
			}

			store, err := c.newStore(flags.render == "")
			if err != nil {
				return err
			}
			defer store.Close()

			s := c.newSession(g, store)
			res, err := s.path(ctx, args[0], to)
			if err != nil {
				// Unknown source words are an answer, not a failure.
				if errors.Is(err, errors.ErrCodeUnknownWord) {
					fmt.Fprintln(cmd.OutOrStdout(), errors.UserMessage(err))
					return nil
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ensureNewline(res.String()))

			if flags.render == "" {
				return nil
			}
			if to == "" || !res.Routes[0].Reachable() {
				printWarning("Nothing to highlight: --render needs a reachable TO word")
				return nil
			}
			opts := nodelink.Options{Styled: true, Highlight: res.Routes[0].Paths[0]}
			if err := s.render(ctx, flags.render, opts); err != nil {
				if errors.IsRecoverable(err) {
					printWarning("%s", errors.UserMessage(err))
					return nil
				}
				return err
			}
			printSuccess("Path rendered")
			printFile(flags.render)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.render, "render", "", "save the graph with the first shortest path highlighted")
	return cmd
}

// rankFlags holds flags for the rank command.
type rankFlags struct {
	plain bool
	top   int
}

// rankCommand creates the rank command.
func (c *CLI) rankCommand() *cobra.Command {
	var flags rankFlags

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Compute PageRank importance scores",
		Long: `Compute PageRank scores for every word that has outgoing edges and
list them from most to least important.`,
		Example: `  wordgraph rank -f story.txt --top 10
  wordgraph rank -f story.txt --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			res := c.newSession(g, artifact.NewNullStore()).rank(ctx)
			if !res.Converged {
				c.Logger.Warn("pagerank did not converge", "iterations", res.Iterations, "max_diff", res.MaxDiff)
			}

			out := cmd.OutOrStdout()
			ranked := res.Ranked()
			if flags.plain {
				fmt.Fprintln(out, "PageRank results:")
				for i, sc := range ranked {
					if flags.top > 0 && i >= flags.top {
						break
					}
					fmt.Fprintf(out, "%s: %s\n", sc.Word, formatScore(sc.Score))
				}
				return nil
			}

			fmt.Fprintln(out, rankTable(ranked, flags.top))
			prog.done(fmt.Sprintf("Ranked %d words in %d iterations", len(ranked), res.Iterations))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.plain, "plain", false, `print "word: score" lines instead of a table`)
	cmd.Flags().IntVar(&flags.top, "top", 0, "show only the N highest ranked words")
	return cmd
}

// walkFlags holds flags for the walk command.
type walkFlags struct {
	noSave bool
	unique bool
	name   string
}

// walkCommand creates the walk command.
func (c *CLI) walkCommand() *cobra.Command {
	var flags walkFlags

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Perform a random walk and save it",
		Long: `Start at a random word and follow random edges until a word has no
successors or an edge would be used twice. The walk is printed and saved to
the walk file in the output directory.`,
		Example: `  wordgraph walk -f story.txt --seed 7
  wordgraph walk -f story.txt --unique`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}

			store, err := c.newStore(flags.noSave)
			if err != nil {
				return err
			}
			defer store.Close()

			name := flags.name
			if flags.unique {
				name = artifact.UniqueName("random_walk", ".txt")
			}

			res, err := c.newSession(g, store).walk(ctx, name)
			if res == nil {
				if errors.Is(err, errors.ErrCodeEmptyGraph) {
					fmt.Fprintln(cmd.OutOrStdout(), errors.UserMessage(err))
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			if err != nil {
				printWarning("%s", errors.UserMessage(err))
				return nil
			}
			c.Logger.Debug("walk finished", "steps", res.Steps(), "stop", res.Stop)
			if !flags.noSave {
				printInfo("Walk saved")
				printFile(filepath.Join(c.cfg.OutputDir, walkName(name, c.cfg.WalkFile)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.noSave, "no-save", false, "do not save the walk")
	cmd.Flags().BoolVar(&flags.unique, "unique", false, "save under a unique random_walk-<uuid>.txt name")
	cmd.Flags().StringVar(&flags.name, "name", "", "file name for the saved walk (default from config)")
	return cmd
}

// walkName returns the name a walk is saved under.
func walkName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

// ensureNewline appends a newline to s unless it already ends with one.
func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
