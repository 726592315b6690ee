// Package cli implements the wordgraph command-line interface.
//
// This package provides commands for building a word-adjacency graph from a
// text file and querying it. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - graph: Print the graph as DOT or JSON, or render it to PNG/SVG
//   - bridge: Find the bridge words between two words
//   - augment: Insert bridge words into new text
//   - path: Find all shortest paths from a word
//   - rank: Compute PageRank importance scores
//   - walk: Perform and save a random walk
//   - shell: Interactive menu over a single graph
//
// # Configuration
//
// Settings come from defaults, an optional --config file, WORDGRAPH_*
// environment variables (and .env), and finally flags; see
// [github.com/matzehuels/wordgraph/internal/config].
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/wordgraph/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import "github.com/matzehuels/wordgraph/pkg/buildinfo"

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time. Empty values keep the current setting.
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}
