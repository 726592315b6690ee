// Package wordgraph provides the directed, weighted word-adjacency graph that
// every analysis in wordgraph reads from.
//
// # Overview
//
// A word-adjacency graph has one node per distinct word and one edge for every
// ordered pair of words that appear next to each other in the input text. The
// weight of an edge counts how often that pair occurs:
//
//	g := wordgraph.FromText("to be or not to be")
//	w, _ := g.Weight("to", "be") // 2
//
// A word that only ever ends the text has no outgoing edges. It is still a
// node of the graph (see [Graph.HasNode]) but not a source (see
// [Graph.IsSource]). Several analyses treat the two sets differently, so the
// distinction is kept explicit throughout the API.
//
// Self-loops are legal: "very very" produces an edge very→very with weight 1.
//
// # Lifecycle
//
// Graphs are built once with [Build], [FromText] or [FromAdjacency] and are
// immutable afterwards. Rebuilding means constructing a new Graph; there is no
// incremental merge. A *Graph is safe for concurrent reads.
//
// # Deterministic Iteration
//
// All slice-returning accessors ([Graph.Nodes], [Graph.Sources],
// [Graph.Successors], [Graph.Predecessors], [Graph.Edges]) return words in
// ascending lexical order. Random choices made by the subpackages index into
// these slices, so a seeded [Chooser] reproduces the same output for the
// same graph.
//
// # Related Packages
//
// The analyses live in subpackages that take a *Graph explicitly:
//
//   - [bridge]: bridge-word queries and bridge-word text augmentation
//   - [paths]: enumeration of all minimum-weight paths
//   - [rank]: PageRank-style importance scores
//   - [walk]: random edge-following traversal
//
// [bridge]: github.com/matzehuels/wordgraph/pkg/wordgraph/bridge
// [paths]: github.com/matzehuels/wordgraph/pkg/wordgraph/paths
// [rank]: github.com/matzehuels/wordgraph/pkg/wordgraph/rank
// [walk]: github.com/matzehuels/wordgraph/pkg/wordgraph/walk
package wordgraph
