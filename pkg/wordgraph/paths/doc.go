// Package paths enumerates every minimum-weight path from a source word.
//
// # Algorithm
//
// [Search] runs a label-correcting search (Dijkstra's algorithm) over all
// nodes of the graph, sources and destination-only words alike. Next to the
// best known distance it keeps, per word, the complete set of paths that
// achieve it:
//
//   - a strictly shorter candidate replaces the set and reschedules the word
//   - an equally short candidate appends its extended paths to the set
//
// Edge weights are positive, so a word's set is complete by the time the
// word leaves the frontier and every tied predecessor has already been
// expanded. The frontier is a B-tree ordered by (distance, insertion order),
// which makes the expansion order, and therefore the order of enumerated
// paths, deterministic for a given graph.
//
// The number of tied paths can grow exponentially in contrived graphs; every
// path is materialized.
//
// # Output
//
// [Find] and [Describe] render results in the line-oriented form used by the
// CLI:
//
//	Shortest paths from are to student (length = 3):
//	Path 1: are -> you -> a -> student
package paths
