package wordgraph

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/wordgraph/pkg/text"
)

var (
	// ErrEmptyWord is returned by [FromAdjacency] when a source or target
	// word is the empty string.
	ErrEmptyWord = errors.New("word must not be empty")

	// ErrInvalidWeight is returned by [FromAdjacency] when an edge weight is
	// zero or negative. Weights count co-occurrences and are always >= 1.
	ErrInvalidWeight = errors.New("edge weight must be positive")
)

// Edge is a directed, weighted connection between two words.
type Edge struct {
	From   string // Source word
	To     string // Target word
	Weight int    // Number of times From is immediately followed by To
}

// Graph is an immutable directed word-adjacency graph.
//
// The zero value is an empty graph. Use [Build], [FromText] or
// [FromAdjacency] to create a populated one.
type Graph struct {
	out   map[string]map[string]int // source -> target -> weight
	in    map[string][]string       // target -> sorted sources
	nodes []string                  // sorted sources ∪ targets
	srcs  []string                  // sorted sources
	edges int
}

// Build creates a graph from a token sequence. Every adjacent pair
// (tokens[i], tokens[i+1]) where both tokens are non-empty adds one to the
// weight of the edge tokens[i]→tokens[i+1]. Build never fails; fewer than two
// tokens produce an empty graph.
func Build(tokens []string) *Graph {
	out := make(map[string]map[string]int)
	for i := 0; i+1 < len(tokens); i++ {
		from, to := tokens[i], tokens[i+1]
		if from == "" || to == "" {
			continue
		}
		targets, ok := out[from]
		if !ok {
			targets = make(map[string]int)
			out[from] = targets
		}
		targets[to]++
	}
	return index(out)
}

// FromText tokenizes raw with [text.Tokenize] and builds the graph.
func FromText(raw string) *Graph {
	return Build(text.Tokenize(raw))
}

// FromAdjacency creates a graph from an explicit source → target → weight
// mapping. The input is copied; later changes to adj do not affect the graph.
//
// A source with an empty (or nil) target map is kept as a source with
// out-degree 0. Such nodes never arise from [Build] but are meaningful to
// [rank], which treats them as dangling.
//
// Returns ErrEmptyWord for empty words and ErrInvalidWeight for weights < 1.
//
// [rank]: github.com/matzehuels/wordgraph/pkg/wordgraph/rank
func FromAdjacency(adj map[string]map[string]int) (*Graph, error) {
	out := make(map[string]map[string]int, len(adj))
	for from, targets := range adj {
		if from == "" {
			return nil, ErrEmptyWord
		}
		cp := make(map[string]int, len(targets))
		for to, w := range targets {
			if to == "" {
				return nil, fmt.Errorf("edge %s->%q: %w", from, to, ErrEmptyWord)
			}
			if w < 1 {
				return nil, fmt.Errorf("edge %s->%s: %w", from, to, ErrInvalidWeight)
			}
			cp[to] = w
		}
		out[from] = cp
	}
	return index(out), nil
}

func index(out map[string]map[string]int) *Graph {
	g := &Graph{
		out: out,
		in:  make(map[string][]string),
	}
	seen := make(map[string]struct{}, len(out))
	for from, targets := range out {
		seen[from] = struct{}{}
		for to := range targets {
			seen[to] = struct{}{}
			g.in[to] = append(g.in[to], from)
			g.edges++
		}
	}
	for _, preds := range g.in {
		slices.Sort(preds)
	}
	g.nodes = slices.Sorted(maps.Keys(seen))
	g.srcs = slices.Sorted(maps.Keys(out))
	return g
}

// HasNode reports whether word appears anywhere in the graph, either as a
// source or as the target of some edge.
func (g *Graph) HasNode(word string) bool {
	if _, ok := g.out[word]; ok {
		return true
	}
	_, ok := g.in[word]
	return ok
}

// IsSource reports whether word has an entry in the source set. Words built
// from text are sources exactly when they have at least one outgoing edge.
func (g *Graph) IsSource(word string) bool {
	_, ok := g.out[word]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.out[from][to]
	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
func (g *Graph) Weight(from, to string) (int, bool) {
	w, ok := g.out[from][to]
	return w, ok
}

// Successors returns the distinct targets of word's outgoing edges in
// ascending order. The returned slice is freshly allocated.
func (g *Graph) Successors(word string) []string {
	return slices.Sorted(maps.Keys(g.out[word]))
}

// Predecessors returns the sources of word's incoming edges in ascending
// order. The returned slice should not be modified.
func (g *Graph) Predecessors(word string) []string { return g.in[word] }

// OutDegree returns the number of distinct outgoing targets of word.
func (g *Graph) OutDegree(word string) int { return len(g.out[word]) }

// Nodes returns every word in the graph (sources and targets) in ascending
// order. The returned slice should not be modified.
func (g *Graph) Nodes() []string { return g.nodes }

// Sources returns every word in the source set in ascending order. The
// returned slice should not be modified.
func (g *Graph) Sources() []string { return g.srcs }

// NodeCount returns the number of distinct words in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// SourceCount returns the size of the source set.
func (g *Graph) SourceCount() int { return len(g.srcs) }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// IsEmpty reports whether the graph has no sources.
func (g *Graph) IsEmpty() bool { return len(g.out) == 0 }

// Edges returns all edges ordered by source, then target.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for _, from := range g.srcs {
		for _, to := range g.Successors(from) {
			edges = append(edges, Edge{From: from, To: to, Weight: g.out[from][to]})
		}
	}
	return edges
}

// Adjacency returns a deep copy of the source → target → weight mapping.
func (g *Graph) Adjacency() map[string]map[string]int {
	adj := make(map[string]map[string]int, len(g.out))
	for from, targets := range g.out {
		adj[from] = maps.Clone(targets)
	}
	return adj
}

// Fingerprint returns a SHA-256 hex digest of the graph's edge list. Two
// graphs have the same fingerprint exactly when they have the same sources
// and the same weighted edges.
func (g *Graph) Fingerprint() string {
	h := sha256.New()
	for _, from := range g.srcs {
		fmt.Fprintf(h, "%s\x00", from)
		for _, to := range g.Successors(from) {
			fmt.Fprintf(h, "\x01%s\x02%d", to, g.out[from][to])
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
