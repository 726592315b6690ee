// Package rank computes PageRank-style importance scores for the words of a
// word-adjacency graph.
//
// Only source words (words with an entry in the graph's source set) are
// scored. Destination-only words receive no score and contribute nothing,
// which mirrors how importance is propagated along outgoing links.
//
// The computation runs in four phases:
//
//  1. Seed: every source gets 1/|S| plus a term-frequency weight of 1/|S|.
//  2. Normalize: seeds are scaled to sum to 1.
//  3. Iterate: power iteration with damping, redistributing the mass of
//     dangling sources (out-degree 0) uniformly, until the largest change
//     drops below the tolerance or the iteration limit is hit.
//  4. Round: scores are rounded to [Options.Precision] decimal places.
package rank

import (
	"cmp"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// Default configuration values.
const (
	// DefaultDamping is the probability of following a link rather than
	// jumping to a uniformly random source.
	DefaultDamping = 0.85

	// DefaultMaxIterations bounds the number of power-iteration rounds.
	DefaultMaxIterations = 100

	// DefaultTolerance stops iteration once the largest per-word change
	// falls below it.
	DefaultTolerance = 1e-4

	// DefaultPrecision is the number of decimal places kept in final scores.
	DefaultPrecision = 4
)

// Options configures [Compute].
type Options struct {
	// Damping must be in (0, 1). Default: 0.85
	Damping float64
	// MaxIterations must be > 0. Default: 100
	MaxIterations int
	// Tolerance must be > 0. Default: 1e-4
	Tolerance float64
	// Precision is the number of decimals kept. Zero selects the default,
	// negative disables rounding. Default: 4
	Precision int
	// Logger receives per-iteration debug output. Optional.
	Logger *log.Logger
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Precision:     DefaultPrecision,
	}
}

// Validate replaces out-of-range values with their defaults.
func (o *Options) Validate() {
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = DefaultDamping
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		o.Tolerance = DefaultTolerance
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
}

// Result holds the outcome of a PageRank computation.
type Result struct {
	// Scores maps every source word to its rounded score.
	Scores map[string]float64
	// Iterations is the number of rounds actually performed.
	Iterations int
	// Converged reports whether the tolerance was reached before the limit.
	Converged bool
	// MaxDiff is the largest per-word change in the final round.
	MaxDiff float64
}

// Score pairs a word with its PageRank score.
type Score struct {
	Word  string
	Score float64
}

// Ranked returns the scores ordered from most to least important, breaking
// ties alphabetically.
func (r *Result) Ranked() []Score {
	out := make([]Score, 0, len(r.Scores))
	for w, s := range r.Scores {
		out = append(out, Score{Word: w, Score: s})
	}
	slices.SortFunc(out, func(a, b Score) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return out
}

// Compute runs PageRank over g. An empty graph yields an empty, converged
// result.
func Compute(g *wordgraph.Graph, opts Options) *Result {
	opts.Validate()
	logger := opts.Logger

	words := g.Sources()
	n := len(words)
	res := &Result{Scores: make(map[string]float64, n), Converged: true}
	if n == 0 {
		return res
	}

	pr := seed(g)
	base := (1 - opts.Damping) / float64(n)
	res.Converged = false

	for i := 0; i < opts.MaxIterations; i++ {
		dangling := 0.0
		for _, w := range words {
			if g.OutDegree(w) == 0 {
				dangling += pr[w]
			}
		}

		next := make(map[string]float64, n)
		maxDiff := 0.0
		for _, w := range words {
			sum := 0.0
			for _, p := range g.Predecessors(w) {
				sum += pr[p] / float64(g.OutDegree(p))
			}
			v := base + opts.Damping*(sum+dangling/float64(n))
			next[w] = v
			maxDiff = math.Max(maxDiff, math.Abs(v-pr[w]))
		}

		pr = next
		res.Iterations = i + 1
		res.MaxDiff = maxDiff
		if logger != nil {
			logger.Debug("pagerank iteration", "round", res.Iterations, "max_diff", maxDiff)
		}
		if maxDiff < opts.Tolerance {
			res.Converged = true
			break
		}
	}

	for w, v := range pr {
		res.Scores[w] = round(v, opts.Precision)
	}
	return res
}

// seed returns the normalized initial scores: 1/|S| plus a term-frequency
// weight of 1/|S| per source, scaled to sum to 1.
func seed(g *wordgraph.Graph) map[string]float64 {
	words := g.Sources()
	n := float64(len(words))
	vals := make([]float64, len(words))
	for i := range words {
		tf := 1 / n
		vals[i] = 1/n + tf
	}
	floats.Scale(1/floats.Sum(vals), vals)

	pr := make(map[string]float64, len(words))
	for i, w := range words {
		pr[w] = vals[i]
	}
	return pr
}

func round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
