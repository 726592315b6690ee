// Package walk performs random walks over a word graph.
//
// A walk starts at a uniformly chosen source word and repeatedly follows a
// uniformly chosen outgoing edge. It ends at a word without successors, or as
// soon as it is about to traverse an edge a second time; in that case the
// target of the repeated edge is still appended once, so the walk shows where
// the cycle closed.
package walk

import (
	"context"
	"strings"

	"github.com/matzehuels/wordgraph/pkg/artifact"
	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// DefaultArtifact is the artifact name [Run] uses when none is given.
const DefaultArtifact = "random_walk.txt"

// Stop describes why a walk ended.
type Stop int

const (
	// DeadEnd means the last word has no outgoing edges.
	DeadEnd Stop = iota
	// RepeatedEdge means the walk chose an edge it had already traversed.
	RepeatedEdge
)

func (s Stop) String() string {
	switch s {
	case DeadEnd:
		return "dead end"
	case RepeatedEdge:
		return "repeated edge"
	}
	return "unknown"
}

// Result is a completed walk.
type Result struct {
	Words []string
	Stop  Stop
}

// Start returns the first word of the walk.
func (r *Result) Start() string { return r.Words[0] }

// Steps returns the number of edges traversed, counting the final repeated
// edge if there is one.
func (r *Result) Steps() int { return len(r.Words) - 1 }

// String returns the words of the walk separated by single spaces.
func (r *Result) String() string { return strings.Join(r.Words, " ") }

type edge struct{ from, to string }

// Walk performs one random walk over g using c for every choice. A nil c
// uses a non-seeded source. Walking an empty graph returns an
// [errors.ErrCodeEmptyGraph] error.
func Walk(g *wordgraph.Graph, c wordgraph.Chooser) (*Result, error) {
	if g.IsEmpty() {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "The graph is empty!")
	}
	if c == nil {
		c = wordgraph.RandomChooser()
	}

	cur, _ := wordgraph.Pick(c, g.Sources())
	res := &Result{Words: []string{cur}, Stop: DeadEnd}
	seen := make(map[edge]bool)

	for {
		next, ok := wordgraph.Pick(c, g.Successors(cur))
		if !ok {
			return res, nil
		}
		res.Words = append(res.Words, next)
		e := edge{cur, next}
		if seen[e] {
			res.Stop = RepeatedEdge
			return res, nil
		}
		seen[e] = true
		cur = next
	}
}

// Run performs a walk like [Walk] and stores its text, followed by a newline,
// in store under name (or [DefaultArtifact] when name is empty).
//
// If storing fails, Run returns the walk together with an
// [errors.ErrCodePersistFailed] error; the walk itself is still valid and
// [errors.IsRecoverable] reports true for the error.
func Run(ctx context.Context, g *wordgraph.Graph, c wordgraph.Chooser, store artifact.Store, name string) (*Result, error) {
	res, err := Walk(g, c)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return res, nil
	}
	if name == "" {
		name = DefaultArtifact
	}
	if err := store.Put(ctx, name, []byte(res.String()+"\n")); err != nil {
		return res, errors.Wrap(errors.ErrCodePersistFailed, err, "could not save random walk to %s", name)
	}
	return res, nil
}
