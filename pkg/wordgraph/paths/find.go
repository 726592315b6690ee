package paths

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// Separator joins the words of a rendered path.
const Separator = " -> "

// Route describes the shortest paths from a source to one target.
type Route struct {
	Target   string
	Distance int        // Total edge weight, or Unreachable
	Paths    [][]string // Every minimum-weight path, in discovery order
}

// Reachable reports whether at least one path to the target exists.
func (r Route) Reachable() bool { return r.Distance != Unreachable }

// Result is the answer to a shortest-path query. When Target is empty the
// query asked for every node and Routes holds one entry per node other than
// Source, ordered by word; otherwise Routes holds exactly one entry.
type Result struct {
	Source string
	Target string
	Routes []Route
}

// Find computes the shortest paths from source to target, or to every other
// node when target is empty. Both words are lowercased first.
//
// If source is not a node of g, Find returns an error with code
// [errors.ErrCodeUnknownWord]. An unreachable or unknown target is not an
// error; its Route reports [Unreachable].
func Find(g *wordgraph.Graph, source, target string) (*Result, error) {
	source = strings.ToLower(source)
	target = strings.ToLower(target)
	if !g.HasNode(source) {
		return nil, errors.New(errors.ErrCodeUnknownWord, "No such word '%s' in the graph!", source)
	}

	tree := Search(g, source)
	res := &Result{Source: source, Target: target}
	if target != "" {
		res.Routes = []Route{route(tree, target)}
		return res, nil
	}
	for _, w := range g.Nodes() {
		if w != source {
			res.Routes = append(res.Routes, route(tree, w))
		}
	}
	return res, nil
}

func route(t *Tree, target string) Route {
	return Route{Target: target, Distance: t.Distance(target), Paths: t.Paths(target)}
}

// Describe runs [Find] and returns the rendered result or the error message.
func Describe(g *wordgraph.Graph, source, target string) string {
	r, err := Find(g, source, target)
	if err != nil {
		return errors.UserMessage(err)
	}
	return r.String()
}

// String renders the result. A single unreachable target renders as
// "No path found from s to t."; everything else is a header line followed
// by numbered paths, one per line.
func (r *Result) String() string {
	var b strings.Builder
	if r.Target != "" {
		rt := r.Routes[0]
		if !rt.Reachable() {
			return fmt.Sprintf("No path found from %s to %s.", r.Source, r.Target)
		}
		fmt.Fprintf(&b, "Shortest paths from %s to %s (length = %d):\n", r.Source, r.Target, rt.Distance)
		writePaths(&b, "", rt.Paths)
		return b.String()
	}

	fmt.Fprintf(&b, "All shortest paths from %s:\n", r.Source)
	for _, rt := range r.Routes {
		if !rt.Reachable() {
			fmt.Fprintf(&b, "No path to %s.\n", rt.Target)
			continue
		}
		fmt.Fprintf(&b, "→ %s (length = %d):\n", rt.Target, rt.Distance)
		writePaths(&b, "   ", rt.Paths)
	}
	return b.String()
}

func writePaths(b *strings.Builder, indent string, paths [][]string) {
	for i, p := range paths {
		fmt.Fprintf(b, "%sPath %d: %s\n", indent, i+1, strings.Join(p, Separator))
	}
}

// Cost returns the total weight of path in g and whether every step is an
// edge of g. A single-word path costs 0.
func Cost(g *wordgraph.Graph, path []string) (int, bool) {
	total := 0
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}
