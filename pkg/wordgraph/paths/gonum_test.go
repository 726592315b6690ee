package paths

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// toGonum mirrors g as a gonum weighted digraph. Self-loops are dropped since
// gonum's simple graphs reject them and they never lie on a shortest path.
func toGonum(g *wordgraph.Graph) (*simple.WeightedDirectedGraph, map[string]int64) {
	ids := make(map[string]int64, g.NodeCount())
	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i, w := range g.Nodes() {
		ids[w] = int64(i)
		dg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		dg.SetWeightedEdge(dg.NewWeightedEdge(simple.Node(ids[e.From]), simple.Node(ids[e.To]), float64(e.Weight)))
	}
	return dg, ids
}

func TestSearchMatchesGonumDijkstra(t *testing.T) {
	graphs := []*wordgraph.Graph{corpusGraph(t)}
	for seed := uint64(100); seed < 120; seed++ {
		graphs = append(graphs, randomGraph(seed))
	}

	for gi, g := range graphs {
		dg, ids := toGonum(g)
		for _, s := range g.Nodes() {
			oracle := path.DijkstraFrom(simple.Node(ids[s]), dg)
			tree := Search(g, s)
			for _, target := range g.Nodes() {
				want := oracle.WeightTo(ids[target])
				got := tree.Distance(target)
				switch {
				case math.IsInf(want, 1):
					if got != Unreachable {
						t.Errorf("graph %d: %s->%s = %d, gonum says unreachable", gi, s, target, got)
					}
				case float64(got) != want:
					t.Errorf("graph %d: %s->%s = %d, gonum says %v", gi, s, target, got, want)
				}
			}
		}
	}
}
