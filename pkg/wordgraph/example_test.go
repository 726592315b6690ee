package wordgraph_test

import (
	"fmt"

	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

func ExampleFromText() {
	g := wordgraph.FromText("To be, or not to be.")

	w, _ := g.Weight("to", "be")
	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("to -> be:", w)
	fmt.Println("Sources:", g.Sources())
	// Output:
	// Nodes: 4
	// Edges: 4
	// to -> be: 2
	// Sources: [be not or to]
}

func ExampleGraph_Edges() {
	g := wordgraph.Build([]string{"very", "very", "good"})
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// very -> good (1)
	// very -> very (1)
}
