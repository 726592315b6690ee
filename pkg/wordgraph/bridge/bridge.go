// Package bridge finds bridge words in a word-adjacency graph and uses them
// to augment new text.
//
// A bridge word from a to b is any word m with edges a→m and m→b. Bridge
// relations are not symmetric: "seek new life" makes "new" a bridge from
// "seek" to "life" but not from "life" to "seek".
package bridge

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// Result holds the bridge words found between two graph words.
type Result struct {
	From  string
	To    string
	Words []string // Sorted, no duplicates. Empty when no bridge exists.
}

// String renders the result in the user-facing form:
//
//	No bridge words from a to b!
//	The bridge word from a to b is: m.
//	The bridge words from a to b are: m1, m2.
func (r *Result) String() string {
	switch len(r.Words) {
	case 0:
		return fmt.Sprintf("No bridge words from %s to %s!", r.From, r.To)
	case 1:
		return fmt.Sprintf("The bridge word from %s to %s is: %s.", r.From, r.To, r.Words[0])
	default:
		return fmt.Sprintf("The bridge words from %s to %s are: %s.", r.From, r.To, strings.Join(r.Words, ", "))
	}
}

// Query returns the bridge words from a to b.
//
// If either word is not a node of g, Query returns an error with code
// [errors.ErrCodeUnknownWord] and the message "No a or b in the graph!". A
// word that only appears as an edge target still counts as a node. An empty
// bridge set is not an error.
func Query(g *wordgraph.Graph, a, b string) (*Result, error) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return nil, errors.New(errors.ErrCodeUnknownWord, "No %s or %s in the graph!", a, b)
	}
	return &Result{From: a, To: b, Words: Words(g, a, b)}, nil
}

// Describe runs [Query] and returns its message, whether the query succeeded
// or named an unknown word.
func Describe(g *wordgraph.Graph, a, b string) string {
	r, err := Query(g, a, b)
	if err != nil {
		return errors.UserMessage(err)
	}
	return r.String()
}

// Words returns the sorted bridge words from a to b without checking that a
// and b are nodes; unknown words simply have no bridges.
func Words(g *wordgraph.Graph, a, b string) []string {
	var words []string
	for _, m := range g.Successors(a) {
		if g.HasEdge(m, b) {
			words = append(words, m)
		}
	}
	return words
}
