package paths

import (
	"math"
	"slices"

	"github.com/tidwall/btree"

	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// Unreachable is the distance reported for words the source cannot reach.
const Unreachable = math.MaxInt

// Tree holds the outcome of a single-source search: the minimum distance to
// every node and all paths that achieve it.
type Tree struct {
	Source string
	dist   map[string]int
	paths  map[string][][]string
}

// Distance returns the minimum total weight from the source to word, or
// [Unreachable].
func (t *Tree) Distance(word string) int {
	if d, ok := t.dist[word]; ok {
		return d
	}
	return Unreachable
}

// Reachable reports whether word can be reached from the source.
func (t *Tree) Reachable(word string) bool { return t.Distance(word) != Unreachable }

// Paths returns every minimum-weight path from the source to word, each as
// a word sequence starting at the source. It returns nil for unreachable
// words. The returned slices should not be modified.
func (t *Tree) Paths(word string) [][]string { return t.paths[word] }

type entry struct {
	dist int
	seq  uint64
	word string
}

func entryLess(a, b entry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

// Search computes the shortest-path tree from source. source need not be a
// node of g; in that case only source itself is reachable.
func Search(g *wordgraph.Graph, source string) *Tree {
	t := &Tree{
		Source: source,
		dist:   map[string]int{source: 0},
		paths:  map[string][][]string{source: {{source}}},
	}

	frontier := btree.NewBTreeG[entry](entryLess)
	var seq uint64
	frontier.Set(entry{dist: 0, seq: seq, word: source})
	settled := make(map[string]bool)

	for frontier.Len() > 0 {
		cur, _ := frontier.PopMin()
		if settled[cur.word] || cur.dist != t.dist[cur.word] {
			continue // stale entry
		}
		settled[cur.word] = true

		for _, next := range g.Successors(cur.word) {
			w, _ := g.Weight(cur.word, next)
			cand := cur.dist + w
			best, seen := t.dist[next]

			switch {
			case !seen || cand < best:
				t.dist[next] = cand
				t.paths[next] = extend(t.paths[cur.word], next)
				seq++
				frontier.Set(entry{dist: cand, seq: seq, word: next})
			case cand == best:
				t.paths[next] = append(t.paths[next], extend(t.paths[cur.word], next)...)
			}
		}
	}
	return t
}

func extend(prefixes [][]string, word string) [][]string {
	out := make([][]string, len(prefixes))
	for i, p := range prefixes {
		out[i] = append(slices.Clip(p), word)
	}
	return out
}
