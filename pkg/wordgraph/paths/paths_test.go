package paths

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

func corpusGraph(t *testing.T) *wordgraph.Graph {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "testdata", "corpus.txt"))
	if err != nil {
		t.Fatalf("read corpus: %v", err)
	}
	return wordgraph.FromText(string(data))
}

func TestDescribeCorpus(t *testing.T) {
	g := corpusGraph(t)

	t.Run("unknown source", func(t *testing.T) {
		if got, want := Describe(g, "unknown", "work"), "No such word 'unknown' in the graph!"; got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("all targets", func(t *testing.T) {
		got := Describe(g, "you", "")
		if !strings.HasPrefix(got, "All shortest paths from you:") {
			t.Errorf("missing header: %q", got)
		}
		if !strings.Contains(got, "→ or (length = 2):\n   Path 1: you -> work -> or\n") {
			t.Errorf("missing route to or:\n%s", got)
		}
		if !strings.Contains(got, "No path to do.\n") {
			t.Errorf("do should be unreachable from you:\n%s", got)
		}
	})

	t.Run("single target", func(t *testing.T) {
		got := Describe(g, "are", "student")
		want := "Shortest paths from are to student (length = 3):\nPath 1: are -> you -> a -> student\n"
		if got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("unreachable target", func(t *testing.T) {
		if got, want := Describe(g, "a", "are"), "No path found from a to are."; got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		if got, want := Describe(g, "do", "zebra"), "No path found from do to zebra."; got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		if got := Describe(g, "Are", "STUDENT"); !strings.HasPrefix(got, "Shortest paths from are to student (length = 3):") {
			t.Errorf("Describe() = %q", got)
		}
	})

	t.Run("destination only source", func(t *testing.T) {
		got := Describe(g, "hard", "")
		if !strings.HasPrefix(got, "All shortest paths from hard:") || strings.Contains(got, "→") {
			t.Errorf("hard has no outgoing edges, got:\n%s", got)
		}
	})
}

func TestFindUnknownWordCode(t *testing.T) {
	_, err := Find(corpusGraph(t), "nobody", "")
	if !errors.Is(err, errors.ErrCodeUnknownWord) {
		t.Errorf("Find() error = %v, want %s", err, errors.ErrCodeUnknownWord)
	}
}

func TestFindAllRoutesCoverEveryOtherNode(t *testing.T) {
	g := corpusGraph(t)
	r, err := Find(g, "do", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Routes) != g.NodeCount()-1 {
		t.Fatalf("got %d routes, want %d", len(r.Routes), g.NodeCount()-1)
	}
	for _, rt := range r.Routes {
		if rt.Target == "do" {
			t.Error("routes should exclude the source")
		}
	}
}

func TestSearchTies(t *testing.T) {
	g := wordgraph.Build([]string{"a", "b", "d", "a", "c", "d"})

	tree := Search(g, "a")
	if d := tree.Distance("d"); d != 2 {
		t.Fatalf("Distance(d) = %d, want 2", d)
	}
	want := [][]string{{"a", "b", "d"}, {"a", "c", "d"}}
	if got := tree.Paths("d"); !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("Paths(d) = %v, want %v", got, want)
	}

	got := Describe(g, "a", "d")
	wantText := "Shortest paths from a to d (length = 2):\nPath 1: a -> b -> d\nPath 2: a -> c -> d\n"
	if got != wantText {
		t.Errorf("Describe() = %q, want %q", got, wantText)
	}
}

func TestSearchLateTie(t *testing.T) {
	g, err := wordgraph.FromAdjacency(map[string]map[string]int{
		"a": {"x": 1, "y": 3},
		"x": {"t": 3},
		"y": {"t": 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	tree := Search(g, "a")
	want := [][]string{{"a", "x", "t"}, {"a", "y", "t"}}
	if got := tree.Paths("t"); tree.Distance("t") != 4 || !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("t: distance %d, paths %v; want 4, %v", tree.Distance("t"), got, want)
	}
}

func TestSearchImprovementReplacesPaths(t *testing.T) {
	g, err := wordgraph.FromAdjacency(map[string]map[string]int{
		"a": {"t": 10, "x": 1},
		"x": {"t": 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	tree := Search(g, "a")
	want := [][]string{{"a", "x", "t"}}
	if got := tree.Paths("t"); tree.Distance("t") != 3 || !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("t: distance %d, paths %v; want 3, %v", tree.Distance("t"), got, want)
	}
}

func TestSearchSelfLoopIgnoredForDistance(t *testing.T) {
	g := wordgraph.Build([]string{"so", "so", "so", "far"})

	tree := Search(g, "so")
	if d := tree.Distance("so"); d != 0 {
		t.Errorf("Distance(so) = %d, want 0", d)
	}
	if got := tree.Paths("far"); len(got) != 1 || strings.Join(got[0], " ") != "so far" {
		t.Errorf("Paths(far) = %v", got)
	}
}

func TestCost(t *testing.T) {
	g := wordgraph.Build([]string{"a", "b", "a", "b", "c"})

	if c, ok := Cost(g, []string{"a", "b", "c"}); !ok || c != 3 {
		t.Errorf("Cost(a b c) = %d, %v; want 3, true", c, ok)
	}
	if _, ok := Cost(g, []string{"a", "c"}); ok {
		t.Error("Cost(a c) should report a missing edge")
	}
	if c, ok := Cost(g, []string{"a"}); !ok || c != 0 {
		t.Errorf("Cost(a) = %d, %v; want 0, true", c, ok)
	}
}

// bruteForce enumerates every simple path from s to t and returns the minimum
// cost together with all paths achieving it.
func bruteForce(g *wordgraph.Graph, s, t string) (int, []string) {
	best := Unreachable
	var found []string
	visited := map[string]bool{s: true}
	path := []string{s}

	var dfs func(cur string, cost int)
	dfs = func(cur string, cost int) {
		if cur == t {
			switch {
			case cost < best:
				best, found = cost, []string{strings.Join(path, Separator)}
			case cost == best:
				found = append(found, strings.Join(path, Separator))
			}
			return
		}
		for _, next := range g.Successors(cur) {
			if visited[next] {
				continue
			}
			w, _ := g.Weight(cur, next)
			visited[next] = true
			path = append(path, next)
			dfs(next, cost+w)
			path = path[:len(path)-1]
			visited[next] = false
		}
	}
	dfs(s, 0)
	return best, found
}

func randomGraph(seed uint64) *wordgraph.Graph {
	rng := rand.New(rand.NewPCG(seed, seed))
	vocab := []string{"a", "b", "c", "d", "e", "f"}
	tokens := make([]string, 30)
	for i := range tokens {
		tokens[i] = vocab[rng.IntN(len(vocab))]
	}
	return wordgraph.Build(tokens)
}

func TestSearchMatchesBruteForce(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		g := randomGraph(seed)
		for _, s := range g.Nodes() {
			tree := Search(g, s)
			for _, target := range g.Nodes() {
				if target == s {
					continue
				}
				wantDist, wantPaths := bruteForce(g, s, target)
				if got := tree.Distance(target); got != wantDist {
					t.Fatalf("seed %d: Distance(%s->%s) = %d, want %d", seed, s, target, got, wantDist)
				}

				var gotPaths []string
				for _, p := range tree.Paths(target) {
					if c, ok := Cost(g, p); !ok || c != wantDist {
						t.Fatalf("seed %d: path %v costs %d (valid=%v), want %d", seed, p, c, ok, wantDist)
					}
					gotPaths = append(gotPaths, strings.Join(p, Separator))
				}
				slices.Sort(gotPaths)
				slices.Sort(wantPaths)
				if !slices.Equal(gotPaths, wantPaths) {
					t.Fatalf("seed %d: paths %s->%s = %v, want %v", seed, s, target, gotPaths, wantPaths)
				}
			}
		}
	}
}
