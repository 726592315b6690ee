// Package pkg provides the core libraries for wordgraph.
//
// # Overview
//
// Wordgraph turns a plain text into a directed, weighted word-adjacency graph:
// every pair of consecutive words becomes an edge whose weight counts how
// often the pair occurs. The graph then answers a handful of queries.
//
//  1. [text] - Normalization and tokenization of raw text
//  2. [wordgraph] - The immutable adjacency graph and its builders
//  3. [wordgraph/bridge] - Bridge-word lookup and text augmentation
//  4. [wordgraph/paths] - All tied shortest paths between words
//  5. [wordgraph/rank] - PageRank over the source words
//  6. [wordgraph/walk] - Random walks that stop on a dead end or repeated edge
//
// # Architecture
//
// The typical data flow:
//
//	Text file
//	    ↓
//	[io] package (read text, import/export JSON)
//	    ↓
//	[text] package (lowercase, strip, split)
//	    ↓
//	[wordgraph] package (count adjacent pairs)
//	    ↓
//	bridge / paths / rank / walk queries
//	    ↓
//	[render/nodelink] (DOT, SVG, PNG) and [artifact] stores
//
// # Quick Start
//
//	raw, _ := io.ReadText("story.txt")
//	g := wordgraph.FromText(raw)
//
//	fmt.Println(bridge.Describe(g, "you", "good"))
//	fmt.Println(paths.Describe(g, "you", "student"))
//
//	r := rank.Compute(g, rank.DefaultOptions())
//	for _, s := range r.Ranked() {
//	    fmt.Println(s.Word, s.Score)
//	}
//
// # Supporting Packages
//
// [errors] - Structured error codes. Expected outcomes such as an unknown
// word carry the exact text shown to the user.
//
// [artifact] - Named artifact stores (filesystem, memory, null) used for
// random walk output and rendered images.
//
// [observability] - Hook interfaces for graph builds, queries and artifact
// writes. The CLI wires them to its logger.
//
// [buildinfo] - Version information resolved from linker flags or module
// build info.
//
// # Testing
//
//	go test ./...                  # All tests
//	go test ./pkg/wordgraph/...    # Graph and queries
//	go test -run Example ./pkg/... # Examples only
//
// [text]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/text
// [wordgraph]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/wordgraph
// [wordgraph/bridge]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/wordgraph/bridge
// [wordgraph/paths]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/wordgraph/paths
// [wordgraph/rank]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/wordgraph/rank
// [wordgraph/walk]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/wordgraph/walk
// [io]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/render/nodelink
// [artifact]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/artifact
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordgraph/pkg/buildinfo
package pkg
