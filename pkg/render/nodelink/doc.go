// Package nodelink renders word graphs as node-link diagrams.
//
// # Overview
//
// Every word becomes a node and every edge an arrow labelled with its weight.
// Rendering runs Graphviz in-process through [github.com/goccy/go-graphviz],
// so no external dot binary is required.
//
// # Usage
//
// Convert a graph to DOT, then render to PNG or SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # DOT Format
//
// With zero [Options], [ToDOT] produces the plain listing
//
//	digraph G {
//	    "do" -> "you" [label=1];
//	}
//
// one line per edge, ordered by source then target. [Options.Styled] adds
// layout and font attributes for nicer images, and [Options.Highlight]
// colors the edges of a path, e.g. a shortest path from the paths package.
package nodelink
