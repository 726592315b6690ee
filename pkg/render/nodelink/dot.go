package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// Options configures DOT generation.
type Options struct {
	// Styled adds graph, node and edge attributes for rendered images.
	// When false, only the edge lines are written.
	Styled bool

	// Highlight is a word sequence whose consecutive edges are drawn in red.
	Highlight []string
}

// ToDOT converts g to Graphviz DOT source.
// The result can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *wordgraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Styled {
		buf.WriteString("    rankdir=LR;\n")
		buf.WriteString("    bgcolor=\"transparent\";\n")
		buf.WriteString("    node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];\n")
		buf.WriteString("    edge [fontsize=10];\n")
	}

	marked := make(map[[2]string]bool)
	for i := 0; i+1 < len(opts.Highlight); i++ {
		marked[[2]string{opts.Highlight[i], opts.Highlight[i+1]}] = true
	}

	for _, e := range g.Edges() {
		if marked[[2]string{e.From, e.To}] {
			fmt.Fprintf(&buf, "    \"%s\" -> \"%s\" [label=%d, color=red, penwidth=2];\n", e.From, e.To, e.Weight)
			continue
		}
		fmt.Fprintf(&buf, "    \"%s\" -> \"%s\" [label=%d];\n", e.From, e.To, e.Weight)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one sized
// from the viewBox so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}
