// Package render exports graphs as Graphviz DOT and rendered SVG/PNG images.
//
// The DOT export is plain text and always succeeds; the image renderers go
// through the embedded Graphviz engine. Cycle highlighting is optional: when
// a cycle report is supplied, edges that participate in a recorded cycle are
// drawn red and dashed so they stand out in review.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dkreuer/grapple/pkg/graph"
)

// Options configures DOT export.
type Options struct {
	// Detailed includes edge weights in edge labels. Unweighted edges
	// stay unlabeled.
	Detailed bool

	// Cycles marks edges that participate in a recorded cycle. Obtain it
	// from graph.DetectCycles; a zero value highlights nothing.
	Cycles graph.CycleDetectionResult
}

// ToDOT converts a Graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(g graph.Graph, opts Options) string {
	cyclic := cycleEdgeSet(opts.Cycles)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		attrs := edgeAttrs(e, opts.Detailed, cyclic[[2]string{e.From, e.To}])
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(e graph.Edge, detailed, cyclic bool) []string {
	var attrs []string
	if detailed && e.Weight != nil {
		attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%g", *e.Weight)))
	}
	if cyclic {
		attrs = append(attrs, "color=red", "style=dashed")
	}
	return attrs
}

// cycleEdgeSet collects the consecutive (and closing) edge pairs of every
// recorded cycle.
func cycleEdgeSet(result graph.CycleDetectionResult) map[[2]string]bool {
	set := make(map[[2]string]bool)
	for _, cycle := range result.Cycles {
		for i, from := range cycle {
			to := cycle[(i+1)%len(cycle)]
			set[[2]string{from, to}] = true
		}
	}
	return set
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
