package render

import (
	"strings"
	"testing"

	"github.com/dkreuer/grapple/pkg/graph"
)

func fptr(v float64) *float64 { return &v }

func TestToDOT_Basic(t *testing.T) {
	g := graph.Graph{
		Nodes: []string{"a", "b"},
		Edges: []graph.Edge{{From: "a", To: "b"}},
	}

	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("DOT should start with digraph header, got %q", dot[:20])
	}
	for _, want := range []string{`"a";`, `"b";`, `"a" -> "b";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_DetailedWeights(t *testing.T) {
	g := graph.Graph{
		Nodes: []string{"a", "b", "c"},
		Edges: []graph.Edge{
			{From: "a", To: "b", Weight: fptr(0.5)},
			{From: "b", To: "c"},
		},
	}

	dot := ToDOT(g, Options{Detailed: true})

	if !strings.Contains(dot, `label="0.5"`) {
		t.Errorf("DOT missing weight label:\n%s", dot)
	}
	if !strings.Contains(dot, `"b" -> "c";`) {
		t.Errorf("unweighted edge should stay unlabeled:\n%s", dot)
	}
}

func TestToDOT_CycleHighlighting(t *testing.T) {
	g := graph.Graph{
		Nodes: []string{"a", "b", "c"},
		Edges: []graph.Edge{
			{From: "a", To: "b"},
			{From: "b", To: "a"},
			{From: "b", To: "c"},
		},
	}

	dot := ToDOT(g, Options{Cycles: graph.DetectCycles(g)})

	if !strings.Contains(dot, `"a" -> "b" [color=red, style=dashed];`) {
		t.Errorf("cycle edge a->b should be highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"b" -> "a" [color=red, style=dashed];`) {
		t.Errorf("cycle edge b->a should be highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"b" -> "c";`) {
		t.Errorf("non-cycle edge should stay plain:\n%s", dot)
	}
}

func TestToDOT_QuotesSpecialIDs(t *testing.T) {
	g := graph.Graph{
		Nodes: []string{`pkg "core"`},
	}

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, `"pkg \"core\"";`) {
		t.Errorf("node IDs must be quoted and escaped:\n%s", dot)
	}
}
