package graph

import (
	"slices"
	"testing"
)

func TestFindPath_Exists(t *testing.T) {
	g := Graph{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{
			{From: "A", To: "B", Weight: fptr(1.0)},
			{From: "B", To: "C", Weight: fptr(1.0)},
		},
	}

	result := FindPath(g, "A", "C")

	if !result.Exists {
		t.Fatal("Exists = false, want true")
	}
	if !slices.Equal(result.Path, []string{"A", "B", "C"}) {
		t.Errorf("Path = %v, want [A B C]", result.Path)
	}
	if result.Distance == nil || *result.Distance != 2.0 {
		t.Errorf("Distance = %v, want 2.0", result.Distance)
	}
}

func TestFindPath_NotExists(t *testing.T) {
	g := Graph{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{{From: "A", To: "B"}},
	}

	result := FindPath(g, "A", "C")

	if result.Exists {
		t.Error("Exists = true, want false")
	}
	if result.Path == nil || len(result.Path) != 0 {
		t.Errorf("Path = %v, want empty non-nil slice", result.Path)
	}
	if result.Distance != nil {
		t.Errorf("Distance = %v, want nil", *result.Distance)
	}
}

func TestFindPath_SameNode(t *testing.T) {
	g := Graph{Nodes: []string{"A"}}

	result := FindPath(g, "A", "A")

	if !result.Exists {
		t.Fatal("Exists = false, want true")
	}
	if !slices.Equal(result.Path, []string{"A"}) {
		t.Errorf("Path = %v, want [A]", result.Path)
	}
	if result.Distance == nil || *result.Distance != 0.0 {
		t.Errorf("Distance = %v, want 0.0", result.Distance)
	}
}

func TestFindPath_DefaultWeight(t *testing.T) {
	// Unweighted edges count 1.0 each toward the distance.
	g := Graph{
		Nodes: []string{"a", "b", "c", "d"},
		Edges: []Edge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d"},
		},
	}

	result := FindPath(g, "a", "d")

	if !result.Exists {
		t.Fatal("Exists = false, want true")
	}
	if result.Distance == nil || *result.Distance != 3.0 {
		t.Errorf("Distance = %v, want 3.0", result.Distance)
	}
}

func TestFindPath_HopShortestNotWeightShortest(t *testing.T) {
	// Direct hop weighs 10; the two-hop detour weighs 2. The contract is
	// fewest edges, so the direct hop wins and its weight is reported.
	g := Graph{
		Nodes: []string{"s", "m", "t"},
		Edges: []Edge{
			{From: "s", To: "t", Weight: fptr(10.0)},
			{From: "s", To: "m", Weight: fptr(1.0)},
			{From: "m", To: "t", Weight: fptr(1.0)},
		},
	}

	result := FindPath(g, "s", "t")

	if !slices.Equal(result.Path, []string{"s", "t"}) {
		t.Fatalf("Path = %v, want [s t]", result.Path)
	}
	if result.Distance == nil || *result.Distance != 10.0 {
		t.Errorf("Distance = %v, want 10.0", result.Distance)
	}
}

func TestFindPath_MinimumHops(t *testing.T) {
	// Several routes of different lengths; BFS must return a 3-edge path.
	g := Graph{
		Nodes: []string{"a", "b", "c", "d", "e", "f"},
		Edges: []Edge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d"},
			{From: "d", To: "e"},
			{From: "a", To: "f"},
			{From: "f", To: "d"},
		},
	}

	result := FindPath(g, "a", "e")

	if !result.Exists {
		t.Fatal("Exists = false, want true")
	}
	if hops := len(result.Path) - 1; hops != 3 {
		t.Errorf("path %v has %d hops, want 3", result.Path, hops)
	}
}

func TestFindPath_WrongDirection(t *testing.T) {
	g := Graph{
		Nodes: []string{"a", "b"},
		Edges: []Edge{{From: "a", To: "b"}},
	}

	if result := FindPath(g, "b", "a"); result.Exists {
		t.Errorf("Exists = true for reversed lookup, path %v", result.Path)
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	g := Graph{
		Nodes: []string{"a", "b", "c"},
		Edges: []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
	}

	first := FindPath(g, "a", "c")
	for i := 0; i < 10; i++ {
		again := FindPath(g, "a", "c")
		if again.Exists != first.Exists || !slices.Equal(again.Path, first.Path) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}
