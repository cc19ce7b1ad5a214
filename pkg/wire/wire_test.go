package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/dkreuer/grapple/pkg/graph"
	"github.com/dkreuer/grapple/pkg/observability"
)

func TestTopologicalSort_RoundTrip(t *testing.T) {
	in := []byte(`{"nodes":["A","B","C"],"edges":[{"from":"A","to":"B"},{"from":"B","to":"C"}]}`)

	out := TopologicalSort(in)

	var result graph.TopologicalSortResult
	if err := json.Unmarshal(out, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result.HasCycle {
		t.Error("hasCycle = true, want false")
	}
	if len(result.Sorted) != 3 {
		t.Errorf("sorted has %d entries, want 3", len(result.Sorted))
	}
}

func TestTopologicalSort_MalformedInput(t *testing.T) {
	for _, in := range []string{"", "not json", `{"nodes": 42}`, `[1,2,3]`} {
		if out := TopologicalSort([]byte(in)); !bytes.Equal(out, FallbackSort) {
			t.Errorf("TopologicalSort(%q) = %s, want fallback", in, out)
		}
	}
}

func TestDetectCycles_RoundTrip(t *testing.T) {
	in := []byte(`{"nodes":["A","B"],"edges":[{"from":"A","to":"B"},{"from":"B","to":"A"}]}`)

	out := DetectCycles(in)

	var result graph.CycleDetectionResult
	if err := json.Unmarshal(out, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !result.HasCycle {
		t.Error("hasCycle = false, want true")
	}
	if len(result.Cycles) == 0 {
		t.Error("cycles is empty, want at least one")
	}
}

func TestDetectCycles_MalformedInput(t *testing.T) {
	if out := DetectCycles([]byte("{{")); !bytes.Equal(out, FallbackCycles) {
		t.Errorf("DetectCycles = %s, want fallback", out)
	}
}

func TestDetectCycles_EmptyCyclesEncodesAsArray(t *testing.T) {
	out := DetectCycles([]byte(`{"nodes":["A"],"edges":[]}`))

	if !bytes.Contains(out, []byte(`"cycles":[]`)) {
		t.Errorf("output %s should contain \"cycles\":[]", out)
	}
}

func TestFindPath_RoundTrip(t *testing.T) {
	in := []byte(`{"nodes":["A","B","C"],"edges":[{"from":"A","to":"B","weight":1.0},{"from":"B","to":"C","weight":1.0}]}`)

	out := FindPath(in, "A", "C")

	var result graph.PathResult
	if err := json.Unmarshal(out, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !result.Exists {
		t.Fatal("exists = false, want true")
	}
	if result.Distance == nil || *result.Distance != 2.0 {
		t.Errorf("distance = %v, want 2.0", result.Distance)
	}
}

func TestFindPath_UnreachableEncodesNullDistance(t *testing.T) {
	in := []byte(`{"nodes":["A","B","C"],"edges":[{"from":"A","to":"B"}]}`)

	out := FindPath(in, "A", "C")

	if !bytes.Contains(out, []byte(`"distance":null`)) {
		t.Errorf("output %s should contain \"distance\":null", out)
	}
	if !bytes.Contains(out, []byte(`"path":[]`)) {
		t.Errorf("output %s should contain \"path\":[]", out)
	}
}

func TestFindPath_MalformedInput(t *testing.T) {
	if out := FindPath([]byte("]"), "A", "B"); !bytes.Equal(out, FallbackPath) {
		t.Errorf("FindPath = %s, want fallback", out)
	}
}

func TestBuildDAG_RoundTrip(t *testing.T) {
	in := []byte(`[{"from":"A","to":"B","confidence":0.8},{"from":"B","to":"C","confidence":0.9}]`)

	out := BuildDAG(in)

	var g graph.Graph
	if err := json.Unmarshal(out, &g); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(g.Nodes) != 3 {
		t.Errorf("nodes has %d entries, want 3", len(g.Nodes))
	}
	if len(g.Edges) != 2 {
		t.Errorf("edges has %d entries, want 2", len(g.Edges))
	}
}

func TestBuildDAG_MalformedInput(t *testing.T) {
	for _, in := range []string{"", `{"from":"A"}`, "null and void"} {
		if out := BuildDAG([]byte(in)); !bytes.Equal(out, FallbackGraph) {
			t.Errorf("BuildDAG(%q) = %s, want fallback", in, out)
		}
	}
}

type decodeFailureRecorder struct {
	observability.NoopAnalysisHooks
	ops []string
}

func (r *decodeFailureRecorder) OnDecodeFailure(_ context.Context, op string) {
	r.ops = append(r.ops, op)
}

func TestMalformedInputEmitsDecodeFailureHook(t *testing.T) {
	rec := &decodeFailureRecorder{}
	observability.SetAnalysisHooks(rec)
	defer observability.Reset()

	TopologicalSort([]byte("{{"))
	FindPath([]byte("{{"), "A", "B")

	if len(rec.ops) != 2 || rec.ops[0] != "sort" || rec.ops[1] != "path" {
		t.Errorf("recorded ops = %v, want [sort path]", rec.ops)
	}
}

func TestFallbacksAreValidJSON(t *testing.T) {
	for name, payload := range map[string][]byte{
		"sort":   FallbackSort,
		"cycles": FallbackCycles,
		"path":   FallbackPath,
		"graph":  FallbackGraph,
	} {
		if !json.Valid(payload) {
			t.Errorf("fallback %s is not valid JSON: %s", name, payload)
		}
	}
}
