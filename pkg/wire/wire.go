// Package wire exposes the graph analysis operations as stateless entry
// points over serialized JSON.
//
// Every function takes raw JSON bytes and returns raw JSON bytes. Malformed
// input is never surfaced as an error: each entry point absorbs decode
// failures into a documented fallback payload, so callers treat "could not
// decode" and "no result" identically. This is a deliberate API contract,
// not lenient error handling - callers always receive a well-formed result.
// The HTTP server applies the same contract: it shares the fallback
// sentinels below so its malformed-body responses match these byte for byte.
//
// Field names are lower-camel-case; optional numeric fields (weight,
// confidence, distance) encode as null when absent and empty sequences
// encode as [], never null.
package wire

import (
	"context"
	"encoding/json"

	"github.com/dkreuer/grapple/pkg/graph"
	"github.com/dkreuer/grapple/pkg/observability"
)

// Fallback payloads returned when the input cannot be decoded. Exported so
// hosts can compare responses against the documented sentinels.
var (
	FallbackSort   = []byte(`{"sorted":[],"hasCycle":true}`)
	FallbackCycles = []byte(`{"hasCycle":false,"cycles":[]}`)
	FallbackPath   = []byte(`{"path":[],"exists":false,"distance":null}`)
	FallbackGraph  = []byte(`{"nodes":[],"edges":[]}`)
)

// TopologicalSort decodes a Graph and returns its TopologicalSortResult.
// Malformed input yields FallbackSort.
func TopologicalSort(data []byte) []byte {
	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		observability.Analysis().OnDecodeFailure(context.Background(), "sort")
		return FallbackSort
	}
	return encode(graph.TopologicalSort(g), FallbackSort)
}

// DetectCycles decodes a Graph and returns its CycleDetectionResult.
// Malformed input yields FallbackCycles.
func DetectCycles(data []byte) []byte {
	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		observability.Analysis().OnDecodeFailure(context.Background(), "cycles")
		return FallbackCycles
	}
	return encode(graph.DetectCycles(g), FallbackCycles)
}

// FindPath decodes a Graph and returns the PathResult from one node to
// another. Malformed input yields FallbackPath.
func FindPath(data []byte, from, to string) []byte {
	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		observability.Analysis().OnDecodeFailure(context.Background(), "path")
		return FallbackPath
	}
	return encode(graph.FindPath(g, from, to), FallbackPath)
}

// BuildDAG decodes a Relationship array and returns the assembled Graph.
// Malformed input yields FallbackGraph.
func BuildDAG(data []byte) []byte {
	var rels []graph.Relationship
	if err := json.Unmarshal(data, &rels); err != nil {
		observability.Analysis().OnDecodeFailure(context.Background(), "build")
		return FallbackGraph
	}
	return encode(graph.BuildDAG(rels), FallbackGraph)
}

// encode marshals v, falling back to the sentinel payload if encoding ever
// fails. The result types marshal unconditionally, so the guard exists only
// to keep the always-well-formed guarantee total.
func encode(v any, fallback []byte) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return out
}
