// Package graph implements the core directed-graph analysis algorithms.
//
// This package defines the shared data model (Graph, Edge, Relationship and
// the per-operation result types) and four pure, stateless operations over it:
//
//   - [TopologicalSort]: dependency ordering via Kahn's algorithm
//   - [DetectCycles]: back-edge detection via iterative depth-first search
//   - [FindPath]: hop-shortest path via breadth-first search
//   - [BuildDAG]: graph assembly from a flat relationship list
//
// # Data Model
//
// Nodes are opaque string labels. Edges are ordered (from, to) pairs with an
// optional weight; a nil weight means "unweighted" and each algorithm defaults
// it as documented (ignored for ordering and cycle detection, 1.0 for path
// distance). All types carry lower-camel-case JSON tags and BSON tags so the
// same shapes serve the wire boundary and storage.
//
// # Contracts
//
// FindPath returns the path with the fewest edges, not the smallest weight
// sum - the reported distance is the weight sum along that hop-shortest path.
// DetectCycles guarantees a sound and complete HasCycle flag but records at
// most one cycle per DFS root; the Cycles list is deliberately non-exhaustive.
//
// # Concurrency
//
// Every operation allocates its own working state per call and shares nothing
// between calls, so concurrent invocation on independent inputs is safe
// without coordination.
package graph
