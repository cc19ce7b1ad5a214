package graph

// Edge is a directed connection between two nodes with an optional weight.
// A nil Weight means the edge is unweighted; FindPath treats it as 1.0 while
// TopologicalSort and DetectCycles ignore weights entirely.
type Edge struct {
	From   string   `json:"from" bson:"from"`
	To     string   `json:"to" bson:"to"`
	Weight *float64 `json:"weight" bson:"weight,omitempty"`
}

// Graph is a directed graph given as an ordered node list plus an edge list.
// Every edge endpoint should appear in Nodes; endpoints that don't are still
// reachable through edges but are never used as traversal roots.
type Graph struct {
	Nodes []string `json:"nodes" bson:"nodes"`
	Edges []Edge   `json:"edges" bson:"edges"`
}

// Relationship is the loose external form of an edge, as produced by
// upstream extraction tools. Confidence maps to the edge weight when the
// relationship is converted by BuildDAG; nil means no confidence was given.
type Relationship struct {
	From       string   `json:"from" bson:"from"`
	To         string   `json:"to" bson:"to"`
	Confidence *float64 `json:"confidence" bson:"confidence,omitempty"`
}

// TopologicalSortResult holds a valid dependency order and a cycle flag.
// When HasCycle is true, Sorted contains only the nodes that could be
// ordered; nodes on or downstream of a cycle are omitted.
type TopologicalSortResult struct {
	Sorted   []string `json:"sorted" bson:"sorted"`
	HasCycle bool     `json:"hasCycle" bson:"hasCycle"`
}

// CycleDetectionResult reports whether the graph contains a directed cycle.
// Cycles holds closed walks (the first node implicitly repeats at the end)
// and is non-exhaustive: at most one cycle is recorded per DFS root.
// It is empty iff HasCycle is false.
type CycleDetectionResult struct {
	HasCycle bool       `json:"hasCycle" bson:"hasCycle"`
	Cycles   [][]string `json:"cycles" bson:"cycles"`
}

// PathResult describes a source-to-target path, inclusive of both endpoints.
// Distance is the cumulative weight along the path and is nil when no path
// exists.
type PathResult struct {
	Path     []string `json:"path" bson:"path"`
	Exists   bool     `json:"exists" bson:"exists"`
	Distance *float64 `json:"distance" bson:"distance,omitempty"`
}
