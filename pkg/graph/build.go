package graph

// BuildDAG assembles a Graph from a flat list of pairwise relationships.
//
// Node identities are deduplicated in first-seen order, so the node list is
// deterministic for a given input. The edge list preserves the relationship
// order and cardinality exactly: one edge per relationship, duplicates kept
// as separate edges, with the relationship confidence carried over as the
// edge weight (nil when absent).
//
// Despite the name, no acyclicity check is performed - the caller decides
// whether cycles matter via [DetectCycles] or [TopologicalSort].
func BuildDAG(rels []Relationship) Graph {
	seen := make(map[string]struct{}, len(rels)*2)
	nodes := []string{}
	edges := make([]Edge, 0, len(rels))

	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		nodes = append(nodes, id)
	}

	for _, rel := range rels {
		add(rel.From)
		add(rel.To)
		edges = append(edges, Edge{
			From:   rel.From,
			To:     rel.To,
			Weight: rel.Confidence,
		})
	}

	return Graph{Nodes: nodes, Edges: edges}
}
