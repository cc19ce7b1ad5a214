package graph

// neighbor is an outgoing adjacency entry with a resolved weight.
type neighbor struct {
	id     string
	weight float64
}

// defaultWeight is assumed for unweighted edges in distance calculations.
const defaultWeight = 1.0

// outgoing builds the node → outgoing-neighbor lookup for g, preserving
// edge-list order. Declared nodes always have an entry (possibly empty);
// edges whose From is undeclared still get one, so lookups never need a
// missing-key special case.
func outgoing(g Graph) map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n] = nil
	}
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	return adj
}

// outgoingWeighted is outgoing with weights resolved, defaulting nil weights
// to defaultWeight.
func outgoingWeighted(g Graph) map[string][]neighbor {
	adj := make(map[string][]neighbor, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n] = nil
	}
	for _, e := range g.Edges {
		w := defaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		adj[e.From] = append(adj[e.From], neighbor{id: e.To, weight: w})
	}
	return adj
}
