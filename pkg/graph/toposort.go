package graph

// TopologicalSort computes a dependency order for g using Kahn's algorithm.
//
// Nodes with in-degree zero are seeded in declaration order (the order they
// appear in g.Nodes), which makes the output deterministic for a given input.
// Nodes that are simultaneously freed by the same dequeue are appended in
// edge-list order.
//
// HasCycle is true iff fewer nodes were ordered than declared: nodes on or
// downstream of a cycle never reach in-degree zero and are left out of
// Sorted. The result does not identify which nodes form the cycle - use
// [DetectCycles] for that.
func TopologicalSort(g Graph) TopologicalSortResult {
	adj := outgoing(g)

	inDegree := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		inDegree[n] = 0
	}
	for _, e := range g.Edges {
		inDegree[e.To]++
	}

	queue := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	sorted := make([]string, 0, len(g.Nodes))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		sorted = append(sorted, curr)

		for _, next := range adj[curr] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return TopologicalSortResult{
		Sorted:   sorted,
		HasCycle: len(sorted) < len(g.Nodes),
	}
}
