package graph

import "slices"

// frame is one level of the iterative DFS: a node plus a cursor into its
// outgoing neighbor list.
type frame struct {
	node string
	next int
}

// DetectCycles reports whether g contains at least one directed cycle.
//
// The search is a depth-first traversal with the classic three sets:
// visited (ever entered), on-stack (currently on the active DFS path) and
// the ordered path itself, kept for cycle extraction. An edge into an
// on-stack node is a back edge; the cycle is the path suffix starting at
// that node's first occurrence.
//
// The recursion is expressed as an explicit frame stack so that stack usage
// stays bounded regardless of graph depth; a long dependency chain cannot
// exhaust the goroutine stack.
//
// HasCycle is sound and complete. The Cycles list is not exhaustive: each
// DFS root records at most one cycle and stops descending once it finds one.
// Separate roots (disconnected cyclic components) still contribute one each.
func DetectCycles(g Graph) CycleDetectionResult {
	adj := outgoing(g)

	visited := make(map[string]bool, len(g.Nodes))
	onStack := make(map[string]bool, len(g.Nodes))
	cycles := [][]string{}

	for _, root := range g.Nodes {
		if visited[root] {
			continue
		}

		visited[root] = true
		onStack[root] = true
		path := []string{root}
		stack := []frame{{node: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			neighbors := adj[top.node]

			if top.next >= len(neighbors) {
				onStack[top.node] = false
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}

			next := neighbors[top.next]
			top.next++

			switch {
			case !visited[next]:
				visited[next] = true
				onStack[next] = true
				path = append(path, next)
				stack = append(stack, frame{node: next})
			case onStack[next]:
				// Back edge: the cycle runs from the neighbor's first
				// occurrence on the path through the current node.
				if start := slices.Index(path, next); start >= 0 {
					cycles = append(cycles, slices.Clone(path[start:]))
				}
				// One cycle per root: abandon the rest of this DFS.
				for _, f := range stack {
					onStack[f.node] = false
				}
				stack = stack[:0]
			}
		}
	}

	return CycleDetectionResult{
		HasCycle: len(cycles) > 0,
		Cycles:   cycles,
	}
}
