package graph

// bfsState is one queued BFS entry: the node reached, the path taken to it
// and the cumulative weight along that path.
type bfsState struct {
	node string
	path []string
	dist float64
}

// FindPath searches for a directed path from one node to another using
// breadth-first search over the adjacency lookup.
//
// The returned path is hop-shortest: it minimizes the number of edges, not
// the weight sum. Distance is the sum of weights along that path (nil
// weights count as 1.0), which can exceed the true weighted-shortest
// distance when weights vary. That trade-off is the contract of this
// function; weighted-shortest semantics would be a different algorithm.
//
// When from equals to, the result is the single-element path with distance
// zero and no traversal is performed. When the target is unreachable, the
// result has an empty path, Exists false and a nil Distance.
func FindPath(g Graph, from, to string) PathResult {
	if from == to {
		dist := 0.0
		return PathResult{
			Path:     []string{from},
			Exists:   true,
			Distance: &dist,
		}
	}

	adj := outgoingWeighted(g)

	visited := map[string]bool{from: true}
	queue := []bfsState{{node: from, path: []string{from}}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.node == to {
			dist := curr.dist
			return PathResult{
				Path:     curr.path,
				Exists:   true,
				Distance: &dist,
			}
		}

		for _, nb := range adj[curr.node] {
			if visited[nb.id] {
				continue
			}
			visited[nb.id] = true

			next := make([]string, len(curr.path)+1)
			copy(next, curr.path)
			next[len(curr.path)] = nb.id

			queue = append(queue, bfsState{
				node: nb.id,
				path: next,
				dist: curr.dist + nb.weight,
			})
		}
	}

	return PathResult{Path: []string{}, Exists: false}
}
