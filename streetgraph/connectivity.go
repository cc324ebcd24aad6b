package streetgraph

import "fmt"

// RequiredComponents counts the traversable components among vertices
// touched by required edges. A vertex with no incident required edge is
// ignored: isolated intersections and pure-connector stubs do not decide
// feasibility.
//
// Traversal may use any edge admitted by the path policy, so two
// required clusters linked only by an excluded street still form one
// component when WithExcludedConnectors is in effect.
//
// Complexity: O(V + E).
func (g *Graph) RequiredComponents(opts ...PathOption) int {
	cfg := DefaultPathOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Collect the vertices that required edges touch.
	interesting := make([]bool, len(g.vertices))
	anyRequired := false
	for _, e := range g.edges {
		if e.Required {
			interesting[e.From] = true
			interesting[e.To] = true
			anyRequired = true
		}
	}
	if !anyRequired {
		return 0
	}

	// 2) BFS from each unvisited interesting vertex over traversable
	//    edges, counting how many sweeps it takes to see them all.
	visited := make([]bool, len(g.vertices))
	queue := make([]VertexID, 0, len(g.vertices))
	components := 0
	for v := range g.vertices {
		if !interesting[v] || visited[v] {
			continue
		}
		components++

		queue = append(queue[:0], VertexID(v))
		visited[v] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, e := range g.adj[u] {
				if !g.traversable(e, cfg) {
					continue
				}
				w := g.Other(e, u)
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
	}

	return components
}

// CheckRequiredConnected fails with ErrDisconnected when the required
// edges span more than one traversable component. No circuit covering
// all required edges can exist in that case, so callers must abort
// before attempting any matching.
func (g *Graph) CheckRequiredConnected(opts ...PathOption) error {
	if n := g.RequiredComponents(opts...); n > 1 {
		return fmt.Errorf("%w: found %d components", ErrDisconnected, n)
	}

	return nil
}
