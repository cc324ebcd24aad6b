package streetgraph

import (
	"container/heap"
	"fmt"
	"math"
)

// PathTree holds single-source shortest-path results: the minimum cost
// to every vertex plus the predecessor edge used to reach it, enough to
// reconstruct the edge sequence of any shortest path from the source.
type PathTree struct {
	g        *Graph
	source   VertexID
	dist     []float64
	prevEdge []EdgeID
	prevVert []VertexID
}

// Source returns the tree's source vertex.
func (t *PathTree) Source() VertexID { return t.source }

// Reachable reports whether v can be reached from the source.
func (t *PathTree) Reachable(v VertexID) bool {
	return t.g.HasVertex(v) && !math.IsInf(t.dist[v], 1)
}

// Cost returns the shortest-path cost from the source to v, or +Inf when
// v is unreachable.
func (t *PathTree) Cost(v VertexID) float64 {
	if !t.g.HasVertex(v) {
		return math.Inf(1)
	}

	return t.dist[v]
}

// PathTo reconstructs the shortest path from the source to v as an
// ordered edge-id sequence. Fails with ErrNoPath when v is unreachable.
func (t *PathTree) PathTo(v VertexID) ([]EdgeID, error) {
	if !t.g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if math.IsInf(t.dist[v], 1) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, t.source, v)
	}

	// Walk predecessor edges back to the source, then reverse.
	var rev []EdgeID
	for u := v; u != t.source; u = t.prevVert[u] {
		rev = append(rev, t.prevEdge[u])
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// ShortestPathTree runs Dijkstra from source over traversable edges and
// returns the resulting path tree.
//
// Determinism: heap ties break toward the lower vertex id, relaxation
// scans incident edges in insertion (ascending id) order, and only
// strict improvements update a vertex — the tree is identical across
// runs for identical graphs.
//
// Complexity: O((V+E) log V), lazy decrease-key (duplicates pushed and
// stale entries skipped on pop).
func (g *Graph) ShortestPathTree(source VertexID, opts ...PathOption) (*PathTree, error) {
	cfg := DefaultPathOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	// 1) Initialize dist/prev arenas.
	n := len(g.vertices)
	t := &PathTree{
		g:        g,
		source:   source,
		dist:     make([]float64, n),
		prevEdge: make([]EdgeID, n),
		prevVert: make([]VertexID, n),
	}
	for i := range t.dist {
		t.dist[i] = math.Inf(1)
		t.prevEdge[i] = None
		t.prevVert[i] = None
	}
	t.dist[source] = 0

	// 2) Seed the heap with the source and run the main loop.
	visited := make([]bool, n)
	pq := pathPQ{{vertex: source, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pathItem)
		u := item.vertex
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		// 3) Relax every traversable incident edge.
		for _, e := range g.adj[u] {
			if !g.traversable(e, cfg) {
				continue
			}
			v := g.Other(e, u)
			if nd := t.dist[u] + g.edges[e].Length; nd < t.dist[v] {
				t.dist[v] = nd
				t.prevEdge[v] = e
				t.prevVert[v] = u
				heap.Push(&pq, pathItem{vertex: v, dist: nd})
			}
		}
	}

	return t, nil
}

// ShortestPath returns the cheapest traversable edge sequence from u to
// v and its total cost. A zero-length path (u == v) is valid and empty.
func (g *Graph) ShortestPath(u, v VertexID, opts ...PathOption) ([]EdgeID, float64, error) {
	tree, err := g.ShortestPathTree(u, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := tree.PathTo(v)
	if err != nil {
		return nil, 0, err
	}

	return path, tree.Cost(v), nil
}

// pathItem is a heap entry: a vertex and its tentative distance.
type pathItem struct {
	vertex VertexID
	dist   float64
}

// pathPQ is a min-heap of pathItem ordered by distance, ties by vertex
// id for reproducibility.
type pathPQ []pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].vertex < pq[j].vertex
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
