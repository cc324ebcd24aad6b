package streetgraph

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Graph is the arena-backed undirected multigraph.
//
// Vertices and edges live in flat slices indexed by their ids; adjacency
// is a per-vertex list of incident edge ids in insertion order. A
// self-loop's edge id appears twice in its vertex's list, so Degree is
// always the plain list length.
//
// A Graph is not safe for concurrent mutation. The pipeline gives every
// generation request its own instance; the balancer returns a new graph
// rather than mutating its input.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	adj      [][]EdgeID
}

// NewGraph creates an empty street graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddVertex appends an intersection at the given coordinate and returns
// its id. Complexity: O(1) amortized.
func (g *Graph) AddVertex(pt orb.Point) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, Point: pt})
	g.adj = append(g.adj, nil)

	return id
}

// AddEdge appends an undirected road segment between u and v.
//
// geometry is the surveyed polyline ordered u→v; pass nil to synthesize
// the straight chord between the endpoint coordinates (the edge is then
// marked Chord). length is metres; pass a negative value to reject, or
// zero to derive it from the geometry by haversine.
func (g *Graph) AddEdge(u, v VertexID, geometry orb.LineString, length float64, required bool) (EdgeID, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return None, fmt.Errorf("%w: edge %d–%d", ErrVertexNotFound, u, v)
	}
	if length < 0 {
		return None, fmt.Errorf("%w: got %v", ErrBadLength, length)
	}

	chord := false
	if len(geometry) < 2 {
		// No surveyed shape: fall back to the straight chord.
		geometry = orb.LineString{g.vertices[u].Point, g.vertices[v].Point}
		chord = true
	}
	if length == 0 {
		length = lineLength(geometry)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{
		ID:       id,
		From:     u,
		To:       v,
		Geometry: geometry,
		Length:   length,
		Required: required,
		Chord:    chord,
	})

	// Register the edge on both endpoints; twice on the same vertex for a
	// self-loop so that degree accounting stays uniform.
	g.adj[u] = append(g.adj[u], id)
	g.adj[v] = append(g.adj[v], id)

	return id, nil
}

// AddVirtualCopy appends a duplicate of e flagged as virtual: fresh id,
// required/excluded cleared, endpoints and geometry as given. The
// balancer and the dead-end optimizer use this to augment a working
// graph; e's endpoints must index vertices of g (balancing duplicates
// edges between graphs that share a vertex arena).
func (g *Graph) AddVirtualCopy(e Edge) (EdgeID, error) {
	if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
		return None, fmt.Errorf("%w: virtual copy %d–%d", ErrVertexNotFound, e.From, e.To)
	}

	id := EdgeID(len(g.edges))
	dup := e
	dup.ID = id
	dup.Required = false
	dup.Excluded = false
	dup.Virtual = true
	g.edges = append(g.edges, dup)
	g.adj[dup.From] = append(g.adj[dup.From], id)
	g.adj[dup.To] = append(g.adj[dup.To], id)

	return id, nil
}

// HasVertex reports whether id indexes an existing vertex.
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// HasEdge reports whether id indexes an existing edge.
func (g *Graph) HasEdge(id EdgeID) bool {
	return id >= 0 && int(id) < len(g.edges)
}

// Vertex returns the vertex record for id.
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	if !g.HasVertex(id) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}

// Edge returns the edge record for id.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	if !g.HasEdge(id) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degree returns the number of edge endpoints incident to v
// (a self-loop counts twice). Unknown ids have degree 0.
func (g *Graph) Degree(v VertexID) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// IncidentEdges returns the edge ids incident to v in insertion order.
// The returned slice is owned by the graph; callers must not mutate it.
func (g *Graph) IncidentEdges(v VertexID) []EdgeID {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Other returns the endpoint of edge e opposite to v. For a self-loop it
// returns v itself.
func (g *Graph) Other(e EdgeID, v VertexID) VertexID {
	edge := g.edges[e]
	if edge.From == v {
		return edge.To
	}

	return edge.From
}

// OddVertices returns the ids of all odd-degree vertices in ascending
// order. The count is always even: the degree sum is twice the edge
// count, so odd-degree vertices pair up.
func (g *Graph) OddVertices() []VertexID {
	odd := make([]VertexID, 0, len(g.vertices)/2+1)
	for v := range g.adj {
		if len(g.adj[v])&1 == 1 {
			odd = append(odd, VertexID(v))
		}
	}

	return odd
}

// MarkExcluded flags the edge as already covered: it is no longer
// required and becomes traversable only under the excluded-connectors
// policy.
func (g *Graph) MarkExcluded(id EdgeID) error {
	if !g.HasEdge(id) {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	g.edges[id].Excluded = true
	g.edges[id].Required = false

	return nil
}

// MarkRequired sets or clears the required-coverage flag on an edge.
func (g *Graph) MarkRequired(id EdgeID, required bool) error {
	if !g.HasEdge(id) {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	g.edges[id].Required = required

	return nil
}

// Clone returns a deep copy of the graph. Edge geometries are shared
// (they are immutable by convention); the arenas and adjacency lists are
// fresh, so mutating the clone never touches the original.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices: append([]Vertex(nil), g.vertices...),
		edges:    append([]Edge(nil), g.edges...),
		adj:      make([][]EdgeID, len(g.adj)),
	}
	for v := range g.adj {
		c.adj[v] = append([]EdgeID(nil), g.adj[v]...)
	}

	return c
}

// WithoutExcluded returns a copy of the graph containing every vertex
// but only the non-excluded edges. Vertex ids are preserved; edge ids
// are renumbered. This is the working graph the balancer augments and
// the circuit builder must fully traverse.
func (g *Graph) WithoutExcluded() *Graph {
	c := &Graph{
		vertices: append([]Vertex(nil), g.vertices...),
		adj:      make([][]EdgeID, len(g.adj)),
	}
	for _, e := range g.edges {
		if e.Excluded {
			continue
		}
		id := EdgeID(len(c.edges))
		kept := e
		kept.ID = id
		c.edges = append(c.edges, kept)
		c.adj[kept.From] = append(c.adj[kept.From], id)
		c.adj[kept.To] = append(c.adj[kept.To], id)
	}

	return c
}

// NearestVertex returns the vertex closest (haversine) to pt. Ties break
// toward the lower vertex id.
func (g *Graph) NearestVertex(pt orb.Point) (VertexID, error) {
	if len(g.vertices) == 0 {
		return None, ErrEmptyGraph
	}

	best := VertexID(0)
	bestDist := geo.Distance(pt, g.vertices[0].Point)
	for i := 1; i < len(g.vertices); i++ {
		if d := geo.Distance(pt, g.vertices[i].Point); d < bestDist {
			best, bestDist = VertexID(i), d
		}
	}

	return best, nil
}

// traversable reports whether edge e may be walked under the policy.
func (g *Graph) traversable(e EdgeID, opts PathOptions) bool {
	return !g.edges[e].Excluded || opts.ExcludedConnectors
}

// lineLength sums the haversine length of a polyline, in metres.
func lineLength(ls orb.LineString) float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += geo.Distance(ls[i-1], ls[i])
	}

	return total
}
