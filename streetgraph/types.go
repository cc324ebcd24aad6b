package streetgraph

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for street-graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside the arena.
	ErrVertexNotFound = errors.New("streetgraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id outside the arena.
	ErrEdgeNotFound = errors.New("streetgraph: edge not found")

	// ErrBadLength indicates a negative edge length was supplied to AddEdge.
	ErrBadLength = errors.New("streetgraph: edge length must be non-negative")

	// ErrEmptyGraph indicates a query that needs at least one vertex ran on an empty graph.
	ErrEmptyGraph = errors.New("streetgraph: graph has no vertices")

	// ErrNoPath indicates no traversable path exists between the requested vertices.
	ErrNoPath = errors.New("streetgraph: no traversable path between vertices")

	// ErrDisconnected indicates the required edges span more than one traversable
	// component, so no circuit covering all of them can exist.
	ErrDisconnected = errors.New("streetgraph: required edges span multiple components")
)

// VertexID indexes a vertex in the graph arena.
type VertexID int

// EdgeID indexes an edge in the graph arena.
type EdgeID int

// None marks an absent vertex or edge reference (predecessor slots,
// optional start vertices, and the like).
const None = -1

// Vertex is an intersection: an id plus a geographic coordinate.
// The position is immutable once the vertex is added.
type Vertex struct {
	// ID is the arena index of this vertex.
	ID VertexID

	// Point is the geographic coordinate, orb convention (lon, lat).
	Point orb.Point
}

// Edge is an undirected road segment between two intersections.
//
// From/To record the storage orientation only: Geometry runs From→To,
// but traversal is legal in either direction. A duplicate created during
// balancing receives its own EdgeID; edge identity never aliases.
type Edge struct {
	// ID is the arena index of this edge.
	ID EdgeID

	// From and To are the endpoint vertex ids (From == To for a self-loop).
	From VertexID
	To   VertexID

	// Geometry is the road polyline ordered From→To. Never empty: when the
	// loader supplies no surveyed shape, AddEdge synthesizes the straight
	// chord between the endpoint coordinates and sets Chord.
	Geometry orb.LineString

	// Length is the real-world segment length in metres.
	Length float64

	// Required marks a segment the generated route must cover at least once.
	Required bool

	// Excluded marks a segment the caller has already covered. Excluded
	// edges are never required and are traversable only under the
	// excluded-connectors policy.
	Excluded bool

	// Virtual marks a duplicate added by dead-end resolution or degree
	// balancing; virtual edges are backtrack/connector mileage, not new
	// ground to cover.
	Virtual bool

	// Chord marks a synthesized straight-line geometry (no surveyed shape).
	Chord bool
}

// PathOptions configures traversability for shortest-path and
// connectivity queries.
type PathOptions struct {
	// ExcludedConnectors admits excluded edges as connectors at their
	// real length. When false (default) excluded edges are impassable.
	ExcludedConnectors bool
}

// PathOption is a functional option for path and connectivity queries.
type PathOption func(*PathOptions)

// WithExcludedConnectors lets excluded edges be traversed as connector
// mileage. Riding an already-covered street again is usually cheaper
// than duplicating open road, so balancing enables this when the
// caller's exclusion policy permits it.
func WithExcludedConnectors() PathOption {
	return func(o *PathOptions) { o.ExcludedConnectors = true }
}

// DefaultPathOptions returns the default traversability policy:
// excluded edges are impassable.
func DefaultPathOptions() PathOptions {
	return PathOptions{ExcludedConnectors: false}
}
