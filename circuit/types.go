package circuit

import (
	"errors"

	"github.com/katalvlaran/postwalk/streetgraph"
)

// Sentinel errors for circuit construction.
var (
	// ErrNilGraph indicates a nil *streetgraph.Graph was supplied.
	ErrNilGraph = errors.New("circuit: graph is nil")

	// ErrNotEulerian indicates the graph violates a circuit precondition:
	// an odd-degree vertex, or edges split across components.
	ErrNotEulerian = errors.New("circuit: graph does not admit an Eulerian circuit")

	// ErrIncompleteCircuit indicates edges remained unconsumed after the
	// main loop. Given the preconditions this should be unreachable; it is
	// surfaced as an internal bug, never retried.
	ErrIncompleteCircuit = errors.New("circuit: edges left unconsumed after construction")
)

// Step is one traversal in the circuit: edge id plus the direction it
// was walked. Reversed reports that the walk ran against the edge's
// stored From→To orientation.
type Step struct {
	Edge     streetgraph.EdgeID
	From     streetgraph.VertexID
	To       streetgraph.VertexID
	Reversed bool
}

// Circuit is a closed walk that uses every edge of its graph exactly
// once. It is built once per generation request and never mutated; the
// track assembler consumes it as-is.
type Circuit struct {
	// Start is the vertex the walk begins and ends at.
	Start streetgraph.VertexID

	// Steps is the ordered edge sequence. Empty for an edgeless graph.
	Steps []Step
}

// Options configures circuit construction.
type Options struct {
	// Start seeds the walk when it indexes a vertex of the graph;
	// streetgraph.None (default) defers to deterministic inference.
	Start streetgraph.VertexID
}

// Option is a functional option for Build.
type Option func(*Options)

// WithStart seeds the circuit at the given vertex, typically resolved
// from a requested start coordinate by streetgraph.NearestVertex.
func WithStart(v streetgraph.VertexID) Option {
	return func(o *Options) { o.Start = v }
}

// DefaultOptions returns the defaults: inferred start vertex.
func DefaultOptions() Options {
	return Options{Start: streetgraph.None}
}
