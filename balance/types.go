package balance

import (
	"errors"

	"github.com/katalvlaran/postwalk/streetgraph"
)

// Sentinel errors for graph balancing.
var (
	// ErrNilGraph indicates a nil *streetgraph.Graph was supplied.
	ErrNilGraph = errors.New("balance: graph is nil")

	// ErrOddCardinality indicates the odd-degree vertex set has odd size,
	// which is impossible for a well-formed graph (degree sum is even).
	ErrOddCardinality = errors.New("balance: odd-degree set has odd cardinality")

	// ErrMatchingInfeasible indicates an odd vertex cannot reach any other
	// odd vertex, so no perfect matching over shortest paths exists.
	ErrMatchingInfeasible = errors.New("balance: odd-vertex matching infeasible")

	// ErrMatchingIntractable indicates the odd set exceeds the exact-DP
	// cap under ExactMatching. Raise the cap or opt into GreedyMatching.
	ErrMatchingIntractable = errors.New("balance: odd set too large for exact matching")
)

// MatchingAlgo selects the minimum-weight perfect matching implementation.
type MatchingAlgo int

const (
	// ExactMatching solves the matching optimally by subset DP
	// (O(k·2^k)); capped by MaxExactOddVertices.
	ExactMatching MatchingAlgo = iota

	// GreedyMatching pairs nearest neighbours deterministically, then
	// refines with pair-swap passes. No optimality guarantee.
	GreedyMatching
)

// DefaultMaxExactOddVertices caps the exact subset DP. 2^20 subsets keep
// the DP tables near 12 MB; past that the memory and time curves turn
// vertical.
const DefaultMaxExactOddVertices = 20

// Pair is one matched odd-vertex pair: the endpoints, the shortest-path
// edge sequence connecting them (ids valid in the connector graph), and
// its total cost in metres.
type Pair struct {
	U, V streetgraph.VertexID
	Path []streetgraph.EdgeID
	Cost float64
}

// Matching is the full solution: every odd vertex appears in exactly one
// pair. Cost is the summed pair cost — the backtrack mileage the route
// pays on top of the required edges.
type Matching struct {
	Pairs []Pair
	Cost  float64
}

// Options configures Balance.
type Options struct {
	// Algo selects the matching implementation. Default ExactMatching.
	Algo MatchingAlgo

	// MaxExactOddVertices caps the exact DP; exceeding it under
	// ExactMatching fails with ErrMatchingIntractable.
	MaxExactOddVertices int

	// ConnectorGraph, when non-nil, is used for shortest-path queries
	// instead of the working graph. It must share the working graph's
	// vertex arena (same vertex ids); typically it is the original graph
	// that still contains excluded edges.
	ConnectorGraph *streetgraph.Graph

	// ExcludedConnectors admits excluded edges as connector mileage in
	// shortest-path queries.
	ExcludedConnectors bool
}

// Option is a functional option for Balance.
type Option func(*Options)

// WithMatchingAlgo selects the matching implementation.
func WithMatchingAlgo(algo MatchingAlgo) Option {
	return func(o *Options) { o.Algo = algo }
}

// WithMaxExactOddVertices overrides the exact-DP cap. Must be positive;
// invalid values panic (misconfiguration, caught at option-build time).
func WithMaxExactOddVertices(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("balance: MaxExactOddVertices must be positive")
		}
		o.MaxExactOddVertices = n
	}
}

// WithConnectorGraph computes shortest paths on src (sharing the working
// graph's vertex arena) while virtual edges are added to the working
// graph. Pass the pre-exclusion graph here to let matching ride
// already-covered streets.
func WithConnectorGraph(src *streetgraph.Graph) Option {
	return func(o *Options) { o.ConnectorGraph = src }
}

// WithExcludedConnectors admits excluded edges as connectors during the
// matching's shortest-path queries.
func WithExcludedConnectors() Option {
	return func(o *Options) { o.ExcludedConnectors = true }
}

// DefaultOptions returns the defaults: exact matching, default cap,
// paths on the working graph itself, excluded edges impassable.
func DefaultOptions() Options {
	return Options{
		Algo:                ExactMatching,
		MaxExactOddVertices: DefaultMaxExactOddVertices,
	}
}
