package route

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/postwalk/balance"
	"github.com/katalvlaran/postwalk/streetgraph"
	"github.com/katalvlaran/postwalk/track"
)

// Sentinel errors for the generation pipeline.
var (
	// ErrNilGraph indicates a nil *streetgraph.Graph was supplied.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNothingToRoute indicates the working graph has no traversable
	// edges left after exclusions, so there is nothing to cover.
	ErrNothingToRoute = errors.New("route: no traversable edges to route")

	// ErrCancelled indicates the context was cancelled or timed out
	// mid-pipeline. No partial result is returned.
	ErrCancelled = errors.New("route: generation cancelled")
)

// Phase identifies a completed pipeline stage for progress reporting.
type Phase int

const (
	// PhaseGraphPrepared: exclusions applied, connectivity verified,
	// working graph extracted.
	PhaseGraphPrepared Phase = iota

	// PhaseDeadEndsResolved: dead-end return edges duplicated. Skipped
	// when the optimization is disabled.
	PhaseDeadEndsResolved

	// PhaseMatchingSolved: odd-degree vertices balanced.
	PhaseMatchingSolved

	// PhaseCircuitBuilt: the Eulerian circuit exists.
	PhaseCircuitBuilt

	// PhaseTrackAssembled: the final track is ready.
	PhaseTrackAssembled
)

// String implements fmt.Stringer for Phase.
func (p Phase) String() string {
	switch p {
	case PhaseGraphPrepared:
		return "graph prepared"
	case PhaseDeadEndsResolved:
		return "dead ends resolved"
	case PhaseMatchingSolved:
		return "matching solved"
	case PhaseCircuitBuilt:
		return "circuit built"
	case PhaseTrackAssembled:
		return "track assembled"
	default:
		return "unknown phase"
	}
}

// ProgressFunc receives each completed Phase, in order, on the calling
// goroutine.
type ProgressFunc func(Phase)

// Options configures Generate.
type Options struct {
	// ExcludedEdges are edges already covered by earlier walks. They are
	// removed from coverage and, policy permitting, serve as connectors.
	ExcludedEdges []streetgraph.EdgeID

	// AllowExcludedConnectors admits excluded edges as connector mileage
	// in connectivity checks and matching paths.
	AllowExcludedConnectors bool

	// OptimizeDeadEnds resolves degree-1 vertices by local duplication
	// before the global matching. Default true.
	OptimizeDeadEnds bool

	// MatchingAlgo selects the odd-vertex matching implementation.
	MatchingAlgo balance.MatchingAlgo

	// MaxExactOddVertices caps the exact matching DP.
	MaxExactOddVertices int

	// StartVertex seeds the circuit when it indexes a vertex;
	// streetgraph.None defers to StartLocation or inference.
	StartVertex streetgraph.VertexID

	// StartLocation, when non-nil, resolves the start to the nearest
	// vertex. StartVertex wins when both are set.
	StartLocation *orb.Point

	// ArrowInterval is the direction-marker spacing in polyline points.
	ArrowInterval int

	// SimplifyTolerance is the per-segment Douglas–Peucker tolerance in
	// degrees; 0 disables simplification.
	SimplifyTolerance float64

	// Progress, when non-nil, receives each completed phase.
	Progress ProgressFunc
}

// Option is a functional option for Generate.
type Option func(*Options)

// WithExcludedEdges marks the given edges as already covered.
func WithExcludedEdges(ids ...streetgraph.EdgeID) Option {
	return func(o *Options) { o.ExcludedEdges = append(o.ExcludedEdges, ids...) }
}

// WithExcludedConnectors lets excluded edges carry connector mileage.
func WithExcludedConnectors() Option {
	return func(o *Options) { o.AllowExcludedConnectors = true }
}

// WithoutDeadEndOptimization leaves dead ends to the global matching.
func WithoutDeadEndOptimization() Option {
	return func(o *Options) { o.OptimizeDeadEnds = false }
}

// WithMatchingAlgo selects the matching implementation.
func WithMatchingAlgo(algo balance.MatchingAlgo) Option {
	return func(o *Options) { o.MatchingAlgo = algo }
}

// WithMaxExactOddVertices overrides the exact matching cap. Must be
// positive; invalid values panic (misconfiguration, caught at
// option-build time).
func WithMaxExactOddVertices(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("route: MaxExactOddVertices must be positive")
		}
		o.MaxExactOddVertices = n
	}
}

// WithStartVertex seeds the circuit at the given vertex id.
func WithStartVertex(v streetgraph.VertexID) Option {
	return func(o *Options) { o.StartVertex = v }
}

// WithStartLocation seeds the circuit at the vertex nearest pt.
func WithStartLocation(pt orb.Point) Option {
	return func(o *Options) { o.StartLocation = &pt }
}

// WithArrowInterval overrides the direction-marker spacing. Must be
// positive; invalid values panic.
func WithArrowInterval(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("route: ArrowInterval must be positive")
		}
		o.ArrowInterval = n
	}
}

// WithSimplifyTolerance enables per-segment geometry simplification.
// Must be non-negative; invalid values panic.
func WithSimplifyTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic("route: SimplifyTolerance must be non-negative")
		}
		o.SimplifyTolerance = tol
	}
}

// WithProgress installs a phase-completion callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.Progress = fn }
}

// DefaultOptions returns the defaults: no exclusions, excluded edges
// impassable, dead-end optimization on, exact matching with the default
// cap, inferred start, default marker spacing, no simplification.
func DefaultOptions() Options {
	return Options{
		OptimizeDeadEnds:    true,
		MatchingAlgo:        balance.ExactMatching,
		MaxExactOddVertices: balance.DefaultMaxExactOddVertices,
		StartVertex:         streetgraph.None,
		ArrowInterval:       track.DefaultArrowInterval,
	}
}
