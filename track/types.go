package track

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/postwalk/streetgraph"
)

// Sentinel errors for track assembly.
var (
	// ErrNilGraph indicates a nil *streetgraph.Graph was supplied.
	ErrNilGraph = errors.New("track: graph is nil")

	// ErrNilCircuit indicates a nil circuit was supplied.
	ErrNilCircuit = errors.New("track: circuit is nil")

	// ErrEmptyCircuit indicates the circuit has no steps to assemble.
	ErrEmptyCircuit = errors.New("track: circuit is empty")
)

// SegmentKind tags a segment for downstream consumers.
type SegmentKind int

const (
	// KindRoute is a first-class required street segment.
	KindRoute SegmentKind = iota

	// KindConnector is a virtual backtrack/matching segment: mileage the
	// route pays to stay a closed walk, not new ground to cover.
	KindConnector
)

// String implements fmt.Stringer for SegmentKind.
func (k SegmentKind) String() string {
	if k == KindConnector {
		return "connector"
	}

	return "route"
}

// Marker is a direction indicator: the index of a point within the
// segment's polyline and the initial bearing (degrees, [0,360)) toward
// the next point.
type Marker struct {
	Index   int
	Bearing float64
}

// Segment is one traversed edge of the circuit, oriented in walk
// direction.
type Segment struct {
	// Edge is the id of the traversed edge in the working graph.
	Edge streetgraph.EdgeID

	// Kind tags the segment route or connector.
	Kind SegmentKind

	// Line is the polyline in traversal order.
	Line orb.LineString

	// Length is the segment length in metres.
	Length float64

	// Chord reports a synthesized straight-line geometry.
	Chord bool

	// Markers are the direction indicators placed on this segment.
	Markers []Marker
}

// Track is the assembled output: the ordered tagged segments plus
// aggregate statistics. It is owned by the caller; the core never keeps
// a reference.
type Track struct {
	// Segments in circuit order; consecutive segments chain end-to-start.
	Segments []Segment

	// Bound is the union bounding box of all segment polylines.
	Bound orb.Bound

	// Distance is the total walked length in metres, connectors included.
	Distance float64

	// Backtrack is the connector-only portion of Distance.
	Backtrack float64

	// Markers is the total number of direction indicators.
	Markers int
}

// DefaultArrowInterval spaces direction markers every 3 points, matching
// a comfortable rendering density on street-scale polylines.
const DefaultArrowInterval = 3

// Options configures Assemble.
type Options struct {
	// ArrowInterval is the marker spacing in points; must be positive.
	ArrowInterval int

	// SimplifyTolerance is the Douglas–Peucker tolerance in degrees;
	// 0 disables simplification.
	SimplifyTolerance float64
}

// Option is a functional option for Assemble.
type Option func(*Options)

// WithArrowInterval overrides the marker spacing. Must be positive;
// invalid values panic (misconfiguration, caught at option-build time).
func WithArrowInterval(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("track: ArrowInterval must be positive")
		}
		o.ArrowInterval = n
	}
}

// WithSimplifyTolerance enables per-segment Douglas–Peucker
// simplification. Must be non-negative; invalid values panic.
func WithSimplifyTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic("track: SimplifyTolerance must be non-negative")
		}
		o.SimplifyTolerance = tol
	}
}

// DefaultOptions returns the defaults: markers every 3 points, no
// simplification.
func DefaultOptions() Options {
	return Options{ArrowInterval: DefaultArrowInterval}
}
