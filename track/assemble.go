package track

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/postwalk/circuit"
	"github.com/katalvlaran/postwalk/geom"
	"github.com/katalvlaran/postwalk/streetgraph"
)

// Assemble walks the circuit and emits one directed, tagged Segment per
// step, plus aggregate statistics and the union bounding box.
//
// Per step:
//  1. Orient the stored edge geometry to the traversal direction (the
//     endpoint coordinates of the step's vertices decide; sloppy loader
//     geometry falls back to closest-endpoint matching).
//  2. Optionally simplify the polyline (endpoints always survive, so the
//     route/connector boundary is never blurred).
//  3. Place direction markers: every ArrowInterval points for longer
//     polylines, the first point for a minimal two-point chord.
//
// Complexity: O(total polyline points).
func Assemble(g *streetgraph.Graph, c *circuit.Circuit, opts ...Option) (*Track, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if c == nil {
		return nil, ErrNilCircuit
	}
	if len(c.Steps) == 0 {
		return nil, ErrEmptyCircuit
	}

	var simplifier *simplify.DouglasPeuckerSimplifier
	if cfg.SimplifyTolerance > 0 {
		simplifier = simplify.DouglasPeucker(cfg.SimplifyTolerance)
	}

	out := &Track{Segments: make([]Segment, 0, len(c.Steps))}
	for _, step := range c.Steps {
		edge, err := g.Edge(step.Edge)
		if err != nil {
			return nil, err
		}
		fromV, err := g.Vertex(step.From)
		if err != nil {
			return nil, err
		}
		toV, err := g.Vertex(step.To)
		if err != nil {
			return nil, err
		}

		// 1) Traversal-ordered polyline.
		line := geom.DirectionalLineString(edge.Geometry, fromV.Point, toV.Point)

		// 2) Optional simplification on a private copy.
		if simplifier != nil && len(line) > 2 {
			line = simplifier.LineString(line.Clone())
		}

		seg := Segment{
			Edge:    step.Edge,
			Kind:    kindOf(edge),
			Line:    line,
			Length:  edge.Length,
			Chord:   edge.Chord,
			Markers: placeMarkers(line, cfg.ArrowInterval),
		}

		out.Segments = append(out.Segments, seg)
		out.Distance += edge.Length
		if seg.Kind == KindConnector {
			out.Backtrack += edge.Length
		}
		out.Markers += len(seg.Markers)
	}

	// 3) Union bound across all emitted polylines.
	lines := make([]orb.LineString, len(out.Segments))
	for i := range out.Segments {
		lines[i] = out.Segments[i].Line
	}
	if bound, ok := geom.PathBound(lines); ok {
		out.Bound = bound
	}

	return out, nil
}

// kindOf tags virtual duplicates as connectors; everything else is a
// first-class route segment.
func kindOf(e streetgraph.Edge) SegmentKind {
	if e.Virtual {
		return KindConnector
	}

	return KindRoute
}

// placeMarkers computes direction indicators for one polyline. A
// two-point polyline gets a single marker on its first point; longer
// polylines get one every interval points, never on the last point.
func placeMarkers(line orb.LineString, interval int) []Marker {
	if len(line) < 2 {
		return nil
	}
	if len(line) == 2 {
		return []Marker{{Index: 0, Bearing: geom.Bearing(line[0], line[1])}}
	}

	markers := make([]Marker, 0, len(line)/interval+1)
	for i := 0; i < len(line)-1; i += interval {
		markers = append(markers, Marker{Index: i, Bearing: geom.Bearing(line[i], line[i+1])})
	}

	return markers
}
