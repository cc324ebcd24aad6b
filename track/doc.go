// Package track walks a finished circuit and assembles the output the
// core contract ends at: an ordered sequence of tagged, direction-
// annotated linestrings plus the overall bounding box.
//
// What:
//
//   - Each circuit step becomes one Segment whose polyline runs in the
//     actual traversal direction (stored geometry reversed on backward
//     traversal).
//   - Segments are tagged KindRoute (original required street) or
//     KindConnector (virtual backtrack/matching edge), and downstream
//     consumers rely on that boundary — simplification never merges
//     across it because it operates strictly per segment.
//   - Direction markers carry an initial bearing for rendering arrow
//     indicators: one per ArrowInterval points inside a segment, and on
//     the first point of a minimal two-point segment.
//   - Totals: overall distance, backtrack (connector) distance, marker
//     count, and the union bounding box.
//
// Options:
//
//   - WithArrowInterval: marker spacing in points (default 3).
//   - WithSimplifyTolerance: Douglas–Peucker tolerance in degrees; 0
//     (default) disables simplification. Endpoints of every segment are
//     always preserved.
//
// Invariant: concatenating the emitted segments in order reproduces a
// continuous path — each segment ends where the next begins.
//
// Errors:
//
//   - ErrNilGraph / ErrNilCircuit: missing inputs.
//   - ErrEmptyCircuit: the circuit has no steps, so no track exists.
package track
