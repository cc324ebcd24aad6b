// Package circuit constructs a closed Eulerian circuit over a balanced
// street graph using Hierholzer's algorithm: walk unused edges until
// returning to the start, splicing in side-loops discovered from any
// vertex on the walk that still has unused incident edges, until every
// edge is consumed.
//
// What:
//
//   - Build returns the ordered edge sequence with per-edge traversal
//     direction (Step.Reversed tells the assembler to read the stored
//     geometry backwards).
//   - The start vertex is the caller's choice when it exists in the
//     graph; otherwise the lowest vertex id with at least one incident
//     edge, so identical inputs always produce identical circuits.
//   - Build traverses every edge in the graph it is given. Filtering
//     (e.g. dropping excluded edges) is the caller's job before calling.
//
// Preconditions (checked, not assumed):
//
//   - every vertex has even degree;
//   - all edges live in a single traversable component.
//
// Complexity: O(V + E) — each edge is pushed and popped exactly once.
//
// Errors:
//
//   - ErrNilGraph: no graph was supplied.
//   - ErrNotEulerian: an odd-degree vertex or a second edge-bearing
//     component makes a single closed covering walk impossible.
//   - ErrIncompleteCircuit: edges remained unused after the main loop —
//     a defensive invariant check that indicates an internal bug, with a
//     graph summary embedded for diagnosis.
package circuit
