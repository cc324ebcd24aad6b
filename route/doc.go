// Package route wires the full generation pipeline into one call:
// exclusions → connectivity check → dead-end resolution → degree
// balancing → Eulerian circuit → track assembly.
//
// What:
//
//	Generate(ctx, g, opts...) takes a loaded street graph and returns the
//	assembled Track plus the Circuit it was built from. The input graph
//	is never mutated; every stage works on clones.
//
// Pipeline:
//
//  1. Clone g and apply the caller's exclusions (already-covered edges).
//  2. Fail fast when the required edges span multiple traversable
//     components — no covering circuit can exist.
//  3. Drop excluded edges into a working graph (vertex ids preserved).
//  4. Optionally duplicate dead-end edges so cul-de-sacs resolve
//     locally instead of through the global matching.
//  5. Balance odd-degree vertices by minimum-weight matching over
//     shortest paths; excluded edges may serve as connector mileage
//     when the policy admits them.
//  6. Build the Eulerian circuit (deterministic, optionally seeded at a
//     caller-chosen vertex or the vertex nearest a coordinate).
//  7. Assemble the directed, tagged, marker-annotated track.
//
// Progress: WithProgress installs a callback invoked once per completed
// phase. The callback runs synchronously on the calling goroutine; a
// panic inside it is swallowed so reporting can never corrupt a result.
//
// Cancellation: ctx is honoured at stage boundaries and inside the
// matching solve. A cancelled run fails with ErrCancelled (wrapping the
// context error) and never returns partial results.
package route
