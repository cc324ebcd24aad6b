// Package balance turns a street graph into an Eulerian-eligible
// multigraph: after it runs, every vertex has even degree, which is the
// precondition Hierholzer's circuit construction needs.
//
// Two stages, both producing a new graph value and leaving their input
// untouched:
//
//   - ResolveDeadEnds duplicates the single incident edge of every
//     degree-1 vertex (an out-and-back down the cul-de-sac). This is a
//     strictly local O(1) pre-pass per dead end; it shrinks the global
//     matching problem and keeps isolated dead ends from being paired
//     across town. It is policy-gated by the caller — without it, dead
//     ends fall through to the general matching below.
//   - Balance pairs the remaining odd-degree vertices by minimum-weight
//     perfect matching over shortest-path costs and duplicates each
//     matched path's edge sequence into the graph as virtual edges.
//
// Matching exactness:
//
//   - ExactMatching (default) solves the matching optimally by dynamic
//     programming over vertex subsets: O(k·2^k) for k odd vertices,
//     provably minimum. It is capped at MaxExactOddVertices; beyond the
//     cap Balance fails with ErrMatchingIntractable rather than quietly
//     degrading route quality.
//   - GreedyMatching pairs nearest neighbours deterministically and then
//     refines with pair-swap passes until locally optimal. Opt-in for
//     instances past the exact cap; no optimality guarantee.
//
// Options:
//
//   - WithMatchingAlgo: ExactMatching or GreedyMatching.
//   - WithMaxExactOddVertices: raise or lower the exact-DP cap.
//   - WithConnectorGraph: compute shortest paths on a richer graph that
//     shares the vertex arena (e.g. one that still contains excluded
//     edges) while augmenting the working graph.
//   - WithExcludedConnectors: admit excluded edges as connector mileage
//     in those shortest paths.
//
// Errors:
//
//   - ErrNilGraph: no graph was supplied.
//   - ErrOddCardinality: the odd-degree set has odd size (graph-theoretic
//     impossibility; indicates a corrupted adjacency arena).
//   - ErrMatchingInfeasible: an odd vertex cannot reach any other odd
//     vertex (the graph is disconnected; normally caught earlier by
//     streetgraph.CheckRequiredConnected).
//   - ErrMatchingIntractable: odd set exceeds the exact-DP cap under
//     ExactMatching.
//
// Cancellation: Balance is the pipeline's only super-linear stage, so it
// checks ctx between per-vertex Dijkstra runs and periodically inside
// the matching DP; on cancellation it returns ctx.Err() unwrapped for
// the orchestrator to classify.
package balance
