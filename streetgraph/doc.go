// Package streetgraph models a street network as an undirected multigraph
// of intersections (vertices) and road segments (edges), and provides the
// queries every other stage of the route-inspection pipeline builds on:
// degrees, odd-degree vertex sets, connectivity of the required-coverage
// subgraph, and Dijkstra shortest paths.
//
// What:
//
//   - Graph stores vertices and edges in flat arenas indexed by integer
//     ids (VertexID, EdgeID), with adjacency kept as per-vertex edge-id
//     lists. Parallel edges and self-loops are permitted; a self-loop
//     contributes 2 to its vertex's degree.
//   - Every edge carries real-world length (metres), an ordered polyline
//     geometry (github.com/paulmach/orb LineString, oriented From→To),
//     a required-coverage flag, and an excluded flag set by the caller's
//     "already completed" policy.
//   - ShortestPath / ShortestPathTree run Dijkstra over traversable
//     edges; excluded edges are skipped unless WithExcludedConnectors
//     admits them as connectors.
//   - CheckRequiredConnected verifies that all vertices touched by
//     required edges live in a single traversable component; otherwise
//     no covering circuit can exist and generation must abort.
//
// Why:
//
//   - Flat arenas keep shortest-path and matching loops cache-friendly
//     and make cloning an O(V+E) copy with no aliasing surprises.
//   - Integer ids give deterministic iteration order everywhere, which
//     is what makes the whole pipeline reproducible.
//
// Complexity:
//
//   - AddVertex/AddEdge: O(1) amortized.
//   - Degree/Vertex/Edge: O(1).
//   - OddVertices: O(V).
//   - CheckRequiredConnected: O(V+E).
//   - ShortestPathTree: O((V+E) log V) with a lazy-decrease-key heap.
//
// Errors:
//
//   - ErrVertexNotFound: an operation referenced a vertex id outside the arena.
//   - ErrEdgeNotFound: an operation referenced an edge id outside the arena.
//   - ErrBadLength: a negative edge length was supplied.
//   - ErrEmptyGraph: a query that needs at least one vertex ran on an empty graph.
//   - ErrNoPath: no traversable path exists between the requested vertices.
//   - ErrDisconnected: required edges span more than one traversable component.
package streetgraph
