package circuit

import (
	"fmt"

	"github.com/katalvlaran/postwalk/streetgraph"
)

// Build constructs the Eulerian circuit of g.
//
// Invariants on success: len(Steps) == g.EdgeCount(), every edge id
// appears exactly once, consecutive steps chain (Steps[i].To ==
// Steps[i+1].From), and the walk closes (last To == first From == Start).
func Build(g *streetgraph.Graph, opts ...Option) (*Circuit, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Precondition: even degree everywhere.
	if odd := g.OddVertices(); len(odd) != 0 {
		return nil, fmt.Errorf("%w: %d odd-degree vertices (first: %d)",
			ErrNotEulerian, len(odd), odd[0])
	}

	// 2) Resolve the start: caller's vertex when it exists, else the
	//    lowest vertex id carrying an edge.
	start := cfg.Start
	if !g.HasVertex(start) {
		start = streetgraph.None
		for v := streetgraph.VertexID(0); int(v) < g.VertexCount(); v++ {
			if g.Degree(v) > 0 {
				start = v
				break
			}
		}
	}
	if start == streetgraph.None || g.EdgeCount() == 0 {
		// Edgeless graph: the empty circuit is trivially complete.
		return &Circuit{Start: max(start, 0), Steps: nil}, nil
	}
	if g.Degree(start) == 0 {
		return nil, fmt.Errorf("%w: start vertex %d has no incident edges",
			ErrNotEulerian, start)
	}

	// 3) Precondition: one edge-bearing component, reachable from start.
	if err := checkSingleComponent(g, start); err != nil {
		return nil, err
	}

	// 4) Hierholzer: DFS with an explicit stack; each frame records the
	//    vertex and the edge used to enter it. When a vertex runs out of
	//    unused edges it is popped and its entry edge is emitted — the
	//    emitted sequence is the circuit in reverse.
	type frame struct {
		v     streetgraph.VertexID
		enter streetgraph.EdgeID
	}

	used := make([]bool, g.EdgeCount())
	cursor := make([]int, g.VertexCount())
	stack := []frame{{v: start, enter: streetgraph.None}}
	rev := make([]Step, 0, g.EdgeCount())

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.v

		// Advance past consumed edges; adjacency order is insertion order,
		// so the lowest-id unused edge is always taken first.
		incident := g.IncidentEdges(u)
		for cursor[u] < len(incident) && used[incident[cursor[u]]] {
			cursor[u]++
		}

		if cursor[u] < len(incident) {
			e := incident[cursor[u]]
			cursor[u]++
			used[e] = true
			stack = append(stack, frame{v: g.Other(e, u), enter: e})
			continue
		}

		// Backtrack: emit the entry edge of the finished frame.
		stack = stack[:len(stack)-1]
		if top.enter != streetgraph.None {
			from := stack[len(stack)-1].v
			edge, _ := g.Edge(top.enter)
			rev = append(rev, Step{
				Edge:     top.enter,
				From:     from,
				To:       u,
				Reversed: edge.From != from || edge.To != u,
			})
		}
	}

	// 5) Defensive invariant: every edge consumed exactly once.
	unused := 0
	for _, u := range used {
		if !u {
			unused++
		}
	}
	if unused != 0 {
		return nil, fmt.Errorf("%w: %d of %d edges unused (vertices=%d, start=%d)",
			ErrIncompleteCircuit, unused, g.EdgeCount(), g.VertexCount(), start)
	}

	// 6) Reverse the emission order into walk order.
	steps := make([]Step, len(rev))
	for i := range rev {
		steps[i] = rev[len(rev)-1-i]
	}

	return &Circuit{Start: start, Steps: steps}, nil
}

// checkSingleComponent verifies every edge-bearing vertex is reachable
// from start. A second edge-bearing component can never be stitched into
// one closed walk.
func checkSingleComponent(g *streetgraph.Graph, start streetgraph.VertexID) error {
	visited := make([]bool, g.VertexCount())
	queue := []streetgraph.VertexID{start}
	visited[start] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.IncidentEdges(u) {
			if w := g.Other(e, u); !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	for v := 0; v < g.VertexCount(); v++ {
		if g.Degree(streetgraph.VertexID(v)) > 0 && !visited[v] {
			return fmt.Errorf("%w: vertex %d carries edges unreachable from start %d",
				ErrNotEulerian, v, start)
		}
	}

	return nil
}
