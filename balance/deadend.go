package balance

import (
	"github.com/katalvlaran/postwalk/geom"
	"github.com/katalvlaran/postwalk/streetgraph"
)

// ResolveDeadEnds returns a copy of g in which every true dead end —
// a vertex with exactly one incident edge — has its incident edge
// duplicated as a virtual return edge with reversed geometry. The dead
// end's degree becomes 2 and its neighbour's parity flips, turning
// "must backtrack down the cul-de-sac" into a structural property of
// the graph instead of a global matching decision.
//
// Dead ends are detected on the input graph, then resolved in ascending
// vertex order; a vertex whose parity was flipped by an earlier
// duplication is not re-examined. Strictly local: O(1) per dead end
// after the O(V) scan.
func ResolveDeadEnds(g *streetgraph.Graph) (*streetgraph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Snapshot the dead ends before mutating anything.
	deadEnds := make([]streetgraph.VertexID, 0)
	for v := streetgraph.VertexID(0); int(v) < g.VertexCount(); v++ {
		if g.Degree(v) == 1 {
			deadEnds = append(deadEnds, v)
		}
	}

	out := g.Clone()
	if len(deadEnds) == 0 {
		return out, nil
	}

	// 2) Duplicate each dead end's single incident edge, reversed, so the
	//    return leg reads back along the same road shape.
	for _, v := range deadEnds {
		incident := g.IncidentEdges(v)
		e, err := g.Edge(incident[0])
		if err != nil {
			return nil, err
		}

		ret := e
		ret.From, ret.To = e.To, e.From
		ret.Geometry = geom.Reverse(e.Geometry)
		if _, err = out.AddVirtualCopy(ret); err != nil {
			return nil, err
		}
	}

	return out, nil
}
