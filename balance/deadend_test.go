// Dead-end resolution tests: local duplication, reversed return
// geometry, and the untouched-graph guarantee.
package balance_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postwalk/balance"
	"github.com/katalvlaran/postwalk/streetgraph"
)

func TestResolveDeadEnds_NilGraph(t *testing.T) {
	_, err := balance.ResolveDeadEnds(nil)
	require.ErrorIs(t, err, balance.ErrNilGraph)
}

func TestResolveDeadEnds_NoDeadEnds(t *testing.T) {
	g := streetgraph.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex(orb.Point{float64(i) * 0.001, 0})
	}
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(streetgraph.VertexID(i), streetgraph.VertexID((i+1)%3), nil, 100, true)
		require.NoError(t, err)
	}

	out, err := balance.ResolveDeadEnds(g)
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), out.EdgeCount())
}

func TestResolveDeadEnds_CulDeSac(t *testing.T) {
	// Triangle 0-1-2 plus a spur 1-3: vertex 3 is a dead end.
	g := streetgraph.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(orb.Point{float64(i) * 0.001, 0})
	}
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(streetgraph.VertexID(i), streetgraph.VertexID((i+1)%3), nil, 100, true)
		require.NoError(t, err)
	}
	spurGeom := orb.LineString{{0.001, 0}, {0.002, 0.0005}, {0.003, 0}}
	spur, err := g.AddEdge(1, 3, spurGeom, 120, true)
	require.NoError(t, err)

	out, err := balance.ResolveDeadEnds(g)
	require.NoError(t, err)

	// Exactly one duplicate, and the input graph is untouched.
	require.Equal(t, g.EdgeCount()+1, out.EdgeCount())
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 2, out.Degree(3), "dead end becomes even")
	require.Equal(t, 4, out.Degree(1), "neighbour parity flips back to even")

	// The return edge runs backward with reversed geometry.
	ret, err := out.Edge(streetgraph.EdgeID(out.EdgeCount() - 1))
	require.NoError(t, err)
	require.True(t, ret.Virtual)
	require.False(t, ret.Required)
	orig, _ := g.Edge(spur)
	require.Equal(t, orig.To, ret.From)
	require.Equal(t, orig.From, ret.To)
	require.Equal(t, spurGeom[2], ret.Geometry[0])
	require.Equal(t, spurGeom[0], ret.Geometry[2])
	require.Equal(t, orig.Length, ret.Length)
}

func TestResolveDeadEnds_PlusShape(t *testing.T) {
	// Four arms off one hub: all four leaf edges get return duplicates
	// and every vertex ends up even.
	g := streetgraph.NewGraph()
	g.AddVertex(orb.Point{0, 0})
	arms := []orb.Point{{0.001, 0}, {-0.001, 0}, {0, 0.001}, {0, -0.001}}
	for _, p := range arms {
		leaf := g.AddVertex(p)
		_, err := g.AddEdge(0, leaf, nil, 100, true)
		require.NoError(t, err)
	}

	out, err := balance.ResolveDeadEnds(g)
	require.NoError(t, err)
	require.Equal(t, 8, out.EdgeCount())
	require.Empty(t, out.OddVertices())
	require.Equal(t, 8, out.Degree(0))
}
