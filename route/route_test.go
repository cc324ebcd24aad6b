// Pipeline tests: end-to-end generation on the canonical scenarios,
// exclusion policies, progress reporting, and cancellation.
package route_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/postwalk/balance"
	"github.com/katalvlaran/postwalk/route"
	"github.com/katalvlaran/postwalk/streetgraph"
	"github.com/katalvlaran/postwalk/track"
)

// RouteSuite exercises Generate end to end.
type RouteSuite struct {
	suite.Suite
}

// square builds a 4-cycle with 100 m required edges.
func (s *RouteSuite) square() *streetgraph.Graph {
	g := streetgraph.NewGraph()
	pts := []orb.Point{{0, 0}, {0.001, 0}, {0.001, 0.001}, {0, 0.001}}
	for _, p := range pts {
		g.AddVertex(p)
	}
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(streetgraph.VertexID(i), streetgraph.VertexID((i+1)%4), nil, 100, true)
		require.NoError(s.T(), err)
	}

	return g
}

// plus builds four 100 m arms off a central hub; every arm ends in a
// dead end.
func (s *RouteSuite) plus() *streetgraph.Graph {
	g := streetgraph.NewGraph()
	g.AddVertex(orb.Point{0, 0})
	for _, p := range []orb.Point{{0.001, 0}, {-0.001, 0}, {0, 0.001}, {0, -0.001}} {
		leaf := g.AddVertex(p)
		_, err := g.AddEdge(0, leaf, nil, 100, true)
		require.NoError(s.T(), err)
	}

	return g
}

// TestNilGraph verifies the nil guard.
func (s *RouteSuite) TestNilGraph() {
	_, _, err := route.Generate(context.Background(), nil)
	require.ErrorIs(s.T(), err, route.ErrNilGraph)
}

// TestCycleUnchanged: an already-even graph needs no augmentation and
// no backtrack mileage.
func (s *RouteSuite) TestCycleUnchanged() {
	g := s.square()
	tr, c, err := route.Generate(context.Background(), g)
	require.NoError(s.T(), err)
	require.Len(s.T(), c.Steps, 4)
	require.Len(s.T(), tr.Segments, 4)
	require.Equal(s.T(), 400.0, tr.Distance)
	require.Zero(s.T(), tr.Backtrack)
	require.Equal(s.T(), 4, g.EdgeCount(), "input graph untouched")
}

// TestPlusShape: four dead-end arms are each walked out and back.
func (s *RouteSuite) TestPlusShape() {
	g := s.plus()
	tr, c, err := route.Generate(context.Background(), g)
	require.NoError(s.T(), err)
	require.Len(s.T(), c.Steps, 8, "each arm out and back")
	require.Equal(s.T(), 800.0, tr.Distance)
	require.Equal(s.T(), 400.0, tr.Backtrack)

	kinds := map[track.SegmentKind]int{}
	for _, seg := range tr.Segments {
		kinds[seg.Kind]++
	}
	require.Equal(s.T(), 4, kinds[track.KindRoute])
	require.Equal(s.T(), 4, kinds[track.KindConnector])
}

// TestPlusShapeViaMatching: with dead-end optimization off the global
// matching must reach the same total.
func (s *RouteSuite) TestPlusShapeViaMatching() {
	g := s.plus()
	tr, c, err := route.Generate(context.Background(), g,
		route.WithoutDeadEndOptimization())
	require.NoError(s.T(), err)
	require.Len(s.T(), c.Steps, 8)
	require.Equal(s.T(), 800.0, tr.Distance)
	require.Equal(s.T(), 400.0, tr.Backtrack)
}

// TestDisjointRequired fails fast before any matching work.
func (s *RouteSuite) TestDisjointRequired() {
	g := streetgraph.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(orb.Point{float64(i) * 0.001, 0})
	}
	_, err := g.AddEdge(0, 1, nil, 100, true)
	require.NoError(s.T(), err)
	_, err = g.AddEdge(2, 3, nil, 100, true)
	require.NoError(s.T(), err)

	_, _, err = route.Generate(context.Background(), g)
	require.ErrorIs(s.T(), err, streetgraph.ErrDisconnected)
}

// TestExclusion removes an edge from coverage; the rest still routes.
func (s *RouteSuite) TestExclusion() {
	// Square plus a diagonal; excluding the diagonal leaves the even
	// cycle.
	g := s.square()
	diag, err := g.AddEdge(0, 2, nil, 140, true)
	require.NoError(s.T(), err)

	tr, c, err := route.Generate(context.Background(), g,
		route.WithExcludedEdges(diag))
	require.NoError(s.T(), err)
	require.Len(s.T(), c.Steps, 4)
	require.Zero(s.T(), tr.Backtrack)
}

// TestExcludedConnectorPolicy: an excluded shortcut may carry connector
// mileage only when the policy admits it.
func (s *RouteSuite) TestExcludedConnectorPolicy() {
	build := func() (*streetgraph.Graph, streetgraph.EdgeID) {
		// Path 0-1-2-3 plus a cheap 0-3 shortcut to be excluded.
		g := streetgraph.NewGraph()
		for i := 0; i < 4; i++ {
			g.AddVertex(orb.Point{float64(i) * 0.001, 0})
		}
		for i := 0; i < 3; i++ {
			_, err := g.AddEdge(streetgraph.VertexID(i), streetgraph.VertexID(i+1), nil, 100, true)
			require.NoError(s.T(), err)
		}
		shortcut, err := g.AddEdge(0, 3, nil, 50, false)
		require.NoError(s.T(), err)

		return g, shortcut
	}

	// Default policy: the shortcut is impassable, the path is doubled.
	g, shortcut := build()
	tr, _, err := route.Generate(context.Background(), g,
		route.WithExcludedEdges(shortcut),
		route.WithoutDeadEndOptimization())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 600.0, tr.Distance)
	require.Equal(s.T(), 300.0, tr.Backtrack)

	// Connector policy: the matching rides the excluded shortcut.
	g, shortcut = build()
	tr, _, err = route.Generate(context.Background(), g,
		route.WithExcludedEdges(shortcut),
		route.WithExcludedConnectors(),
		route.WithoutDeadEndOptimization())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 350.0, tr.Distance)
	require.Equal(s.T(), 50.0, tr.Backtrack)
}

// TestEverythingExcluded yields ErrNothingToRoute.
func (s *RouteSuite) TestEverythingExcluded() {
	g := s.square()
	_, _, err := route.Generate(context.Background(), g,
		route.WithExcludedEdges(0, 1, 2, 3))
	require.ErrorIs(s.T(), err, route.ErrNothingToRoute)
}

// TestStartResolution: explicit vertex wins, coordinate snaps to the
// nearest vertex.
func (s *RouteSuite) TestStartResolution() {
	g := s.square()
	_, c, err := route.Generate(context.Background(), g,
		route.WithStartVertex(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), streetgraph.VertexID(2), c.Start)

	_, c, err = route.Generate(context.Background(), g,
		route.WithStartLocation(orb.Point{0.0011, 0.0009}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), streetgraph.VertexID(2), c.Start)
}

// TestProgressOrder verifies each phase is reported once, in pipeline
// order, and that a panicking callback cannot break the run.
func (s *RouteSuite) TestProgressOrder() {
	g := s.plus()
	var phases []route.Phase
	_, _, err := route.Generate(context.Background(), g,
		route.WithProgress(func(p route.Phase) { phases = append(phases, p) }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []route.Phase{
		route.PhaseGraphPrepared,
		route.PhaseDeadEndsResolved,
		route.PhaseMatchingSolved,
		route.PhaseCircuitBuilt,
		route.PhaseTrackAssembled,
	}, phases)

	// Dead-end phase is skipped when the optimization is off.
	phases = nil
	_, _, err = route.Generate(context.Background(), g,
		route.WithoutDeadEndOptimization(),
		route.WithProgress(func(p route.Phase) { phases = append(phases, p) }))
	require.NoError(s.T(), err)
	require.NotContains(s.T(), phases, route.PhaseDeadEndsResolved)

	// A panicking callback is swallowed.
	tr, _, err := route.Generate(context.Background(), g,
		route.WithProgress(func(route.Phase) { panic("reporting UI crashed") }))
	require.NoError(s.T(), err)
	require.NotNil(s.T(), tr)
}

// TestCancellation wraps context termination in ErrCancelled and
// returns no partial results.
func (s *RouteSuite) TestCancellation() {
	g := s.plus()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, c, err := route.Generate(ctx, g)
	require.ErrorIs(s.T(), err, route.ErrCancelled)
	require.Nil(s.T(), tr)
	require.Nil(s.T(), c)
}

// TestGreedyPassthrough: the matching algorithm option reaches the
// balancer.
func (s *RouteSuite) TestGreedyPassthrough() {
	g := s.plus()
	tr, _, err := route.Generate(context.Background(), g,
		route.WithoutDeadEndOptimization(),
		route.WithMatchingAlgo(balance.GreedyMatching))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 800.0, tr.Distance)
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}
