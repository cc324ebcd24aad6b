// Examples demonstrating street-graph construction and shortest-path
// queries. Each example is runnable via "go test -run Example".
package streetgraph_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/postwalk/streetgraph"
)

// ExampleGraph_ShortestPath demonstrates shortest paths on a triangle
// with one expensive side.
func ExampleGraph_ShortestPath() {
	// 1) Three intersections.
	g := streetgraph.NewGraph()
	a := g.AddVertex(orb.Point{0, 0})
	b := g.AddVertex(orb.Point{0.001, 0})
	c := g.AddVertex(orb.Point{0.001, 0.001})

	// 2) Two cheap streets and one long diagonal; explicit lengths in
	//    metres override the haversine fallback.
	g.AddEdge(a, b, nil, 100, true)
	g.AddEdge(b, c, nil, 100, true)
	g.AddEdge(a, c, nil, 500, true)

	// 3) The cheap two-hop route wins over the direct diagonal.
	path, cost, err := g.ShortestPath(a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("edges=%v cost=%.0f\n", path, cost)
	// Output: edges=[0 1] cost=200
}

// ExampleGraph_OddVertices demonstrates the degree-parity query the
// balancer is built on.
func ExampleGraph_OddVertices() {
	// A path 0-1-2: the endpoints are odd, the middle is even.
	g := streetgraph.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex(orb.Point{float64(i) * 0.001, 0})
	}
	g.AddEdge(0, 1, nil, 100, true)
	g.AddEdge(1, 2, nil, 100, true)

	fmt.Println("odd:", g.OddVertices())
	// Output: odd: [0 2]
}
