package balance

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/postwalk/streetgraph"
)

// Balance augments g with virtual edges so that every vertex ends up
// with even degree, returning the new graph and the matching that
// produced it. The input graph is never mutated.
//
// Stages:
//  1. Collect the odd-degree vertices (ascending). An empty set means g
//     is already Eulerian-eligible and a plain clone is returned.
//  2. Build the complete cost matrix on the odd set, one Dijkstra run
//     per odd vertex over the connector graph (g itself unless
//     WithConnectorGraph was given).
//  3. Solve minimum-weight perfect matching (exact DP by default).
//  4. Duplicate each matched pair's shortest-path edge sequence into the
//     new graph as virtual edges: intermediate vertices gain +2 degree,
//     endpoints +1, flipping exactly the odd vertices to even.
//
// Duplicating a path that contains a required edge is fine: the copy is
// virtual (non-required), and first-pass versus backtrack traversal is
// decided later by circuit position, not by any per-edge flag.
//
// Complexity: O(k·(V+E)·log V) for the matrix plus the matching solve
// (O(k·2^k) exact, O(k²) greedy), k = |odd set|.
func Balance(ctx context.Context, g *streetgraph.Graph, opts ...Option) (*streetgraph.Graph, *Matching, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 1) Odd set. Even cardinality is a structural property of any
	//    well-formed graph; failing it means the arena is corrupted.
	odd := g.OddVertices()
	if len(odd) == 0 {
		return g.Clone(), &Matching{}, nil
	}
	if len(odd)&1 == 1 {
		return nil, nil, fmt.Errorf("%w: %d odd vertices", ErrOddCardinality, len(odd))
	}

	k := len(odd)
	if cfg.Algo == ExactMatching && k > cfg.MaxExactOddVertices {
		return nil, nil, fmt.Errorf("%w: %d odd vertices exceed cap %d",
			ErrMatchingIntractable, k, cfg.MaxExactOddVertices)
	}

	// 2) Cost matrix over the connector graph. Each odd vertex must reach
	//    at least one other; total isolation means the disconnection
	//    somehow slipped past the earlier connectivity check.
	pathSrc := cfg.ConnectorGraph
	if pathSrc == nil {
		pathSrc = g
	}
	var pathOpts []streetgraph.PathOption
	if cfg.ExcludedConnectors {
		pathOpts = append(pathOpts, streetgraph.WithExcludedConnectors())
	}

	trees := make([]*streetgraph.PathTree, k)
	cost := make([][]float64, k)
	for i, u := range odd {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		tree, err := pathSrc.ShortestPathTree(u, pathOpts...)
		if err != nil {
			return nil, nil, err
		}
		trees[i] = tree

		cost[i] = make([]float64, k)
		reachesAny := false
		for j, v := range odd {
			if i == j {
				cost[i][j] = math.Inf(1)
				continue
			}
			cost[i][j] = tree.Cost(v)
			if !math.IsInf(cost[i][j], 1) {
				reachesAny = true
			}
		}
		if !reachesAny {
			return nil, nil, fmt.Errorf("%w: vertex %d reaches no other odd vertex",
				ErrMatchingInfeasible, u)
		}
	}

	// 3) Solve the matching.
	var (
		pairIdx [][2]int
		total   float64
		err     error
	)
	switch cfg.Algo {
	case GreedyMatching:
		pairIdx, total, err = greedyMatching(ctx, cost)
	default:
		pairIdx, total, err = exactMatching(ctx, cost)
	}
	if err != nil {
		return nil, nil, err
	}

	// 4) Duplicate the matched shortest paths into a fresh graph.
	out := g.Clone()
	matching := &Matching{Pairs: make([]Pair, 0, len(pairIdx)), Cost: total}
	for _, p := range pairIdx {
		i, j := p[0], p[1]
		path, perr := trees[i].PathTo(odd[j])
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMatchingInfeasible, perr)
		}
		for _, id := range path {
			e, eerr := pathSrc.Edge(id)
			if eerr != nil {
				return nil, nil, eerr
			}
			if _, eerr = out.AddVirtualCopy(e); eerr != nil {
				return nil, nil, eerr
			}
		}
		matching.Pairs = append(matching.Pairs, Pair{
			U:    odd[i],
			V:    odd[j],
			Path: path,
			Cost: cost[i][j],
		})
	}

	// Post-condition: the augmented graph must be fully even.
	if rest := out.OddVertices(); len(rest) != 0 {
		return nil, nil, fmt.Errorf("%w: %d vertices still odd after augmentation",
			ErrOddCardinality, len(rest))
	}

	return out, matching, nil
}
