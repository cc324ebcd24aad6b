package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/postwalk/balance"
	"github.com/katalvlaran/postwalk/circuit"
	"github.com/katalvlaran/postwalk/streetgraph"
	"github.com/katalvlaran/postwalk/track"
)

// Generate runs the full pipeline on g and returns the assembled track
// together with the circuit it renders. The input graph is never
// mutated. On any error — including cancellation — both results are nil.
func Generate(ctx context.Context, g *streetgraph.Graph, opts ...Option) (*track.Track, *circuit.Circuit, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, wrapCtx(err)
	}

	// 1) Exclusions on a private clone; the full graph keeps the excluded
	//    edges around for connector duty.
	full := g.Clone()
	for _, id := range cfg.ExcludedEdges {
		if err := full.MarkExcluded(id); err != nil {
			return nil, nil, err
		}
	}

	var pathOpts []streetgraph.PathOption
	if cfg.AllowExcludedConnectors {
		pathOpts = append(pathOpts, streetgraph.WithExcludedConnectors())
	}

	// 2) Feasibility before any expensive work.
	if err := full.CheckRequiredConnected(pathOpts...); err != nil {
		return nil, nil, err
	}

	// 3) The working graph: everything the circuit must cover.
	working := full.WithoutExcluded()
	if working.EdgeCount() == 0 {
		return nil, nil, ErrNothingToRoute
	}
	emit(cfg.Progress, PhaseGraphPrepared)

	// 4) Local dead-end resolution ahead of the global matching.
	if cfg.OptimizeDeadEnds {
		resolved, err := balance.ResolveDeadEnds(working)
		if err != nil {
			return nil, nil, err
		}
		working = resolved
		emit(cfg.Progress, PhaseDeadEndsResolved)
	}

	// 5) Balance odd degrees. Shortest paths run on the full graph so
	//    excluded streets can carry connector mileage under the policy;
	//    the two graphs share one vertex arena.
	balOpts := []balance.Option{
		balance.WithMatchingAlgo(cfg.MatchingAlgo),
		balance.WithMaxExactOddVertices(cfg.MaxExactOddVertices),
		balance.WithConnectorGraph(full),
	}
	if cfg.AllowExcludedConnectors {
		balOpts = append(balOpts, balance.WithExcludedConnectors())
	}
	balanced, _, err := balance.Balance(ctx, working, balOpts...)
	if err != nil {
		return nil, nil, wrapCtx(err)
	}
	emit(cfg.Progress, PhaseMatchingSolved)

	// 6) Resolve the start and build the circuit.
	start := cfg.StartVertex
	if start == streetgraph.None && cfg.StartLocation != nil {
		start, err = balanced.NearestVertex(*cfg.StartLocation)
		if err != nil {
			return nil, nil, err
		}
	}
	circ, err := circuit.Build(balanced, circuit.WithStart(start))
	if err != nil {
		return nil, nil, err
	}
	emit(cfg.Progress, PhaseCircuitBuilt)

	// 7) Assemble the output track.
	trackOpts := []track.Option{track.WithArrowInterval(cfg.ArrowInterval)}
	if cfg.SimplifyTolerance > 0 {
		trackOpts = append(trackOpts, track.WithSimplifyTolerance(cfg.SimplifyTolerance))
	}
	tr, err := track.Assemble(balanced, circ, trackOpts...)
	if err != nil {
		return nil, nil, err
	}
	emit(cfg.Progress, PhaseTrackAssembled)

	return tr, circ, nil
}

// wrapCtx folds context termination into ErrCancelled; anything else
// passes through untouched.
func wrapCtx(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	return err
}

// emit invokes the progress callback, swallowing any panic so that
// reporting can never take down a generation run.
func emit(fn ProgressFunc, p Phase) {
	if fn == nil {
		return
	}
	defer func() { _ = recover() }()
	fn(p)
}
