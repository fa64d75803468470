// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/junction/cluster"
	"github.com/katalvlaran/junction/edgerank"
	"github.com/katalvlaran/junction/point"
)

// RunBounded applies at most budget edges in ascending distance order and
// returns the X product of the connecting edge if every point became linked
// into one circuit on the way, or else the product of the three (TopK)
// largest circuit sizes.
//
// Error Conditions: see Run.
func RunBounded(set *point.Set, budget int, opts ...Option) (int64, error) {
	res, err := Run(set, budget, opts...)
	if err != nil {
		return 0, err
	}

	return res.Answer, nil
}

// RunUntilConnected applies edges until every point is in one circuit and
// returns the X product of the edge that completed it.
//
// Error Conditions:
//   - everything Run returns;
//   - ErrNotConnected : the ranking ran out first (cannot happen for n >= 2).
func RunUntilConnected(set *point.Set, opts ...Option) (int64, error) {
	res, err := Run(set, Unbounded, opts...)
	if err != nil {
		return 0, err
	}
	if !res.Completed {
		return 0, fmt.Errorf("after %d edges, %d circuits: %w", res.Applied, len(res.Sizes), ErrNotConnected)
	}

	return res.Answer, nil
}

// Run ranks every pair of points and applies up to budget edges.
//
// Error Conditions:
//   - ErrNilPointSet     : set is nil.
//   - ErrTooFewPoints    : set.Len() < 2.
//   - ErrBadBudget       : budget < 0.
//   - ErrOptionViolation : an option was given an invalid value.
//   - cluster.ErrProductOverflow : the TopK size product does not fit in int64.
//   - ctx.Err() : the context from WithContext was cancelled.
//
// Steps:
//  1. Resolve options and validate inputs.
//  2. Rank all C(n,2) edges (edgerank.Rank, optionally parallel).
//  3. Hand the ranking to the shared loop.
func Run(set *point.Set, budget int, opts ...Option) (*Result, error) {
	// 1. Validate.
	cfg, err := resolve(set, budget, opts)
	if err != nil {
		return nil, err
	}

	// 2. Rank.
	edges, err := edgerank.Rank(set, edgerank.WithWorkers(cfg.Workers), edgerank.WithContext(cfg.Ctx))
	if err != nil {
		return nil, err
	}

	// 3. Loop.
	return run(set, edges, budget, cfg)
}

// RunRanked is Run over a caller-supplied ranking. The edges must be
// ascending by weight and reference valid points.
//
// Error Conditions:
//   - everything Run returns;
//   - edgerank.ErrUnsortedEdges, edgerank.ErrBadEdge from edgerank.Validate.
func RunRanked(set *point.Set, edges []edgerank.Edge, budget int, opts ...Option) (*Result, error) {
	cfg, err := resolve(set, budget, opts)
	if err != nil {
		return nil, err
	}
	if err := edgerank.Validate(edges, set.Len()); err != nil {
		return nil, err
	}

	return run(set, edges, budget, cfg)
}

// resolve applies opts over the defaults and checks the run inputs.
func resolve(set *point.Set, budget int, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if set == nil {
		return cfg, ErrNilPointSet
	}
	if set.Len() < 2 {
		return cfg, fmt.Errorf("got %d: %w", set.Len(), ErrTooFewPoints)
	}
	if budget < 0 {
		return cfg, fmt.Errorf("budget %d: %w", budget, ErrBadBudget)
	}

	return cfg, nil
}

// run is the loop shared by every entry point. Edges are applied strictly in
// the given order; each decision depends on all earlier ones, so this part is
// sequential.
//
// After every applied edge the tracker is checked for full connectivity. The
// first edge that achieves it ends the run, whatever budget remains.
func run(set *point.Set, edges []edgerank.Edge, budget int, cfg Options) (*Result, error) {
	n := set.Len()
	tracker := cluster.New(n)
	res := &Result{Connections: make([]edgerank.Edge, 0, n-1)}

	limit := min(budget, len(edges))
	for step := 0; step < limit; step++ {
		select {
		case <-cfg.Ctx.Done():
			return nil, fmt.Errorf("step %d: %w", step, cfg.Ctx.Err())
		default:
		}

		e := edges[step]
		out := tracker.Link(e.A, e.B)
		res.Applied++
		if out.Changed() {
			res.Connections = append(res.Connections, e)
			res.Weight += e.Weight
		}
		cfg.OnLink(step, e, out)

		if tracker.IsFullyConnected(n) {
			res.Completed = true
			res.Connecting = e
			// Both factors are at most point.MaxCoordinate, so this fits.
			res.Answer = int64(set.At(e.A).X) * int64(set.At(e.B).X)
			break
		}
	}

	res.Sizes = tracker.Sizes()
	if !res.Completed {
		product, err := tracker.TopKSizesProduct(cfg.TopK)
		if err != nil {
			return nil, err
		}
		res.Answer = product
	}

	return res, nil
}
