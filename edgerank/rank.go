// SPDX-License-Identifier: MIT

package edgerank

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/junction/point"
)

// Rank returns every edge of set in ascending weight order, ties kept in
// lexicographic (A, B) order.
//
// Error Conditions:
//   - ErrNilPointSet : if set is nil.
//   - ctx.Err()      : the context from WithContext was cancelled before
//     every row was filled (wrapped with the point count).
//
// Steps:
//  1. Resolve options; n < 2 yields an empty (non-nil) slice.
//  2. Allocate one slice of C(n,2) edges; row i starts at rowOffset(n, i).
//  3. Fill rows, sequentially or through an errgroup limited to Workers,
//     checking the context before each row.
//  4. sort.SliceStable by Weight.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Rank(set *point.Set, opts ...Option) ([]Edge, error) {
	if set == nil {
		return nil, ErrNilPointSet
	}

	// 1. Options, last wins.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := set.Len()
	edges := make([]Edge, PairCount(n))
	if n < 2 {
		return edges, nil
	}

	// 2-3. Fill rows. Rows never overlap, so workers need no locking.
	if err := fillRows(cfg, set, edges); err != nil {
		return nil, fmt.Errorf("rank %d points: %w", n, err)
	}

	// 4. Stable sort keeps generation order for equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	return edges, nil
}

// fillRows fills every row of edges, stopping at the first cancellation.
func fillRows(cfg Options, set *point.Set, edges []Edge) error {
	n := set.Len()
	if cfg.Workers <= 1 {
		for i := 0; i < n-1; i++ {
			if err := cfg.Ctx.Err(); err != nil {
				return err
			}
			fillRow(set, edges, i)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(cfg.Ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < n-1; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fillRow(set, edges, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Workers that started before the cancellation return nil.
	return cfg.Ctx.Err()
}

// fillRow writes the pairs (i, j), j > i, into their window of edges.
func fillRow(set *point.Set, edges []Edge, i int) {
	n := set.Len()
	k := rowOffset(n, i)
	for j := i + 1; j < n; j++ {
		edges[k] = Edge{A: i, B: j, Weight: set.SquaredDistance(i, j)}
		k++
	}
}

// rowOffset is the index of edge (i, i+1) in the flat row-major pair list:
// rows 0..i-1 hold (n-1) + (n-2) + ... + (n-i) pairs.
func rowOffset(n, i int) int {
	return i * (2*n - i - 1) / 2
}

// Validate checks that edges is a sequence the driver can consume for n
// points: every edge has 0 <= A < B < n and weights never decrease.
//
// Error Conditions:
//   - ErrBadEdge       : A < 0, A >= B or B >= n (wrapped with the position).
//   - ErrUnsortedEdges : edges[k].Weight < edges[k-1].Weight (wrapped with k).
//
// Complexity: O(len(edges)).
func Validate(edges []Edge, n int) error {
	for k, e := range edges {
		if e.A < 0 || e.A >= e.B || e.B >= n {
			return fmt.Errorf("edge %d %s: %w", k, e, ErrBadEdge)
		}
		if k > 0 && e.Weight < edges[k-1].Weight {
			return fmt.Errorf("edge %d %s after %s: %w", k, e, edges[k-1], ErrUnsortedEdges)
		}
	}

	return nil
}
