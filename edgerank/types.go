// SPDX-License-Identifier: MIT

package edgerank

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilPointSet indicates that Rank was called without a point set.
var ErrNilPointSet = errors.New("edgerank: nil point set")

// ErrUnsortedEdges indicates an edge sequence that is not in ascending
// weight order.
var ErrUnsortedEdges = errors.New("edgerank: edges not in ascending weight order")

// ErrBadEdge indicates an edge whose endpoints are not a valid pair A < B.
var ErrBadEdge = errors.New("edgerank: invalid edge endpoints")

// Edge is a candidate connection between the points at indices A and B.
// A is always the smaller index.
type Edge struct {
	A, B   int
	Weight int64
}

// String renders the edge as "A-B(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.A, e.B, e.Weight)
}

// Options configures Rank.
type Options struct {
	// Ctx cancels ranking between rows. Never nil after DefaultOptions.
	Ctx context.Context

	// Workers is the number of goroutines computing distance rows.
	// 1 means fully sequential.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sequential ranking under context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1}
}

// WithContext sets a context checked before every distance row.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines used to compute distances.
// It panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("edgerank: WithWorkers(%d): need at least one worker", k))
	}

	return func(o *Options) {
		o.Workers = k
	}
}

// PairCount returns C(n,2), the number of edges Rank produces for n points.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
