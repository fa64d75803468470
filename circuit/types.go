// SPDX-License-Identifier: MIT

package circuit

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/junction/cluster"
	"github.com/katalvlaran/junction/edgerank"
)

// ErrNilPointSet indicates that no point set was given.
var ErrNilPointSet = errors.New("circuit: nil point set")

// ErrTooFewPoints indicates a point set with fewer than two points. There is
// no edge to apply, so neither query has a meaningful answer.
var ErrTooFewPoints = errors.New("circuit: need at least two points")

// ErrBadBudget indicates a negative edge budget.
var ErrBadBudget = errors.New("circuit: negative edge budget")

// ErrNotConnected indicates that every edge was applied without all points
// ending up in one circuit.
var ErrNotConnected = errors.New("circuit: points never became fully connected")

// ErrOptionViolation indicates an option constructor received an invalid value.
var ErrOptionViolation = errors.New("circuit: invalid option value")

// Unbounded is the budget that lets a run consume every ranked edge.
const Unbounded = math.MaxInt

// DefaultTopK is how many of the largest circuits the bounded query multiplies.
const DefaultTopK = 3

// LinkHook observes one applied edge. step is the 0-based position of e in
// the ranking; out is what cluster.Tracker.Link reported.
type LinkHook func(step int, e edgerank.Edge, out cluster.Outcome)

// Options configures a run.
type Options struct {
	// Ctx cancels ranking and the linking loop. Never nil after
	// DefaultOptions.
	Ctx context.Context

	// TopK is the number of largest circuit sizes multiplied when a run ends
	// without full connectivity.
	TopK int

	// Workers is forwarded to edgerank.WithWorkers.
	Workers int

	// OnLink runs after every applied edge, before the connectivity check.
	OnLink LinkHook

	// internal error recorded during option parsing
	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns context.Background(), TopK = 3, sequential ranking
// and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		TopK:    DefaultTopK,
		Workers: 1,
		OnLink:  func(int, edgerank.Edge, cluster.Outcome) {},
	}
}

// WithContext sets a context checked before ranking rows and before every
// applied edge. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTopK sets how many of the largest circuits the fallback answer
// multiplies. k < 1 records ErrOptionViolation, returned by the run.
func WithTopK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: TopK must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.TopK = k
	}
}

// WithWorkers sets the number of goroutines used to rank edges.
// k < 1 records ErrOptionViolation, returned by the run.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithOnLink registers a hook called for every applied edge.
func WithOnLink(fn LinkHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLink = fn
		}
	}
}

// Result is everything a run observed.
type Result struct {
	// Answer is the X product of the connecting edge when Completed,
	// otherwise the product of the TopK largest circuit sizes.
	Answer int64

	// Completed reports whether all points ended up in one circuit.
	Completed bool

	// Connecting is the edge that completed connectivity. Zero value unless
	// Completed.
	Connecting edgerank.Edge

	// Applied counts the edges fed to the tracker, NoOps included.
	Applied int

	// Connections lists, in application order, the edges that changed the
	// circuits. It is a minimum spanning forest of the applied prefix and a
	// minimum spanning tree of the points when Completed.
	Connections []edgerank.Edge

	// Weight is the sum of squared distances over Connections.
	Weight int64

	// Sizes holds the circuit sizes at the stop, largest first. Points never
	// linked are not circuits and do not appear.
	Sizes []int
}
