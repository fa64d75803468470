// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves return errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/junction/point"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// any point is generated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin translates every generated point by o.
// Panics if o has a coordinate outside [0, point.MaxCoordinate].
func WithOrigin(o point.Point) BuilderOption {
	if _, err := point.New([]point.Point{o}); err != nil {
		panic(fmt.Sprintf("builder: WithOrigin(%s): %v", o, err))
	}
	return func(c *builderConfig) {
		c.origin = o
	}
}
