// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng    = nil          (pure/deterministic unless seeded)
//   • origin = (0,0,0)      (no translation)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/junction/point"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Offset added to every generated point.
	origin point.Point
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at returns (x, y, z) translated by the configured origin.
func (c builderConfig) at(x, y, z int) point.Point {
	return point.Point{X: c.origin.X + x, Y: c.origin.Y + y, Z: c.origin.Z + z}
}
