// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order,
//     validates the result through point.New.
//   - Constructors are declared in impl_*.go next to their documentation.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical sets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/junction/point"
)

// Constructor appends generated points to pts using the resolved
// builderConfig and returns the extended slice. Constructors MUST:
//   - Validate parameters first and return sentinel errors (no panics).
//   - Draw randomness only from cfg.rng, in a fixed order.
type Constructor func(pts []point.Point, cfg builderConfig) ([]point.Point, error)

// Build resolves the builder configuration from bopts and applies all
// constructors in order, concatenating their points into one set.
//
// Errors:
//   - ErrConstructFailed for a nil constructor;
//   - constructor errors wrapped as "Build: %w";
//   - point.ErrCoordinateRange (or ErrNegativeCoordinate) wrapped with
//     ErrConstructFailed when a generated coordinate leaves [0, point.MaxCoordinate].
func Build(bopts []BuilderOption, cons ...Constructor) (*point.Set, error) {
	cfg := newBuilderConfig(bopts...)

	var pts []point.Point
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		var err error
		if pts, err = fn(pts, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	set, err := point.New(pts)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return set, nil
}
