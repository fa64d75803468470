// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewPoints indicates a count parameter (n, nx, ny, nz, k, perBlob) below
// the constructor's minimum.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrBadSize indicates a non-count size parameter (step, spacing, extent,
// spread) outside its allowed range.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the points could not be assembled into a
// valid set (nil constructor, or a coordinate overflowed into negatives).
var ErrConstructFailed = errors.New("builder: construction failed")
