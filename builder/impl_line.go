// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// impl_line.go: Line(n, step): n collinear points along X.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewPoints), step ≥ 1 (else ErrBadSize).
//   • Point i is origin + (i*step, 0, 0), emitted in ascending i.
//
// Every neighbor distance is step², so the ranking is a long run of ties:
// a convenient fixture for the stable tie-break.

package builder

import (
	"fmt"

	"github.com/katalvlaran/junction/point"
)

const (
	methodLine = "Line"
	minLineN   = 1
	minStep    = 1
)

// Line returns a Constructor emitting n points spaced step apart along X.
func Line(n, step int) Constructor {
	return func(pts []point.Point, cfg builderConfig) ([]point.Point, error) {
		if n < minLineN {
			return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodLine, n, minLineN, ErrTooFewPoints)
		}
		if step < minStep {
			return nil, fmt.Errorf("%s: step=%d (must be ≥ %d): %w", methodLine, step, minStep, ErrBadSize)
		}

		for i := 0; i < n; i++ {
			pts = append(pts, cfg.at(i*step, 0, 0))
		}

		return pts, nil
	}
}
