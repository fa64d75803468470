// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// impl_cloud.go: RandomCloud(n, extent): uniform points in a cube.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewPoints); extent ≥ 1 (else ErrBadSize).
//   • cfg.rng != nil (else ErrNeedRandSource).
//   • Each coordinate is drawn from [0, extent) in X, Y, Z order per point,
//     so a fixed seed always yields the same cloud.

package builder

import (
	"fmt"

	"github.com/katalvlaran/junction/point"
)

const (
	methodRandomCloud = "RandomCloud"
	minExtent         = 1
)

// RandomCloud returns a Constructor emitting n points uniformly distributed
// in [0, extent)³ (plus origin).
func RandomCloud(n, extent int) Constructor {
	return func(pts []point.Point, cfg builderConfig) ([]point.Point, error) {
		if n < minLineN {
			return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodRandomCloud, n, minLineN, ErrTooFewPoints)
		}
		if extent < minExtent {
			return nil, fmt.Errorf("%s: extent=%d (must be ≥ %d): %w", methodRandomCloud, extent, minExtent, ErrBadSize)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomCloud, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			x := cfg.rng.Intn(extent)
			y := cfg.rng.Intn(extent)
			z := cfg.rng.Intn(extent)
			pts = append(pts, cfg.at(x, y, z))
		}

		return pts, nil
	}
}
