// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// impl_blobs.go: Blobs(k, perBlob, spread): k tight groups far apart.
//
// Canonical model:
//   • Blob b occupies the cube [b*sep, b*sep+spread) × [0,spread) × [0,spread),
//     with sep = spread * blobSeparation.
//   • Any in-blob squared distance is < 3*spread²; any cross-blob one is
//     ≥ (sep-spread)². With blobSeparation = 100 every in-blob edge ranks
//     before every cross-blob edge, so the circuits are known in advance.
//
// Contract:
//   • k ≥ 1 and perBlob ≥ 1 (else ErrTooFewPoints); spread ≥ 1 (else ErrBadSize).
//   • cfg.rng != nil (else ErrNeedRandSource).
//   • Emission order: blob 0 first; inside a blob, draw order X, Y, Z.

package builder

import (
	"fmt"

	"github.com/katalvlaran/junction/point"
)

const (
	methodBlobs    = "Blobs"
	minBlobs       = 1
	blobSeparation = 100
)

// Blobs returns a Constructor emitting k groups of perBlob points each.
func Blobs(k, perBlob, spread int) Constructor {
	return func(pts []point.Point, cfg builderConfig) ([]point.Point, error) {
		if k < minBlobs || perBlob < minBlobs {
			return nil, fmt.Errorf("%s: k=%d, perBlob=%d (each must be ≥ %d): %w",
				methodBlobs, k, perBlob, minBlobs, ErrTooFewPoints)
		}
		if spread < minExtent {
			return nil, fmt.Errorf("%s: spread=%d (must be ≥ %d): %w", methodBlobs, spread, minExtent, ErrBadSize)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodBlobs, ErrNeedRandSource)
		}

		sep := spread * blobSeparation
		for b := 0; b < k; b++ {
			for i := 0; i < perBlob; i++ {
				x := b*sep + cfg.rng.Intn(spread)
				y := cfg.rng.Intn(spread)
				z := cfg.rng.Intn(spread)
				pts = append(pts, cfg.at(x, y, z))
			}
		}

		return pts, nil
	}
}
