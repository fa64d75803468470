// SPDX-License-Identifier: MIT
// Package: junction/builder
//
// impl_lattice.go: Lattice(nx, ny, nz, spacing): a regular 3-D grid.
//
// Contract:
//   • nx, ny, nz ≥ 1 (else ErrTooFewPoints); spacing ≥ 1 (else ErrBadSize).
//   • Emission order is x-major: x outermost, z innermost.
//   • Point (i,j,k) is origin + (i*spacing, j*spacing, k*spacing).
//
// Complexity: O(nx*ny*nz) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/junction/point"
)

const (
	methodLattice = "Lattice"
	minLatticeDim = 1
)

// Lattice returns a Constructor emitting an nx×ny×nz grid with the given spacing.
func Lattice(nx, ny, nz, spacing int) Constructor {
	return func(pts []point.Point, cfg builderConfig) ([]point.Point, error) {
		if nx < minLatticeDim || ny < minLatticeDim || nz < minLatticeDim {
			return nil, fmt.Errorf("%s: nx=%d, ny=%d, nz=%d (each must be ≥ %d): %w",
				methodLattice, nx, ny, nz, minLatticeDim, ErrTooFewPoints)
		}
		if spacing < minStep {
			return nil, fmt.Errorf("%s: spacing=%d (must be ≥ %d): %w", methodLattice, spacing, minStep, ErrBadSize)
		}

		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					pts = append(pts, cfg.at(i*spacing, j*spacing, k*spacing))
				}
			}
		}

		return pts, nil
	}
}
