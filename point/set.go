// SPDX-License-Identifier: MIT

package point

import (
	"bufio"
	"fmt"
	"io"
)

// Set is an immutable ordered sequence of points. The index of a point in
// the Set is its identity for the rest of the engine.
//
// A Set is safe for concurrent reads; nothing mutates it after New returns.
type Set struct {
	points []Point
}

// New validates points and returns a Set holding a private copy of them.
//
// Error Conditions:
//   - ErrNegativeCoordinate : if any coordinate is below zero (wrapped with the index).
//   - ErrCoordinateRange    : if any coordinate exceeds MaxCoordinate.
//
// Complexity: O(n) time and memory.
func New(points []Point) (*Set, error) {
	// 1. Validate every point before copying anything.
	for i, p := range points {
		if err := p.check(); err != nil {
			return nil, fmt.Errorf("point %d (%s): %w", i, p, err)
		}
	}

	// 2. Copy so later changes to the caller's slice cannot leak in.
	cp := make([]Point, len(points))
	copy(cp, points)

	return &Set{points: cp}, nil
}

// Len returns the number of points in the set. A nil *Set has length zero.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.points)
}

// At returns the point at index i. It panics if i is out of range, like a
// slice index would.
func (s *Set) At(i int) Point {
	return s.points[i]
}

// Points returns a copy of the points in input order.
func (s *Set) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)

	return cp
}

// SquaredDistance returns the squared Euclidean distance between the points
// at indices i and j.
func (s *Set) SquaredDistance(i, j int) int64 {
	return SquaredDistance(s.points[i], s.points[j])
}

// Format writes the set as one "x,y,z" line per point, the same form Parse
// accepts.
func (s *Set) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range s.points {
		if _, err := fmt.Fprintln(bw, p.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
