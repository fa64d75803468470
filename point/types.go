// SPDX-License-Identifier: MIT

package point

import (
	"errors"
	"fmt"
)

// ErrNegativeCoordinate indicates that a point has a coordinate below zero.
var ErrNegativeCoordinate = errors.New("point: negative coordinate")

// ErrCoordinateRange indicates that a coordinate exceeds MaxCoordinate.
var ErrCoordinateRange = errors.New("point: coordinate out of range")

// ErrMalformedLine indicates that an input line is not of the form "x,y,z"
// with three base-10 integers.
var ErrMalformedLine = errors.New("point: malformed line")

// MaxCoordinate is the largest accepted coordinate. With every coordinate in
// [0, MaxCoordinate] a squared distance is at most 3·2^60, which fits in
// int64, and the product of two coordinates is at most 2^60.
const MaxCoordinate = 1 << 30

// Point is a position in 3-D integer space.
type Point struct {
	X, Y, Z int
}

// String renders the point in its input form "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// check returns ErrNegativeCoordinate or ErrCoordinateRange for the first
// coordinate outside [0, MaxCoordinate], nil otherwise.
func (p Point) check() error {
	for _, c := range [...]int{p.X, p.Y, p.Z} {
		if err := checkCoordinate(c); err != nil {
			return err
		}
	}

	return nil
}

func checkCoordinate(c int) error {
	switch {
	case c < 0:
		return ErrNegativeCoordinate
	case c > MaxCoordinate:
		return ErrCoordinateRange
	default:
		return nil
	}
}

// SquaredDistance returns dx² + dy² + dz² between p and q.
// Arithmetic is done in int64; for coordinates within [0, MaxCoordinate] the
// result cannot wrap.
func SquaredDistance(p, q Point) int64 {
	dx := int64(p.X) - int64(q.X)
	dy := int64(p.Y) - int64(q.Y)
	dz := int64(p.Z) - int64(q.Z)

	return dx*dx + dy*dy + dz*dz
}
