package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/junction/builder"
	"github.com/katalvlaran/junction/point"
)

// TestLine checks coordinates, origin translation and ordering.
func TestLine(t *testing.T) {
	set, err := builder.Build(
		[]builder.BuilderOption{builder.WithOrigin(point.Point{X: 1, Y: 2, Z: 3})},
		builder.Line(4, 10),
	)
	require.NoError(t, err)

	want := []point.Point{{X: 1, Y: 2, Z: 3}, {X: 11, Y: 2, Z: 3}, {X: 21, Y: 2, Z: 3}, {X: 31, Y: 2, Z: 3}}
	assert.Equal(t, want, set.Points())
}

// TestLattice checks size and x-major emission order.
func TestLattice(t *testing.T) {
	set, err := builder.Build(nil, builder.Lattice(2, 3, 4, 5))
	require.NoError(t, err)
	require.Equal(t, 24, set.Len())

	assert.Equal(t, point.Point{X: 0, Y: 0, Z: 0}, set.At(0))
	assert.Equal(t, point.Point{X: 0, Y: 0, Z: 5}, set.At(1), "z varies fastest")
	assert.Equal(t, point.Point{X: 0, Y: 5, Z: 0}, set.At(4))
	assert.Equal(t, point.Point{X: 5, Y: 10, Z: 15}, set.At(23))
}

// TestRandomCloud_Deterministic verifies that equal seeds give equal clouds
// and that points stay inside the cube.
func TestRandomCloud_Deterministic(t *testing.T) {
	a, err := builder.Build([]builder.BuilderOption{builder.WithSeed(99)}, builder.RandomCloud(50, 20))
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(99)))}, builder.RandomCloud(50, 20))
	require.NoError(t, err)

	assert.Equal(t, a.Points(), b.Points())
	for _, p := range a.Points() {
		assert.True(t, p.X < 20 && p.Y < 20 && p.Z < 20, "point %s outside extent", p)
	}
}

// TestBlobs_Separation verifies that every in-blob distance is below every
// cross-blob distance.
func TestBlobs_Separation(t *testing.T) {
	const k, per = 3, 5
	set, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, builder.Blobs(k, per, 7))
	require.NoError(t, err)
	require.Equal(t, k*per, set.Len())

	var maxIn, minCross int64 = -1, -1
	for i := 0; i < set.Len(); i++ {
		for j := i + 1; j < set.Len(); j++ {
			d := set.SquaredDistance(i, j)
			if i/per == j/per {
				maxIn = max(maxIn, d)
			} else if minCross < 0 || d < minCross {
				minCross = d
			}
		}
	}
	assert.Less(t, maxIn, minCross)
}

// TestBuild_Composes concatenates constructors in order.
func TestBuild_Composes(t *testing.T) {
	set, err := builder.Build(nil, builder.Line(2, 1), builder.Lattice(1, 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []point.Point{{X: 0}, {X: 1}, {}, {Z: 3}}, set.Points())
}

// TestBuild_Errors is a table of rejected parameters.
func TestBuild_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"line n", nil, builder.Line(0, 1), builder.ErrTooFewPoints},
		{"line step", nil, builder.Line(3, 0), builder.ErrBadSize},
		{"lattice dim", nil, builder.Lattice(1, 0, 1, 1), builder.ErrTooFewPoints},
		{"lattice spacing", nil, builder.Lattice(1, 1, 1, 0), builder.ErrBadSize},
		{"cloud n", seeded, builder.RandomCloud(0, 5), builder.ErrTooFewPoints},
		{"cloud extent", seeded, builder.RandomCloud(5, 0), builder.ErrBadSize},
		{"cloud rng", nil, builder.RandomCloud(5, 5), builder.ErrNeedRandSource},
		{"blobs k", seeded, builder.Blobs(0, 5, 5), builder.ErrTooFewPoints},
		{"blobs spread", seeded, builder.Blobs(2, 5, 0), builder.ErrBadSize},
		{"blobs rng", nil, builder.Blobs(2, 5, 5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"past max coordinate", nil, builder.Line(3, point.MaxCoordinate), point.ErrCoordinateRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := builder.Build(tc.opts, tc.con)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestOptions_Panics verifies fail-fast option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithOrigin(point.Point{X: -1}) })
	assert.Panics(t, func() { builder.WithOrigin(point.Point{Y: point.MaxCoordinate + 1}) })
	assert.NotPanics(t, func() { builder.WithOrigin(point.Point{}) })
}
