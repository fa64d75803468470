package point_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/junction/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_CopiesInput verifies that a Set is isolated from later writes to
// the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	src := []point.Point{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}
	set, err := point.New(src)
	require.NoError(t, err)

	src[0].X = 99
	assert.Equal(t, 1, set.At(0).X, "set must not alias the input slice")
	assert.Equal(t, 2, set.Len())

	// Points() is a copy too.
	pts := set.Points()
	pts[1].Z = 0
	assert.Equal(t, 6, set.At(1).Z)
}

// TestNew_NegativeCoordinate verifies validation of coordinates.
func TestNew_NegativeCoordinate(t *testing.T) {
	_, err := point.New([]point.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: -1, Z: 0}})
	assert.ErrorIs(t, err, point.ErrNegativeCoordinate)
	assert.Contains(t, err.Error(), "point 1")
}

// TestNew_CoordinateRange verifies the upper bound that keeps squared
// distances inside int64.
func TestNew_CoordinateRange(t *testing.T) {
	_, err := point.New([]point.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: point.MaxCoordinate + 1, Y: 0, Z: 0}})
	assert.ErrorIs(t, err, point.ErrCoordinateRange)
	assert.Contains(t, err.Error(), "point 2")

	_, err = point.New([]point.Point{{X: 0, Y: 0, Z: point.MaxCoordinate + 1}})
	assert.ErrorIs(t, err, point.ErrCoordinateRange)
}

// TestSquaredDistance_AtBound checks that the farthest pair allowed by
// MaxCoordinate still yields an exact, positive distance.
func TestSquaredDistance_AtBound(t *testing.T) {
	const m = point.MaxCoordinate
	set, err := point.New([]point.Point{{X: 0, Y: 0, Z: 0}, {X: m, Y: m, Z: m}})
	require.NoError(t, err)

	assert.Equal(t, int64(3)*int64(m)*int64(m), set.SquaredDistance(0, 1))
	assert.Positive(t, set.SquaredDistance(0, 1))
}

// TestSquaredDistance checks the integer metric and its symmetry.
func TestSquaredDistance(t *testing.T) {
	set, err := point.New([]point.Point{{X: 162, Y: 817, Z: 812}, {X: 425, Y: 690, Z: 689}})
	require.NoError(t, err)

	// 263² + 127² + 123² = 69169 + 16129 + 15129
	assert.Equal(t, int64(100427), set.SquaredDistance(0, 1))
	assert.Equal(t, set.SquaredDistance(0, 1), set.SquaredDistance(1, 0))
	assert.Zero(t, set.SquaredDistance(1, 1))
}

// TestParse_Valid covers whitespace, CRLF and trailing blank lines.
func TestParse_Valid(t *testing.T) {
	set, err := point.ParseString("1,2,3\r\n 4, 5 ,6 \n7,8,9\n\n\n")
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	assert.Equal(t, point.Point{X: 4, Y: 5, Z: 6}, set.At(1))
	assert.Equal(t, point.Point{X: 7, Y: 8, Z: 9}, set.At(2))
}

// TestParse_Empty verifies that an empty listing is an empty set, not an error.
func TestParse_Empty(t *testing.T) {
	set, err := point.ParseString("")
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}

// TestParse_Errors is a table of rejected listings.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  string
	}{
		{"two fields", "1,2,3\n4,5\n", point.ErrMalformedLine, "line 2"},
		{"four fields", "1,2,3,4\n", point.ErrMalformedLine, "line 1"},
		{"not a number", "1,x,3\n", point.ErrMalformedLine, "line 1"},
		{"blank inside", "1,2,3\n\n4,5,6\n", point.ErrMalformedLine, "line 2"},
		{"negative", "1,2,3\n1,2,-3\n", point.ErrNegativeCoordinate, "line 2"},
		{"above bound", "0,0,0\n1,0,0\n4000000000,0,0\n", point.ErrCoordinateRange, "line 3"},
		{"overflows int", "1,2,99999999999999999999999\n", point.ErrCoordinateRange, "line 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := point.ParseString(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestFormat_RoundTrip writes a parsed set back out and compares the text.
func TestFormat_RoundTrip(t *testing.T) {
	const input = "162,817,812\n57,618,57\n906,360,560\n"
	set, err := point.Parse(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, set.Format(&buf))
	assert.Equal(t, input, buf.String())
}

// TestSet_NilLen verifies the nil receiver convenience.
func TestSet_NilLen(t *testing.T) {
	var s *point.Set
	assert.Zero(t, s.Len())
}
