// Package point holds the immutable, ordered 3-D point sets that every other
// junction package works on.
//
// What & Why
//
//   - A Point is an integer triple (X, Y, Z). Coordinates are non-negative.
//   - A Set is the single source of truth for point identity: a point is
//     referred to by its 0-based index in the Set, never by its coordinates,
//     so two boxes sharing the same position stay distinct.
//   - Distances are squared Euclidean distances (dx² + dy² + dz²) as int64.
//     No square root is taken: ordering is all the clustering engine needs,
//     and integers keep the ordering exact. Coordinates are capped at
//     MaxCoordinate so no distance can overflow int64.
//
// Construction
//
//   - New(points)         - copy and validate an in-memory slice.
//   - Parse(r)            - read "x,y,z" lines from an io.Reader.
//   - ParseString(s)      - convenience wrapper over Parse.
//
// Errors (sentinel):
//
//   - ErrNegativeCoordinate - a coordinate is below zero.
//   - ErrCoordinateRange    - a coordinate is above MaxCoordinate (2^30).
//   - ErrMalformedLine      - a text line is not three comma-separated integers.
//
// Errors are wrapped with the offending index or line number; branch on them
// with errors.Is.
//
// Example:
//
//	set, err := point.ParseString("162,817,812\n57,618,57\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(set.Len(), set.SquaredDistance(0, 1))
package point
