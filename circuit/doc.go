// Package circuit connects the points of a point.Set into circuits, nearest
// pair first, and answers the two questions asked of the result.
//
// What & Why
//
//	Think of every point as a junction box. Boxes are wired together in order
//	of increasing distance: the closest pair first, then the next closest, and
//	so on. Wiring two boxes that are already in the same circuit changes
//	nothing. This is Kruskal's algorithm run over the complete graph on the
//	points, with the answer read off at one of two stopping points.
//
// Queries
//
//   - RunBounded(set, budget) (int64, error)
//     Apply the first budget edges. If the circuits become one spanning
//     circuit on the way, stop at once and return the product of the X
//     coordinates of the two boxes joined by that last edge. Otherwise
//     return the product of the three largest circuit sizes.
//
//   - RunUntilConnected(set) (int64, error)
//     Keep wiring until every box is in one circuit and return the X product
//     of the connecting edge.
//
//   - Run(set, budget) (*Result, error)
//     The shared loop behind both queries, returning everything it saw:
//     edges applied, the connecting edge, the spanning forest and its weight,
//     and the circuit sizes at the stop.
//
//   - RunRanked(set, edges, budget) (*Result, error)
//     The same loop over a caller-supplied ranking, validated first.
//
// Determinism
//
//	Edges are ranked by squared distance with a stable tie-break on the
//	(A, B) index pair (see package edgerank). When two edges tie at the moment
//	connectivity is reached, the earlier pair in index order is the one
//	reported as connecting.
//
// Errors (sentinel):
//
//   - ErrNilPointSet    - no point set given.
//   - ErrTooFewPoints   - fewer than two points; no edge exists.
//   - ErrBadBudget      - budget < 0.
//   - ErrNotConnected   - RunUntilConnected consumed every edge without
//     reaching a single circuit.
//   - ErrOptionViolation - an option received a meaningless value.
//
// A run also fails with cluster.ErrProductOverflow when the size product
// does not fit in int64, and with the context error once the context given
// to WithContext is cancelled. Answers are int64: X coordinates are capped at
// point.MaxCoordinate, so the X product of a connecting edge always fits.
//
// Complexity: O(n² log n) time and O(n²) memory, dominated by ranking. The
// loop itself moves absorbed members once per merge, O(n²) in the worst case.
package circuit
