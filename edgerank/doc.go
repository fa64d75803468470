// Package edgerank turns a point.Set into the complete, ranked list of
// candidate connections between its points.
//
// What & Why
//
//   - Every unordered pair of distinct points (A < B) becomes an Edge whose
//     Weight is the squared Euclidean distance between them.
//   - Edges come back in ascending Weight order. Equal weights keep their
//     generation order, which is lexicographic over (A, B): the sort is stable.
//     The clustering driver depends on this exact total order, so it is part
//     of the contract and not an implementation detail.
//
// Rank(set, opts...) ([]Edge, error)
//
//   - Strategy: fill one flat slice of C(n,2) edges row by row (row i holds
//     the pairs (i, j) for j > i), then sort.SliceStable by Weight.
//   - Parallelism: WithWorkers(k) fills rows concurrently through an errgroup
//     limited to k goroutines. Each row owns a disjoint, precomputed window of
//     the slice, so the pre-sort sequence, and therefore the result, is
//     identical to the sequential one.
//   - Complexity: O(n² log n) time, O(n²) memory.
//
// Validate(edges, n) error
//
//	Checks that a caller-supplied sequence is well formed and ascending, so
//	that hand-built edge lists cannot silently break the driver.
//
// Errors (sentinel):
//
//   - ErrNilPointSet   - Rank was handed a nil set.
//   - ErrUnsortedEdges - Validate found a weight lower than its predecessor.
//   - ErrBadEdge       - Validate found A >= B, a negative endpoint or B >= n.
package edgerank
