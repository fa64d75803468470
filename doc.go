// Package junction wires points in 3-D space into circuits, nearest pair
// first, and answers two questions about the result.
//
// Given junction boxes as non-negative integer coordinates, every pair is
// ranked by squared Euclidean distance and the pairs are connected in that
// order. A connection between boxes already on the same circuit changes
// nothing but still counts.
//
//   - Bounded query: after at most N connections, multiply the sizes of the
//     three largest circuits. If the boxes became one circuit before N was
//     reached, the answer is the product of the X coordinates of the pair
//     that completed it.
//   - Connectivity query: keep connecting until every box shares one
//     circuit and return the X product of that final pair.
//
// Everything lives in subpackages:
//
//	point/     Point, Set, squared distance and the "x,y,z" text format
//	edgerank/  all-pairs ranking with a stable tie order, optionally parallel
//	cluster/   Tracker: incremental membership with Created/Extended/Merged/NoOp
//	circuit/   the driver: RunBounded, RunUntilConnected, Run, RunRanked
//	builder/   synthetic point sets (line, lattice, random cloud, blobs)
//	cmd/junction  the command-line front end (solve, rank, generate)
//
// Quick start:
//
//	set, _ := point.ParseString("162,817,812\n57,618,57\n906,360,560\n")
//	bounded, _ := circuit.RunBounded(set, 1000)
//	full, _ := circuit.RunUntilConnected(set)
//
// Both queries are deterministic: ties in distance keep the lexicographic
// order of their index pairs, so the same input always yields the same
// connection sequence.
package junction
