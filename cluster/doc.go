// Package cluster tracks which points have been linked into which circuit
// while edges are applied one at a time.
//
// Model
//
//   - Points are dense indices 0..n-1 (the index in a point.Set).
//   - A point that has never been linked has NO cluster: it is an implicit
//     singleton, invisible to ClusterCount, Sizes and TopKSizesProduct.
//   - A cluster is created by the first link between two unlinked points and
//     gets the next ID; IDs are never reused.
//   - Clusters only grow. Linking two different clusters moves every member of
//     the second argument's cluster into the first argument's cluster and
//     retires the second ID.
//
// Storage is an arena with back-references:
//
//	membership []ID          // indexed by point, NoCluster when unlinked
//	slots      []clusterSlot // indexed by ID, owns the ordered member list
//
// No maps are involved; every query is a slice index.
//
// Link outcomes:
//
//	Created  - neither point was linked; a new two-member cluster exists.
//	Extended - exactly one point was linked; the other joined its cluster.
//	Merged   - both were linked in different clusters; the second was absorbed.
//	NoOp     - both already shared a cluster; nothing changed.
//
// Preconditions (panics, not errors):
//
//   - indices must lie in [0, Len());
//   - a point cannot be linked to itself.
//
// A Tracker is not safe for concurrent use; a clustering run owns exactly one.
package cluster
