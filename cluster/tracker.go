// SPDX-License-Identifier: MIT
// Package: junction/cluster
//
// tracker.go: arena-backed membership tracking.
//
// Invariants (hold after every Link):
//   • For every live ID c: set(slots[c].members) == {p | membership[p] == c}.
//   • A point appears in at most one live member list.
//   • linked == Σ len(members) over live slots; Len() - linked points are unlinked.
//   • live == number of live slots.

package cluster

import (
	"fmt"
	"math"
	"math/bits"
	"sort"
)

// Tracker maps points to clusters and clusters to their members.
type Tracker struct {
	membership []ID          // point -> cluster, NoCluster when unlinked
	slots      []clusterSlot // cluster -> members; index is the ID
	live       int           // live clusters
	linked     int           // points with membership
}

// New returns an empty tracker for n points. It panics if n < 0.
func New(n int) *Tracker {
	if n < 0 {
		panic(fmt.Sprintf("cluster: New(%d): negative point count", n))
	}

	membership := make([]ID, n)
	for i := range membership {
		membership[i] = NoCluster
	}

	return &Tracker{membership: membership}
}

// Len returns the number of points the tracker was created for.
func (t *Tracker) Len() int {
	return len(t.membership)
}

// Link applies the edge (a, b) and reports what changed.
//
// Policy:
//   - neither linked       → new cluster {a, b}              → Created
//   - exactly one linked   → the other joins that cluster    → Extended
//   - different clusters   → b's cluster moves into a's      → Merged
//   - same cluster         → nothing                         → NoOp
//
// The cluster of the FIRST argument always survives a merge; members of the
// absorbed cluster are appended in their existing order.
//
// Panics if a or b is out of range, or if a == b.
//
// Complexity: O(1) for Created/Extended/NoOp, O(size of b's cluster) for Merged.
func (t *Tracker) Link(a, b int) Outcome {
	t.mustIndex(a)
	t.mustIndex(b)
	if a == b {
		panic(fmt.Sprintf("cluster: Link(%d, %d): self-link", a, b))
	}

	ca, cb := t.membership[a], t.membership[b]
	switch {
	case ca == NoCluster && cb == NoCluster:
		t.create(a, b)
		return Created

	case cb == NoCluster:
		t.attach(ca, b)
		return Extended

	case ca == NoCluster:
		t.attach(cb, a)
		return Extended

	case ca != cb:
		t.absorb(ca, cb)
		return Merged

	default:
		return NoOp
	}
}

// create allocates the next ID for the two-point cluster {a, b}.
func (t *Tracker) create(a, b int) {
	id := ID(len(t.slots))
	t.slots = append(t.slots, clusterSlot{members: []int{a, b}, live: true})
	t.membership[a] = id
	t.membership[b] = id
	t.live++
	t.linked += 2
}

// attach adds the unlinked point p to cluster id.
func (t *Tracker) attach(id ID, p int) {
	t.slots[id].members = append(t.slots[id].members, p)
	t.membership[p] = id
	t.linked++
}

// absorb moves every member of loser into winner and retires loser.
func (t *Tracker) absorb(winner, loser ID) {
	moved := t.slots[loser].members
	for _, p := range moved {
		t.membership[p] = winner
	}
	t.slots[winner].members = append(t.slots[winner].members, moved...)
	t.slots[loser] = clusterSlot{}
	t.live--
}

// mustIndex panics when p is not a valid point index.
func (t *Tracker) mustIndex(p int) {
	if p < 0 || p >= len(t.membership) {
		panic(fmt.Sprintf("cluster: point index %d out of range [0,%d)", p, len(t.membership)))
	}
}

// ClusterCount returns the number of live clusters. Unlinked points are not
// clusters.
func (t *Tracker) ClusterCount() int {
	return t.live
}

// Linked returns how many points belong to some cluster.
func (t *Tracker) Linked() int {
	return t.linked
}

// Unlinked returns how many points have not been linked yet.
func (t *Tracker) Unlinked() int {
	return len(t.membership) - t.linked
}

// IsFullyConnected reports whether exactly one live cluster exists and it
// holds total points.
//
// With a single live cluster every linked point is one of its members, so
// the check reduces to comparing the linked count.
func (t *Tracker) IsFullyConnected(total int) bool {
	return t.live == 1 && t.linked == total
}

// ClusterOf returns the cluster of point p, or (NoCluster, false) when p has
// not been linked. It panics if p is out of range.
func (t *Tracker) ClusterOf(p int) (ID, bool) {
	t.mustIndex(p)
	id := t.membership[p]

	return id, id != NoCluster
}

// Members returns a copy of the ordered member list of cluster id, or nil if
// id is unknown or retired.
func (t *Tracker) Members(id ID) []int {
	if id < 0 || int(id) >= len(t.slots) || !t.slots[id].live {
		return nil
	}
	out := make([]int, len(t.slots[id].members))
	copy(out, t.slots[id].members)

	return out
}

// IDs returns the live cluster IDs in ascending order.
func (t *Tracker) IDs() []ID {
	ids := make([]ID, 0, t.live)
	for i, s := range t.slots {
		if s.live {
			ids = append(ids, ID(i))
		}
	}

	return ids
}

// Sizes returns the member counts of all live clusters, largest first.
func (t *Tracker) Sizes() []int {
	sizes := make([]int, 0, t.live)
	for _, s := range t.slots {
		if s.live {
			sizes = append(sizes, len(s.members))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// TopKSizesProduct multiplies the k largest cluster sizes. When fewer than k
// clusters are live it multiplies all of them. The product over no clusters
// (k <= 0, or nothing linked yet) is the empty product 1.
//
// Error Conditions:
//   - ErrProductOverflow : the product does not fit in int64.
//
// Complexity: O(C log C) for C live clusters.
func (t *Tracker) TopKSizesProduct(k int) (int64, error) {
	product := int64(1)
	for i, size := range t.Sizes() {
		if i >= k {
			break
		}
		hi, lo := bits.Mul64(uint64(product), uint64(size))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, fmt.Errorf("top %d sizes: %w", k, ErrProductOverflow)
		}
		product = int64(lo)
	}

	return product, nil
}
