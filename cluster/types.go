// SPDX-License-Identifier: MIT
// Package: junction/cluster
//
// types.go: identifiers and link outcomes.

package cluster

import "errors"

// ErrProductOverflow indicates that a product of cluster sizes does not fit
// in int64.
var ErrProductOverflow = errors.New("cluster: size product overflows int64")

// ID identifies a cluster. IDs are assigned from 0 upward in creation order
// and never reused within one Tracker.
type ID int

// NoCluster marks a point that has not been linked to anything yet.
const NoCluster ID = -1

// Outcome reports what a Link call did to the tracker state.
type Outcome int

const (
	// NoOp: both points already shared a cluster.
	NoOp Outcome = iota
	// Created: a new cluster holding exactly the two points.
	Created
	// Extended: one unlinked point joined the other point's cluster.
	Extended
	// Merged: two clusters became one; the second argument's cluster retired.
	Merged
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Created:
		return "created"
	case Extended:
		return "extended"
	case Merged:
		return "merged"
	default:
		return "unknown"
	}
}

// Changed reports whether the outcome altered the tracker state.
func (o Outcome) Changed() bool {
	return o != NoOp
}

// clusterSlot is one arena entry. A retired slot keeps its place so IDs stay
// stable, but drops its member list.
type clusterSlot struct {
	members []int
	live    bool
}
