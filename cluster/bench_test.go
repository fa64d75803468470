package cluster_test

import (
	"testing"

	"github.com/katalvlaran/junction/cluster"
)

// BenchmarkLink_Chain links 10k points into one chain: one Created, then
// Extended every step.
func BenchmarkLink_Chain(b *testing.B) {
	const n = 10_000
	for i := 0; i < b.N; i++ {
		tr := cluster.New(n)
		for p := 1; p < n; p++ {
			tr.Link(p-1, p)
		}
	}
}

// BenchmarkLink_Absorb grows one cluster by absorbing fresh pairs, so each
// Merged moves only the two-member loser.
func BenchmarkLink_Absorb(b *testing.B) {
	const n = 10_000
	for i := 0; i < b.N; i++ {
		tr := cluster.New(n)
		tr.Link(0, 1)
		for p := 2; p+1 < n; p += 2 {
			tr.Link(p, p+1)
			tr.Link(0, p)
		}
	}
}
