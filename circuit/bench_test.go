package circuit_test

import (
	"testing"

	"github.com/katalvlaran/junction/builder"
	"github.com/katalvlaran/junction/circuit"
)

// BenchmarkRunUntilConnected measures a full run on a seeded 1000-point cloud
// (~500k ranked edges).
func BenchmarkRunUntilConnected(b *testing.B) {
	set, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomCloud(1000, 100_000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer() // exclude point generation
	for i := 0; i < b.N; i++ {
		_, _ = circuit.RunUntilConnected(set)
	}
}

// BenchmarkRunUntilConnected_Parallel is the same run with ranking spread
// over 8 workers.
func BenchmarkRunUntilConnected_Parallel(b *testing.B) {
	set, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomCloud(1000, 100_000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.RunUntilConnected(set, circuit.WithWorkers(8))
	}
}
