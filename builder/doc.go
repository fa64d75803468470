// Package builder provides reusable "functional-options"-style generators for
// point sets: deterministic shapes for golden tests and seeded random clouds
// for property tests and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     - Build(bopts, cons...): resolve options once, run constructors in order,
//     validate the accumulated points into a *point.Set.
//   - Constructors (Constructor implementations):
//     - Line(n, step):                  n points along X, step apart.
//     - Lattice(nx, ny, nz, spacing):   a regular 3-D grid.
//     - RandomCloud(n, extent):         uniform points in [0,extent)³ (seeded).
//     - Blobs(k, perBlob, spread):      k tight groups far apart (seeded).
//   - Configuration primitives:
//     - BuilderOption: a function that mutates builderConfig before use.
//     - WithSeed / WithRand: RNG for the stochastic constructors.
//     - WithOrigin: translate every generated point.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical sets.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping sentinels (ErrTooFewPoints, ErrBadSize,
//     ErrNeedRandSource, ErrConstructFailed) with the constructor name.
//
// Example:
//
//	set, err := builder.Build(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Blobs(3, 10, 4),
//	    builder.Line(5, 100),
//	)
package builder
