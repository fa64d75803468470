// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/builder"
)

// Generator kinds accepted by --kind.
const (
	kindLine    = "line"
	kindLattice = "lattice"
	kindCloud   = "cloud"
	kindBlobs   = "blobs"
)

// generateCommand creates the generate command emitting synthetic point lists.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		kind   string
		count  int
		size   int
		groups int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a synthetic point list",
		Long: `Generate writes "x,y,z" lines suitable for solve and rank.

Kinds:
  line     --count points along X, --size apart
  lattice  a --count × --count × --count grid with spacing --size
  cloud    --count uniform points in [0,--size)³ (seeded)
  blobs    --groups tight groups of --count points, spread --size (seeded)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := constructorFor(kind, count, size, groups)
			if err != nil {
				return err
			}

			set, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed)}, con)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated", "kind", kind, "points", set.Len(), "seed", seed)

			return set.Format(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindCloud, "generator: line, lattice, cloud, blobs")
	cmd.Flags().IntVarP(&count, "count", "n", 20, "points (per axis for lattice, per group for blobs)")
	cmd.Flags().IntVarP(&size, "size", "s", 1000, "step, spacing, extent or spread depending on --kind")
	cmd.Flags().IntVarP(&groups, "groups", "g", 3, "number of groups for blobs")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for cloud and blobs")

	return cmd
}

// constructorFor maps a --kind value to its builder constructor.
func constructorFor(kind string, count, size, groups int) (builder.Constructor, error) {
	switch kind {
	case kindLine:
		return builder.Line(count, size), nil
	case kindLattice:
		return builder.Lattice(count, count, count, size), nil
	case kindCloud:
		return builder.RandomCloud(count, size), nil
	case kindBlobs:
		return builder.Blobs(groups, count, size), nil
	default:
		return nil, fmt.Errorf("unknown --kind %q (want %s, %s, %s or %s)", kind, kindLine, kindLattice, kindCloud, kindBlobs)
	}
}
