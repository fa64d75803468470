// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/circuit"
	"github.com/katalvlaran/junction/cluster"
	"github.com/katalvlaran/junction/edgerank"
	"github.com/katalvlaran/junction/internal/config"
	"github.com/katalvlaran/junction/point"
)

// solveCommand creates the solve command running both queries.
func (c *CLI) solveCommand() *cobra.Command {
	var configPath string
	flags := config.Default()

	cmd := &cobra.Command{
		Use:   "solve [points.txt]",
		Short: "Answer the bounded and the full-connectivity query",
		Long: `Solve ranks every pair of points by squared distance and wires them
in that order.

The bounded answer applies at most --budget connections and multiplies the
sizes of the --top-k largest circuits (or, if everything got connected on the
way, multiplies the X coordinates of the last pair wired).

The connected answer keeps wiring until one circuit holds every point and
multiplies the X coordinates of the pair that completed it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flags)
			if err != nil {
				return err
			}
			set, err := readPoints(cmd, args)
			if err != nil {
				return err
			}
			return c.runSolve(cmd, set, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML or YAML config file")
	cmd.Flags().IntVarP(&flags.Budget, "budget", "b", flags.Budget, "edge budget of the bounded query")
	cmd.Flags().IntVarP(&flags.TopK, "top-k", "k", flags.TopK, "number of largest circuits multiplied")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "goroutines used to rank edges")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "output format: text, json")

	return cmd
}

// resolveConfig layers the config file (if any) over the defaults and then
// applies the flags the user actually set.
func resolveConfig(cmd *cobra.Command, path string, flags config.Config) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("budget") {
		cfg.Budget = flags.Budget
	}
	if fs.Changed("top-k") {
		cfg.TopK = flags.TopK
	}
	if fs.Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if fs.Changed("format") {
		cfg.Format = flags.Format
	}

	return cfg, cfg.Validate()
}

// solveReport is the JSON shape of a solve run.
type solveReport struct {
	Points    int             `json:"points"`
	Edges     int             `json:"edges"`
	Bounded   boundedReport   `json:"bounded"`
	Connected connectedReport `json:"connected"`
}

type boundedReport struct {
	Budget    int   `json:"budget"`
	Answer    int64 `json:"answer"`
	Completed bool  `json:"completed"`
	Applied   int   `json:"applied"`
	Sizes     []int `json:"sizes"`
}

type connectedReport struct {
	Answer     int64      `json:"answer"`
	Applied    int        `json:"applied"`
	Connecting edgeReport `json:"connecting"`
	Weight     int64      `json:"weight"`
}

type edgeReport struct {
	A      point.Point `json:"a"`
	B      point.Point `json:"b"`
	Weight int64       `json:"weight"`
}

// runSolve ranks once and replays the ranking for both queries.
func (c *CLI) runSolve(cmd *cobra.Command, set *point.Set, cfg config.Config) error {
	logger := loggerFromContext(cmd.Context())
	if set.Len() < 2 {
		return fmt.Errorf("%d points: %w", set.Len(), circuit.ErrTooFewPoints)
	}

	prog := newProgress(logger)
	edges, err := edgerank.Rank(set,
		edgerank.WithWorkers(cfg.Workers),
		edgerank.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Ranked %d edges over %d points", len(edges), set.Len()))

	opts := []circuit.Option{
		circuit.WithContext(cmd.Context()),
		circuit.WithTopK(cfg.TopK),
		circuit.WithOnLink(linkLogger(logger)),
	}

	bounded, err := circuit.RunRanked(set, edges, cfg.Budget, opts...)
	if err != nil {
		return fmt.Errorf("bounded query: %w", err)
	}
	logger.Info("Bounded query done", "applied", bounded.Applied, "circuits", len(bounded.Sizes), "completed", bounded.Completed)

	connected, err := circuit.RunRanked(set, edges, circuit.Unbounded, opts...)
	if err != nil {
		return fmt.Errorf("connectivity query: %w", err)
	}
	if !connected.Completed {
		return fmt.Errorf("connectivity query: %w", circuit.ErrNotConnected)
	}
	logger.Info("Connectivity query done", "applied", connected.Applied, "connecting", connected.Connecting)

	report := solveReport{
		Points: set.Len(),
		Edges:  len(edges),
		Bounded: boundedReport{
			Budget:    cfg.Budget,
			Answer:    bounded.Answer,
			Completed: bounded.Completed,
			Applied:   bounded.Applied,
			Sizes:     bounded.Sizes,
		},
		Connected: connectedReport{
			Answer:  connected.Answer,
			Applied: connected.Applied,
			Connecting: edgeReport{
				A:      set.At(connected.Connecting.A),
				B:      set.At(connected.Connecting.B),
				Weight: connected.Connecting.Weight,
			},
			Weight: connected.Weight,
		},
	}

	return writeReport(cmd.OutOrStdout(), cfg.Format, report)
}

// linkLogger returns a hook logging every applied edge at debug level.
func linkLogger(logger *log.Logger) circuit.LinkHook {
	return func(step int, e edgerank.Edge, out cluster.Outcome) {
		logger.Debug("link", "step", step, "a", e.A, "b", e.B, "weight", e.Weight, "outcome", out)
	}
}

func writeReport(w io.Writer, format string, r solveReport) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	_, err := fmt.Fprintf(w, "bounded (budget %d): %d\nconnected: %d\n", r.Bounded.Budget, r.Bounded.Answer, r.Connected.Answer)
	return err
}
