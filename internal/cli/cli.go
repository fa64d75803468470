// SPDX-License-Identifier: MIT

// Package cli implements the junction command-line interface.
//
// # Commands
//
//   - solve:    run the bounded and the full-connectivity query on a point list
//   - rank:     print the closest pairs in ranking order
//   - generate: emit a synthetic point list (line, lattice, cloud, blobs)
//
// Point lists are read from the file named as the first argument, or from
// stdin when it is omitted.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; at debug level
// solve logs every applied link. The logger travels in the command context.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/point"
)

const appName = "junction"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Junction wires 3-D points into circuits, nearest pair first",
		Long:         `Junction reads points as "x,y,z" lines, connects them in order of increasing distance and reports how the resulting circuits look after a budget of connections, and which connection finally links every point together.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// readPoints parses the file named by args[0], or stdin when args is empty.
func readPoints(cmd *cobra.Command, args []string) (*point.Set, error) {
	if len(args) == 0 {
		set, err := point.Parse(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("parse stdin: %w", err)
		}
		return set, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open points: %w", err)
	}
	defer f.Close()

	set, err := point.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", args[0], err)
	}

	return set, nil
}
