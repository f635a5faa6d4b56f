// Command gofeatures runs a guided tour of Go language and ORM features.
// Each demonstration is a self-contained routine; the blank imports below
// register the routines and fix their order in the tour.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fcakiroglu16/gofeatures/tour"

	_ "github.com/Fcakiroglu16/gofeatures/langfeat"
	_ "github.com/Fcakiroglu16/gofeatures/ormfeat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "gofeatures",
		Short: "A guided tour of Go language and ORM features",
		Long: `gofeatures walks through a set of self-contained demonstration
routines covering modern Go language features and common ORM mapping
patterns. Run without arguments to play the whole tour in order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, logger, err := newRunner(cmd, noColor)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runner.RunAll(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable styled output")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd(&noColor))
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered routines in tour order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, routine := range tour.Routines() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", routine.Name, routine.Summary)
			}
			return nil
		},
	}
}

func newRunCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run <name>",
		Short: "Run a single routine by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, logger, err := newRunner(cmd, *noColor)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runner.RunOne(cmd.Context(), args[0])
		},
	}
}

// newRunner assembles a Runner from the environment config and the flags.
func newRunner(cmd *cobra.Command, noColorFlag bool) (*tour.Runner, *zap.Logger, error) {
	cfg := tour.LoadConfig()

	logger := zap.NewNop()
	if cfg.Debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("build debug logger: %w", err)
		}
	}

	opts := []tour.RunnerOption{
		tour.WithOutput(cmd.OutOrStdout()),
		tour.WithLogger(logger),
	}
	if noColorFlag || cfg.NoColor {
		opts = append(opts, tour.WithNoColor())
	}
	return tour.NewRunner(opts...), logger, nil
}
