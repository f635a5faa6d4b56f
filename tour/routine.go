// Package tour provides the registry, runner, and styled console printer for
// the feature demonstration routines.
package tour

import "context"

// Routine is a single self-contained demonstration: it constructs toy input,
// exercises one feature, and narrates the result through the Printer.
type Routine struct {
	// Name identifies the routine on the command line (kebab-case).
	Name string
	// Summary is a one-line description shown by the list command.
	Summary string
	// Run executes the demonstration. Output goes through p; diagnostics
	// that are not part of the tutorial prose belong on the runner's logger.
	Run func(ctx context.Context, p *Printer) error
}
