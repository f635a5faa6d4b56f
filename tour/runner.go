package tour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithOutput directs the tutorial output to w instead of stdout.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) { r.out = w }
}

// WithLogger attaches a logger for runner diagnostics.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithNoColor disables styled output.
func WithNoColor() RunnerOption {
	return func(r *Runner) { r.noColor = true }
}

// Runner executes demonstration routines in registration order.
type Runner struct {
	out     io.Writer
	logger  *zap.Logger
	noColor bool
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RunAll executes every registered routine in order. A failing routine does
// not abort the tour; its error is collected and the remaining routines still
// run. The joined errors (if any) are returned after the completion banner.
func (r *Runner) RunAll(ctx context.Context) error {
	routines := Routines()
	p := NewPrinter(r.out, r.noColor)

	var failures []error
	for _, routine := range routines {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("tour cancelled: %w", err)
		}
		if err := r.runOne(ctx, routine, p); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		p.Banner(fmt.Sprintf("Completed %d of %d routines (%d failed).",
			len(routines)-len(failures), len(routines), len(failures)))
		return errors.Join(failures...)
	}
	p.Banner(fmt.Sprintf("All %d routines completed.", len(routines)))
	return nil
}

// RunOne executes a single routine by name.
func (r *Runner) RunOne(ctx context.Context, name string) error {
	routine, ok := Lookup(name)
	if !ok {
		return &UnknownRoutineError{Name: name}
	}
	p := NewPrinter(r.out, r.noColor)
	return r.runOne(ctx, routine, p)
}

func (r *Runner) runOne(ctx context.Context, routine Routine, p *Printer) error {
	r.logger.Debug("running routine", zap.String("name", routine.Name))
	p.Heading(routine.Summary)
	if err := routine.Run(ctx, p); err != nil {
		r.logger.Warn("routine failed",
			zap.String("name", routine.Name), zap.Error(err))
		return &RoutineError{Name: routine.Name, Cause: err}
	}
	r.logger.Debug("routine done", zap.String("name", routine.Name))
	return nil
}
