package tour

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// Color palette for the tutorial output.
var (
	headingColor = lipgloss.Color("#8BC34A")
	stepColor    = lipgloss.Color("#2196F3")
	caughtColor  = lipgloss.Color("#e53935")
	bannerColor  = lipgloss.Color("#FFC107")
)

// styleSet holds the lipgloss styles used by a Printer.
type styleSet struct {
	heading lipgloss.Style
	step    lipgloss.Style
	label   lipgloss.Style
	caught  lipgloss.Style
	banner  lipgloss.Style
}

func colorStyles() styleSet {
	return styleSet{
		heading: lipgloss.NewStyle().Bold(true).Foreground(headingColor),
		step:    lipgloss.NewStyle().Foreground(stepColor),
		label:   lipgloss.NewStyle().Bold(true),
		caught:  lipgloss.NewStyle().Foreground(caughtColor),
		banner:  lipgloss.NewStyle().Bold(true).Foreground(bannerColor),
	}
}

func plainStyles() styleSet {
	return styleSet{
		heading: lipgloss.NewStyle(),
		step:    lipgloss.NewStyle(),
		label:   lipgloss.NewStyle(),
		caught:  lipgloss.NewStyle(),
		banner:  lipgloss.NewStyle(),
	}
}

// Printer writes the narrated tutorial output of a routine.
// All demonstration prose goes through the Printer so that tests can capture
// it and the runner can restyle it.
type Printer struct {
	w      io.Writer
	styles styleSet
	dumper *spew.ConfigState
}

// NewPrinter creates a Printer writing to w. When noColor is true, all
// styling is disabled and plain text is emitted.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	styles := colorStyles()
	if noColor {
		styles = plainStyles()
	}
	return &Printer{
		w:      w,
		styles: styles,
		dumper: &spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true},
	}
}

// Heading prints a section heading with an underline.
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.heading.Render(title))
	fmt.Fprintln(p.w, p.styles.heading.Render(strings.Repeat("=", len(title))))
}

// Step prints a single narrated step of the demonstration.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.step.Render("-> ")+fmt.Sprintf(format, args...))
}

// Value prints a labeled value using %v formatting.
func (p *Printer) Value(label string, v any) {
	fmt.Fprintf(p.w, "   %s: %v\n", p.styles.label.Render(label), v)
}

// Dump prints a labeled deep dump of a struct or collection.
func (p *Printer) Dump(label string, v any) {
	fmt.Fprintf(p.w, "   %s:\n", p.styles.label.Render(label))
	for _, line := range strings.Split(strings.TrimRight(p.dumper.Sdump(v), "\n"), "\n") {
		fmt.Fprintf(p.w, "   %s\n", line)
	}
}

// Caught prints an error that the demonstration caught on purpose.
func (p *Printer) Caught(err error) {
	fmt.Fprintf(p.w, "   %s %v\n", p.styles.caught.Render("caught:"), err)
}

// Banner prints the closing banner of a tour run.
func (p *Printer) Banner(text string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.banner.Render(text))
}
