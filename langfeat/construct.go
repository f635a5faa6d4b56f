package langfeat

import (
	"context"
	"fmt"
	"strings"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "constructor-patterns",
		Summary: "Constructor patterns: field literals and functional options",
		Run:     runConstruct,
	})
}

// Report is a toy text report used to demonstrate constructor sugar.
// All fields are unexported; configuration happens through NewReport.
type Report struct {
	title      string
	separator  string
	showTotals bool
	rows       []string
}

// ReportOption configures optional Report behavior.
type ReportOption func(*Report)

// WithSeparator overrides the column separator (default " | ").
func WithSeparator(sep string) ReportOption {
	return func(r *Report) { r.separator = sep }
}

// WithTotals appends a totals row when rendering.
func WithTotals() ReportOption {
	return func(r *Report) { r.showTotals = true }
}

// NewReport creates a Report with the required title and optional settings.
func NewReport(title string, opts ...ReportOption) *Report {
	r := &Report{
		title:     title,
		separator: " | ",
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// AddRow appends one row of cells to the report.
func (r *Report) AddRow(cells ...string) {
	r.rows = append(r.rows, strings.Join(cells, r.separator))
}

// Render returns the report as a single string.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintln(&b, r.title)
	for _, row := range r.rows {
		fmt.Fprintln(&b, row)
	}
	if r.showTotals {
		fmt.Fprintf(&b, "total rows: %d\n", len(r.rows))
	}
	return b.String()
}

func runConstruct(ctx context.Context, p *tour.Printer) error {
	p.Step("struct literals with field names read like named arguments")
	type point struct{ X, Y int }
	origin := point{X: 0, Y: 0}
	p.Value("origin", origin)

	p.Step("required values go in the constructor; the rest are options")
	plain := NewReport("Inventory")
	plain.AddRow("bolt", "40")
	p.Value("plain report", plain.Render())

	p.Step("options compose without N-parameter constructors")
	fancy := NewReport("Inventory", WithSeparator(" / "), WithTotals())
	fancy.AddRow("bolt", "40")
	fancy.AddRow("nut", "75")
	p.Value("fancy report", fancy.Render())

	return nil
}
