package langfeat

import (
	"context"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "value-semantics",
		Summary: "Value semantics: copies, shared backing arrays, no-copy guards",
		Run:     runValueSemantics,
	})
}

// Point is a small value type; assignment copies both coordinates.
type Point struct {
	X, Y int
}

// Translate returns a moved copy without touching the receiver.
func (p Point) Translate(dx, dy int) Point {
	p.X += dx
	p.Y += dy
	return p
}

// noCopy flags a struct as copy-hostile to go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Accumulator must be passed by pointer; copying it would fork the total.
// The embedded noCopy makes accidental copies a vet error.
type Accumulator struct {
	noCopy noCopy
	total  int
}

// Add increases the running total.
func (a *Accumulator) Add(n int) { a.total += n }

// Total returns the running total.
func (a *Accumulator) Total() int { return a.total }

func runValueSemantics(ctx context.Context, p *tour.Printer) error {
	p.Step("assigning a struct value copies it; the original is untouched")
	a := Point{X: 1, Y: 1}
	b := a
	b.X = 100
	p.Value("a", a)
	p.Value("b", b)

	p.Step("value receivers operate on a copy and return the result")
	moved := a.Translate(3, 4)
	p.Value("moved", moved)
	p.Value("a after Translate", a)

	p.Step("slices inside a copied struct still share the backing array")
	type basket struct{ items []string }
	first := basket{items: []string{"apple", "pear"}}
	second := first
	second.items[0] = "plum"
	p.Value("first.items", first.items)

	p.Step("no-copy guards route mutation through a single pointer")
	acc := &Accumulator{}
	acc.Add(5)
	acc.Add(7)
	p.Value("total", acc.Total())

	return nil
}
