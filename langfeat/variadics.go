package langfeat

import (
	"context"
	"fmt"
	"strings"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "variadic-parameters",
		Summary: "Variadic parameters: typed, generic, and slice-expanded",
		Run:     runVariadics,
	})
}

// Number is the constraint accepted by the variadic numeric helpers.
type Number interface {
	~int | ~int64 | ~float64
}

// SumOf adds up any number of values of a single numeric type.
// The type parameter is inferred from the arguments.
func SumOf[T Number](vs ...T) T {
	var total T
	for _, v := range vs {
		total += v
	}
	return total
}

// JoinNonEmpty joins the non-empty parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

func runVariadics(ctx context.Context, p *tour.Printer) error {
	p.Step("a generic variadic infers its element type per call site")
	p.Value("SumOf(1, 2, 3)", SumOf(1, 2, 3))
	p.Value("SumOf(1.5, 2.5)", SumOf(1.5, 2.5))

	p.Step("an existing slice expands into the variadic with ...")
	scores := []int64{10, 20, 12}
	p.Value("SumOf(scores...)", SumOf(scores...))

	p.Step("zero arguments are legal; the variadic slice is empty")
	p.Value("SumOf[int]()", SumOf[int]())

	p.Step("variadics compose with ordinary leading parameters")
	p.Value("joined", JoinNonEmpty(", ", "ankara", "", "izmir", "bursa"))

	p.Step("a ...any variadic accepts mixed types, as fmt does")
	p.Value("mixed", fmt.Sprint("id=", 7, " active=", true))

	return nil
}
