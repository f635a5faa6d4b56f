// Package langfeat contains the language and standard-library demonstration
// routines of the tour. Each file demonstrates one feature and registers one
// routine; the routines share no state.
package langfeat

import (
	"context"
	"maps"
	"slices"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "collection-construction",
		Summary: "Collection construction: literals, Concat, Clone, and spreads",
		Run:     runCollections,
	})
}

func runCollections(ctx context.Context, p *tour.Printer) error {
	p.Step("slice literals build a slice in place")
	primes := []int{2, 3, 5, 7}
	p.Value("primes", primes)

	p.Step("slices.Concat splices several slices into a fresh one")
	low := []int{1, 2, 3}
	high := []int{8, 9}
	combined := slices.Concat(low, primes, high)
	p.Value("combined", combined)

	p.Step("append with ... spreads one slice into another")
	spread := append([]int{0}, primes...)
	p.Value("spread", spread)

	p.Step("slices.Clone copies the backing array, so writes don't alias")
	clone := slices.Clone(primes)
	clone[0] = 99
	p.Value("clone", clone)
	p.Value("primes after clone write", primes)

	p.Step("map literals and maps.Clone behave the same way")
	stock := map[string]int{"bolt": 40, "nut": 75}
	shadow := maps.Clone(stock)
	shadow["bolt"] = 0
	p.Value("stock[bolt]", stock["bolt"])
	p.Value("shadow[bolt]", shadow["bolt"])

	p.Step("slices.Sorted over maps.Keys gives deterministic iteration")
	p.Value("sorted keys", slices.Sorted(maps.Keys(stock)))

	return nil
}
