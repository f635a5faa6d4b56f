package langfeat

import (
	"context"
	"iter"
	"slices"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "iterator-combinators",
		Summary: "Iterator combinators: CountBy, AggregateBy, Indexed, Chunk",
		Run:     runIterators,
	})
}

// CountBy counts the elements of seq per key.
func CountBy[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K]int {
	counts := make(map[K]int)
	for v := range seq {
		counts[key(v)]++
	}
	return counts
}

// AggregateBy folds the elements of seq per key, starting each group at seed.
// seed is copied by value, so it must be a value type (number, string, small
// struct) rather than a shared reference.
func AggregateBy[T any, K comparable, A any](seq iter.Seq[T], key func(T) K, seed A, fold func(A, T) A) map[K]A {
	out := make(map[K]A)
	for v := range seq {
		k := key(v)
		acc, ok := out[k]
		if !ok {
			acc = seed
		}
		out[k] = fold(acc, v)
	}
	return out
}

// Indexed pairs each element of seq with its zero-based position.
func Indexed[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Chunk yields successive slices of up to size elements. The final chunk may
// be shorter. Each yielded slice is freshly allocated.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size < 1 {
		panic("langfeat: chunk size must be at least 1")
	}
	return func(yield func([]T) bool) {
		chunk := make([]T, 0, size)
		for v := range seq {
			chunk = append(chunk, v)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

func runIterators(ctx context.Context, p *tour.Printer) error {
	words := []string{"ant", "bee", "ape", "bat", "cow", "axolotl"}

	p.Step("CountBy groups a sequence and counts each group")
	byInitial := CountBy(slices.Values(words), func(w string) byte { return w[0] })
	p.Value("words starting with 'a'", byInitial['a'])
	p.Value("words starting with 'b'", byInitial['b'])

	p.Step("AggregateBy folds each group with its own accumulator")
	totalLen := AggregateBy(slices.Values(words),
		func(w string) byte { return w[0] },
		0,
		func(acc int, w string) int { return acc + len(w) })
	p.Value("total length of 'a' words", totalLen['a'])

	p.Step("Indexed pairs elements with positions without a counter variable")
	for i, w := range Indexed(slices.Values(words)) {
		if i >= 2 {
			break // early break propagates into the iterator
		}
		p.Value("indexed", []any{i, w})
	}

	p.Step("Chunk batches a sequence into fixed-size pages")
	for batch := range Chunk(slices.Values(words), 4) {
		p.Value("batch", batch)
	}

	p.Step("slices.Collect bridges an iterator back into a slice")
	pages := slices.Collect(Chunk(slices.Values(words), 3))
	p.Value("page count", len(pages))

	return nil
}
