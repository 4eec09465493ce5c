package basics

import (
	"fmt"
	"io"
	"slices"
)

// Number covers the builtin numeric kinds that Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds the elements of s.
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Any reports whether at least one value is true.
func Any(vals ...bool) bool {
	return slices.Contains(vals, true)
}

// All reports whether every value is true. All of nothing is true.
func All(vals ...bool) bool {
	return !slices.Contains(vals, false)
}

// Pair is one element of a Zip result.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip pairs elements by index, stopping at the shorter input.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = Pair[A, B]{a[i], b[i]}
	}
	return out
}

// Builtins covers len, min/max, sums, sorting and the enumerate/zip idioms.
func Builtins(w io.Writer) {
	myList := []any{1, 2, 3, 3.14, 42}
	numbers := []int{5, 3, 1, 4, 2}

	fmt.Fprintln(w, len(myList))
	fmt.Fprintln(w, slices.Max(numbers))
	fmt.Fprintln(w, slices.Min(numbers))
	fmt.Fprintln(w, Sum(numbers))
	fmt.Fprintln(w, slices.Sorted(slices.Values(numbers)))
	fmt.Fprintln(w, Any(false, true))
	fmt.Fprintln(w, All(true, true))
	for i, v := range []string{"a", "b"} {
		fmt.Fprintf(w, "%d %s\n", i, v)
	}
	fmt.Fprintln(w, Zip([]int{1, 2}, []string{"a", "b"}))
	fmt.Fprintf(w, "builtin max: %d\n", max(3, 7, 5))
}
