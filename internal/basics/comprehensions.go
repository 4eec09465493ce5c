package basics

import (
	"fmt"
	"io"
)

// Squares returns x*x for x in [0, n).
func Squares(n int) []int {
	out := make([]int, 0, n)
	for x := range n {
		out = append(out, x*x)
	}
	return out
}

// EvenSquares returns x*x for the even x in [0, n).
func EvenSquares(n int) []int {
	var out []int
	for x := range n {
		if x%2 == 0 {
			out = append(out, x*x)
		}
	}
	return out
}

// Processed squares even x and cubes odd x for x in [0, n).
func Processed(n int) []int {
	out := make([]int, 0, n)
	for x := range n {
		if x%2 == 0 {
			out = append(out, x*x)
		} else {
			out = append(out, x*x*x)
		}
	}
	return out
}

// Comprehensions shows the loop-and-append form Go uses in place of
// comprehension syntax.
func Comprehensions(w io.Writer) {
	fmt.Fprintf(w, "squares: %v\n", Squares(10))
	fmt.Fprintf(w, "even squares: %v\n", EvenSquares(10))
	fmt.Fprintf(w, "processed: %v\n", Processed(10))
}
