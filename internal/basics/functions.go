package basics

import (
	"fmt"
	"io"
)

// MyFunction joins param1 and param2. Go has no default arguments; a
// variadic tail stands in for the optional second parameter.
func MyFunction(param1 string, param2 ...string) string {
	second := "default"
	if len(param2) > 0 {
		second = param2[0]
	}
	return param1 + " " + second
}

// Square is a function literal bound to a package variable.
var Square = func(x int) int { return x * x }

// Map applies fn to every element.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v))
	}
	return out
}

// Filter keeps the elements for which keep returns true.
func Filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Functions demonstrates named functions, function values and generic
// higher-order helpers.
func Functions(w io.Writer) {
	fmt.Fprintln(w, MyFunction("Hello", "World"))
	fmt.Fprintln(w, MyFunction("Hello"))

	numbers := []int{1, 2, 3, 4, 5}
	squared := Map(numbers, Square)
	evens := Filter(numbers, func(x int) bool { return x%2 == 0 })
	fmt.Fprintf(w, "squared: %v\n", squared)
	fmt.Fprintf(w, "evens: %v\n", evens)
}
