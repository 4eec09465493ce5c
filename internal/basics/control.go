package basics

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// ControlFlow covers if/else chains, the range forms of for, and the
// condition-only for that replaces while.
func ControlFlow(w io.Writer) {
	booleanTrue, booleanFalse := true, false

	// Conditionals
	if booleanTrue {
		fmt.Fprintln(w, "This is true")
	} else if booleanFalse {
		fmt.Fprintln(w, "This won't run")
	} else {
		fmt.Fprintln(w, "Else case")
	}

	// Counting loop: 0, 1, 2, 3, 4
	for i := range 5 {
		fmt.Fprintln(w, i)
	}

	myList := []any{1, 2, 3, 3.14, 42}
	for _, item := range myList {
		fmt.Fprintln(w, item)
	}

	// Map iteration order is unspecified; sort the keys for stable output
	myDict := map[string]any{"name": "John", "age": 30, "city": "New York"}
	for _, key := range slices.Sorted(maps.Keys(myDict)) {
		fmt.Fprintf(w, "%s: %v\n", key, myDict[key])
	}

	// While loop
	counter := 0
	for counter < 5 {
		fmt.Fprintln(w, counter)
		counter++
	}
}
