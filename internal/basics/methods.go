package basics

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Count returns how many elements of s equal v.
func Count[T comparable](s []T, v T) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}

// ListAndMapMethods demonstrates the slices and maps packages.
func ListAndMapMethods(w io.Writer) {
	myList := []int{1, 2, 3, 2, 4}
	fmt.Fprintln(w, Count(myList, 2))
	fmt.Fprintln(w, slices.Index(myList, 3))
	slices.Sort(myList)
	fmt.Fprintf(w, "sorted: %v\n", myList)
	slices.Reverse(myList)
	fmt.Fprintf(w, "reversed: %v\n", myList)

	myDict := map[string]any{"name": "John", "age": 30, "city": "New York"}
	keys := slices.Sorted(maps.Keys(myDict))
	values := make([]any, 0, len(keys))
	items := make([]Pair[string, any], 0, len(keys))
	for _, k := range keys {
		values = append(values, myDict[k])
		items = append(items, Pair[string, any]{k, myDict[k]})
	}
	fmt.Fprintf(w, "keys: %v\n", keys)
	fmt.Fprintf(w, "values: %v\n", values)
	fmt.Fprintf(w, "items: %v\n", items)
}
