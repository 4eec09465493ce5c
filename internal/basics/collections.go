package basics

import (
	"fmt"
	"io"
	"slices"

	"gocheat/internal/set"
)

// Remove drops the first occurrence of v from s. s is returned unchanged when
// v is absent.
func Remove[T comparable](s []T, v T) []T {
	if i := slices.Index(s, v); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}

// Collections walks through slices, arrays (Go's fixed-size tuples), maps and
// sets.
func Collections(w io.Writer) {
	// Slices - ordered, growable, allow duplicates
	myList := []any{1, 2, 3, "apple", 3.14}
	myList = append(myList, 42)
	myList = Remove(myList, "apple")
	firstItem := myList[0]
	fmt.Fprintf(w, "slice: %v, first item: %v\n", myList, firstItem)

	// Arrays - fixed length, copied by value
	myTuple := [4]any{1, 2, 3, "banana"}
	singleItemTuple := [1]int{42}
	copied := myTuple
	copied[0] = 100
	fmt.Fprintf(w, "array: %v, single: %v, copy does not alias: %t\n", myTuple, singleItemTuple, myTuple[0] == 1)

	// Maps - key/value pairs, iteration order is random
	myDict := map[string]any{"name": "John", "age": 30}
	myDict["city"] = "New York"
	name := myDict["name"]
	age, ok := myDict["age"] // comma-ok: safe lookup
	_, missing := myDict["email"]
	fmt.Fprintf(w, "map: %v, name: %v, age: %v (found %t), email found: %t\n", myDict, name, age, ok, missing)

	// Sets - no builtin; a map with empty struct values
	mySet := set.Of(1, 2, 3, 4)
	mySet.Add(5)
	mySet.Discard(1) // no error if absent
	fmt.Fprintf(w, "set: %s\n", mySet)
}
