package basics

import (
	"fmt"
	"io"
)

// TypedFunction is the statically typed greeting.
func TypedFunction(name string, age int) string {
	return fmt.Sprintf("%s is %d years old", name, age)
}

// ProcessItems maps each item to its length in bytes.
func ProcessItems(items []string) map[string]int {
	out := make(map[string]int, len(items))
	for _, item := range items {
		out[item] = len(item)
	}
	return out
}

// OptionalParam returns *value, or "default" when value is nil or empty.
func OptionalParam(value *string) string {
	if value == nil || *value == "" {
		return "default"
	}
	return *value
}

// TypeHints shows signatures doing the work that annotations do elsewhere.
func TypeHints(w io.Writer) {
	fmt.Fprintln(w, TypedFunction("Alice", 30))
	fmt.Fprintln(w, ProcessItems([]string{"go", "gopher"}))
	custom := "custom"
	fmt.Fprintln(w, OptionalParam(nil))
	fmt.Fprintln(w, OptionalParam(&custom))
}
