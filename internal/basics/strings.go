package basics

import (
	"fmt"
	"io"
	"strings"
)

// Strings runs the common strings package operations on one sentence.
func Strings(w io.Writer) {
	text := "Hello, World!"
	fmt.Fprintln(w, strings.ToUpper(text))
	fmt.Fprintln(w, strings.ToLower(text))
	fmt.Fprintln(w, strings.ReplaceAll(text, "World", "Go"))
	fmt.Fprintf(w, "%q\n", strings.Split(text, ", "))
	fmt.Fprintln(w, strings.Join([]string{"Hello", "Go", "World"}, " "))
	fmt.Fprintf(w, "Formatted string: %s\n", text)
}
