package modules

import (
	"fmt"
	"io"
	"regexp"
)

// digits matches one or more digits.
var digits = regexp.MustCompile(`\d+`)

// FirstNumber returns the first run of digits in text.
func FirstNumber(text string) (string, bool) {
	m := digits.FindString(text)
	return m, m != ""
}

// Regex searches a sentence for digits.
func Regex(w io.Writer) {
	text := "There are 123 apples"
	if match, ok := FirstNumber(text); ok {
		fmt.Fprintf(w, "Found: %s\n", match)
	}
	fmt.Fprintf(w, "all: %q\n", digits.FindAllString("1 apple, 22 pears, 333 plums", -1))
}
