package basics

import (
	"fmt"
	"io"
)

// Variables prints one value of each basic kind along with its dynamic type.
func Variables(w io.Writer) {
	// Numbers
	integer := 42
	floatingPoint := 3.14
	complexNum := 3 + 4i

	// Strings
	string1 := "Hello"
	string2 := `World`
	multiline := `This is a
multiline string`

	// Booleans
	booleanTrue := true
	booleanFalse := false

	// nil is the zero value of pointers, slices, maps, channels, funcs and interfaces
	var noneValue *int

	fmt.Fprintf(w, "integer: %d (%T)\n", integer, integer)
	fmt.Fprintf(w, "floating point: %g (%T)\n", floatingPoint, floatingPoint)
	fmt.Fprintf(w, "complex: %v (%T), real=%g imag=%g\n", complexNum, complexNum, real(complexNum), imag(complexNum))
	fmt.Fprintf(w, "strings: %s %s\n", string1, string2)
	fmt.Fprintf(w, "multiline:\n%s\n", multiline)
	fmt.Fprintf(w, "booleans: %t %t\n", booleanTrue, booleanFalse)
	fmt.Fprintf(w, "nil pointer: %v (is nil: %t)\n", noneValue, noneValue == nil)
}
