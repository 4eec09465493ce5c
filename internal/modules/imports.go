// Package modules covers imports, the everyday standard-library packages,
// dates and times, and regular expressions.
package modules

import (
	"fmt"
	"io"
)

// ImportForms lists each import declaration form with what it does.
var ImportForms = []struct {
	Form    string
	Meaning string
}{
	{`import "fmt"`, "import a package, refer to it as fmt"},
	{"import (\n\t\"fmt\"\n\t\"os\"\n)", "grouped import"},
	{`import str "strings"`, "import under an alias"},
	{`import _ "modernc.org/sqlite"`, "import for side effects only (registers a driver)"},
	{`import . "math"`, "dot import: names usable unqualified (avoid outside tests)"},
}

// Imports prints the import forms.
func Imports(w io.Writer) {
	for _, f := range ImportForms {
		fmt.Fprintf(w, "%s\n    // %s\n", f.Form, f.Meaning)
	}
}
