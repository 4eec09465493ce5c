package modules

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Packages maps everyday tasks to the package that handles them.
var Packages = []struct {
	Path    string
	Purpose string
}{
	{"os", "operating system interface"},
	{"flag / os.Args", "command-line arguments"},
	{"math", "mathematical functions"},
	{"time", "date and time handling"},
	{"encoding/json", "JSON encoder and decoder"},
	{"regexp", "regular expressions"},
	{"math/rand/v2", "random number generation"},
	{"container/list, slices, maps", "additional data structures and helpers"},
	{"iter", "iterator sequences"},
	{"gopkg.in/yaml.v3", "YAML encoder and decoder (third party)"},
	{"github.com/google/uuid", "UUID generation (third party)"},
}

// Person is the demo record encoded in both formats.
type Person struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
	City string `json:"city" yaml:"city"`
}

// Encode renders p as compact JSON and as YAML.
func Encode(p Person) (jsonText, yamlText string, err error) {
	j, err := json.Marshal(p)
	if err != nil {
		return "", "", fmt.Errorf("encode json: %w", err)
	}
	y, err := yaml.Marshal(p)
	if err != nil {
		return "", "", fmt.Errorf("encode yaml: %w", err)
	}
	return string(j), string(y), nil
}

// CommonModules prints the package map and exercises a few of them.
func CommonModules(w io.Writer) error {
	for _, p := range Packages {
		fmt.Fprintf(w, "%-30s %s\n", p.Path, p.Purpose)
	}

	fmt.Fprintf(w, "math.Sqrt(16) = %g\n", math.Sqrt(16))

	j, y, err := Encode(Person{Name: "John", Age: 30, City: "New York"})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "json: %s\n", j)
	fmt.Fprintf(w, "yaml:\n%s", y)

	id := uuid.New()
	fmt.Fprintf(w, "uuid version: %d\n", id.Version())
	return nil
}
