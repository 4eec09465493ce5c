package basics

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComprehensions(t *testing.T) {
	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"squares", Squares(10), []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}},
		{"even squares", EvenSquares(10), []int{0, 4, 16, 36, 64}},
		{"processed", Processed(10), []int{0, 1, 4, 27, 16, 125, 36, 343, 64, 729}},
		{"empty", Squares(0), []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterEvens(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5}, func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)
}

func TestMapSquare(t *testing.T) {
	assert.Equal(t, []int{1, 4, 9, 16, 25}, Map([]int{1, 2, 3, 4, 5}, Square))
	assert.Equal(t, []string{"1", "22"}, Map([]int{1, 22}, strconv.Itoa))
}

func TestMyFunction(t *testing.T) {
	assert.Equal(t, "Hello World", MyFunction("Hello", "World"))
	assert.Equal(t, "Hello default", MyFunction("Hello"))
}

func TestRemove(t *testing.T) {
	list := []any{1, 2, 3, "apple", 3.14, 42}
	list = Remove(list, "apple")
	assert.Equal(t, []any{1, 2, 3, 3.14, 42}, list)

	// Absent values leave the slice alone
	assert.Equal(t, []int{1, 2}, Remove([]int{1, 2}, 9))

	// Only the first occurrence goes
	assert.Equal(t, []int{1, 2, 2}, Remove([]int{2, 1, 2, 2}, 2))
}

func TestBuiltinHelpers(t *testing.T) {
	assert.Equal(t, 15, Sum([]int{1, 2, 3, 4, 5}))
	assert.InDelta(t, 4.5, Sum([]float64{1.5, 3}), 1e-9)
	assert.True(t, Any(false, true))
	assert.False(t, Any())
	assert.True(t, All(true, true))
	assert.True(t, All())
	assert.False(t, All(true, false))

	pairs := Zip([]int{1, 2, 3}, []string{"a", "b"})
	require.Len(t, pairs, 2)
	assert.Equal(t, "(2, b)", pairs[1].String())
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count([]int{1, 2, 3, 2, 4}, 2))
	assert.Equal(t, 0, Count([]string{"a"}, "b"))
}

func TestTypedFunctions(t *testing.T) {
	assert.Equal(t, "Alice is 30 years old", TypedFunction("Alice", 30))
	assert.Equal(t, map[string]int{"go": 2, "gopher": 6}, ProcessItems([]string{"go", "gopher"}))

	empty := ""
	value := "set"
	assert.Equal(t, "default", OptionalParam(nil))
	assert.Equal(t, "default", OptionalParam(&empty))
	assert.Equal(t, "set", OptionalParam(&value))
}

func TestControlFlowOutput(t *testing.T) {
	var buf bytes.Buffer
	ControlFlow(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "This is true", lines[0])
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, lines[1:6])
	assert.Contains(t, buf.String(), "age: 30\ncity: New York\nname: John\n")
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, lines[len(lines)-5:])
}

func TestSectionOutput(t *testing.T) {
	tests := []struct {
		name string
		run  func(w *bytes.Buffer)
		want []string
	}{
		{"variables", func(w *bytes.Buffer) { Variables(w) }, []string{
			"integer: 42 (int)",
			"complex: (3+4i) (complex128), real=3 imag=4",
			"nil pointer: <nil> (is nil: true)",
		}},
		{"collections", func(w *bytes.Buffer) { Collections(w) }, []string{
			"slice: [1 2 3 3.14 42], first item: 1",
			"copy does not alias: true",
			"age: 30 (found true), email found: false",
			"set: {2, 3, 4, 5}",
		}},
		{"functions", func(w *bytes.Buffer) { Functions(w) }, []string{
			"Hello World",
			"Hello default",
			"evens: [2 4]",
		}},
		{"strings", func(w *bytes.Buffer) { Strings(w) }, []string{
			"HELLO, WORLD!",
			"hello, world!",
			"Hello, Go!",
			`["Hello" "World!"]`,
			"Hello Go World",
			"Formatted string: Hello, World!",
		}},
		{"builtins", func(w *bytes.Buffer) { Builtins(w) }, []string{
			"[1 2 3 4 5]",
			"[(1, a) (2, b)]",
			"builtin max: 7",
		}},
		{"methods", func(w *bytes.Buffer) { ListAndMapMethods(w) }, []string{
			"sorted: [1 2 2 3 4]",
			"reversed: [4 3 2 2 1]",
			"keys: [age city name]",
			"items: [(age, 30) (city, New York) (name, John)]",
		}},
		{"type hints", func(w *bytes.Buffer) { TypeHints(w) }, []string{
			"Alice is 30 years old",
			"map[go:2 gopher:6]",
			"default",
			"custom",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.run(&buf)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
