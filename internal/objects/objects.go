// Package objects maps class-style definitions onto Go: a struct with a
// constructor and methods, a package-level value shared by every instance,
// and plain functions where other languages use class and static methods.
package objects

import (
	"fmt"
	"io"
	"sync"
)

var (
	classMu sync.RWMutex

	// classVariable is shared by all Greeter values.
	classVariable = "shared by all instances"
)

// Greeter holds one instance value.
type Greeter struct {
	instanceVariable string
}

// NewGreeter is the constructor.
func NewGreeter(value string) *Greeter {
	return &Greeter{instanceVariable: value}
}

// Method reads the instance value.
func (g *Greeter) Method() string {
	return fmt.Sprintf("Value is %s", g.instanceVariable)
}

// Shared reads the package-level value through an instance.
func (g *Greeter) Shared() string {
	return ClassVariable()
}

// ClassVariable returns the shared value.
func ClassVariable() string {
	classMu.RLock()
	defer classMu.RUnlock()
	return classVariable
}

// SetClassVariable replaces the shared value and returns the previous one.
func SetClassVariable(v string) string {
	classMu.Lock()
	defer classMu.Unlock()
	prev := classVariable
	classVariable = v
	return prev
}

// ClassMethod works on the shared value, not on an instance.
func ClassMethod() string {
	return fmt.Sprintf("Class variable: %s", ClassVariable())
}

// StaticMethod needs neither an instance nor the shared value.
func StaticMethod() string {
	return "Static method called"
}

// Types runs the struct-and-methods walkthrough.
func Types(w io.Writer) {
	obj := NewGreeter("Hello")
	other := NewGreeter("World")

	fmt.Fprintln(w, obj.Method())
	fmt.Fprintln(w, other.Method())
	fmt.Fprintln(w, ClassMethod())
	fmt.Fprintln(w, StaticMethod())
	fmt.Fprintf(w, "both instances see the shared value: %t\n", obj.Shared() == other.Shared())
}
