// Package decorate shows the decorator pattern as Go writes it: a function
// that takes a function and returns one with the same signature, adding
// behaviour around the call without touching the wrapped body.
package decorate

import (
	"fmt"
	"io"
	"time"
)

// Decorate wraps fn so every call prints "Before function" and
// "After function" around it. The wrapped result is returned untouched.
func Decorate[A, R any](w io.Writer, fn func(A) R) func(A) R {
	return func(arg A) R {
		fmt.Fprintln(w, "Before function")
		result := fn(arg)
		fmt.Fprintln(w, "After function")
		return result
	}
}

// Timed wraps fn and reports its duration through report. Decorators compose:
// Timed(Decorate(w, fn), ...) times the whole decorated call.
func Timed[A, R any](fn func(A) R, report func(time.Duration)) func(A) R {
	return func(arg A) R {
		start := time.Now()
		defer func() { report(time.Since(start)) }()
		return fn(arg)
	}
}

// SayHello returns the decorated greeting bound to w.
func SayHello(w io.Writer) func(string) struct{} {
	return Decorate(w, func(name string) struct{} {
		fmt.Fprintf(w, "Hello, %s!\n", name)
		return struct{}{}
	})
}

// Decorators runs the greeting and a composed, timed call.
func Decorators(w io.Writer, learner string) {
	SayHello(w)(learner)

	square := Decorate(w, func(x int) int { return x * x })
	calls := 0
	timed := Timed(square, func(time.Duration) { calls++ })
	result := timed(7)
	fmt.Fprintf(w, "decorated square(7) = %d, timer reports: %d\n", result, calls)
}
