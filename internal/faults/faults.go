// Package faults shows Go's error handling: sentinel errors matched with
// errors.Is, typed errors matched with errors.As, deferred cleanup that runs
// on every exit path, and recover for runtime panics.
package faults

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrPanicked wraps a value recovered from a panic inside Try.
	ErrPanicked = errors.New("recovered panic")
)

// Divide returns a / b, or ErrDivisionByZero.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Try runs fn the way a try/except/else/finally block would: the specific
// division error is matched before the general case, the success line prints
// only when fn returned no error, and the final line always prints, including
// after fn panics.
func Try(w io.Writer, fn func() (int, error)) (result int, err error) {
	defer fmt.Fprintln(w, "This runs regardless of errors")
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
			fmt.Fprintf(w, "General error: %v\n", err)
		}
	}()

	result, err = fn()
	switch {
	case errors.Is(err, ErrDivisionByZero):
		fmt.Fprintf(w, "Error: %v\n", err)
	case err != nil:
		fmt.Fprintf(w, "General error: %v\n", err)
	default:
		fmt.Fprintf(w, "No error occurred (result %d)\n", result)
	}
	return result, err
}

// ParseAge converts s to an age, wrapping the strconv error.
func ParseAge(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse age %q: %w", s, err)
	}
	return n, nil
}

func rawDivide(a, b int) int {
	return a / b
}

// Errors runs the error-handling walkthrough.
func Errors(w io.Writer) {
	fmt.Fprintln(w, "10 / 0:")
	_, _ = Try(w, func() (int, error) { return Divide(10, 0) })

	fmt.Fprintln(w, "10 / 2:")
	_, _ = Try(w, func() (int, error) { return Divide(10, 2) })

	fmt.Fprintln(w, "10 / 0 without a check:")
	_, _ = Try(w, func() (int, error) { return rawDivide(10, 0), nil })

	_, err := ParseAge("thirty")
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		fmt.Fprintf(w, "errors.As found %T for input %q: %v\n", numErr, numErr.Num, numErr.Err)
	}
}
