// Package generate covers lazy sequences: range-over-func iterators
// (iter.Seq), pulling values one at a time with iter.Pull, and the
// goroutine-plus-channel producer that predates them.
package generate

import (
	"context"
	"fmt"
	"io"
	"iter"
)

// MyGenerator yields 1, 2 and 3. Each range over the returned sequence
// starts again from 1.
func MyGenerator() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range []int{1, 2, 3} {
			if !yield(v) {
				return
			}
		}
	}
}

// SquaresSeq lazily yields x*x for x in [0, n). Nothing is computed until the
// sequence is ranged over.
func SquaresSeq(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for x := range n {
			if !yield(x * x) {
				return
			}
		}
	}
}

// Take collects at most n values from seq, stopping the producer early.
func Take[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, n)
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Produce sends values on the returned channel from a goroutine and closes
// it when done or when ctx is cancelled, whichever comes first.
func Produce[T any](ctx context.Context, values ...T) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		for _, v := range values {
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Generators runs the sequence walkthrough.
func Generators(ctx context.Context, w io.Writer) {
	for value := range MyGenerator() {
		fmt.Fprintln(w, value)
	}

	next, stop := iter.Pull(MyGenerator())
	first, _ := next()
	second, _ := next()
	stop()
	fmt.Fprintf(w, "pulled: %d %d\n", first, second)

	fmt.Fprintf(w, "lazy squares: %v\n", Take(SquaresSeq(5), 5))
	fmt.Fprintf(w, "first two squares: %v\n", Take(SquaresSeq(1_000_000), 2))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var got []string
	for v := range Produce(ctx, "a", "b", "c") {
		got = append(got, v)
	}
	fmt.Fprintf(w, "from channel: %v\n", got)
}
