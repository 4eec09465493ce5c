// Package concurrency shows goroutines coordinated by errgroup: fan work out,
// keep results in input order, and cancel the rest on the first failure.
package concurrency

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// ErrNegative is returned by SquareAll for negative inputs.
var ErrNegative = errors.New("negative input")

// SquareAll squares every input on its own goroutine, at most limit at a
// time (limit <= 0 means unbounded). Results keep the input order.
func SquareAll(ctx context.Context, inputs []int, limit int) ([]int, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([]int, len(inputs))
	for i, x := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if x < 0 {
				return fmt.Errorf("%w: %d", ErrNegative, x)
			}
			results[i] = x * x
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Pipeline sends inputs through a squaring stage and a summing stage joined
// by channels, returning the total.
func Pipeline(ctx context.Context, inputs []int) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	squares := make(chan int)

	g.Go(func() error {
		defer close(squares)
		for _, x := range inputs {
			select {
			case squares <- x * x:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	total := 0
	g.Go(func() error {
		for v := range squares {
			total += v
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}

// Goroutines runs the concurrency walkthrough.
func Goroutines(ctx context.Context, w io.Writer) error {
	squares, err := SquareAll(ctx, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "squares computed concurrently: %v\n", squares)

	total, err := Pipeline(ctx, []int{1, 2, 3, 4, 5})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "pipeline sum of squares: %d\n", total)

	_, err = SquareAll(ctx, []int{1, -2, 3}, 0)
	fmt.Fprintf(w, "first error wins: %v\n", err)
	return nil
}
