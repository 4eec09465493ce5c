package generate

import (
	"bytes"
	"context"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMyGenerator_Restartable(t *testing.T) {
	gen := MyGenerator()
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(gen))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(gen))
}

func TestSquaresSeq(t *testing.T) {
	assert.Equal(t, []int{0, 1, 4, 9, 16}, slices.Collect(SquaresSeq(5)))
	assert.Empty(t, slices.Collect(SquaresSeq(0)))
}

func TestSquaresSeq_Lazy(t *testing.T) {
	produced := 0
	var seq iter.Seq[int] = func(yield func(int) bool) {
		for v := range SquaresSeq(1 << 30) {
			produced++
			if !yield(v) {
				return
			}
		}
	}
	assert.Equal(t, []int{0, 1, 4}, Take(seq, 3))
	assert.Equal(t, 3, produced)
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Take(MyGenerator(), 2))
	assert.Equal(t, []int{1, 2, 3}, Take(MyGenerator(), 10))
	assert.Empty(t, Take(MyGenerator(), 0))
}

func TestProduce_Drains(t *testing.T) {
	var got []int
	for v := range Produce(context.Background(), 1, 2, 3) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestProduce_CancelStopsProducer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := Produce(ctx, 1, 2, 3, 4, 5)

	require.Equal(t, 1, <-ch)
	cancel()

	// The channel must close. A send racing the cancel may still deliver
	// one more value first.
	for range ch {
	}
}

func TestGenerators(t *testing.T) {
	var buf bytes.Buffer
	Generators(context.Background(), &buf)

	assert.Equal(t, "1\n2\n3\n"+
		"pulled: 1 2\n"+
		"lazy squares: [0 1 4 9 16]\n"+
		"first two squares: [0 1]\n"+
		"from channel: [a b c]\n", buf.String())
}
