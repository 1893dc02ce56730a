package lazy_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/fnkit/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSeq_BreakClosesIterator(t *testing.T) {
	src := &countingCloser{Reader: strings.NewReader("a\nb\nc\n")}

	var got []string
	for line := range lazy.Seq(lazy.Lines(src)) {
		got = append(got, line)
		if line == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, src.closed)
}

func TestFromSeq_GeneratorExpression(t *testing.T) {
	squares := func(yield func(int) bool) {
		for x := range 5 {
			if !yield(x * x) {
				return
			}
		}
	}

	got, err := lazy.Collect(lazy.FromSeq(squares))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, got)
}

func TestFromSeq_CloseStopsGenerator(t *testing.T) {
	stopped := false
	naturals := func(yield func(int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	it := lazy.FromSeq(naturals)
	v, err := lazy.Pull(it)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, it.Close())
	assert.True(t, stopped)
	assert.False(t, it.Next())
}

func TestFilter_EvenNumbers(t *testing.T) {
	numbers := lazy.Slice([]int{1, 2, 3, 4, 5, 6})
	got, err := lazy.Collect(lazy.Filter(numbers, func(x int) bool { return x%2 == 0 }))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestMap_ClosePropagates(t *testing.T) {
	src := &countingCloser{Reader: strings.NewReader("1\n22\n333")}
	lengths := lazy.Map(lazy.Lines(src), func(s string) int { return len(s) })

	got, err := lazy.Collect(lengths)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 1, src.closed)
}

func TestSlice_ValueBeforeNextIsZero(t *testing.T) {
	it := lazy.Slice([]string{"a"})
	assert.Equal(t, "", it.Value())
	require.True(t, it.Next())
	assert.Equal(t, "a", it.Value())
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestConcat(t *testing.T) {
	first := &countingCloser{Reader: strings.NewReader("a\nb")}
	second := &countingCloser{Reader: strings.NewReader("c")}

	got, err := lazy.Collect(lazy.Concat(lazy.Lines(first), lazy.StringLines("-"), lazy.Lines(second)))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "-", "c"}, got)
	assert.Equal(t, 1, first.closed)
	assert.Equal(t, 1, second.closed)
}

func TestConcat_CloseAggregatesErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	it := lazy.Concat(
		lazy.Lines(&countingCloser{Reader: strings.NewReader("x"), err: errA}),
		lazy.Lines(&countingCloser{Reader: strings.NewReader("y"), err: errB}),
	)

	require.True(t, it.Next())
	err := it.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.False(t, it.Next())
}

func TestConcat_StopsAtFailingSource(t *testing.T) {
	closeErr := errors.New("close failed")
	it := lazy.Concat(
		lazy.Lines(&countingCloser{Reader: strings.NewReader("x"), err: closeErr}),
		lazy.StringLines("never read"),
	)
	defer it.Close()

	require.True(t, it.Next())
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), closeErr)
}
