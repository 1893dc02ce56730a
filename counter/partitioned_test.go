package counter_test

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/on-the-ground/fnkit/counter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCountPartitioned_MatchesSequentialCount(t *testing.T) {
	var items []string
	for i := 0; i < 2000; i++ {
		items = append(items, fmt.Sprintf("10.0.%d.%d", i%7, i%13))
	}

	want := counter.CountSlice(items)
	for _, workers := range []int{0, 1, 4, 16} {
		got, err := counter.CountPartitioned(context.Background(), slices.Values(items), workers, func(s string) string { return s })
		require.NoError(t, err)

		assert.Equal(t, want.Items(), got.Items(), "workers=%d", workers)
		assert.Equal(t, want.Map(), got.Map(), "workers=%d", workers)
		assert.Equal(t, want.Total(), got.Total(), "workers=%d", workers)
		assert.Equal(t, want.TopK(5), got.TopK(5), "workers=%d", workers)
	}
}

func TestCountPartitioned_IntItems(t *testing.T) {
	got, err := counter.CountPartitioned(context.Background(), slices.Values([]int{3, 1, 3, 2, 1, 3}), 3, strconv.Itoa)
	require.NoError(t, err)

	assert.Equal(t, []counter.Entry[int]{{Item: 3, Count: 3}, {Item: 1, Count: 2}, {Item: 2, Count: 1}}, got.MostCommon())
}

func TestCountPartitioned_EmptyInput(t *testing.T) {
	got, err := counter.CountPartitioned(context.Background(), slices.Values([]string(nil)), 4, func(s string) string { return s })
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total())
	assert.Empty(t, got.TopK(1))
}

func TestCountPartitioned_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	endless := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if i == 10 {
				cancel()
			}
			if !yield(i % 3) {
				return
			}
		}
	}

	got, err := counter.CountPartitioned(ctx, endless, 2, strconv.Itoa)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
