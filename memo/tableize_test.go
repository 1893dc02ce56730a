package memo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/fnkit/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableizeI1O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	}, 2)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 6, fn(3))
	assert.Equal(t, 2, count)
}

func TestTableizeI2O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI2O1(func(a, b int) int {
		count++
		return a - b
	}, 2)

	assert.Equal(t, -1, fn(2, 3))
	assert.Equal(t, -1, fn(2, 3))
	assert.Equal(t, 1, fn(3, 2)) // argument order is part of the key
	assert.Equal(t, 2, count)
}

func TestTableizeI3O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	}, 2)

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI1O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	}, 2)

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a, b = fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	assert.Equal(t, 1, count)
}

func TestTableizeI2O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	}, 2)

	x, y := fn(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = fn(3, 4)
	assert.Equal(t, 1, count)
}

func TestTableize_NilInterfaceArgument(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(err error) bool {
		count++
		return err == nil
	}, 2)

	assert.True(t, fn(nil))
	assert.True(t, fn(nil))
	assert.Equal(t, 1, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	}, 2)

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	fn := memo.TableizeI1O1(func(t TotallyInvalid) int {
		return len(t.Field)
	}, 2)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic due to missing Stringer and non-comparable type")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, memo.ErrUnhashableKey))
	}()
	_ = fn(TotallyInvalid{Field: []int{1}})
}

func TestKeyOf(t *testing.T) {
	k, err := memo.KeyOf(42)
	require.NoError(t, err)
	assert.Equal(t, 42, k)

	k, err = memo.KeyOf(nil)
	require.NoError(t, err)
	assert.Nil(t, k)

	// an interface field holding a slice makes the value non-comparable at runtime
	k, err = memo.KeyOf(struct{ V any }{V: NonComparable{}})
	assert.ErrorIs(t, err, memo.ErrUnhashableKey)
	assert.Nil(t, k)

	// a Stringer key never equals the plain string it prints
	k, err = memo.KeyOf(NonComparable{Field: []int{1}})
	require.NoError(t, err)
	assert.NotEqual(t, "NonComparable[1]", k)

	_, err = memo.ComparableKeyOf(NonComparable{Field: []int{1}})
	assert.ErrorIs(t, err, memo.ErrUnhashableKey)
}

type SameText struct {
	Field []int
}

func (SameText) String() string { return "NonComparable[1]" }

func TestTableizeWithStringerFallback_KeyedByType(t *testing.T) {
	fn := memo.TableizeI1O1(func(v any) string {
		return fmt.Sprintf("%T", v)
	}, 4)

	assert.Equal(t, "string", fn("NonComparable[1]"))
	assert.Equal(t, "memo_test.NonComparable", fn(NonComparable{Field: []int{1}}))
	assert.Equal(t, "memo_test.SameText", fn(SameText{Field: []int{2}}))
}
