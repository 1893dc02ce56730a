package memo

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnhashableKey = errors.New("key is neither comparable nor a fmt.Stringer")

// Key is a normalised table key: a comparable value or a Stringer's text
// qualified by its dynamic type.
type Key any

type stringerKey struct {
	typ  reflect.Type
	text string
}

// KeyOf normalises v into a Key. Comparable values are used as they are;
// otherwise a fmt.Stringer falls back to its type and string form. Two
// values of one non-comparable type share a key when their String output
// matches, so String must tell apart every value a table is used with.
func KeyOf(v any) (Key, error) {
	if k, err := ComparableKeyOf(v); err == nil {
		return k, nil
	}
	if stringer, ok := v.(fmt.Stringer); ok {
		return stringerKey{typ: reflect.TypeOf(v), text: stringer.String()}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnhashableKey, v)
}

// ComparableKeyOf accepts only values that are comparable at runtime.
func ComparableKeyOf(v any) (Key, error) {
	if v == nil {
		return nil, nil
	}
	if !reflect.ValueOf(v).Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrUnhashableKey, v)
	}
	return v, nil
}

func mustKeysOf(args ...any) []Key {
	keys := make([]Key, len(args))
	for i, arg := range args {
		k, err := KeyOf(arg)
		if err != nil {
			panic(err)
		}
		keys[i] = k
	}
	return keys
}
