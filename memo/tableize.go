package memo

func TableizeI1O1[I1 any, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(as[I1](args[0]))
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 any, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(as[I1](args[0]), as[I2](args[1]))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 any, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(as[I1](args[0]), as[I2](args[1]), as[I3](args[2]))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI1O2[I1 any, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	tableized := tableize(
		func(args ...any) pair[O1, O2] {
			o1, o2 := pureFn(as[I1](args[0]))
			return pair[O1, O2]{o1, o2}
		},
		maxTableSize,
	)
	return func(i1 I1) (O1, O2) {
		res := tableized(i1)
		return res.o1, res.o2
	}
}

func TableizeI2O2[I1, I2 any, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	tableized := tableize(
		func(args ...any) pair[O1, O2] {
			o1, o2 := pureFn(as[I1](args[0]), as[I2](args[1]))
			return pair[O1, O2]{o1, o2}
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := tableized(i1, i2)
		return res.o1, res.o2
	}
}

type pair[O1, O2 any] struct {
	o1 O1
	o2 O2
}

func tableize[O any](
	pureFn func(...any) O,
	maxTableSize uint32,
) func(...any) O {
	memo := NewTable[O](maxTableSize)
	return func(args ...any) O {
		keys := mustKeysOf(args...)
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}

// as converts back from the variadic form; a nil interface argument
// becomes the zero value of T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
