package array

import (
	"github.com/dendisuhubdy/sleip/alloc"
)

// Fill returns an array of n copies of v using the Go-native allocator.
func Fill[T any](n int, v T) (*Array[T], error) {
	return FillIn[T](nil, n, v)
}

// FillIn returns an array of n copies of v using the given allocator. If
// constructing any copy fails, the copies made so far are destroyed in
// reverse order and the block released before the error is returned.
func FillIn[T any](a alloc.Allocator[T], n int, v T) (*Array[T], error) {
	a = normalize(a)
	block, err := acquire(a, n)
	if err != nil {
		return nil, err
	}
	if err := constructAll(a, block, func(int) (T, error) { return v, nil }); err != nil {
		return nil, err
	}
	return &Array[T]{mem: block, a: a}, nil
}

// Sized returns an array of n default-constructed elements using the
// Go-native allocator.
func Sized[T any](n int) (*Array[T], error) {
	return SizedIn[T](nil, n)
}

// SizedIn returns an array of n default-constructed elements using the
// given allocator, with the same rollback contract as FillIn.
func SizedIn[T any](a alloc.Allocator[T], n int) (*Array[T], error) {
	a = normalize(a)
	block, err := acquire(a, n)
	if err != nil {
		return nil, err
	}
	if err := constructDefaults(a, block); err != nil {
		return nil, err
	}
	return &Array[T]{mem: block, a: a}, nil
}

// Of returns an array holding the given values, in order. This is the
// literal-list constructor.
func Of[T any](vals ...T) (*Array[T], error) {
	return FromSliceIn[T](nil, vals)
}

// OfIn is Of with an explicit allocator.
func OfIn[T any](a alloc.Allocator[T], vals ...T) (*Array[T], error) {
	return FromSliceIn(a, vals)
}

// FromSlice returns an array copy-constructed from the elements of src, in
// order, using the Go-native allocator. src itself is not retained.
func FromSlice[T any](src []T) (*Array[T], error) {
	return FromSliceIn(nil, src)
}

// FromSliceIn is FromSlice with an explicit allocator.
func FromSliceIn[T any](a alloc.Allocator[T], src []T) (*Array[T], error) {
	a = normalize(a)
	block, err := acquire(a, len(src))
	if err != nil {
		return nil, err
	}
	if err := constructAll(a, block, func(i int) (T, error) { return src[i], nil }); err != nil {
		return nil, err
	}
	return &Array[T]{mem: block, a: a}, nil
}
