package array

import (
	"github.com/dendisuhubdy/sleip/alloc"
)

// Array is a fixed-length contiguous container backed by an allocator-owned
// block. The zero state (nil block) is the empty invariant: Len is 0 and
// Data is nil.
//
// Exactly len(mem) elements are live at any publicly observable moment; the
// only post-construction transition is populated to empty, by being the
// source of a block-transfer move or by Destroy.
type Array[T any] struct {
	mem []T
	a   alloc.Allocator[T]
}

// New returns an empty array using the Go-native allocator. It cannot fail.
func New[T any]() *Array[T] {
	return &Array[T]{a: alloc.NewHeap[T]()}
}

// NewIn returns an empty array using the given allocator. A nil allocator
// falls back to the Go-native one.
func NewIn[T any](a alloc.Allocator[T]) *Array[T] {
	return &Array[T]{a: normalize(a)}
}

// Len returns the element count. It is fixed at construction; only a
// block-transfer move or Destroy resets it, to 0, on the source.
func (arr *Array[T]) Len() int {
	if arr == nil {
		return 0
	}
	return len(arr.mem)
}

// Data returns a pointer to the first element, or nil when empty.
func (arr *Array[T]) Data() *T {
	if arr.Len() == 0 {
		return nil
	}
	return &arr.mem[0]
}

// Slice returns the live elements as a slice view over the block. The view
// is invalidated by Destroy and by being the source of a block-transfer
// move.
func (arr *Array[T]) Slice() []T {
	if arr == nil {
		return nil
	}
	return arr.mem
}

// At returns the element at index i. Panics if i is out of range, like a
// slice index.
func (arr *Array[T]) At(i int) T {
	return arr.mem[i]
}

// Ptr returns a pointer to the element at index i. Panics if i is out of
// range.
func (arr *Array[T]) Ptr(i int) *T {
	return &arr.mem[i]
}

// Allocator returns the allocator this array obtains and releases its block
// through.
func (arr *Array[T]) Allocator() alloc.Allocator[T] {
	if arr == nil {
		return nil
	}
	return arr.a
}

// Destroy tears down all elements in reverse index order, releases the
// block, and resets the array to the empty invariant. Idempotent; cannot
// fail.
func (arr *Array[T]) Destroy() {
	if arr == nil || arr.mem == nil {
		return
	}
	unwind(arr.a, arr.mem, len(arr.mem))
	release(arr.a, arr.mem)
	arr.mem = nil
}

// normalize substitutes the Go-native allocator for nil.
func normalize[T any](a alloc.Allocator[T]) alloc.Allocator[T] {
	if a == nil {
		return alloc.NewHeap[T]()
	}
	return a
}
