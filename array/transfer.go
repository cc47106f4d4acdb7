package array

import (
	"github.com/dendisuhubdy/sleip/alloc"
)

// Copy returns an independent element-wise copy of src. The new array's
// allocator is derived from the source's: its SelectOnCopy result when it
// implements alloc.CopyPropagator, otherwise the source allocator itself.
func Copy[T any](src *Array[T]) (*Array[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	a := src.a
	if p, ok := a.(alloc.CopyPropagator[T]); ok {
		a = p.SelectOnCopy()
	}
	return CopyIn(a, src)
}

// CopyIn returns an independent element-wise copy of src backed by the given
// allocator. Construction goes through the usual transaction: a failure
// while copying element k destroys elements [0, k) in reverse order and
// releases the new block before the error is returned; src is untouched
// either way.
func CopyIn[T any](a alloc.Allocator[T], src *Array[T]) (*Array[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	a = normalize(a)
	block, err := acquire(a, src.Len())
	if err != nil {
		return nil, err
	}
	if err := constructAll(a, block, func(i int) (T, error) { return src.mem[i], nil }); err != nil {
		return nil, err
	}
	return &Array[T]{mem: block, a: a}, nil
}

// Move transfers src's block and length to a new array in O(1) and resets
// src to the empty invariant. No allocation and no element construction
// happens; Move cannot fail. src keeps its allocator and remains usable as
// an empty array.
func Move[T any](src *Array[T]) *Array[T] {
	if src == nil {
		return New[T]()
	}
	dst := &Array[T]{mem: src.mem, a: src.a}
	src.mem = nil
	return dst
}

// MoveIn builds a new array owning src's elements, backed by the given
// allocator. When the destination allocator can release src's block
// (alloc.Interchanges), the block transfers in O(1) exactly as in Move and
// src becomes empty.
//
// Otherwise the elements cannot change blocks for free: a new block is
// obtained from the destination allocator and each element is constructed
// from its counterpart through the rollback transaction. In this fallback
// src is left fully intact, length unchanged, and remains the owner of its
// original block; a failure destroys the partially built destination and
// surfaces the original error.
func MoveIn[T any](a alloc.Allocator[T], src *Array[T]) (*Array[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	a = normalize(a)
	if alloc.Interchanges(a, src.a) {
		dst := &Array[T]{mem: src.mem, a: a}
		src.mem = nil
		return dst, nil
	}
	return CopyIn(a, src)
}
