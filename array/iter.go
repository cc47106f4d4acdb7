package array

import (
	"io"

	"github.com/dendisuhubdy/sleip/alloc"
)

// Iterator yields successive elements of a finite sequence. Next returns
// io.EOF once the sequence is exhausted; any other error aborts consumption.
type Iterator[T any] interface {
	Next() (T, error)
}

// FromIter returns an array copy-constructed from the elements yielded by
// it, in yield order, using the Go-native allocator. The iterator is drained
// once to measure the sequence; a single pass is all it needs to support.
func FromIter[T any](it Iterator[T]) (*Array[T], error) {
	return FromIterIn(nil, it)
}

// FromIterIn is FromIter with an explicit allocator. An iterator error other
// than io.EOF surfaces unchanged and nothing is constructed.
func FromIterIn[T any](a alloc.Allocator[T], it Iterator[T]) (*Array[T], error) {
	var staged []T
	for {
		v, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		staged = append(staged, v)
	}
	return FromSliceIn(a, staged)
}

// ElemIterator walks an array's elements front to back.
type ElemIterator[T any] struct {
	arr *Array[T]
	i   int
}

// Elems returns an iterator over the array's elements in index order.
func (arr *Array[T]) Elems() *ElemIterator[T] {
	return &ElemIterator[T]{arr: arr}
}

// Next returns the next element, or io.EOF past the end.
func (it *ElemIterator[T]) Next() (T, error) {
	if it.i >= it.arr.Len() {
		var zero T
		return zero, io.EOF
	}
	v := it.arr.mem[it.i]
	it.i++
	return v, nil
}

// Compile-time interface check
var _ Iterator[int] = (*ElemIterator[int])(nil)
