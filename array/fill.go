package array

import (
	"github.com/dendisuhubdy/sleip/alloc"
)

// The construction transaction: acquire a block, construct elements at
// ascending indexes, and on the first failure destroy the constructed prefix
// at descending indexes, release the block, and surface the original error
// unchanged. Callers receive either a fully live block or nothing.

// acquire obtains a block for n elements. A count of zero yields the empty
// handle without touching the allocator.
func acquire[T any](a alloc.Allocator[T], n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return nil, nil
	}
	return a.Allocate(n)
}

// release returns a block to the allocator. No-op for the empty handle.
func release[T any](a alloc.Allocator[T], block []T) {
	if len(block) == 0 {
		return
	}
	a.Deallocate(block)
}

// constructAll fills block from src, one element per index in ascending
// order. src(i) produces the value for slot i. On failure the constructed
// prefix is unwound and the block released before the error is returned.
func constructAll[T any](a alloc.Allocator[T], block []T, src func(i int) (T, error)) error {
	for k := range block {
		v, err := src(k)
		if err == nil {
			err = a.Construct(&block[k], v)
		}
		if err != nil {
			unwind(a, block, k)
			release(a, block)
			return err
		}
	}
	return nil
}

// constructDefaults fills block with default-constructed elements in
// ascending order, with the same rollback contract as constructAll.
func constructDefaults[T any](a alloc.Allocator[T], block []T) error {
	for k := range block {
		if err := a.ConstructDefault(&block[k]); err != nil {
			unwind(a, block, k)
			release(a, block)
			return err
		}
	}
	return nil
}

// unwind destroys block[0:k] in strictly descending index order, k-1 down
// to 0. Destruction cannot fail.
func unwind[T any](a alloc.Allocator[T], block []T, k int) {
	for j := k - 1; j >= 0; j-- {
		a.Destroy(&block[j])
	}
}
