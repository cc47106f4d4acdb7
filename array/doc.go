// Package array provides a fixed-length, contiguous, allocator-aware
// container. The length is fixed at construction and never changes; there is
// no insert, erase, or resize.
//
// # Overview
//
// An Array[T] owns exactly one block of storage, obtained from an
// alloc.Allocator, holding exactly Len() live elements. Construction either
// fully succeeds or the array never comes into existence: if building
// element k fails, elements [0, k) are destroyed in reverse index order, the
// block is released, and the original error is returned unchanged. No
// partially-built array is ever observable, and nothing leaks.
//
// # Construction
//
// Constructors come in pairs: a plain form using the Go-native allocator and
// an In form taking an explicit allocator.
//
//	buf, err := array.Fill(24, -1)              // 24 elements, all -1
//	buf, err := array.Sized[int](24)            // 24 default values
//	buf, err := array.Of(1, 2, 3)               // from a literal list
//	buf, err := array.FromSlice(values)         // from a slice or array
//	buf, err := array.FromIter(list.Elems())    // from any finite sequence
//	dup, err := array.Copy(buf)                 // independent storage
//	dst := array.Move(buf)                      // O(1), buf becomes empty
//
// Arrays built with Sized or an empty source still uphold the invariant that
// a zero length means no storage at all: Data returns nil and the allocator
// is never called.
//
// # Moving
//
// Move always transfers the block in O(1) and cannot fail. MoveIn transfers
// the block only when the destination allocator can release the source's
// block (alloc.Interchanges); otherwise it falls back to per-element
// construction through the same rollback machinery, leaving the source
// intact.
//
// # Destruction
//
// Destroy tears down all elements in reverse index order and releases the
// block. It cannot fail and is idempotent. Element Destroy hooks must not
// fail; there is no error channel for them by contract.
//
// # Thread Safety
//
// Array instances are not thread-safe. Callers must synchronize concurrent
// access to the same instance externally.
package array
