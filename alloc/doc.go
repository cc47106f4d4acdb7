// Package alloc provides the allocator capability surface consumed by the
// array package.
//
// # Overview
//
// An Allocator is responsible for four things: obtaining raw blocks of
// element storage, releasing them, constructing individual elements inside a
// block, and destroying them again. The container never touches memory except
// through an Allocator, so allocation strategy is a pure plug-in decision.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(n): Obtain a block with room for exactly n elements
//   - Deallocate(block): Release a block obtained from Allocate
//   - Construct(dst, src): Place a copy of src at dst
//   - ConstructDefault(dst): Place a default value at dst
//   - Destroy(dst): Tear down the element at dst
//   - Equal(other): Report whether other can release this allocator's blocks
//
// # Implementations
//
// Heap: the Go-native allocator
//
//   - Blocks come from make, release is left to the garbage collector
//   - All Heap instances compare equal and are interchangeable
//   - Allocate never fails
//
// Arena: append-only bump allocator over a reserved region
//
//   - O(1) allocation by bump pointer
//   - Deallocate is a no-op; freed blocks become dead space until Reset
//   - Fails with ErrArenaFull once the region is exhausted
//   - Instances are equal only to themselves
//
// Counting: instrumentation decorator
//
//   - Wraps any inner allocator and counts allocator traffic
//   - Equal when the inner allocators are equal
//
// # Element Hooks
//
// Plain values are constructed by assignment and destroyed by zeroing. Types
// that need more can implement the optional hooks, which every provided
// allocator honors:
//
//	type Cloner[T any] interface{ Clone() (T, error) }
//	type Defaulter[T any] interface{ Default() (T, error) }
//	type Destroyer interface{ Destroy() }
//
// Clone and Default may fail; the container rolls back already-constructed
// elements when they do. Destroy must not fail.
//
// # Usage Example
//
//	a, err := alloc.NewArena[int](4096)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//
//	block, err := a.Allocate(64)
//	if err != nil {
//	    return err
//	}
//	for i := range block {
//	    a.Construct(&block[i], i)
//	}
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
