package alloc

import (
	"unsafe"

	"github.com/dendisuhubdy/sleip/internal/region"
)

// Arena is an append-only bump allocator carving element blocks out of a
// single reserved region. It is a good fit for workloads that build a batch
// of fixed-length arrays and drop them all at once.
//
// Key characteristics:
//   - O(1) allocation: pure bump pointer, no heap operations
//   - Deallocate is a no-op: freed blocks become dead space until Reset
//   - Reset reclaims the whole region in O(1)
//   - Allocate fails with ErrArenaFull once the region is exhausted
//
// An Arena compares equal only to itself, so moving a container between two
// arenas goes through the per-element fallback path rather than the O(1)
// block transfer.
type Arena[T any] struct {
	mem     []byte
	cleanup func() error

	// off is the bump pointer: the byte offset where the next block
	// starts. Never decreases except through Reset.
	off int

	released bool

	allocs int
	frees  int
}

// NewArena reserves capacity bytes of backing storage and returns an arena
// allocating from it. Release must be called to return the region to the
// operating system.
func NewArena[T any](capacity int) (*Arena[T], error) {
	mem, cleanup, err := region.Reserve(capacity)
	if err != nil {
		return nil, err
	}
	return &Arena[T]{mem: mem, cleanup: cleanup}, nil
}

// NewArenaFor reserves enough backing storage for n elements of T.
func NewArenaFor[T any](n int) (*Arena[T], error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	var zero T
	return NewArena[T](n * int(unsafe.Sizeof(zero)))
}

// Allocate carves a zeroed block of n elements off the region by bumping the
// offset, aligned for T.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if a.released {
		return nil, ErrReleased
	}
	if n < 0 {
		return nil, ErrBadCount
	}
	if n == 0 {
		return nil, nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	if size == 0 {
		// Zero-size elements need no region space.
		return make([]T, n), nil
	}

	// The region base is page-aligned, so aligning the offset aligns the
	// block.
	off := a.off
	if rem := off % align; rem != 0 {
		off += align - rem
	}

	need := n * size
	if off+need > len(a.mem) {
		return nil, ErrArenaFull
	}

	block := unsafe.Slice((*T)(unsafe.Pointer(&a.mem[off])), n)
	// Fresh mappings are zeroed, but after Reset the bytes are stale.
	clear(block)

	a.off = off + need
	a.allocs++
	return block, nil
}

// Deallocate is a no-op for allocation tracking. The block becomes dead
// space until the arena is Reset.
func (a *Arena[T]) Deallocate(block []T) {
	if len(block) != 0 {
		a.frees++
	}
}

// Construct places a copy of src into *dst.
func (a *Arena[T]) Construct(dst *T, src T) error {
	return constructElem(dst, src)
}

// ConstructDefault places a default value into *dst.
func (a *Arena[T]) ConstructDefault(dst *T) error {
	return constructDefaultElem(dst)
}

// Destroy tears down the element at *dst.
func (a *Arena[T]) Destroy(dst *T) {
	destroyElem(dst)
}

// Equal reports whether other is this same arena. Distinct arenas own
// distinct regions and can never release each other's blocks.
func (a *Arena[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Arena[T])
	return ok && o == a
}

// Reset reclaims the whole region in O(1). All blocks handed out so far
// become invalid; the caller must ensure no live elements remain.
func (a *Arena[T]) Reset() {
	a.off = 0
	a.allocs = 0
	a.frees = 0
}

// Release returns the region to the operating system. The arena fails all
// subsequent Allocate calls with ErrReleased.
func (a *Arena[T]) Release() error {
	if a.released {
		return nil
	}
	a.released = true
	a.mem = nil
	return a.cleanup()
}

// InUse returns the number of bytes consumed by the bump pointer, dead
// space included.
func (a *Arena[T]) InUse() int { return a.off }

// Cap returns the total size of the reserved region in bytes.
func (a *Arena[T]) Cap() int { return len(a.mem) }

// Allocs returns the number of blocks handed out since the last Reset.
func (a *Arena[T]) Allocs() int { return a.allocs }

// Compile-time interface check
var _ Allocator[int] = (*Arena[int])(nil)
