package alloc

// Heap is the Go-native allocator. Blocks come from make and are handed back
// to the garbage collector on Deallocate; construction is assignment unless
// the element type implements the Cloner or Defaulter hooks.
//
// Heap is stateless: every Heap[T] compares equal to every other, and all of
// them are interchangeable, so container moves between Heap-backed instances
// always take the O(1) ownership-transfer path.
type Heap[T any] struct{}

// NewHeap returns the Go-native allocator.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate obtains a zeroed block of n elements. It cannot fail for any
// non-negative n; Go's runtime handles out-of-memory by aborting the process.
func (*Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate releases a block. The garbage collector reclaims it once the
// caller drops its reference; nothing to do here.
func (*Heap[T]) Deallocate(block []T) {}

// Construct places a copy of src into *dst.
func (*Heap[T]) Construct(dst *T, src T) error {
	return constructElem(dst, src)
}

// ConstructDefault places a default value into *dst.
func (*Heap[T]) ConstructDefault(dst *T) error {
	return constructDefaultElem(dst)
}

// Destroy tears down the element at *dst.
func (*Heap[T]) Destroy(dst *T) {
	destroyElem(dst)
}

// Equal reports true for any other Heap instance.
func (*Heap[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(*Heap[T])
	return ok
}

// Interchangeable reports true: any Heap block may be released through any
// Heap instance.
func (*Heap[T]) Interchangeable() bool { return true }

// Compile-time interface checks
var (
	_ Allocator[int]  = (*Heap[int])(nil)
	_ Interchangeable = (*Heap[int])(nil)
)
