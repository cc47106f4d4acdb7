package alloc

// Allocator defines the interface for element block allocation and
// per-element construction and destruction.
//
// Implementations:
//   - Heap: Go-native allocator backed by make and the garbage collector
//   - Arena: append-only bump allocator over a fixed reserved region
//   - Counting: instrumentation decorator around any inner allocator
//
// This interface enables different allocation strategies while keeping the
// container logic allocator-agnostic.
type Allocator[T any] interface {
	// Allocate obtains a block with room for exactly n elements.
	// The returned slice has length n. No element in it is considered
	// live until Construct or ConstructDefault succeeds for its slot.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously obtained from Allocate on
	// this allocator (or an Equal/interchangeable one). The block must
	// hold no live elements.
	Deallocate(block []T)

	// Construct places a copy of src into *dst. Honors the Cloner hook.
	Construct(dst *T, src T) error

	// ConstructDefault places a default value into *dst. Honors the
	// Defaulter hook.
	ConstructDefault(dst *T) error

	// Destroy tears down the element at *dst. Honors the Destroyer hook.
	// Destruction must not fail.
	Destroy(dst *T)

	// Equal reports whether other can release blocks obtained from this
	// allocator and vice versa.
	Equal(other Allocator[T]) bool
}

// Interchangeable is an optional capability: allocators reporting true may
// release each other's blocks regardless of Equal, which lets the container
// take the O(1) ownership-transfer path on move even across instances.
type Interchangeable interface {
	Interchangeable() bool
}

// CopyPropagator is an optional capability: it derives the allocator a copy
// of a container should use. When absent, the source's allocator is reused.
type CopyPropagator[T any] interface {
	SelectOnCopy() Allocator[T]
}

// Cloner is implemented by element types whose copy construction can fail or
// has side effects. Allocators call Clone instead of plain assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Defaulter is implemented by element types whose default construction can
// fail or produces something other than the zero value.
type Defaulter[T any] interface {
	Default() (T, error)
}

// Destroyer is implemented by element types with destruction side effects.
// Destroy must not fail; there is no error return by contract.
type Destroyer interface {
	Destroy()
}

// Interchanges reports whether blocks may move between the two allocators
// without reallocation: they are equal, or either declares itself
// interchangeable.
func Interchanges[T any](a, b Allocator[T]) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Equal(b) {
		return true
	}
	if ic, ok := a.(Interchangeable); ok && ic.Interchangeable() {
		return true
	}
	if ic, ok := b.(Interchangeable); ok && ic.Interchangeable() {
		return true
	}
	return false
}
