// Package testutil provides instrumented element types and allocators shared
// by the alloc and array test suites.
package testutil

import (
	"errors"

	"github.com/dendisuhubdy/sleip/alloc"
)

var (
	// ErrCloneBoom is the injected copy-construction failure.
	ErrCloneBoom = errors.New("testutil: clone failure injected")

	// ErrDefaultBoom is the injected default-construction failure.
	ErrDefaultBoom = errors.New("testutil: default construction failure injected")

	// ErrAllocBoom is the injected allocation failure.
	ErrAllocBoom = errors.New("testutil: allocation failure injected")
)

// Trace records construction and destruction order for Tracked elements.
// Live counts how many Tracked elements currently exist; Built and Torn
// collect one letter per event ('a' for index 0, 'b' for index 1, ...).
type Trace struct {
	Live int

	// FailAt makes Clone fail when it would bring Live up to FailAt.
	// Zero disables injection.
	FailAt int

	Built []byte
	Torn  []byte
}

// Tracked is an element whose copy construction and destruction are observable
// through a shared Trace, with optional failure injection. The zero value
// (nil Trace) is inert.
type Tracked struct {
	T *Trace
}

// Clone records this element's index into the trace, or fails when the
// injection threshold is reached.
func (t Tracked) Clone() (Tracked, error) {
	tr := t.T
	if tr == nil {
		return Tracked{}, nil
	}
	if tr.FailAt > 0 && tr.Live+1 == tr.FailAt {
		return Tracked{}, ErrCloneBoom
	}
	tr.Built = append(tr.Built, byte('a'+tr.Live))
	tr.Live++
	return Tracked{T: tr}, nil
}

// Destroy records this element's index into the teardown trace.
func (t Tracked) Destroy() {
	if t.T == nil {
		return
	}
	t.T.Live--
	t.T.Torn = append(t.T.Torn, byte('a'+t.T.Live))
}

// Flaky decorates an inner allocator with failure injection. A FailDefaultAt
// of k makes the k-th ConstructDefault call fail (1-based); FailAllocate
// fails every Allocate. Destroys counts Destroy calls so tests can assert
// that rollback touched exactly the constructed prefix.
type Flaky[T any] struct {
	Inner alloc.Allocator[T]

	FailAllocate  bool
	FailDefaultAt int

	Defaults int
	Destroys int
}

func (f *Flaky[T]) Allocate(n int) ([]T, error) {
	if f.FailAllocate {
		return nil, ErrAllocBoom
	}
	return f.Inner.Allocate(n)
}

func (f *Flaky[T]) Deallocate(block []T) {
	f.Inner.Deallocate(block)
}

func (f *Flaky[T]) Construct(dst *T, src T) error {
	return f.Inner.Construct(dst, src)
}

func (f *Flaky[T]) ConstructDefault(dst *T) error {
	f.Defaults++
	if f.FailDefaultAt > 0 && f.Defaults == f.FailDefaultAt {
		return ErrDefaultBoom
	}
	return f.Inner.ConstructDefault(dst)
}

func (f *Flaky[T]) Destroy(dst *T) {
	f.Destroys++
	f.Inner.Destroy(dst)
}

func (f *Flaky[T]) Equal(other alloc.Allocator[T]) bool {
	if o, ok := other.(*Flaky[T]); ok {
		return o == f
	}
	return false
}

// Compile-time interface check
var _ alloc.Allocator[int] = (*Flaky[int])(nil)
