package alloc

// Stats is a snapshot of allocator traffic observed by a Counting decorator.
type Stats struct {
	Allocates    int
	Deallocates  int
	Constructs   int
	Destroys     int
	ElemsAlloced int
}

// Counting wraps an inner allocator and counts every call that passes
// through it. Useful in tests and for sizing arenas from observed traffic.
type Counting[T any] struct {
	inner Allocator[T]
	stats Stats
}

// NewCounting returns a counting decorator around inner.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	return &Counting[T]{inner: inner}
}

func (c *Counting[T]) Allocate(n int) ([]T, error) {
	block, err := c.inner.Allocate(n)
	if err == nil {
		c.stats.Allocates++
		c.stats.ElemsAlloced += n
	}
	return block, err
}

func (c *Counting[T]) Deallocate(block []T) {
	c.stats.Deallocates++
	c.inner.Deallocate(block)
}

func (c *Counting[T]) Construct(dst *T, src T) error {
	err := c.inner.Construct(dst, src)
	if err == nil {
		c.stats.Constructs++
	}
	return err
}

func (c *Counting[T]) ConstructDefault(dst *T) error {
	err := c.inner.ConstructDefault(dst)
	if err == nil {
		c.stats.Constructs++
	}
	return err
}

func (c *Counting[T]) Destroy(dst *T) {
	c.stats.Destroys++
	c.inner.Destroy(dst)
}

// Equal reports whether other reaches the same storage: either the same
// decorator, the inner allocator itself, or another decorator over an equal
// inner.
func (c *Counting[T]) Equal(other Allocator[T]) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*Counting[T]); ok {
		return o == c || c.inner.Equal(o.inner)
	}
	return c.inner.Equal(other)
}

// Stats returns a snapshot of the counters.
func (c *Counting[T]) Stats() Stats { return c.stats }

// ResetStats zeroes the counters without touching the inner allocator.
func (c *Counting[T]) ResetStats() { c.stats = Stats{} }

// Inner returns the wrapped allocator.
func (c *Counting[T]) Inner() Allocator[T] { return c.inner }

// Compile-time interface check
var _ Allocator[int] = (*Counting[int])(nil)
