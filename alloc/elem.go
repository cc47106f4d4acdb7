package alloc

// constructElem places a copy of src into *dst, routing through the Cloner
// hook when the element type implements it.
func constructElem[T any](dst *T, src T) error {
	if c, ok := any(src).(Cloner[T]); ok {
		v, err := c.Clone()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	*dst = src
	return nil
}

// constructDefaultElem places a default value into *dst, routing through the
// Defaulter hook when the element type implements it.
func constructDefaultElem[T any](dst *T) error {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		v, err := d.Default()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	*dst = zero
	return nil
}

// destroyElem tears down *dst, routing through the Destroyer hook when the
// element type implements it, then zeroes the slot so stale values cannot
// leak through a recycled block.
func destroyElem[T any](dst *T) {
	if d, ok := any(*dst).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*dst = zero
}
