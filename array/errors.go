package array

import "errors"

var (
	// ErrNegativeCount indicates a negative element count was requested.
	ErrNegativeCount = errors.New("array: element count must be non-negative")

	// ErrNilSource indicates a transfer from a nil source array.
	ErrNilSource = errors.New("array: nil source array")
)
