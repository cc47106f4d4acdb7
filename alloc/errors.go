package alloc

import "errors"

var (
	// ErrArenaFull indicates the arena's reserved region has no room left
	// for the requested block.
	ErrArenaFull = errors.New("alloc: arena region exhausted")

	// ErrBadCount indicates a negative element count was requested.
	ErrBadCount = errors.New("alloc: element count must be non-negative")

	// ErrReleased indicates use of an arena whose region was already
	// released.
	ErrReleased = errors.New("alloc: arena already released")
)
