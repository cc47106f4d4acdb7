//go:build !unix

package region

import "fmt"

// Reserve obtains a zeroed memory region of size bytes. On platforms without
// anonymous mappings it falls back to heap allocation; the cleanup drops the
// reference and lets the garbage collector reclaim it.
func Reserve(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("region: negative size (%d)", size)
	}
	data := make([]byte, size)
	return data, func() error { return nil }, nil
}
