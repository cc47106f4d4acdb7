//go:build unix

package region

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Reserve obtains a zeroed, page-aligned memory region of at least size
// bytes via an anonymous private mapping. The returned cleanup unmaps it.
func Reserve(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("region: negative size (%d)", size)
	}
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	// Round up to the page size; the kernel maps whole pages anyway.
	page := os.Getpagesize()
	mapped := (size + page - 1) / page * page

	data, err := unix.Mmap(-1, 0, mapped, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("region: mmap of %d bytes failed: %w", mapped, err)
	}

	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data[:size], cleanup, nil
}
