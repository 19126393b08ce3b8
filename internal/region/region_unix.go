//go:build unix

package region

import (
	"errors"

	"golang.org/x/sys/unix"
)

// acquire maps an anonymous, private region of size bytes.
func acquire(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// release unmaps a region returned by acquire.
func release(b []byte) error {
	err := unix.Munmap(b)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
