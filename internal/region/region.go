// Package region acquires and releases the raw backing memory that a pool
// carves into blocks.
//
// On unix platforms regions come from anonymous, private memory mappings,
// so a pool's backing bytes live outside the Go heap and are returned to
// the operating system on release. On other platforms a plain heap slice
// is used and release is a no-op for the runtime to collect.
package region

import "errors"

// ErrBadSize indicates a non-positive region size request.
var ErrBadSize = errors.New("region: size must be positive")

// System is the platform allocator. It implements the pool package's
// RegionAllocator interface.
type System struct{}

// Acquire returns a zeroed region of exactly size bytes.
func (System) Acquire(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	return acquire(size)
}

// Release returns a region previously obtained from Acquire. Releasing a
// nil region is a no-op.
func (System) Release(b []byte) error {
	if b == nil {
		return nil
	}
	return release(b)
}
