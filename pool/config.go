package pool

import "github.com/joshuapare/poolkit/internal/region"

const (
	// linkWordSize is the number of bytes a free block lends to the free
	// list for its next link.
	linkWordSize = 8

	// blockAlign is the alignment every block size must satisfy so the
	// link word sits at its natural alignment.
	blockAlign = 8
)

// RegionAllocator is the boundary between a pool and the hosting
// environment's raw memory. It is called exactly once to acquire the
// backing region at creation and once to release it at Close.
//
// Implementations must return exactly size bytes from Acquire and accept
// the same slice back in Release.
type RegionAllocator interface {
	Acquire(size int) ([]byte, error)
	Release(b []byte) error
}

// Config describes the geometry and behavior of a pool.
type Config struct {
	// BlockSize is the size in bytes of every block. Must be positive,
	// at least linkWordSize, and a multiple of 8.
	BlockSize int

	// PoolSize is the total size in bytes of the backing region. Must
	// exceed BlockSize; PoolSize / BlockSize blocks are carved and any
	// remainder is unusable padding.
	PoolSize int

	// Checked enables per-block allocated-state tracking so that
	// double-frees are detected and reported instead of corrupting the
	// free list. Costs one bit per block.
	Checked bool

	// Trace, when non-nil, receives an event for every pool operation.
	Trace TraceFunc

	// Allocator supplies the backing region. Nil selects the platform
	// allocator (anonymous mmap on unix, heap elsewhere).
	Allocator RegionAllocator
}

// validate rejects contract violations at the API boundary as
// configuration errors.
func (c Config) validate() error {
	if c.BlockSize < linkWordSize {
		return ErrBlockSize
	}
	if c.BlockSize%blockAlign != 0 {
		return ErrBlockAlign
	}
	if c.PoolSize <= c.BlockSize {
		return ErrPoolSize
	}
	return nil
}

// allocator returns the configured allocator or the platform default.
func (c Config) allocator() RegionAllocator {
	if c.Allocator != nil {
		return c.Allocator
	}
	return region.System{}
}
