package pool

import (
	"fmt"
	"unsafe"
)

// Pool is a fixed-block arena over one contiguous backing region. The
// zero value is not usable; construct with New.
type Pool struct {
	region    []byte
	blockSize int
	poolSize  int
	numBlocks int

	// freeHead is the region offset of the first free block, or noFree.
	freeHead   int64
	freeBlocks int

	closed bool

	alloc RegionAllocator
	guard *guard
	trace TraceFunc
	stats counters
}

// New creates a pool with the given configuration. The backing region is
// acquired from cfg.Allocator; on any failure after acquisition the region
// is released again, so a failed New leaves no state behind.
func New(cfg Config) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	alloc := cfg.allocator()
	mem, err := alloc.Acquire(cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("pool: acquire region: %w", err)
	}
	if len(mem) != cfg.PoolSize {
		// Defensive: a misbehaving allocator must not leak the region.
		_ = alloc.Release(mem)
		return nil, fmt.Errorf("pool: allocator returned %d bytes, want %d", len(mem), cfg.PoolSize)
	}

	p := &Pool{
		region:    mem,
		blockSize: cfg.BlockSize,
		poolSize:  cfg.PoolSize,
		numBlocks: cfg.PoolSize / cfg.BlockSize,
		alloc:     alloc,
		trace:     cfg.Trace,
	}
	if cfg.Checked {
		p.guard = newGuard(p.numBlocks)
	}
	p.threadFreeList()

	p.traceEvent(EventCreate, 0)
	return p, nil
}

// Alloc detaches the head of the free list and returns it as a block of
// exactly BlockSize bytes with undefined contents. It returns ok == false
// when the pool is exhausted or closed; exhaustion is an expected,
// checkable condition, not an error.
func (p *Pool) Alloc() (block []byte, ok bool) {
	if p.closed || p.freeHead == noFree {
		p.stats.AllocEmpty++
		return nil, false
	}

	off := p.popFree()
	p.stats.AllocCalls++
	if p.guard != nil {
		p.guard.markAllocated(p.blockIndex(off))
	}

	end := int(off) + p.blockSize
	p.traceEvent(EventAlloc, off)
	return p.region[off:end:end], true
}

// Free returns a block to the head of the free list. A nil block is a
// no-op. The handle must be a block previously returned by Alloc on this
// pool and not yet freed: handles outside the region or off a block
// boundary are rejected with ErrBadHandle, and with Checked enabled a
// double-free is rejected with ErrDoubleFree.
func (p *Pool) Free(block []byte) error {
	if block == nil {
		return nil
	}
	if p.closed {
		return ErrClosed
	}

	off, err := p.offsetOf(block)
	if err != nil {
		return err
	}
	if p.guard != nil {
		if err := p.guard.markFree(p.blockIndex(off)); err != nil {
			return err
		}
	}

	p.pushFree(off)
	p.stats.FreeCalls++
	p.traceEvent(EventFree, off)
	return nil
}

// Close releases the backing region. Every block handle ever issued from
// the pool is invalid afterwards. A second Close returns ErrClosed and
// releases nothing.
func (p *Pool) Close() error {
	if p.closed {
		return ErrClosed
	}
	p.closed = true

	mem := p.region
	p.region = nil
	p.freeHead = noFree
	p.freeBlocks = 0

	p.traceEvent(EventClose, 0)
	if err := p.alloc.Release(mem); err != nil {
		return fmt.Errorf("pool: release region: %w", err)
	}
	return nil
}

// BlockSize returns the fixed size in bytes of every block.
func (p *Pool) BlockSize() int { return p.blockSize }

// PoolSize returns the total size in bytes of the backing region.
func (p *Pool) PoolSize() int { return p.poolSize }

// NumBlocks returns the number of blocks carved from the region.
func (p *Pool) NumBlocks() int { return p.numBlocks }

// FreeBlocks returns the number of blocks currently on the free list.
func (p *Pool) FreeBlocks() int { return p.freeBlocks }

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool { return p.closed }

// offsetOf translates a block handle into its region offset, validating
// that the handle addresses a block of this pool.
func (p *Pool) offsetOf(block []byte) (int64, error) {
	if len(block) == 0 {
		return 0, ErrBadHandle
	}

	base := uintptr(unsafe.Pointer(&p.region[0]))
	addr := uintptr(unsafe.Pointer(&block[0]))
	if addr < base {
		return 0, ErrBadHandle
	}

	off := int64(addr - base)
	if !p.validOffset(off) {
		return 0, ErrBadHandle
	}
	return off, nil
}

// usableBytes is the carved extent of the region; trailing remainder
// bytes past the last block are padding and never addressable.
func (p *Pool) usableBytes() int64 {
	return int64(p.numBlocks) * int64(p.blockSize)
}

func (p *Pool) blockIndex(off int64) uint {
	return uint(off / int64(p.blockSize))
}
