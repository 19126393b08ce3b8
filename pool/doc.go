// Package pool implements a fixed-block memory pool: one contiguous
// backing region carved into equal-sized blocks, served in O(1) through an
// intrusive free list threaded through the unused blocks themselves.
//
// # Overview
//
// The pool is intended for workloads that allocate and release many
// same-sized objects and cannot afford general-purpose allocation on the
// hot path. There is no per-block header: an allocated block's full size
// is usable payload, and a free block repurposes its first eight bytes to
// store the region offset of the next free block.
//
// # Usage Example
//
//	p, err := pool.New(pool.Config{BlockSize: 64, PoolSize: 64 << 10})
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	block, ok := p.Alloc()
//	if !ok {
//	    // pool exhausted - an expected, checkable condition
//	}
//
//	// ... use block ...
//
//	if err := p.Free(block); err != nil {
//	    return err
//	}
//
// # Allocation Model
//
//   - Alloc pops the free-list head: O(1), no scan of the region.
//   - Free pushes the block back at the head: O(1), LIFO reuse. The most
//     recently freed block is the next one allocated.
//   - Exhaustion is not an error. Alloc returns ok == false and callers
//     are expected to check it on every call.
//   - Block contents are undefined (not zeroed) on allocation.
//
// # Geometry
//
// A pool of PoolSize bytes with BlockSize-byte blocks holds exactly
// PoolSize / BlockSize blocks; trailing remainder bytes are unusable
// padding. BlockSize must be a multiple of 8 so that every block can hold
// a link word at its natural alignment, and PoolSize must exceed
// BlockSize so the pool holds at least one block.
//
// # Safety
//
// The pool performs only validation that costs nothing per block: a
// handle outside the region or not on a block boundary is
// rejected with ErrBadHandle, and operations on a closed pool report
// ErrClosed. Setting Config.Checked additionally tracks the allocated
// state of every block in a bitmap so double-frees surface as
// ErrDoubleFree, at the cost of one bit per block.
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers sharing a pool across
// goroutines must serialize access externally, or use SyncPool, a mutex
// wrapper over the same core.
package pool
