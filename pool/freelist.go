package pool

import (
	"fmt"

	"github.com/joshuapare/poolkit/internal/buf"
)

// The free list is intrusive: a free block's first linkWordSize bytes hold
// the region offset of the next free block, little-endian. Offsets rather
// than raw addresses keep the list position-independent and checkable
// against the region bounds.

// noFree is the link sentinel meaning "no further free block".
const noFree = int64(-1)

// threadFreeList pushes every block onto the free list from the last
// block down to the first, so the list comes out low-address-first and
// the first allocation returns the block at offset zero.
func (p *Pool) threadFreeList() {
	p.freeHead = noFree
	p.freeBlocks = 0
	for i := p.numBlocks - 1; i >= 0; i-- {
		p.pushFree(int64(i) * int64(p.blockSize))
	}
}

// pushFree links the block at off in front of the current head.
func (p *Pool) pushFree(off int64) {
	buf.PutI64LE(p.region[off:off+linkWordSize], p.freeHead)
	p.freeHead = off
	p.freeBlocks++
}

// popFree detaches the head block and advances the head to its link.
// Callers must check freeHead != noFree first.
func (p *Pool) popFree() int64 {
	off := p.freeHead
	next := buf.I64LE(p.region[off : off+linkWordSize])
	if next != noFree && !p.validOffset(next) {
		// A caller wrote into a block after freeing it. Better to stop
		// here than to hand out whatever the garbage link points at.
		panic(fmt.Sprintf("pool: corrupted free-list link %d at offset %d", next, off))
	}
	p.freeHead = next
	p.freeBlocks--
	return off
}

// validOffset reports whether off addresses a block of this pool.
func (p *Pool) validOffset(off int64) bool {
	return off >= 0 &&
		off < p.usableBytes() &&
		off%int64(p.blockSize) == 0 &&
		buf.Has(p.region, int(off), p.blockSize)
}
