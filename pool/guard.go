package pool

import "github.com/willf/bitset"

// guard tracks the allocated state of every block so that misuse the base
// pool cannot see (double-free) becomes a reported error. One bit per
// block; only present when Config.Checked is set.
type guard struct {
	allocated *bitset.BitSet
}

func newGuard(numBlocks int) *guard {
	return &guard{allocated: bitset.New(uint(numBlocks))}
}

func (g *guard) markAllocated(i uint) {
	g.allocated.Set(i)
}

// markFree clears the block's allocated bit, rejecting blocks that are
// not currently allocated.
func (g *guard) markFree(i uint) error {
	if !g.allocated.Test(i) {
		return ErrDoubleFree
	}
	g.allocated.Clear(i)
	return nil
}

// inUse returns the number of blocks currently marked allocated.
func (g *guard) inUse() uint {
	return g.allocated.Count()
}
