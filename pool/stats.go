package pool

// counters holds internal operation counts.
type counters struct {
	AllocCalls int64 // successful Alloc calls
	AllocEmpty int64 // Alloc calls that found the pool exhausted or closed
	FreeCalls  int64 // successful Free calls
}

// Stats is a point-in-time snapshot of a pool's geometry and activity.
type Stats struct {
	BlockSize  int // bytes per block
	PoolSize   int // bytes in the backing region
	Blocks     int // blocks carved from the region
	FreeBlocks int // blocks currently on the free list
	InUse      int // blocks currently held by callers
	Padding    int // trailing region bytes not covered by any block

	AllocCalls int64
	AllocEmpty int64
	FreeCalls  int64
}

// Stats returns a snapshot of the pool.
func (p *Pool) Stats() Stats {
	return Stats{
		BlockSize:  p.blockSize,
		PoolSize:   p.poolSize,
		Blocks:     p.numBlocks,
		FreeBlocks: p.freeBlocks,
		InUse:      p.numBlocks - p.freeBlocks,
		Padding:    p.poolSize - int(p.usableBytes()),
		AllocCalls: p.stats.AllocCalls,
		AllocEmpty: p.stats.AllocEmpty,
		FreeCalls:  p.stats.FreeCalls,
	}
}
