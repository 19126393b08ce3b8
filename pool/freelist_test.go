package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/poolkit/internal/buf"
)

func TestThreadFreeListOrder(t *testing.T) {
	p := newTestPool(t, Config{BlockSize: 16, PoolSize: 80})

	offs := walkFreeList(t, p)
	assert.Equal(t, []int64{0, 16, 32, 48, 64}, offs,
		"free list must start at the lowest offset and ascend")
}

func TestPushPopRoundTrip(t *testing.T) {
	p := newTestPool(t, Config{BlockSize: 16, PoolSize: 64})

	a := p.popFree()
	b := p.popFree()
	assert.Equal(t, int64(0), a)
	assert.Equal(t, int64(16), b)

	p.pushFree(a)
	p.pushFree(b)
	assert.Equal(t, b, p.freeHead, "LIFO: last push is the head")
	assert.Equal(t, 4, p.freeBlocks)
	walkFreeList(t, p)
}

func TestCorruptedLinkPanics(t *testing.T) {
	p := newTestPool(t, Config{BlockSize: 16, PoolSize: 64})

	block, ok := p.Alloc()
	require.True(t, ok)
	require.NoError(t, p.Free(block))

	// Simulate a caller scribbling over a freed block: the head's link
	// word now points nowhere sensible.
	buf.PutI64LE(p.region[0:linkWordSize], 7)

	assert.Panics(t, func() { p.Alloc() })
}
