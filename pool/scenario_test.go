package pool

// End-to-end scenarios exercising the create/alloc/free/close cycle the
// way an embedded caller would drive it.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioCreate(t *testing.T) {
	p, err := New(Config{BlockSize: 16, PoolSize: 128})
	require.NoError(t, err)

	assert.Equal(t, 16, p.BlockSize())
	assert.Equal(t, 128, p.PoolSize())
	assert.Equal(t, 8, p.FreeBlocks(), "all blocks start free")

	require.NoError(t, p.Close())
}

func TestScenarioAllocateAndReuse(t *testing.T) {
	p, err := New(Config{BlockSize: 16, PoolSize: 128})
	require.NoError(t, err)
	defer p.Close()

	block1, ok := p.Alloc()
	require.True(t, ok)
	block2, ok := p.Alloc()
	require.True(t, ok)
	block3, ok := p.Alloc()
	require.True(t, ok)

	off1, _ := p.offsetOf(block1)
	off2, _ := p.offsetOf(block2)
	off3, _ := p.offsetOf(block3)
	assert.NotEqual(t, off1, off2)
	assert.NotEqual(t, off2, off3)

	require.NoError(t, p.Free(block2))

	// LIFO reuse: the freed block comes straight back.
	block4, ok := p.Alloc()
	require.True(t, ok)
	off4, _ := p.offsetOf(block4)
	assert.Equal(t, off2, off4)

	block5, ok := p.Alloc()
	require.True(t, ok)
	off5, _ := p.offsetOf(block5)
	assert.NotEqual(t, off4, off5)
}

func TestScenarioFreeListHead(t *testing.T) {
	p, err := New(Config{BlockSize: 16, PoolSize: 128})
	require.NoError(t, err)

	block, ok := p.Alloc()
	require.True(t, ok)
	off, _ := p.offsetOf(block)

	require.NoError(t, p.Free(block))
	assert.Equal(t, off, p.freeHead, "freed block must be the new free-list head")

	require.NoError(t, p.Close())
}

func TestScenarioRejectsZeroBlockPool(t *testing.T) {
	_, err := New(Config{BlockSize: 200, PoolSize: 128})
	assert.ErrorIs(t, err, ErrPoolSize,
		"a pool that would hold zero blocks must be rejected at creation")
}
