package pool

import "errors"

var (
	// ErrBlockSize indicates a block size that is not positive or cannot
	// hold one link word.
	ErrBlockSize = errors.New("pool: block size must be positive and at least one link word")

	// ErrBlockAlign indicates a block size that is not a multiple of the
	// platform pointer alignment.
	ErrBlockAlign = errors.New("pool: block size must be a multiple of 8")

	// ErrPoolSize indicates a pool size that does not exceed the block
	// size, which would leave the pool with zero blocks.
	ErrPoolSize = errors.New("pool: pool size must exceed block size")

	// ErrBadHandle indicates a block handle that does not address a block
	// of this pool: outside the region or not on a block boundary.
	ErrBadHandle = errors.New("pool: bad block handle")

	// ErrDoubleFree indicates a free of a block that is already on the
	// free list. Only detected when the pool was created with Checked.
	ErrDoubleFree = errors.New("pool: block is already free")

	// ErrClosed indicates an operation on a pool after Close.
	ErrClosed = errors.New("pool: pool is closed")
)
