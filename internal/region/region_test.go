package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	var sys System

	b, err := sys.Acquire(4096)
	require.NoError(t, err)
	require.Len(t, b, 4096)

	// Region must be writable and zeroed.
	for _, c := range b {
		if c != 0 {
			t.Fatal("expected zeroed region")
		}
	}
	b[0], b[4095] = 0xde, 0xad

	require.NoError(t, sys.Release(b))
}

func TestAcquireBadSize(t *testing.T) {
	var sys System

	_, err := sys.Acquire(0)
	assert.ErrorIs(t, err, ErrBadSize)

	_, err = sys.Acquire(-1)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestReleaseNil(t *testing.T) {
	var sys System
	assert.NoError(t, sys.Release(nil))
}

func TestAcquireUnaligned(t *testing.T) {
	var sys System

	// Sizes that are not page multiples must still round-trip.
	b, err := sys.Acquire(100)
	require.NoError(t, err)
	require.Len(t, b, 100)
	require.NoError(t, sys.Release(b))
}
