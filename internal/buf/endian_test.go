package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestI64LERoundTrip(t *testing.T) {
	b := make([]byte, 8)
	for _, v := range []int64{0, 1, -1, 42, -42, 1 << 40, -(1 << 40)} {
		PutI64LE(b, v)
		assert.Equal(t, v, I64LE(b))
	}
}

func TestI64LEShortBuffer(t *testing.T) {
	b := []byte{1, 2, 3}
	assert.Equal(t, int64(0), I64LE(b))
	PutI64LE(b, 99) // must not panic or write
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestSliceBounds(t *testing.T) {
	b := make([]byte, 16)

	s, ok := Slice(b, 8, 8)
	assert.True(t, ok)
	assert.Len(t, s, 8)

	_, ok = Slice(b, 9, 8)
	assert.False(t, ok)

	_, ok = Slice(b, -1, 4)
	assert.False(t, ok)

	_, ok = Slice(b, 4, -1)
	assert.False(t, ok)

	assert.True(t, Has(b, 0, 16))
	assert.False(t, Has(b, 16, 1))
}
