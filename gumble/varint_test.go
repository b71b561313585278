package gumble

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 0x7F, 0x80, 0xFF, 0x3FFF, 0x4000, 0x1FFFFF, 0x200000,
		0xFFFFFFF, 0x10000000, 0xFFFFFFFF, 0x100000000,
		1 << 40, math.MaxUint64,
	}
	for _, v := range values {
		enc := varintEncode(v)
		got, n, ok := varintDecode(enc)
		assert.True(t, ok, "value %d", v)
		assert.Equal(t, len(enc), n, "value %d", v)
		assert.Equal(t, v, got, "value %d", v)
	}
}

func TestVarintDecodeIncomplete(t *testing.T) {
	enc := varintEncode(0x1FFFFF) // 3-byte encoding
	_, _, ok := varintDecode(enc[:2])
	assert.False(t, ok)
}

func TestVarintSignedEncoding(t *testing.T) {
	for _, v := range []int64{0, 1, -1, -2, -4, -5, -1000, math.MinInt32} {
		enc := varintEncodeSigned(v)
		got, n, ok := varintDecode(enc)
		assert.True(t, ok, "value %d", v)
		assert.Equal(t, len(enc), n, "value %d", v)
		assert.Equal(t, v, int64(got), "value %d", v)
	}
}
