package x11wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeUint8(t *testing.T) {
	var b [Width8]byte
	EncodeUint8(b[:], 0xAB)
	assert.Equal(t, uint8(0xAB), DecodeUint8(b[:]))
}

func TestEncodeDecodeBool(t *testing.T) {
	var b [Width8]byte
	EncodeBool(b[:], true)
	assert.Equal(t, byte(1), b[0])
	assert.True(t, DecodeBool(b[:]))

	EncodeBool(b[:], false)
	assert.Equal(t, byte(0), b[0])
	assert.False(t, DecodeBool(b[:]))

	// Any non-zero byte decodes true, not just 1.
	b[0] = 0x7F
	assert.True(t, DecodeBool(b[:]))
}

func TestEncodeDecodeUint16(t *testing.T) {
	for _, order := range []ByteOrder{MSBFirst, LSBFirst} {
		var b [Width16]byte
		EncodeUint16(order, b[:], 0x1234)
		assert.Equal(t, uint16(0x1234), DecodeUint16(order, b[:]))
	}
	var msb, lsb [Width16]byte
	EncodeUint16(MSBFirst, msb[:], 0x1234)
	EncodeUint16(LSBFirst, lsb[:], 0x1234)
	assert.Equal(t, []byte{0x12, 0x34}, msb[:])
	assert.Equal(t, []byte{0x34, 0x12}, lsb[:])
}

func TestEncodeDecodeInt16(t *testing.T) {
	var b [Width16]byte
	EncodeInt16(MSBFirst, b[:], -100)
	assert.Equal(t, int16(-100), DecodeInt16(MSBFirst, b[:]))
}

func TestEncodeDecodeUint32(t *testing.T) {
	var b [Width32]byte
	EncodeUint32(LSBFirst, b[:], 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), DecodeUint32(LSBFirst, b[:]))
}

func TestEncodeDecodeInt32(t *testing.T) {
	var b [Width32]byte
	EncodeInt32(MSBFirst, b[:], -1)
	assert.Equal(t, int32(-1), DecodeInt32(MSBFirst, b[:]))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, b[:])
}

func TestPadLen(t *testing.T) {
	cases := map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 5: 3, 8: 0}
	for n, want := range cases {
		assert.Equal(t, want, PadLen(n), "PadLen(%d)", n)
	}
}
