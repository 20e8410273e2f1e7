package x11wire

import "encoding/binary"

// ByteOrder is the per-connection selector threaded through every
// multi-byte primitive encode/decode. It is chosen once, from the first
// byte of the client setup, and never changes for the life of a
// connection. The standard library's encoding/binary.ByteOrder is used
// directly rather than a bespoke enum: every multi-byte field in this
// package already maps onto BigEndian/LittleEndian semantics exactly.
type ByteOrder = binary.ByteOrder

// MSBFirst and LSBFirst are the two concrete orders a connection can
// select. They correspond to setup byte 0 values 0o102 ('B') and 0o154
// ('l') respectively (see DecodeClientSetup).
var (
	MSBFirst ByteOrder = binary.BigEndian
	LSBFirst ByteOrder = binary.LittleEndian
)

// Wire widths, in bytes, of the fixed-width primitive types this package
// encodes. 8-bit values and booleans ignore ByteOrder entirely.
const (
	Width8  = 1
	Width16 = 2
	Width32 = 4
)

// EncodeUint8 writes v into dst[0]. dst must have length Width8.
func EncodeUint8(dst []byte, v uint8) { dst[0] = v }

// DecodeUint8 reads src[0]. src must have length Width8.
func DecodeUint8(src []byte) uint8 { return src[0] }

// EncodeInt8 writes the two's-complement encoding of v into dst[0].
func EncodeInt8(dst []byte, v int8) { dst[0] = byte(v) }

// DecodeInt8 reads src[0] as a two's-complement signed byte.
func DecodeInt8(src []byte) int8 { return int8(src[0]) }

// EncodeBool writes exactly 0 or 1 into dst[0], never any other byte.
func EncodeBool(dst []byte, v bool) {
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
}

// DecodeBool reads src[0]: zero is false, any non-zero byte is true.
func DecodeBool(src []byte) bool { return src[0] != 0 }

// EncodeUint16 writes v into dst under order. dst must have length Width16.
func EncodeUint16(order ByteOrder, dst []byte, v uint16) { order.PutUint16(dst, v) }

// DecodeUint16 reads src under order. src must have length Width16.
func DecodeUint16(order ByteOrder, src []byte) uint16 { return order.Uint16(src) }

// EncodeInt16 writes the two's-complement encoding of v under order.
func EncodeInt16(order ByteOrder, dst []byte, v int16) { order.PutUint16(dst, uint16(v)) }

// DecodeInt16 reads src under order as a two's-complement signed value.
func DecodeInt16(order ByteOrder, src []byte) int16 { return int16(order.Uint16(src)) }

// EncodeUint32 writes v into dst under order. dst must have length Width32.
func EncodeUint32(order ByteOrder, dst []byte, v uint32) { order.PutUint32(dst, v) }

// DecodeUint32 reads src under order. src must have length Width32.
func DecodeUint32(order ByteOrder, src []byte) uint32 { return order.Uint32(src) }

// EncodeInt32 writes the two's-complement encoding of v under order.
func EncodeInt32(order ByteOrder, dst []byte, v int32) { order.PutUint32(dst, uint32(v)) }

// DecodeInt32 reads src under order as a two's-complement signed value.
func DecodeInt32(order ByteOrder, src []byte) int32 { return int32(order.Uint32(src)) }

// PadLen returns the number of zero bytes needed to bring n up to the next
// multiple of 4.
func PadLen(n int) int {
	return (4 - n%4) % 4
}
