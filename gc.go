package x11wire

import "bytes"

// GC value-mask bits, in the order they occupy the 32-bit CreateGC/ChangeGC
// value-mask and, correspondingly, the order their values are packed on
// the wire.
const (
	GCFunction          = 1 << 0
	GCPlaneMask         = 1 << 1
	GCForeground        = 1 << 2
	GCBackground        = 1 << 3
	GCLineWidth         = 1 << 4
	GCLineStyle         = 1 << 5
	GCCapStyle          = 1 << 6
	GCJoinStyle         = 1 << 7
	GCFillStyle         = 1 << 8
	GCFillRule          = 1 << 9
	GCTile              = 1 << 10
	GCStipple           = 1 << 11
	GCTileStipXOrigin   = 1 << 12
	GCTileStipYOrigin   = 1 << 13
	GCFont              = 1 << 14
	GCSubwindowMode     = 1 << 15
	GCGraphicsExposures = 1 << 16
	GCClipXOrigin       = 1 << 17
	GCClipYOrigin       = 1 << 18
	GCClipMask          = 1 << 19
	GCDashOffset        = 1 << 20
	GCDashes            = 1 << 21
	GCArcMode           = 1 << 22
)

// GC enumerations, fixed by the protocol.
const (
	FunctionClear        = 0
	FunctionAnd          = 1
	FunctionAndReverse   = 2
	FunctionCopy         = 3
	FunctionAndInverted  = 4
	FunctionNoOp         = 5
	FunctionXor          = 6
	FunctionOr           = 7
	FunctionNor          = 8
	FunctionEquiv        = 9
	FunctionInvert       = 10
	FunctionOrReverse    = 11
	FunctionCopyInverted = 12
	FunctionOrInverted   = 13
	FunctionNand         = 14
	FunctionSet          = 15

	LineStyleSolid      = 0
	LineStyleOnOffDash  = 1
	LineStyleDoubleDash = 2

	CapStyleNotLast    = 0
	CapStyleButt       = 1
	CapStyleRound      = 2
	CapStyleProjecting = 3

	JoinStyleMiter = 0
	JoinStyleRound = 1
	JoinStyleBevel = 2

	FillStyleSolid          = 0
	FillStyleTiled          = 1
	FillStyleStippled       = 2
	FillStyleOpaqueStippled = 3

	FillRuleEvenOdd = 0
	FillRuleWinding = 1

	SubwindowModeClipByChildren   = 0
	SubwindowModeIncludeInferiors = 1

	ArcModeChord    = 0
	ArcModePieSlice = 1
)

// GCValues is the CreateGC/ChangeGC value-list record: one field per
// optional GC attribute, each at its protocol-native wire width. Presence
// on the wire is driven entirely by the accompanying mask, never by
// comparing against GCDefaults.
type GCValues struct {
	Function          uint8
	PlaneMask         uint32
	Foreground        uint32
	Background        uint32
	LineWidth         uint16
	LineStyle         uint8
	CapStyle          uint8
	JoinStyle         uint8
	FillStyle         uint8
	FillRule          uint8
	Tile              Pixmap
	Stipple           Pixmap
	TileStipXOrigin   int16
	TileStipYOrigin   int16
	Font              Font
	SubwindowMode     uint8
	GraphicsExposures bool
	ClipXOrigin       int16
	ClipYOrigin       int16
	ClipMask          Pixmap // 0 means None.
	DashOffset        uint16
	Dashes            uint8
	ArcMode           uint8
}

// GCDefaults holds the value a decoder substitutes for any field absent
// from the wire mask.
var GCDefaults = GCValues{
	Function:          FunctionCopy,
	PlaneMask:         0xFFFFFFFF,
	Foreground:        0,
	Background:        1,
	LineWidth:         0,
	LineStyle:         LineStyleSolid,
	CapStyle:          CapStyleButt,
	JoinStyle:         JoinStyleMiter,
	FillStyle:         FillStyleSolid,
	FillRule:          FillRuleEvenOdd,
	Tile:              0,
	Stipple:           0,
	TileStipXOrigin:   0,
	TileStipYOrigin:   0,
	Font:              0,
	SubwindowMode:     SubwindowModeClipByChildren,
	GraphicsExposures: true,
	ClipXOrigin:       0,
	ClipYOrigin:       0,
	ClipMask:          0,
	DashOffset:        0,
	Dashes:            4,
	ArcMode:           ArcModePieSlice,
}

// gcField describes one value-mask bit: its packed wire width and the
// encode/decode closures, each acting on the GCValues passed to it.
type gcField struct {
	bit   uint32
	width int
	write func(buf *bytes.Buffer, order ByteOrder, v *GCValues)
	read  func(b []byte, order ByteOrder, v *GCValues) error
}

// gcFields lists every CreateGC/ChangeGC value-mask field in bit-ascending
// order — the order the tail is packed in on the wire.
var gcFields = []gcField{
	{GCFunction, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.Function) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > FunctionSet {
				return invalidValue("Function", b[0])
			}
			v.Function = b[0]
			return nil
		}},
	{GCPlaneMask, Width32,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint32(buf, order, v.PlaneMask) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.PlaneMask = order.Uint32(b); return nil }},
	{GCForeground, Width32,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint32(buf, order, v.Foreground) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.Foreground = order.Uint32(b); return nil }},
	{GCBackground, Width32,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint32(buf, order, v.Background) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.Background = order.Uint32(b); return nil }},
	{GCLineWidth, Width16,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint16(buf, order, v.LineWidth) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.LineWidth = order.Uint16(b); return nil }},
	{GCLineStyle, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.LineStyle) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > LineStyleDoubleDash {
				return invalidValue("LineStyle", b[0])
			}
			v.LineStyle = b[0]
			return nil
		}},
	{GCCapStyle, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.CapStyle) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > CapStyleProjecting {
				return invalidValue("CapStyle", b[0])
			}
			v.CapStyle = b[0]
			return nil
		}},
	{GCJoinStyle, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.JoinStyle) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > JoinStyleBevel {
				return invalidValue("JoinStyle", b[0])
			}
			v.JoinStyle = b[0]
			return nil
		}},
	{GCFillStyle, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.FillStyle) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > FillStyleOpaqueStippled {
				return invalidValue("FillStyle", b[0])
			}
			v.FillStyle = b[0]
			return nil
		}},
	{GCFillRule, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.FillRule) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > FillRuleWinding {
				return invalidValue("FillRule", b[0])
			}
			v.FillRule = b[0]
			return nil
		}},
	{GCTile, Width32,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint32(buf, order, uint32(v.Tile)) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.Tile = Pixmap(order.Uint32(b)); return nil }},
	{GCStipple, Width32,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint32(buf, order, uint32(v.Stipple)) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.Stipple = Pixmap(order.Uint32(b)); return nil }},
	{GCTileStipXOrigin, Width16,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeInt16(buf, order, v.TileStipXOrigin) },
		func(b []byte, order ByteOrder, v *GCValues) error {
			v.TileStipXOrigin = int16(order.Uint16(b))
			return nil
		}},
	{GCTileStipYOrigin, Width16,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeInt16(buf, order, v.TileStipYOrigin) },
		func(b []byte, order ByteOrder, v *GCValues) error {
			v.TileStipYOrigin = int16(order.Uint16(b))
			return nil
		}},
	{GCFont, Width32,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint32(buf, order, uint32(v.Font)) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.Font = Font(order.Uint32(b)); return nil }},
	{GCSubwindowMode, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.SubwindowMode) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > SubwindowModeIncludeInferiors {
				return invalidValue("SubwindowMode", b[0])
			}
			v.SubwindowMode = b[0]
			return nil
		}},
	{GCGraphicsExposures, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(boolByte(v.GraphicsExposures)) },
		func(b []byte, _ ByteOrder, v *GCValues) error { v.GraphicsExposures = DecodeBool(b); return nil }},
	{GCClipXOrigin, Width16,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeInt16(buf, order, v.ClipXOrigin) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.ClipXOrigin = int16(order.Uint16(b)); return nil }},
	{GCClipYOrigin, Width16,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeInt16(buf, order, v.ClipYOrigin) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.ClipYOrigin = int16(order.Uint16(b)); return nil }},
	{GCClipMask, Width32,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint32(buf, order, uint32(v.ClipMask)) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.ClipMask = Pixmap(order.Uint32(b)); return nil }},
	{GCDashOffset, Width16,
		func(buf *bytes.Buffer, order ByteOrder, v *GCValues) { writeUint16(buf, order, v.DashOffset) },
		func(b []byte, order ByteOrder, v *GCValues) error { v.DashOffset = order.Uint16(b); return nil }},
	{GCDashes, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.Dashes) },
		func(b []byte, _ ByteOrder, v *GCValues) error { v.Dashes = b[0]; return nil }},
	{GCArcMode, Width8,
		func(buf *bytes.Buffer, _ ByteOrder, v *GCValues) { buf.WriteByte(v.ArcMode) },
		func(b []byte, _ ByteOrder, v *GCValues) error {
			if b[0] > ArcModePieSlice {
				return invalidValue("ArcMode", b[0])
			}
			v.ArcMode = b[0]
			return nil
		}},
}

func writeUint16(buf *bytes.Buffer, order ByteOrder, v uint16) {
	var b [Width16]byte
	order.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeInt16(buf *bytes.Buffer, order ByteOrder, v int16) {
	writeUint16(buf, order, uint16(v))
}

func writeUint32(buf *bytes.Buffer, order ByteOrder, v uint32) {
	var b [Width32]byte
	order.PutUint32(b[:], v)
	buf.Write(b[:])
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// EncodeGCValues packs the fields named by mask, in bit-ascending order,
// at their native widths, then pads the whole tail once to a 4-byte
// boundary. mask is consulted directly; fields are never inferred by
// diffing against GCDefaults.
func EncodeGCValues(order ByteOrder, mask uint32, v GCValues) []byte {
	buf := &bytes.Buffer{}
	for _, f := range gcFields {
		if mask&f.bit != 0 {
			f.write(buf, order, &v)
		}
	}
	if pad := PadLen(buf.Len()); pad > 0 {
		buf.Write(make([]byte, pad))
	}
	return buf.Bytes()
}

// DecodeGCValues unpacks tail per mask, starting from GCDefaults for any
// field the mask does not select.
func DecodeGCValues(order ByteOrder, mask uint32, tail []byte) (GCValues, error) {
	v := GCDefaults
	off := 0
	for _, f := range gcFields {
		if mask&f.bit == 0 {
			continue
		}
		if off+f.width > len(tail) {
			return GCValues{}, &UnexpectedEndError{Wanted: off + f.width, Got: len(tail)}
		}
		if err := f.read(tail[off:off+f.width], order, &v); err != nil {
			return GCValues{}, err
		}
		off += f.width
	}
	return v, nil
}
