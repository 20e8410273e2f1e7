package x11wire

import "bytes"

// Enumerations shared by the Success setup response and its nested
// records.
const (
	BackingStoresNever      = 0
	BackingStoresWhenMapped = 1
	BackingStoresAlways     = 2

	ClassStaticGray  = 0
	ClassGrayScale   = 1
	ClassStaticColor = 2
	ClassPseudoColor = 3
	ClassTrueColor   = 4
	ClassDirectColor = 5

	ImageByteOrderLSBFirst = 0
	ImageByteOrderMSBFirst = 1

	BitmapFormatBitOrderLeastSignificant = 0
	BitmapFormatBitOrderMostSignificant  = 1
)

// Format describes one supported pixmap depth/bits-per-pixel/scanline-pad
// combination. On the wire it is 8 bytes: 3 fields plus 5 reserved bytes.
type Format struct {
	Depth       uint8
	BitsPerPixel uint8
	ScanlinePad  uint8
}

func (f Format) encode(buf *bytes.Buffer, _ ByteOrder) {
	buf.WriteByte(f.Depth)
	buf.WriteByte(f.BitsPerPixel)
	buf.WriteByte(f.ScanlinePad)
	buf.Write(make([]byte, 5))
}

func decodeFormat(r *Reader) (Format, error) {
	var buf [8]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return Format{}, err
	}
	return Format{Depth: buf[0], BitsPerPixel: buf[1], ScanlinePad: buf[2]}, nil
}

// VisualType describes one visual a screen/depth supports. 24 bytes on
// the wire: fields plus 4 reserved trailing bytes.
type VisualType struct {
	VisualID        VisualID
	Class           uint8
	BitsPerRGBValue uint8
	ColormapEntries uint16
	RedMask         uint32
	GreenMask       uint32
	BlueMask        uint32
}

func (v VisualType) encode(buf *bytes.Buffer, order ByteOrder) {
	writeUint32(buf, order, uint32(v.VisualID))
	buf.WriteByte(v.Class)
	buf.WriteByte(v.BitsPerRGBValue)
	writeUint16(buf, order, v.ColormapEntries)
	writeUint32(buf, order, v.RedMask)
	writeUint32(buf, order, v.GreenMask)
	writeUint32(buf, order, v.BlueMask)
	buf.Write(make([]byte, 4))
}

func decodeVisualType(r *Reader) (VisualType, error) {
	var buf [24]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return VisualType{}, err
	}
	if buf[4] > ClassDirectColor {
		return VisualType{}, invalidValue("Class", buf[4])
	}
	order := r.Order()
	return VisualType{
		VisualID:        VisualID(order.Uint32(buf[0:4])),
		Class:           buf[4],
		BitsPerRGBValue: buf[5],
		ColormapEntries: order.Uint16(buf[6:8]),
		RedMask:         order.Uint32(buf[8:12]),
		GreenMask:       order.Uint32(buf[12:16]),
		BlueMask:        order.Uint32(buf[16:20]),
	}, nil
}

// Depth pairs a pixmap depth with the visuals it supports. On the wire:
// depth (8-bit), 1 reserved byte, visual-count (16-bit), 4 reserved
// bytes, then that many VisualType records.
type Depth struct {
	Depth   uint8
	Visuals []VisualType
}

func (d Depth) encode(buf *bytes.Buffer, order ByteOrder) {
	buf.WriteByte(d.Depth)
	buf.WriteByte(0)
	writeUint16(buf, order, uint16(len(d.Visuals)))
	buf.Write(make([]byte, 4))
	for _, v := range d.Visuals {
		v.encode(buf, order)
	}
}

func decodeDepth(r *Reader) (Depth, error) {
	var head [8]byte
	if err := r.ReadExact(head[:]); err != nil {
		return Depth{}, err
	}
	order := r.Order()
	count := order.Uint16(head[2:4])
	d := Depth{Depth: head[0], Visuals: make([]VisualType, 0, count)}
	for i := uint16(0); i < count; i++ {
		v, err := decodeVisualType(r)
		if err != nil {
			return Depth{}, err
		}
		d.Visuals = append(d.Visuals, v)
	}
	return d, nil
}

// Screen describes one root window and its capabilities.
type Screen struct {
	Root                Window
	DefaultColormap     Colormap
	WhitePixel          uint32
	BlackPixel          uint32
	CurrentInputMasks   uint32
	WidthInPixels       uint16
	HeightInPixels      uint16
	WidthInMillimeters  uint16
	HeightInMillimeters uint16
	MinInstalledMaps    uint16
	MaxInstalledMaps    uint16
	RootVisual          VisualID
	BackingStores       uint8
	SaveUnders          bool
	RootDepth           uint8
	AllowedDepths       []Depth
}

func (s Screen) encode(buf *bytes.Buffer, order ByteOrder) {
	writeUint32(buf, order, uint32(s.Root))
	writeUint32(buf, order, uint32(s.DefaultColormap))
	writeUint32(buf, order, s.WhitePixel)
	writeUint32(buf, order, s.BlackPixel)
	writeUint32(buf, order, s.CurrentInputMasks)
	writeUint16(buf, order, s.WidthInPixels)
	writeUint16(buf, order, s.HeightInPixels)
	writeUint16(buf, order, s.WidthInMillimeters)
	writeUint16(buf, order, s.HeightInMillimeters)
	writeUint16(buf, order, s.MinInstalledMaps)
	writeUint16(buf, order, s.MaxInstalledMaps)
	writeUint32(buf, order, uint32(s.RootVisual))
	buf.WriteByte(s.BackingStores)
	buf.WriteByte(boolByte(s.SaveUnders))
	buf.WriteByte(s.RootDepth)
	buf.WriteByte(uint8(len(s.AllowedDepths)))
	for _, d := range s.AllowedDepths {
		d.encode(buf, order)
	}
}

func decodeScreen(r *Reader) (Screen, error) {
	var head [40]byte
	if err := r.ReadExact(head[:]); err != nil {
		return Screen{}, err
	}
	if head[36] > BackingStoresAlways {
		return Screen{}, invalidValue("BackingStores", head[36])
	}
	order := r.Order()
	s := Screen{
		Root:                Window(order.Uint32(head[0:4])),
		DefaultColormap:     Colormap(order.Uint32(head[4:8])),
		WhitePixel:          order.Uint32(head[8:12]),
		BlackPixel:          order.Uint32(head[12:16]),
		CurrentInputMasks:   order.Uint32(head[16:20]),
		WidthInPixels:       order.Uint16(head[20:22]),
		HeightInPixels:      order.Uint16(head[22:24]),
		WidthInMillimeters:  order.Uint16(head[24:26]),
		HeightInMillimeters: order.Uint16(head[26:28]),
		MinInstalledMaps:    order.Uint16(head[28:30]),
		MaxInstalledMaps:    order.Uint16(head[30:32]),
		RootVisual:          VisualID(order.Uint32(head[32:36])),
		BackingStores:       head[36],
		SaveUnders:          head[37] != 0,
		RootDepth:           head[38],
	}
	depthCount := head[39]
	s.AllowedDepths = make([]Depth, 0, depthCount)
	for i := uint8(0); i < depthCount; i++ {
		d, err := decodeDepth(r)
		if err != nil {
			return Screen{}, err
		}
		s.AllowedDepths = append(s.AllowedDepths, d)
	}
	return s, nil
}
