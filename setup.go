package x11wire

import (
	"bytes"
)

// Client setup byte-order tags: the first byte of a client's connection
// setup selects the ByteOrder for the rest of the connection.
const (
	setupTagMSB = 0o102 // 'B'
	setupTagLSB = 0o154 // 'l'
)

// ClientSetup is the information a client sends to open a connection,
// before any ByteOrder-dependent framing has been established — decoding
// it is what selects the connection's ByteOrder in the first place.
type ClientSetup struct {
	ProtocolMajor uint16
	ProtocolMinor uint16
	AuthProtocolName string
	AuthProtocolData string
}

// DecodeClientSetup reads the 12-byte fixed prefix and the two padded
// strings of a client setup request, returning the selected ByteOrder
// alongside the decoded fields.
func DecodeClientSetup(r *Reader) (ByteOrder, ClientSetup, error) {
	var head [12]byte
	if err := r.ReadExact(head[:]); err != nil {
		return nil, ClientSetup{}, err
	}
	var order ByteOrder
	switch head[0] {
	case setupTagMSB:
		order = MSBFirst
		r.logger.Infof("client setup selected MSBFirst byte order")
	case setupTagLSB:
		order = LSBFirst
		r.logger.Infof("client setup selected LSBFirst byte order")
	default:
		r.logger.Errorf("client setup sent unrecognized byte-order byte %#x", head[0])
		return nil, ClientSetup{}, invalidValue("byte order", head[0])
	}
	info := ClientSetup{
		ProtocolMajor: order.Uint16(head[2:4]),
		ProtocolMinor: order.Uint16(head[4:6]),
	}
	nameLen := int(order.Uint16(head[6:8]))
	dataLen := int(order.Uint16(head[8:10]))

	name := make([]byte, nameLen+PadLen(nameLen))
	if err := r.ReadExact(name); err != nil {
		return nil, ClientSetup{}, err
	}
	authName, err := validString("AuthProtocolName", name[:nameLen])
	if err != nil {
		return nil, ClientSetup{}, err
	}
	info.AuthProtocolName = authName

	data := make([]byte, dataLen+PadLen(dataLen))
	if err := r.ReadExact(data); err != nil {
		return nil, ClientSetup{}, err
	}
	// Authorization data is opaque binary (e.g. a cookie) and is not
	// checked as text.
	info.AuthProtocolData = string(data[:dataLen])

	return order, info, nil
}

// EncodeClientSetup renders info back onto the wire under order.
func EncodeClientSetup(order ByteOrder, info ClientSetup) []byte {
	buf := &bytes.Buffer{}
	tag := byte(setupTagLSB)
	if order == MSBFirst {
		tag = setupTagMSB
	}
	buf.WriteByte(tag)
	buf.WriteByte(0)
	writeUint16(buf, order, info.ProtocolMajor)
	writeUint16(buf, order, info.ProtocolMinor)
	nameBytes := []byte(info.AuthProtocolName)
	dataBytes := []byte(info.AuthProtocolData)
	writeUint16(buf, order, uint16(len(nameBytes)))
	writeUint16(buf, order, uint16(len(dataBytes)))
	buf.Write(make([]byte, 2))
	buf.Write(nameBytes)
	buf.Write(make([]byte, PadLen(len(nameBytes))))
	buf.Write(dataBytes)
	buf.Write(make([]byte, PadLen(len(dataBytes))))
	return buf.Bytes()
}

// Setup response tags (the byte immediately following the client setup
// read, before any of the three variant bodies).
const (
	SetupFailed       = 0
	SetupSuccess      = 1
	SetupAuthenticate = 2
)

// SetupFailedResponse is sent when the server refuses the connection
// outright (e.g. a protocol-version mismatch).
type SetupFailedResponse struct {
	ProtocolMajor uint16
	ProtocolMinor uint16
	Reason        string
}

// SetupAuthenticateResponse asks the client to continue an authentication
// exchange. The reason length is not carried explicitly on the wire; it
// is recovered by trimming trailing zero bytes, which is lossy if Reason
// legitimately ends in NUL (see spec Open Questions).
type SetupAuthenticateResponse struct {
	Reason string
}

// SetupSuccessResponse is sent once a connection is fully established.
type SetupSuccessResponse struct {
	ProtocolMajor            uint16
	ProtocolMinor            uint16
	ReleaseNumber            uint32
	ResourceIDBase           uint32
	ResourceIDMask           uint32
	MotionBufferSize         uint32
	MaximumRequestLength     uint16
	ImageByteOrder           uint8
	BitmapFormatBitOrder     uint8
	BitmapFormatScanlineUnit uint8
	BitmapFormatScanlinePad  uint8
	MinKeycode               uint8
	MaxKeycode               uint8
	Vendor                   string
	PixmapFormats            []Format
	Roots                    []Screen
}

// DecodeSetupResponse reads the 1-byte tag and dispatches to the matching
// variant. On success exactly one of the three response pointers is
// non-nil; on error all three are nil.
func DecodeSetupResponse(r *Reader) (failed *SetupFailedResponse, auth *SetupAuthenticateResponse, success *SetupSuccessResponse, err error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, nil, nil, err
	}
	switch tag {
	case SetupFailed:
		v, err := decodeSetupFailed(r)
		if err != nil {
			return nil, nil, nil, err
		}
		return &v, nil, nil, nil
	case SetupAuthenticate:
		v, err := decodeSetupAuthenticate(r)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, &v, nil, nil
	case SetupSuccess:
		v, err := decodeSetupSuccess(r)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, nil, &v, nil
	default:
		return nil, nil, nil, invalidValue("setup response tag", tag)
	}
}

func decodeSetupFailed(r *Reader) (SetupFailedResponse, error) {
	var head [7]byte
	if err := r.ReadExact(head[:]); err != nil {
		return SetupFailedResponse{}, err
	}
	order := r.Order()
	reasonLen := int(head[0])
	major := order.Uint16(head[1:3])
	minor := order.Uint16(head[3:5])
	length := int(order.Uint16(head[5:7]))
	tail := make([]byte, length*4)
	if err := r.ReadExact(tail); err != nil {
		return SetupFailedResponse{}, err
	}
	if reasonLen > len(tail) {
		reasonLen = len(tail)
	}
	reason, err := validString("Reason", tail[:reasonLen])
	if err != nil {
		return SetupFailedResponse{}, err
	}
	return SetupFailedResponse{ProtocolMajor: major, ProtocolMinor: minor, Reason: reason}, nil
}

func (resp SetupFailedResponse) encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(SetupFailed)
	reason := []byte(resp.Reason)
	buf.WriteByte(uint8(len(reason)))
	writeUint16(buf, order, resp.ProtocolMajor)
	writeUint16(buf, order, resp.ProtocolMinor)
	tailLen := len(reason) + PadLen(len(reason))
	writeUint16(buf, order, uint16(tailLen/4))
	buf.Write(reason)
	buf.Write(make([]byte, PadLen(len(reason))))
	return buf.Bytes()
}

func decodeSetupAuthenticate(r *Reader) (SetupAuthenticateResponse, error) {
	var head [7]byte
	if err := r.ReadExact(head[:]); err != nil {
		return SetupAuthenticateResponse{}, err
	}
	length := int(r.Order().Uint16(head[5:7]))
	tail := make([]byte, length*4)
	if err := r.ReadExact(tail); err != nil {
		return SetupAuthenticateResponse{}, err
	}
	reason, err := validString("Reason", bytes.TrimRight(tail, "\x00"))
	if err != nil {
		return SetupAuthenticateResponse{}, err
	}
	return SetupAuthenticateResponse{Reason: reason}, nil
}

func (resp SetupAuthenticateResponse) encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(SetupAuthenticate)
	buf.Write(make([]byte, 5))
	reason := []byte(resp.Reason)
	tailLen := len(reason) + PadLen(len(reason))
	writeUint16(buf, order, uint16(tailLen/4))
	buf.Write(reason)
	buf.Write(make([]byte, PadLen(len(reason))))
	return buf.Bytes()
}

func decodeSetupSuccess(r *Reader) (SetupSuccessResponse, error) {
	// Layout from offset 0 (tag already consumed by the caller):
	// 0 reserved; 1-2 major; 3-4 minor; 5-6 length (unused on decode,
	// recomputed on encode); 7-10 release_number; 11-14 resource_id_base;
	// 15-18 resource_id_mask; 19-22 motion_buffer_size; 23-24 vendor_len;
	// 25-26 max_request_length; 27 screen_count; 28 format_count;
	// 29 image_byte_order; 30 bitmap_format_bit_order; 31 scanline_unit;
	// 32 scanline_pad; 33 min_keycode; 34 max_keycode; 35-38 reserved.
	var head [39]byte
	if err := r.ReadExact(head[:]); err != nil {
		return SetupSuccessResponse{}, err
	}
	order := r.Order()
	imageByteOrder := head[29]
	if imageByteOrder != ImageByteOrderLSBFirst && imageByteOrder != ImageByteOrderMSBFirst {
		return SetupSuccessResponse{}, invalidValue("ImageByteOrder", imageByteOrder)
	}
	bitmapBitOrder := head[30]
	if bitmapBitOrder != BitmapFormatBitOrderLeastSignificant && bitmapBitOrder != BitmapFormatBitOrderMostSignificant {
		return SetupSuccessResponse{}, invalidValue("BitmapFormatBitOrder", bitmapBitOrder)
	}
	s := SetupSuccessResponse{
		ProtocolMajor:            order.Uint16(head[1:3]),
		ProtocolMinor:            order.Uint16(head[3:5]),
		ReleaseNumber:            order.Uint32(head[7:11]),
		ResourceIDBase:           order.Uint32(head[11:15]),
		ResourceIDMask:           order.Uint32(head[15:19]),
		MotionBufferSize:         order.Uint32(head[19:23]),
		MaximumRequestLength:     order.Uint16(head[25:27]),
		ImageByteOrder:           imageByteOrder,
		BitmapFormatBitOrder:     bitmapBitOrder,
		BitmapFormatScanlineUnit: head[31],
		BitmapFormatScanlinePad:  head[32],
		MinKeycode:               head[33],
		MaxKeycode:               head[34],
	}
	vendorLen := int(order.Uint16(head[23:25]))
	screenCount := head[27]
	formatCount := head[28]

	vendor := make([]byte, vendorLen+PadLen(vendorLen))
	if err := r.ReadExact(vendor); err != nil {
		return SetupSuccessResponse{}, err
	}
	vendorStr, err := validString("Vendor", vendor[:vendorLen])
	if err != nil {
		return SetupSuccessResponse{}, err
	}
	s.Vendor = vendorStr

	s.PixmapFormats = make([]Format, 0, formatCount)
	for i := uint8(0); i < formatCount; i++ {
		f, err := decodeFormat(r)
		if err != nil {
			return SetupSuccessResponse{}, err
		}
		s.PixmapFormats = append(s.PixmapFormats, f)
	}

	s.Roots = make([]Screen, 0, screenCount)
	for i := uint8(0); i < screenCount; i++ {
		scr, err := decodeScreen(r)
		if err != nil {
			return SetupSuccessResponse{}, err
		}
		s.Roots = append(s.Roots, scr)
	}
	return s, nil
}

func (s SetupSuccessResponse) encode(order ByteOrder) []byte {
	vendor := []byte(s.Vendor)

	tail := &bytes.Buffer{}
	writeUint32(tail, order, s.ReleaseNumber)
	writeUint32(tail, order, s.ResourceIDBase)
	writeUint32(tail, order, s.ResourceIDMask)
	writeUint32(tail, order, s.MotionBufferSize)
	writeUint16(tail, order, uint16(len(vendor)))
	writeUint16(tail, order, s.MaximumRequestLength)
	tail.WriteByte(uint8(len(s.Roots)))
	tail.WriteByte(uint8(len(s.PixmapFormats)))
	tail.WriteByte(s.ImageByteOrder)
	tail.WriteByte(s.BitmapFormatBitOrder)
	tail.WriteByte(s.BitmapFormatScanlineUnit)
	tail.WriteByte(s.BitmapFormatScanlinePad)
	tail.WriteByte(s.MinKeycode)
	tail.WriteByte(s.MaxKeycode)
	tail.Write(make([]byte, 4))
	tail.Write(vendor)
	tail.Write(make([]byte, PadLen(len(vendor))))
	for _, f := range s.PixmapFormats {
		f.encode(tail, order)
	}
	for _, scr := range s.Roots {
		scr.encode(tail, order)
	}

	buf := &bytes.Buffer{}
	buf.WriteByte(SetupSuccess)
	buf.WriteByte(0)
	writeUint16(buf, order, s.ProtocolMajor)
	writeUint16(buf, order, s.ProtocolMinor)
	writeUint16(buf, order, uint16(tail.Len()/4))
	buf.Write(tail.Bytes())
	return buf.Bytes()
}
