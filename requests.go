package x11wire

import "bytes"

// Request is implemented by every decoded request shape: the core
// protocol opcode it carries, and its own wire encoding.
type Request interface {
	OpCode() ReqCode
	Encode(order ByteOrder) []byte
}

// encodeHeader writes the common 4-byte request header: opcode, a
// request-specific data byte (or 0 if the opcode treats it as reserved),
// and a 16-bit length in 4-byte units covering the header itself.
func encodeHeader(buf *bytes.Buffer, order ByteOrder, opcode ReqCode, data byte, length4 uint16) {
	buf.WriteByte(byte(opcode))
	buf.WriteByte(data)
	writeUint16(buf, order, length4)
}

// RawRequest is the skeleton shape used for every opcode this package
// does not give a fully-typed record to. Its only contract is that
// decoding then re-encoding reproduces the original bytes exactly.
type RawRequest struct {
	Opcode ReqCode
	Data   byte
	Body   []byte // everything after the 4-byte header, already wire-padded.
}

func (r *RawRequest) OpCode() ReqCode { return r.Opcode }

func (r *RawRequest) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, r.Opcode, r.Data, uint16(1+len(r.Body)/4))
	buf.Write(r.Body)
	return buf.Bytes()
}

// InternAtomRequest is opcode 16: map a name to an Atom, optionally
// failing instead of creating one that does not already exist.
type InternAtomRequest struct {
	OnlyIfExists bool
	Name         string
}

func (*InternAtomRequest) OpCode() ReqCode { return InternAtom }

func (r *InternAtomRequest) Encode(order ByteOrder) []byte {
	name := []byte(r.Name)
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, InternAtom, boolByte(r.OnlyIfExists), uint16(2+ceilDiv4(len(name))))
	writeUint16(buf, order, uint16(len(name)))
	buf.Write(make([]byte, 2))
	buf.Write(name)
	buf.Write(make([]byte, PadLen(len(name))))
	return buf.Bytes()
}

// DecodeInternAtomRequest decodes the body of an InternAtom request
// (everything after the 4-byte header; data is the request's byte 1).
func DecodeInternAtomRequest(order ByteOrder, data byte, body []byte) (*InternAtomRequest, error) {
	if len(body) < 4 {
		return nil, &UnexpectedEndError{Wanted: 4, Got: len(body)}
	}
	nameLen := int(order.Uint16(body[0:2]))
	if nameLen > len(body)-4 {
		nameLen = len(body) - 4
	}
	name, err := validString("Name", body[4:4+nameLen])
	if err != nil {
		return nil, err
	}
	return &InternAtomRequest{OnlyIfExists: data != 0, Name: name}, nil
}

// InternAtomResponse answers an InternAtomRequest: the matching Atom, or
// None (zero) if only_if_exists was set and no such atom existed.
type InternAtomResponse struct {
	Sequence uint16
	Atom     Atom
}

func (resp InternAtomResponse) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(1)
	buf.WriteByte(0)
	writeUint16(buf, order, resp.Sequence)
	writeUint32(buf, order, 0)
	writeUint32(buf, order, uint32(resp.Atom))
	buf.Write(make([]byte, 20))
	return buf.Bytes()
}

// DecodeInternAtomResponse decodes a full 32-byte InternAtom reply frame.
func DecodeInternAtomResponse(order ByteOrder, frame []byte) (InternAtomResponse, error) {
	if len(frame) < 32 {
		return InternAtomResponse{}, &UnexpectedEndError{Wanted: 32, Got: len(frame)}
	}
	return InternAtomResponse{
		Sequence: order.Uint16(frame[2:4]),
		Atom:     Atom(order.Uint32(frame[8:12])),
	}, nil
}

// GetPropertyRequest is opcode 20: fetch (and optionally delete) a
// window property.
type GetPropertyRequest struct {
	Delete     bool
	Window     Window
	Property   Atom
	Type       Atom // 0 means AnyPropertyType.
	LongOffset uint32
	LongLength uint32
}

func (*GetPropertyRequest) OpCode() ReqCode { return GetProperty }

func (r *GetPropertyRequest) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, GetProperty, boolByte(r.Delete), 6)
	writeUint32(buf, order, uint32(r.Window))
	writeUint32(buf, order, uint32(r.Property))
	writeUint32(buf, order, uint32(r.Type))
	writeUint32(buf, order, r.LongOffset)
	writeUint32(buf, order, r.LongLength)
	return buf.Bytes()
}

// DecodeGetPropertyRequest decodes the 20-byte body of a GetProperty
// request.
func DecodeGetPropertyRequest(order ByteOrder, data byte, body []byte) (*GetPropertyRequest, error) {
	if len(body) < 20 {
		return nil, &UnexpectedEndError{Wanted: 20, Got: len(body)}
	}
	return &GetPropertyRequest{
		Delete:     data != 0,
		Window:     Window(order.Uint32(body[0:4])),
		Property:   Atom(order.Uint32(body[4:8])),
		Type:       Atom(order.Uint32(body[8:12])),
		LongOffset: order.Uint32(body[12:16]),
		LongLength: order.Uint32(body[16:20]),
	}, nil
}

// GetPropertyResponse answers a GetPropertyRequest. Format is 0, 8,
// 16, or 32; it selects the unit width used to interpret
// LengthOfValueInFormatUnits and, derived from it, the byte length of
// Value.
type GetPropertyResponse struct {
	Sequence                  uint16
	Format                    uint8
	Type                      Atom // 0 means None.
	BytesAfter                uint32
	LengthOfValueInFormatUnits uint32
	Value                     []byte
}

func (resp GetPropertyResponse) Encode(order ByteOrder) []byte {
	padded := append(append([]byte{}, resp.Value...), make([]byte, PadLen(len(resp.Value)))...)
	buf := &bytes.Buffer{}
	buf.WriteByte(1)
	buf.WriteByte(resp.Format)
	writeUint16(buf, order, resp.Sequence)
	writeUint32(buf, order, uint32(len(padded)/4))
	writeUint32(buf, order, uint32(resp.Type))
	writeUint32(buf, order, resp.BytesAfter)
	writeUint32(buf, order, resp.LengthOfValueInFormatUnits)
	buf.Write(make([]byte, 12))
	buf.Write(padded)
	return buf.Bytes()
}

// DecodeGetPropertyResponse decodes a full GetProperty reply frame
// (32-byte base already known to extend by replyLength*4 bytes; frame
// must contain the whole thing). The byte length of Value is derived
// from Format per spec: 1x/2x/4x LengthOfValueInFormatUnits for
// format 8/16/32 respectively, never the raw replyLength*4 span (which
// may include trailing pad).
func DecodeGetPropertyResponse(order ByteOrder, frame []byte) (GetPropertyResponse, error) {
	if len(frame) < 32 {
		return GetPropertyResponse{}, &UnexpectedEndError{Wanted: 32, Got: len(frame)}
	}
	resp := GetPropertyResponse{
		Format:                     frame[1],
		Sequence:                   order.Uint16(frame[2:4]),
		Type:                       Atom(order.Uint32(frame[8:12])),
		BytesAfter:                 order.Uint32(frame[12:16]),
		LengthOfValueInFormatUnits: order.Uint32(frame[16:20]),
	}
	var valueLen uint32
	switch resp.Format {
	case 8:
		valueLen = resp.LengthOfValueInFormatUnits
	case 16:
		valueLen = 2 * resp.LengthOfValueInFormatUnits
	case 32:
		valueLen = 4 * resp.LengthOfValueInFormatUnits
	default:
		valueLen = 0
	}
	available := uint32(len(frame) - 32)
	if valueLen > available {
		valueLen = available
	}
	resp.Value = append([]byte{}, frame[32:32+valueLen]...)
	return resp, nil
}

// QueryExtensionRequest is opcode 98: ask whether a named extension is
// present, and if so its dispatch base codes.
type QueryExtensionRequest struct {
	Name string
}

func (*QueryExtensionRequest) OpCode() ReqCode { return QueryExtension }

func (r *QueryExtensionRequest) Encode(order ByteOrder) []byte {
	name := []byte(r.Name)
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, QueryExtension, 0, uint16(2+ceilDiv4(len(name))))
	writeUint16(buf, order, uint16(len(name)))
	buf.Write(make([]byte, 2))
	buf.Write(name)
	buf.Write(make([]byte, PadLen(len(name))))
	return buf.Bytes()
}

// DecodeQueryExtensionRequest decodes the body of a QueryExtension
// request.
func DecodeQueryExtensionRequest(order ByteOrder, body []byte) (*QueryExtensionRequest, error) {
	if len(body) < 4 {
		return nil, &UnexpectedEndError{Wanted: 4, Got: len(body)}
	}
	nameLen := int(order.Uint16(body[0:2]))
	if nameLen > len(body)-4 {
		nameLen = len(body) - 4
	}
	name, err := validString("Name", body[4:4+nameLen])
	if err != nil {
		return nil, err
	}
	return &QueryExtensionRequest{Name: name}, nil
}

// QueryExtensionResponse answers a QueryExtensionRequest.
type QueryExtensionResponse struct {
	Sequence    uint16
	Present     bool
	MajorOpcode uint8
	FirstEvent  uint8
	FirstError  uint8
}

func (resp QueryExtensionResponse) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(1)
	buf.WriteByte(0)
	writeUint16(buf, order, resp.Sequence)
	writeUint32(buf, order, 0)
	buf.WriteByte(boolByte(resp.Present))
	buf.WriteByte(resp.MajorOpcode)
	buf.WriteByte(resp.FirstEvent)
	buf.WriteByte(resp.FirstError)
	buf.Write(make([]byte, 20))
	return buf.Bytes()
}

// DecodeQueryExtensionResponse decodes a full 32-byte QueryExtension
// reply frame.
func DecodeQueryExtensionResponse(order ByteOrder, frame []byte) (QueryExtensionResponse, error) {
	if len(frame) < 32 {
		return QueryExtensionResponse{}, &UnexpectedEndError{Wanted: 32, Got: len(frame)}
	}
	return QueryExtensionResponse{
		Sequence:    order.Uint16(frame[2:4]),
		Present:     frame[8] != 0,
		MajorOpcode: frame[9],
		FirstEvent:  frame[10],
		FirstError:  frame[11],
	}, nil
}

// CreateGCRequest is opcode 55: allocate a graphics context carrying the
// attributes named by Mask.
type CreateGCRequest struct {
	CID      GContext
	Drawable Drawable
	Mask     uint32
	Values   GCValues
}

func (*CreateGCRequest) OpCode() ReqCode { return CreateGC }

func (r *CreateGCRequest) Encode(order ByteOrder) []byte {
	tail := EncodeGCValues(order, r.Mask, r.Values)
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, CreateGC, 0, uint16(4+len(tail)/4))
	writeUint32(buf, order, uint32(r.CID))
	writeUint32(buf, order, uint32(r.Drawable))
	writeUint32(buf, order, r.Mask)
	buf.Write(tail)
	return buf.Bytes()
}

// DecodeCreateGCRequest decodes the body of a CreateGC request.
func DecodeCreateGCRequest(order ByteOrder, body []byte) (*CreateGCRequest, error) {
	if len(body) < 12 {
		return nil, &UnexpectedEndError{Wanted: 12, Got: len(body)}
	}
	mask := order.Uint32(body[8:12])
	values, err := DecodeGCValues(order, mask, body[12:])
	if err != nil {
		return nil, err
	}
	return &CreateGCRequest{
		CID:      GContext(order.Uint32(body[0:4])),
		Drawable: Drawable(order.Uint32(body[4:8])),
		Mask:     mask,
		Values:   values,
	}, nil
}

// ChangeGCRequest is opcode 56: update the attributes of an existing
// graphics context named by Mask. Fields the mask does not select are
// left unchanged server-side; DecodeGCValues still returns GCDefaults for
// them since there is no "unchanged" sentinel on the wire.
type ChangeGCRequest struct {
	GC     GContext
	Mask   uint32
	Values GCValues
}

func (*ChangeGCRequest) OpCode() ReqCode { return ChangeGCOpcode }

func (r *ChangeGCRequest) Encode(order ByteOrder) []byte {
	tail := EncodeGCValues(order, r.Mask, r.Values)
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, ChangeGCOpcode, 0, uint16(3+len(tail)/4))
	writeUint32(buf, order, uint32(r.GC))
	writeUint32(buf, order, r.Mask)
	buf.Write(tail)
	return buf.Bytes()
}

// DecodeChangeGCRequest decodes the body of a ChangeGC request.
func DecodeChangeGCRequest(order ByteOrder, body []byte) (*ChangeGCRequest, error) {
	if len(body) < 8 {
		return nil, &UnexpectedEndError{Wanted: 8, Got: len(body)}
	}
	mask := order.Uint32(body[4:8])
	values, err := DecodeGCValues(order, mask, body[8:])
	if err != nil {
		return nil, err
	}
	return &ChangeGCRequest{GC: GContext(order.Uint32(body[0:4])), Mask: mask, Values: values}, nil
}

// CopyGCRequest is opcode 57: copy the components named by Mask from
// SrcGC to DstGC.
type CopyGCRequest struct {
	SrcGC GContext
	DstGC GContext
	Mask  uint32
}

func (*CopyGCRequest) OpCode() ReqCode { return CopyGCOpcode }

func (r *CopyGCRequest) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, CopyGCOpcode, 0, 4)
	writeUint32(buf, order, uint32(r.SrcGC))
	writeUint32(buf, order, uint32(r.DstGC))
	writeUint32(buf, order, r.Mask)
	return buf.Bytes()
}

// DecodeCopyGCRequest decodes the fixed 12-byte body of a CopyGC request.
func DecodeCopyGCRequest(order ByteOrder, body []byte) (*CopyGCRequest, error) {
	if len(body) < 12 {
		return nil, &UnexpectedEndError{Wanted: 12, Got: len(body)}
	}
	return &CopyGCRequest{
		SrcGC: GContext(order.Uint32(body[0:4])),
		DstGC: GContext(order.Uint32(body[4:8])),
		Mask:  order.Uint32(body[8:12]),
	}, nil
}

// FreeGCRequest is opcode 60.
type FreeGCRequest struct {
	GC GContext
}

func (*FreeGCRequest) OpCode() ReqCode { return FreeGCOpcode }

func (r *FreeGCRequest) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, FreeGCOpcode, 0, 2)
	writeUint32(buf, order, uint32(r.GC))
	return buf.Bytes()
}

// DecodeFreeGCRequest decodes the fixed 4-byte body of a FreeGC request.
func DecodeFreeGCRequest(order ByteOrder, body []byte) (*FreeGCRequest, error) {
	if len(body) < 4 {
		return nil, &UnexpectedEndError{Wanted: 4, Got: len(body)}
	}
	return &FreeGCRequest{GC: GContext(order.Uint32(body[0:4]))}, nil
}

// CreatePixmapRequest is opcode 53.
type CreatePixmapRequest struct {
	Depth    uint8
	PID      Pixmap
	Drawable Drawable
	Width    uint16
	Height   uint16
}

func (*CreatePixmapRequest) OpCode() ReqCode { return CreatePixmap }

func (r *CreatePixmapRequest) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, CreatePixmap, r.Depth, 4)
	writeUint32(buf, order, uint32(r.PID))
	writeUint32(buf, order, uint32(r.Drawable))
	writeUint16(buf, order, r.Width)
	writeUint16(buf, order, r.Height)
	return buf.Bytes()
}

// DecodeCreatePixmapRequest decodes the 12-byte body of a CreatePixmap
// request.
func DecodeCreatePixmapRequest(order ByteOrder, data byte, body []byte) (*CreatePixmapRequest, error) {
	if len(body) < 12 {
		return nil, &UnexpectedEndError{Wanted: 12, Got: len(body)}
	}
	return &CreatePixmapRequest{
		Depth:    data,
		PID:      Pixmap(order.Uint32(body[0:4])),
		Drawable: Drawable(order.Uint32(body[4:8])),
		Width:    order.Uint16(body[8:10]),
		Height:   order.Uint16(body[10:12]),
	}, nil
}

// FreePixmapRequest is opcode 54.
type FreePixmapRequest struct {
	Pixmap Pixmap
}

func (*FreePixmapRequest) OpCode() ReqCode { return FreePixmap }

func (r *FreePixmapRequest) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, FreePixmap, 0, 2)
	writeUint32(buf, order, uint32(r.Pixmap))
	return buf.Bytes()
}

// DecodeFreePixmapRequest decodes the 4-byte body of a FreePixmap
// request.
func DecodeFreePixmapRequest(order ByteOrder, body []byte) (*FreePixmapRequest, error) {
	if len(body) < 4 {
		return nil, &UnexpectedEndError{Wanted: 4, Got: len(body)}
	}
	return &FreePixmapRequest{Pixmap: Pixmap(order.Uint32(body[0:4]))}, nil
}

// GetAtomNameRequest is opcode 17.
type GetAtomNameRequest struct {
	Atom Atom
}

func (*GetAtomNameRequest) OpCode() ReqCode { return GetAtomName }

func (r *GetAtomNameRequest) Encode(order ByteOrder) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, order, GetAtomName, 0, 2)
	writeUint32(buf, order, uint32(r.Atom))
	return buf.Bytes()
}

// DecodeGetAtomNameRequest decodes the 4-byte body of a GetAtomName
// request.
func DecodeGetAtomNameRequest(order ByteOrder, body []byte) (*GetAtomNameRequest, error) {
	if len(body) < 4 {
		return nil, &UnexpectedEndError{Wanted: 4, Got: len(body)}
	}
	return &GetAtomNameRequest{Atom: Atom(order.Uint32(body[0:4]))}, nil
}

// GetAtomNameResponse answers a GetAtomNameRequest.
type GetAtomNameResponse struct {
	Sequence uint16
	Name     string
}

func (resp GetAtomNameResponse) Encode(order ByteOrder) []byte {
	name := []byte(resp.Name)
	padded := append(append([]byte{}, name...), make([]byte, PadLen(len(name)))...)
	buf := &bytes.Buffer{}
	buf.WriteByte(1)
	buf.WriteByte(0)
	writeUint16(buf, order, resp.Sequence)
	writeUint32(buf, order, uint32(len(padded)/4))
	writeUint16(buf, order, uint16(len(name)))
	buf.Write(make([]byte, 22))
	buf.Write(padded)
	return buf.Bytes()
}

// DecodeGetAtomNameResponse decodes a full GetAtomName reply frame.
func DecodeGetAtomNameResponse(order ByteOrder, frame []byte) (GetAtomNameResponse, error) {
	if len(frame) < 32 {
		return GetAtomNameResponse{}, &UnexpectedEndError{Wanted: 32, Got: len(frame)}
	}
	nameLen := int(order.Uint16(frame[8:10]))
	if nameLen > len(frame)-32 {
		nameLen = len(frame) - 32
	}
	name, err := validString("Name", frame[32:32+nameLen])
	if err != nil {
		return GetAtomNameResponse{}, err
	}
	return GetAtomNameResponse{
		Sequence: order.Uint16(frame[2:4]),
		Name:     name,
	}, nil
}

func ceilDiv4(n int) int {
	return (n + 3) / 4
}
