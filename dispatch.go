package x11wire

// ReadRequest reads one full request frame from r and decodes it: it peeks
// the 4-byte header to learn the declared length, reads the whole
// length*4-byte frame (header included, since peeking does not consume
// it), then hands it to DecodeRequest. Big-requests-style length
// extension is not supported; a request
// opcode this package does not type is returned as a *RawRequest so its
// bytes still round-trip.
func ReadRequest(r *Reader) (Request, error) {
	head, err := r.Peek(4)
	if err != nil {
		return nil, err
	}
	length := int(r.Order().Uint16(head[2:4]))
	frame := make([]byte, length*4)
	if err := r.ReadExact(frame); err != nil {
		return nil, err
	}
	req, err := DecodeRequest(r.Order(), frame)
	if err == nil {
		if raw, ok := req.(*RawRequest); ok {
			r.logger.Infof("opcode %d has no typed shape, decoded as raw request", raw.Opcode)
		}
	}
	return req, err
}

// DecodeRequest decodes one complete request frame (header plus body, as
// already sliced to its declared length) into a typed Request.
//
// The four spec-floor opcodes (InternAtom, GetProperty, QueryExtension,
// CreateGC) and the supplemented GC/Pixmap/atom-name opcodes each get a
// fully-typed shape; every other assigned opcode (including NoOperation)
// decodes to a *RawRequest that preserves its bytes for a lossless round
// trip. An opcode outside the protocol's assigned range fails
// InvalidValue("opcode") rather than round-tripping as raw bytes.
func DecodeRequest(order ByteOrder, frame []byte) (Request, error) {
	if len(frame) < 4 {
		return nil, &UnexpectedEndError{Wanted: 4, Got: len(frame)}
	}
	opcode := ReqCode(frame[0])
	if !IsSupportedOpcode(opcode) {
		return nil, invalidValue("opcode", opcode)
	}
	data := frame[1]
	body := frame[4:]

	switch opcode {
	case InternAtom:
		return DecodeInternAtomRequest(order, data, body)
	case GetProperty:
		return DecodeGetPropertyRequest(order, data, body)
	case QueryExtension:
		return DecodeQueryExtensionRequest(order, body)
	case CreateGC:
		return DecodeCreateGCRequest(order, body)
	case ChangeGCOpcode:
		return DecodeChangeGCRequest(order, body)
	case CopyGCOpcode:
		return DecodeCopyGCRequest(order, body)
	case FreeGCOpcode:
		return DecodeFreeGCRequest(order, body)
	case CreatePixmap:
		return DecodeCreatePixmapRequest(order, data, body)
	case FreePixmap:
		return DecodeFreePixmapRequest(order, body)
	case GetAtomName:
		return DecodeGetAtomNameRequest(order, body)
	default:
		return &RawRequest{Opcode: opcode, Data: data, Body: append([]byte{}, body...)}, nil
	}
}
