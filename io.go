package x11wire

import (
	"bufio"
	"errors"
	"io"
)

// Reader is a framed byte source: read-exactly, skip, and typed-value
// helpers layered over an io.Reader. A zero-byte read before the
// requested count is satisfied is reported as UnexpectedEndError rather
// than silently truncating, so callers can tell "peer closed mid-record"
// apart from a short buffered read.
type Reader struct {
	r      *bufio.Reader
	order  ByteOrder
	logger Logger
}

// NewReader wraps r for framed reads under order. Diagnostics are
// discarded until SetLogger supplies a sink.
func NewReader(r io.Reader, order ByteOrder) *Reader {
	return &Reader{r: bufio.NewReader(r), order: order, logger: DefaultLogger}
}

// SetLogger directs this reader's diagnostic call sites (byte-order
// selection, opcode resolution) at l instead of discarding them.
func (r *Reader) SetLogger(l Logger) { r.logger = l }

// Order returns the byte order this reader was constructed with.
func (r *Reader) Order() ByteOrder { return r.order }

// ReadExact reads exactly len(buf) bytes into buf.
func (r *Reader) ReadExact(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	return wrapReadErr(n, len(buf), err)
}

// Peek returns the next n bytes without advancing the reader. The
// returned slice is only valid until the next read call.
func (r *Reader) Peek(n int) ([]byte, error) {
	buf, err := r.r.Peek(n)
	if err != nil {
		return nil, wrapReadErr(len(buf), n, err)
	}
	return buf, nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	got, err := io.CopyN(io.Discard, r.r, int64(n))
	return wrapReadErr(int(got), n, err)
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	var b [Width8]byte
	if err := r.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return DecodeUint8(b[:]), nil
}

// ReadInt8 reads one signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	var b [Width8]byte
	if err := r.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return DecodeInt8(b[:]), nil
}

// ReadBool reads one boolean byte.
func (r *Reader) ReadBool() (bool, error) {
	var b [Width8]byte
	if err := r.ReadExact(b[:]); err != nil {
		return false, err
	}
	return DecodeBool(b[:]), nil
}

// ReadUint16 reads a 16-bit unsigned value under this reader's byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	var b [Width16]byte
	if err := r.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return DecodeUint16(r.order, b[:]), nil
}

// ReadInt16 reads a 16-bit signed value under this reader's byte order.
func (r *Reader) ReadInt16() (int16, error) {
	var b [Width16]byte
	if err := r.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return DecodeInt16(r.order, b[:]), nil
}

// ReadUint32 reads a 32-bit unsigned value under this reader's byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	var b [Width32]byte
	if err := r.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return DecodeUint32(r.order, b[:]), nil
}

// ReadInt32 reads a 32-bit signed value under this reader's byte order.
func (r *Reader) ReadInt32() (int32, error) {
	var b [Width32]byte
	if err := r.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return DecodeInt32(r.order, b[:]), nil
}

func wrapReadErr(got, wanted int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &UnexpectedEndError{Wanted: wanted, Got: got}
	}
	return &IOError{Cause: err}
}

// Writer is a framed byte sink: write-all and typed-value helpers layered
// over an io.Writer.
type Writer struct {
	w      io.Writer
	order  ByteOrder
	logger Logger
}

// NewWriter wraps w for framed writes under order, with DefaultLogger as
// its Logger.
func NewWriter(w io.Writer, order ByteOrder) *Writer {
	return &Writer{w: w, order: order, logger: DefaultLogger}
}

// SetLogger stores l as this writer's Logger. None of the Writer's own
// methods log.
func (w *Writer) SetLogger(l Logger) { w.logger = l }

// Order returns the byte order this writer was constructed with.
func (w *Writer) Order() ByteOrder { return w.order }

// WriteAll writes buf in full, looping over partial writes.
func (w *Writer) WriteAll(buf []byte) error {
	for len(buf) > 0 {
		n, err := w.w.Write(buf)
		if err != nil {
			return &IOError{Cause: err}
		}
		buf = buf[n:]
	}
	return nil
}

// WritePad writes n zero bytes.
func (w *Writer) WritePad(n int) error {
	if n <= 0 {
		return nil
	}
	return w.WriteAll(make([]byte, n))
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) error {
	var b [Width8]byte
	EncodeUint8(b[:], v)
	return w.WriteAll(b[:])
}

// WriteInt8 writes one signed byte.
func (w *Writer) WriteInt8(v int8) error {
	var b [Width8]byte
	EncodeInt8(b[:], v)
	return w.WriteAll(b[:])
}

// WriteBool writes one boolean byte (exactly 0 or 1).
func (w *Writer) WriteBool(v bool) error {
	var b [Width8]byte
	EncodeBool(b[:], v)
	return w.WriteAll(b[:])
}

// WriteUint16 writes a 16-bit unsigned value under this writer's byte order.
func (w *Writer) WriteUint16(v uint16) error {
	var b [Width16]byte
	EncodeUint16(w.order, b[:], v)
	return w.WriteAll(b[:])
}

// WriteInt16 writes a 16-bit signed value under this writer's byte order.
func (w *Writer) WriteInt16(v int16) error {
	var b [Width16]byte
	EncodeInt16(w.order, b[:], v)
	return w.WriteAll(b[:])
}

// WriteUint32 writes a 32-bit unsigned value under this writer's byte order.
func (w *Writer) WriteUint32(v uint32) error {
	var b [Width32]byte
	EncodeUint32(w.order, b[:], v)
	return w.WriteAll(b[:])
}

// WriteInt32 writes a 32-bit signed value under this writer's byte order.
func (w *Writer) WriteInt32(v int32) error {
	var b [Width32]byte
	EncodeInt32(w.order, b[:], v)
	return w.WriteAll(b[:])
}
