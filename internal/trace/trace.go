// Package trace renders decoded requests and responses as CBOR for
// diagnostic dumps and golden-file tests. It sits entirely outside the
// wire format: nothing here is ever read back as protocol input.
package trace

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	x11wire "github.com/c2FmZQ/x11wire"
)

// Record is one traced request or response, stripped of its typed Go
// shape down to a label and the opcode/sequence/body a human (or a diff
// against a golden file) can read.
type Record struct {
	Label    string `cbor:"label"`
	Opcode   uint8  `cbor:"opcode"`
	Sequence uint16 `cbor:"sequence,omitempty"`
	Body     []byte `cbor:"body"`
}

// EncodeRecord renders r as CBOR.
func EncodeRecord(r Record) ([]byte, error) {
	b, err := cbor.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("trace: encode %s: %w", r.Label, err)
	}
	return b, nil
}

// DecodeRecord parses a previously encoded Record, e.g. when comparing a
// captured dump against a golden file.
func DecodeRecord(b []byte) (Record, error) {
	var r Record
	if err := cbor.Unmarshal(b, &r); err != nil {
		return Record{}, fmt.Errorf("trace: decode record: %w", err)
	}
	return r, nil
}

// Request traces req, re-encoding it to recover its wire bytes under
// order. label is a caller-chosen tag, e.g. a test case name.
func Request(label string, order x11wire.ByteOrder, req x11wire.Request) Record {
	return Record{Label: label, Opcode: uint8(req.OpCode()), Body: req.Encode(order)}
}

// Frame traces a raw server message frame.
func Frame(label string, f x11wire.Frame) Record {
	return Record{Label: label, Opcode: f.Bytes[0], Sequence: f.Sequence, Body: f.Bytes}
}
