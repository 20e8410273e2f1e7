package x11wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequestTypedShape(t *testing.T) {
	want := &GetAtomNameRequest{Atom: 55}
	wire := want.Encode(MSBFirst)

	req, err := ReadRequest(NewReader(bytes.NewReader(wire), MSBFirst))
	require.NoError(t, err)
	got, ok := req.(*GetAtomNameRequest)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestReadRequestFallsBackToRaw(t *testing.T) {
	want := &RawRequest{Opcode: MapWindow, Data: 0, Body: []byte{0, 0, 0, 1}}
	wire := want.Encode(MSBFirst)

	req, err := ReadRequest(NewReader(bytes.NewReader(wire), MSBFirst))
	require.NoError(t, err)
	got, ok := req.(*RawRequest)
	require.True(t, ok)
	assert.Equal(t, want.Opcode, got.Opcode)
	assert.Equal(t, want.Body, got.Body)

	// Re-encoding a raw request reproduces the original bytes exactly.
	assert.Equal(t, wire, got.Encode(MSBFirst))
}

func TestDecodeRequestRejectsShortFrame(t *testing.T) {
	_, err := DecodeRequest(MSBFirst, []byte{1, 2})
	require.Error(t, err)
	var unexpectedEnd *UnexpectedEndError
	require.ErrorAs(t, err, &unexpectedEnd)
}

func TestDecodeRequestRejectsUnassignedOpcode(t *testing.T) {
	for _, opcode := range []ReqCode{0, 120, 126, 128, 255} {
		frame := []byte{byte(opcode), 0, 0, 1}
		_, err := DecodeRequest(MSBFirst, frame)
		require.Error(t, err, "opcode %d", opcode)
		var ive *InvalidValueError
		require.ErrorAs(t, err, &ive)
		assert.Equal(t, "opcode", ive.Field)
	}
}

func TestDecodeRequestAllowsNoOperationAsRaw(t *testing.T) {
	frame := []byte{byte(NoOperation), 0, 0, 1}
	req, err := DecodeRequest(MSBFirst, frame)
	require.NoError(t, err)
	_, ok := req.(*RawRequest)
	assert.True(t, ok)
}

func TestReadRequestHonorsDeclaredLength(t *testing.T) {
	req := &FreeGCRequest{GC: 1}
	wire := req.Encode(LSBFirst)
	// Trailing garbage beyond the declared length must not be consumed.
	stream := append(append([]byte{}, wire...), 0xFF, 0xFF, 0xFF, 0xFF)

	r := NewReader(bytes.NewReader(stream), LSBFirst)
	_, err := ReadRequest(r)
	require.NoError(t, err)

	tail, err := r.Peek(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, tail)
}
