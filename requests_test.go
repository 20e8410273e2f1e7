package x11wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternAtomRoundTrip(t *testing.T) {
	want := &InternAtomRequest{OnlyIfExists: true, Name: "WM_PROTOCOLS"}
	wire := want.Encode(MSBFirst)

	got, err := DecodeInternAtomRequest(MSBFirst, wire[1], wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInternAtomResponseRoundTrip(t *testing.T) {
	want := InternAtomResponse{Sequence: 7, Atom: 42}
	wire := want.Encode(LSBFirst)
	require.Len(t, wire, 32)

	got, err := DecodeInternAtomResponse(LSBFirst, wire)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetPropertyRoundTrip(t *testing.T) {
	want := &GetPropertyRequest{
		Delete: false, Window: 1, Property: 2, Type: 0,
		LongOffset: 0, LongLength: 0xFFFFFFFF,
	}
	wire := want.Encode(MSBFirst)
	require.Len(t, wire, 24)

	got, err := DecodeGetPropertyRequest(MSBFirst, wire[1], wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetPropertyResponseFormatDrivesValueLength(t *testing.T) {
	resp := GetPropertyResponse{
		Sequence: 3, Format: 32, Type: 4, LengthOfValueInFormatUnits: 2,
		Value: []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	wire := resp.Encode(MSBFirst)

	got, err := DecodeGetPropertyResponse(MSBFirst, wire)
	require.NoError(t, err)
	assert.Equal(t, resp.Value, got.Value)
	assert.EqualValues(t, 32, got.Format)
}

func TestQueryExtensionRoundTrip(t *testing.T) {
	want := &QueryExtensionRequest{Name: "BIG-REQUESTS"}
	wire := want.Encode(LSBFirst)

	got, err := DecodeQueryExtensionRequest(LSBFirst, wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestQueryExtensionResponseRoundTrip(t *testing.T) {
	want := QueryExtensionResponse{Sequence: 1, Present: true, MajorOpcode: 133, FirstEvent: 0, FirstError: 0}
	wire := want.Encode(MSBFirst)

	got, err := DecodeQueryExtensionResponse(MSBFirst, wire)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreateGCRoundTrip(t *testing.T) {
	want := &CreateGCRequest{
		CID: 1, Drawable: 2,
		Mask:   GCForeground | GCBackground | GCGraphicsExposures,
		Values: GCValues{Foreground: 0xFF0000, Background: 0x00FF00, GraphicsExposures: false},
	}
	wire := want.Encode(MSBFirst)

	got, err := DecodeCreateGCRequest(MSBFirst, wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want.CID, got.CID)
	assert.Equal(t, want.Drawable, got.Drawable)
	assert.Equal(t, want.Mask, got.Mask)
	assert.Equal(t, want.Values.Foreground, got.Values.Foreground)
	assert.Equal(t, want.Values.Background, got.Values.Background)
	assert.Equal(t, want.Values.GraphicsExposures, got.Values.GraphicsExposures)
}

func TestCreateGCAllFieldsLengthIsSeventeen(t *testing.T) {
	req := &CreateGCRequest{CID: 1, Drawable: 2, Mask: allGCMask(), Values: GCDefaults}
	wire := req.Encode(MSBFirst)
	length := MSBFirst.Uint16(wire[2:4])
	assert.EqualValues(t, 17, length)
}

func TestChangeGCRoundTrip(t *testing.T) {
	want := &ChangeGCRequest{GC: 9, Mask: GCLineWidth, Values: GCValues{LineWidth: 3}}
	wire := want.Encode(LSBFirst)

	got, err := DecodeChangeGCRequest(LSBFirst, wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want.GC, got.GC)
	assert.Equal(t, want.Mask, got.Mask)
	assert.Equal(t, want.Values.LineWidth, got.Values.LineWidth)
}

func TestCopyGCRoundTrip(t *testing.T) {
	want := &CopyGCRequest{SrcGC: 1, DstGC: 2, Mask: GCForeground}
	wire := want.Encode(MSBFirst)
	require.Len(t, wire, 16)

	got, err := DecodeCopyGCRequest(MSBFirst, wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFreeGCRoundTrip(t *testing.T) {
	want := &FreeGCRequest{GC: 5}
	wire := want.Encode(MSBFirst)
	require.Len(t, wire, 8)

	got, err := DecodeFreeGCRequest(MSBFirst, wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreatePixmapRoundTrip(t *testing.T) {
	want := &CreatePixmapRequest{Depth: 24, PID: 1, Drawable: 2, Width: 640, Height: 480}
	wire := want.Encode(MSBFirst)
	require.Len(t, wire, 16)

	got, err := DecodeCreatePixmapRequest(MSBFirst, wire[1], wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFreePixmapRoundTrip(t *testing.T) {
	want := &FreePixmapRequest{Pixmap: 99}
	wire := want.Encode(LSBFirst)

	got, err := DecodeFreePixmapRequest(LSBFirst, wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetAtomNameRoundTrip(t *testing.T) {
	want := &GetAtomNameRequest{Atom: 17}
	wire := want.Encode(MSBFirst)

	got, err := DecodeGetAtomNameRequest(MSBFirst, wire[4:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetAtomNameResponseRoundTrip(t *testing.T) {
	want := GetAtomNameResponse{Sequence: 4, Name: "WM_PROTOCOLS"}
	wire := want.Encode(MSBFirst)

	got, err := DecodeGetAtomNameResponse(MSBFirst, wire)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRawRequestEncodeHeader(t *testing.T) {
	want := &RawRequest{Opcode: MapWindow, Data: 0, Body: []byte{0, 0, 0, 1}}
	wire := want.Encode(MSBFirst)
	assert.EqualValues(t, MapWindow, wire[0])
	assert.EqualValues(t, 2, MSBFirst.Uint16(wire[2:4]))
}
