package x11wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allGCMask selects every field gcFields knows about.
func allGCMask() uint32 {
	var mask uint32
	for _, f := range gcFields {
		mask |= f.bit
	}
	return mask
}

func TestEncodeGCValuesAllFieldsPadsToSeventeenWords(t *testing.T) {
	v := GCDefaults
	v.Foreground = 0xFF0000
	tail := EncodeGCValues(MSBFirst, allGCMask(), v)
	// 50 bytes of packed native-width values, padded once to 52 bytes:
	// CreateGC's length word is 4 (fixed header words) + 52/4 = 17.
	require.Len(t, tail, 52)
	assert.Equal(t, 0, len(tail)%4)
	assert.Equal(t, uint16(4+len(tail)/4), uint16(17))
}

func TestEncodeDecodeGCValuesRoundTrip(t *testing.T) {
	mask := uint32(GCForeground | GCBackground | GCLineWidth | GCGraphicsExposures | GCDashes)
	want := GCValues{
		Foreground:        0x112233,
		Background:        0x445566,
		LineWidth:         7,
		GraphicsExposures: false,
		Dashes:            8,
	}
	tail := EncodeGCValues(LSBFirst, mask, want)

	got, err := DecodeGCValues(LSBFirst, mask, tail)
	require.NoError(t, err)
	assert.Equal(t, want.Foreground, got.Foreground)
	assert.Equal(t, want.Background, got.Background)
	assert.Equal(t, want.LineWidth, got.LineWidth)
	assert.Equal(t, want.GraphicsExposures, got.GraphicsExposures)
	assert.Equal(t, want.Dashes, got.Dashes)
	// Fields the mask didn't select fall back to GCDefaults.
	assert.Equal(t, GCDefaults.Function, got.Function)
	assert.Equal(t, GCDefaults.ArcMode, got.ArcMode)
}

func TestDecodeGCValuesShortTailIsUnexpectedEnd(t *testing.T) {
	_, err := DecodeGCValues(MSBFirst, GCForeground, []byte{0, 0})
	require.Error(t, err)
	var unexpectedEnd *UnexpectedEndError
	require.ErrorAs(t, err, &unexpectedEnd)
}

func TestEncodeGCValuesEmptyMaskIsEmptyTail(t *testing.T) {
	tail := EncodeGCValues(MSBFirst, 0, GCDefaults)
	assert.Empty(t, tail)
}

func TestDecodeGCValuesRejectsOutOfRangeEnums(t *testing.T) {
	cases := []struct {
		mask  uint32
		field string
		value byte
	}{
		{GCFunction, "Function", 16},
		{GCLineStyle, "LineStyle", 3},
		{GCCapStyle, "CapStyle", 4},
		{GCJoinStyle, "JoinStyle", 3},
		{GCFillStyle, "FillStyle", 4},
		{GCFillRule, "FillRule", 2},
		{GCSubwindowMode, "SubwindowMode", 2},
		{GCArcMode, "ArcMode", 2},
	}
	for _, c := range cases {
		_, err := DecodeGCValues(MSBFirst, c.mask, []byte{c.value})
		require.Error(t, err, c.field)
		var ive *InvalidValueError
		require.ErrorAs(t, err, &ive)
		assert.Equal(t, c.field, ive.Field)
	}
}
