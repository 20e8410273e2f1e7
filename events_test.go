package x11wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEventSetRoundTrip(t *testing.T) {
	set := map[Event]bool{
		EventKeyPress:        true,
		EventButtonPress:     true,
		EventOwnerGrabButton: true,
	}
	mask := EncodeEventSet(set)
	assert.Equal(t, uint32(1<<0|1<<2|1<<24), mask)

	got, err := DecodeEventSet(mask)
	require.NoError(t, err)
	assert.Equal(t, set, got)
}

func TestEncodeEventSetIgnoresFalseEntries(t *testing.T) {
	set := map[Event]bool{EventKeyPress: true, EventKeyRelease: false}
	assert.Equal(t, uint32(EventKeyPress), EncodeEventSet(set))
}

func TestDecodeEventSetRejectsReservedBits(t *testing.T) {
	_, err := DecodeEventSet(1 << 25)
	require.Error(t, err)
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
	assert.Equal(t, "Set of Event", ive.Field)
}

func TestDecodeEventSetEmpty(t *testing.T) {
	got, err := DecodeEventSet(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
