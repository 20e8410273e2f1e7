package x11wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedOpcode(t *testing.T) {
	assert.True(t, IsSupportedOpcode(CreateWindow))
	assert.True(t, IsSupportedOpcode(GetModifierMapping))
	assert.True(t, IsSupportedOpcode(NoOperation))
	assert.False(t, IsSupportedOpcode(ReqCode(0)))
	assert.False(t, IsSupportedOpcode(ReqCode(120)))
	assert.False(t, IsSupportedOpcode(ReqCode(126)))
	assert.False(t, IsSupportedOpcode(ReqCode(131))) // XInput, out of scope
	assert.False(t, IsSupportedOpcode(ReqCode(133))) // BigRequests, out of scope
}
