package x11wire

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomyImplementsError(t *testing.T) {
	var errs = []Error{
		&IOError{Cause: io.ErrClosedPipe},
		&UnexpectedEndError{Wanted: 4, Got: 1},
		&InvalidValueError{Field: "byte order", Value: byte(9)},
		&InvalidStringError{Field: "Vendor", Cause: errors.New("bad encoding")},
	}
	for _, e := range errs {
		assert.NotEmpty(t, e.Error())
	}
}

func TestIOErrorUnwraps(t *testing.T) {
	e := &IOError{Cause: io.ErrClosedPipe}
	assert.ErrorIs(t, e, io.ErrClosedPipe)
}

func TestInvalidStringErrorUnwraps(t *testing.T) {
	cause := errors.New("bad encoding")
	e := &InvalidStringError{Field: "Vendor", Cause: cause}
	assert.ErrorIs(t, e, cause)
}

func TestInvalidValueHelper(t *testing.T) {
	err := invalidValue("opcode", ReqCode(200))
	var ive *InvalidValueError
	assert.ErrorAs(t, err, &ive)
	assert.Equal(t, "opcode", ive.Field)
}
