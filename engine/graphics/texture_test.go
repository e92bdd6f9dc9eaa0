package graphics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeError(t *testing.T) {
	inner := errors.New("unexpected EOF")
	err := &DecodeError{Path: "design/Hintergrund.png", Err: inner}

	assert.Contains(t, err.Error(), "design/Hintergrund.png")
	assert.ErrorIs(t, err, inner)

	var decodeErr *DecodeError
	assert.ErrorAs(t, error(err), &decodeErr)
	assert.Equal(t, "design/Hintergrund.png", decodeErr.Path)
}
