package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5, 7))
	assert.Equal(t, 3, Coalesce(3, 5))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, "fallback", Coalesce("", "fallback"))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes[float32](nil))

	data := []float32{1.0, 2.5}
	raw := SliceToBytes(data)
	assert.Len(t, raw, 8)
	assert.Equal(t, float32(1.0), math.Float32frombits(binary.LittleEndian.Uint32(raw[0:4])))
	assert.Equal(t, float32(2.5), math.Float32frombits(binary.LittleEndian.Uint32(raw[4:8])))
}
