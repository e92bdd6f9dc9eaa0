package common

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x40, A: 0xFF})
		}
	}

	path := filepath.Join(t.TempDir(), "icon.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return path
}

func TestDecodeRGBA(t *testing.T) {
	path := writeTestPNG(t, 64, 64)

	staging, err := DecodeRGBA(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(64), staging.Width)
	assert.Equal(t, uint32(64), staging.Height)
	assert.Len(t, staging.Pixels, 64*64*4)

	// Pixel (3, 5) encodes its own coordinates.
	offset := (5*64 + 3) * 4
	assert.Equal(t, byte(3), staging.Pixels[offset])
	assert.Equal(t, byte(5), staging.Pixels[offset+1])
	assert.Equal(t, byte(0x40), staging.Pixels[offset+2])
	assert.Equal(t, byte(0xFF), staging.Pixels[offset+3])
}

func TestDecodeRGBAMissingFile(t *testing.T) {
	_, err := DecodeRGBA(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestDecodeRGBAMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := DecodeRGBA(path)
	assert.Error(t, err)
}
