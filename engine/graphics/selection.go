package graphics

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoSRGBFormat is returned when a surface offers no sRGB color format.
// The application renders in sRGB only; this is a policy choice, not a
// negotiated fallback.
var ErrNoSRGBFormat = errors.New("surface offers no sRGB texture format")

// IsSRGBFormat reports whether the texture format stores color values
// with the sRGB transfer function applied.
//
// Parameters:
//   - format: the texture format to classify
//
// Returns:
//   - bool: true for sRGB formats
func IsSRGBFormat(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}

// SelectSurfaceFormat picks the first sRGB format from the capability list,
// preserving the adapter's preference order.
//
// Parameters:
//   - formats: supported surface formats, most preferred first
//
// Returns:
//   - wgpu.TextureFormat: the selected format
//   - error: ErrNoSRGBFormat if no sRGB format is offered
func SelectSurfaceFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	for _, f := range formats {
		if IsSRGBFormat(f) {
			return f, nil
		}
	}
	return 0, ErrNoSRGBFormat
}

// SelectPresentMode picks the first present mode offered by the surface.
//
// Parameters:
//   - modes: supported present modes, most preferred first
//
// Returns:
//   - wgpu.PresentMode: the selected mode
//   - error: error if the surface offers no present mode
func SelectPresentMode(modes []wgpu.PresentMode) (wgpu.PresentMode, error) {
	if len(modes) == 0 {
		return 0, fmt.Errorf("surface offers no present modes")
	}
	return modes[0], nil
}

// SelectAlphaMode picks the first alpha compositing mode offered by the surface.
//
// Parameters:
//   - modes: supported alpha modes, most preferred first
//
// Returns:
//   - wgpu.CompositeAlphaMode: the selected mode
//   - error: error if the surface offers no alpha mode
func SelectAlphaMode(modes []wgpu.CompositeAlphaMode) (wgpu.CompositeAlphaMode, error) {
	if len(modes) == 0 {
		return 0, fmt.Errorf("surface offers no alpha modes")
	}
	return modes[0], nil
}
