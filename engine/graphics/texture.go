package graphics

import (
	"fmt"

	"github.com/Carmen-Shannon/spaces/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// DecodeError reports an image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UploadTexture decodes the image at path and writes it into a new GPU
// texture sized to the image's pixel dimensions: one mip level, one
// sample, usage sampled + copy-destination. The texture format follows
// the surface configuration, not the image's native layout. No CPU-side
// copy of the pixels is retained after the call returns.
//
// Parameters:
//   - cfg: the target surface configuration supplying the pixel format
//   - device: the logical device allocating the texture
//   - queue: the queue performing the pixel write
//   - path: the image file to decode (PNG, JPEG, or BMP)
//
// Returns:
//   - *wgpu.Texture: the populated GPU texture
//   - error: a *DecodeError if decoding fails, or a creation error from the device
func UploadTexture(cfg wgpu.SurfaceConfiguration, device *wgpu.Device, queue *wgpu.Queue, path string) (*wgpu.Texture, error) {
	staging, err := common.DecodeRGBA(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return WriteTexture(cfg.Format, device, queue, path, staging)
}

// WriteTexture allocates a 2D texture for the staged RGBA pixels and
// writes them with a row-pitch-aware copy (row stride = 4 × width bytes,
// one image per copy).
//
// Parameters:
//   - format: the pixel format for the GPU texture
//   - device: the logical device allocating the texture
//   - queue: the queue performing the pixel write
//   - label: debug label for the texture
//   - staging: decoded RGBA pixels with dimensions
//
// Returns:
//   - *wgpu.Texture: the populated GPU texture
//   - error: an error if the texture could not be created
func WriteTexture(format wgpu.TextureFormat, device *wgpu.Device, queue *wgpu.Queue, label string, staging common.TextureStagingData) (*wgpu.Texture, error) {
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              staging.Width,
			Height:             staging.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create texture %s: %w", label, err)
	}

	queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		staging.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  staging.Width * 4,
			RowsPerImage: staging.Height,
		},
		&wgpu.Extent3D{
			Width:              staging.Width,
			Height:             staging.Height,
			DepthOrArrayLayers: 1,
		},
	)

	return tex, nil
}
