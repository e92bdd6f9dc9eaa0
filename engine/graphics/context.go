// Package graphics owns the WebGPU context: adapter and device negotiation,
// the presentable surface and its configuration, texture upload, and the
// per-frame acquire/record/submit/present lifecycle.
package graphics

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surfacer is the window-side contract the graphics context needs: a
// platform surface descriptor and the framebuffer size in physical pixels.
type Surfacer interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// Context owns the logical GPU device, command queue, presentable surface,
// and the surface's current configuration. It is the sole owner of these
// resources; all mutation happens on the event-loop thread.
type Context interface {
	// Device returns the logical device handle.
	Device() *wgpu.Device

	// Queue returns the command submission queue.
	Queue() *wgpu.Queue

	// SurfaceConfiguration returns a copy of the active surface configuration.
	SurfaceConfiguration() wgpu.SurfaceConfiguration

	// AcquireFrame acquires the next presentable surface image and wraps it
	// in a Frame. At most one Frame may be outstanding; acquiring while a
	// previous Frame is neither presented nor abandoned is an error.
	//
	// Returns:
	//   - Frame: the acquired frame, ready for pass recording
	//   - error: an error if the surface image could not be acquired
	AcquireFrame() (Frame, error)

	// Reconfigure reapplies the surface configuration at a new framebuffer
	// size, keeping the negotiated format, present mode, and alpha mode.
	// Zero-sized requests are ignored (minimized window).
	//
	// Parameters:
	//   - width: new framebuffer width in pixels
	//   - height: new framebuffer height in pixels
	Reconfigure(width, height int)

	// Release frees the device, adapter, surface, and instance. The context
	// must not be used afterwards.
	Release()
}

// wgpuContext is the WebGPU implementation of Context.
type wgpuContext struct {
	log *slog.Logger

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// config is the active surface configuration. Its dimensions always
	// equal the window's framebuffer size; Reconfigure is the only mutator.
	config wgpu.SurfaceConfiguration

	// frameOutstanding guards the single-presentable-image invariant:
	// the previous frame must be presented or abandoned before the next
	// acquisition.
	frameOutstanding bool
}

var _ Context = &wgpuContext{}

// NewContext negotiates a full graphics context against the given window.
//
// The steps, each fatal on failure: create the backend instance (native
// primary backends only), create the presentable surface, request the
// high-performance adapter compatible with that surface (a blocking
// capability negotiation with no timeout), request a logical device with
// an empty feature set and default limits, then configure the surface with
// the first sRGB format, first present mode, and first alpha mode offered,
// at the window's framebuffer size.
//
// An integrated, virtual, or software adapter produces a warning but is
// accepted.
//
// Parameters:
//   - win: the window supplying the surface descriptor and pixel size
//   - log: diagnostic sink for adapter warnings
//
// Returns:
//   - Context: the initialized context
//   - error: an error if any negotiation step fails; no partial context is returned
func NewContext(win Surfacer, log *slog.Logger) (Context, error) {
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, fmt.Errorf("no supported graphics backend is loadable on this host")
	}

	sd := win.SurfaceDescriptor()
	if sd == nil {
		instance.Release()
		return nil, fmt.Errorf("window handle has no presentable surface descriptor")
	}
	surface := instance.CreateSurface(sd)
	if surface == nil {
		instance.Release()
		return nil, fmt.Errorf("platform cannot produce a presentable surface for this window")
	}

	// Blocks until the driver answers; a non-responding driver stalls
	// startup indefinitely. One-time cost, off the frame path.
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
		ForceFallbackAdapter: false,
		CompatibleSurface:    surface,
	})
	if err != nil {
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("failed to negotiate a graphics adapter: %w", err)
	}

	info := adapter.GetInfo()
	switch info.AdapterType {
	case wgpu.AdapterTypeIntegratedGPU, wgpu.AdapterTypeCPU, wgpu.AdapterTypeUnknown:
		log.Warn("adapter may not satisfy the high-performance preference",
			"device", info.Name,
			"class", deviceClassString(info.AdapterType),
		)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "logical adapter interface",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		adapter.Release()
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("adapter cannot satisfy the requested device limits: %w", err)
	}
	queue := device.GetQueue()

	release := func() {
		device.Release()
		adapter.Release()
		surface.Release()
		instance.Release()
	}

	caps := surface.GetCapabilities(adapter)
	format, err := SelectSurfaceFormat(caps.Formats)
	if err != nil {
		release()
		return nil, fmt.Errorf("surface capability negotiation failed: %w", err)
	}
	presentMode, err := SelectPresentMode(caps.PresentModes)
	if err != nil {
		release()
		return nil, fmt.Errorf("surface capability negotiation failed: %w", err)
	}
	alphaMode, err := SelectAlphaMode(caps.AlphaModes)
	if err != nil {
		release()
		return nil, fmt.Errorf("surface capability negotiation failed: %w", err)
	}

	ctx := &wgpuContext{
		log:      log,
		instance: instance,
		surface:  surface,
		adapter:  adapter,
		device:   device,
		queue:    queue,
		config: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			Width:       uint32(win.Width()),
			Height:      uint32(win.Height()),
			PresentMode: presentMode,
			AlphaMode:   alphaMode,
		},
	}
	// The single point establishing configuration size == window size.
	surface.Configure(adapter, device, &ctx.config)
	return ctx, nil
}

func (c *wgpuContext) Device() *wgpu.Device {
	return c.device
}

func (c *wgpuContext) Queue() *wgpu.Queue {
	return c.queue
}

func (c *wgpuContext) SurfaceConfiguration() wgpu.SurfaceConfiguration {
	return c.config
}

func (c *wgpuContext) AcquireFrame() (Frame, error) {
	if c.frameOutstanding {
		return nil, fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := c.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire surface image: %w", err)
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return nil, fmt.Errorf("failed to create surface image view: %w", err)
	}

	c.frameOutstanding = true
	return &wgpuFrame{ctx: c, surfaceTexture: surfaceTexture, view: view}, nil
}

func (c *wgpuContext) Reconfigure(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.config.Width = uint32(width)
	c.config.Height = uint32(height)
	c.surface.Configure(c.adapter, c.device, &c.config)
}

func (c *wgpuContext) Release() {
	c.device.Release()
	c.adapter.Release()
	c.surface.Release()
	c.instance.Release()
}
