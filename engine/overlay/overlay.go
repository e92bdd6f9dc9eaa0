// Package overlay owns the immediate-mode UI: the imgui context and its
// cumulative I/O state, the adapter translating window events into that
// state, the name→handle texture registry, and the renderer turning
// finalized draw data into GPU commands. The widget tree is redeclared
// every frame; nothing is retained across frames.
package overlay

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/spaces/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/inkyblackness/imgui-go/v4"
)

// DrawData is the finalized geometry produced by the UI layer for one
// frame, ready for GPU submission.
type DrawData = imgui.DrawData

// TextureHandle is the opaque renderer-assigned identity of a registered
// GPU texture.
type TextureHandle = imgui.TextureID

// Compositor owns the UI state machine and its GPU-side renderer. One
// compositor exists per application; all methods run on the event-loop
// thread.
type Compositor interface {
	// ProcessEvent feeds one window event into the UI's cumulative I/O
	// state. Must be called for every event before any frame logic
	// consumes state for that tick.
	//
	// Parameters:
	//   - ev: the forwarded window event
	ProcessEvent(ev window.Event)

	// InitRenderer builds the GPU-side draw-data renderer targeting the
	// given surface format, including the font atlas upload. Must be
	// called once before RegisterTexture or Render.
	//
	// Parameters:
	//   - device: the logical device owning the renderer's resources
	//   - queue: the queue used for uploads
	//   - format: the surface format the overlay renders into
	//
	// Returns:
	//   - error: an error if pipeline or font atlas creation fails
	InitRenderer(device *wgpu.Device, queue *wgpu.Queue, format wgpu.TextureFormat) error

	// RegisterTexture binds a GPU texture to a stable logical name and
	// returns its opaque handle. Every name referenced during UI
	// declaration must be registered before first use.
	//
	// Parameters:
	//   - name: the stable logical name (e.g. "tex.icon")
	//   - texture: the GPU texture to register
	//
	// Returns:
	//   - TextureHandle: the renderer-assigned handle
	//   - error: an error if the renderer is not initialized or binding creation fails
	RegisterTexture(name string, texture *wgpu.Texture) (TextureHandle, error)

	// Registry returns the compositor's texture registry.
	Registry() *TextureRegistry

	// BeginFrame advances timing and input state and opens a new UI frame.
	// The returned handle declares widgets for this frame only.
	//
	// Returns:
	//   - *UIFrame: the frame-scoped declaration handle
	BeginFrame() *UIFrame

	// EndFrame finalizes the declared widgets into draw data. Must be
	// called after BeginFrame and before Render.
	//
	// Returns:
	//   - DrawData: the finalized geometry for this frame
	EndFrame() DrawData

	// Render issues GPU draw commands for the finalized draw data into a
	// caller-provided open render pass.
	//
	// Parameters:
	//   - draw: the draw data returned by EndFrame
	//   - queue: the queue receiving buffer writes
	//   - device: the device allocating per-frame buffers
	//   - pass: the open render pass to record into
	//
	// Returns:
	//   - error: an error if the renderer is not initialized or recording fails
	Render(draw DrawData, queue *wgpu.Queue, device *wgpu.Device, pass *wgpu.RenderPassEncoder) error

	// Release destroys the imgui context and the renderer's GPU resources.
	Release()
}

// compositor is the implementation of Compositor.
type compositor struct {
	ctx      *imgui.Context
	io       imgui.IO
	registry *TextureRegistry
	renderer *drawDataRenderer

	// displayWidth, displayHeight is the window size in logical
	// coordinates; cursor positions arrive in the same space.
	displayWidth  float32
	displayHeight float32

	// fbScale converts logical coordinates to framebuffer pixels.
	fbScale float32

	// fbWidth, fbHeight is the framebuffer size in physical pixels.
	fbWidth  uint32
	fbHeight uint32

	lastFrame time.Time
}

var _ Compositor = &compositor{}

// NewCompositor creates the UI state machine with its key mapping and
// default 13px font. The GPU-side renderer is attached separately with
// InitRenderer so the input path stays usable without a device.
//
// Parameters:
//   - options: functional options for display geometry
//
// Returns:
//   - Compositor: the configured compositor
func NewCompositor(options ...CompositorBuilderOption) Compositor {
	c := &compositor{
		ctx:           imgui.CreateContext(nil),
		registry:      NewTextureRegistry(),
		displayWidth:  1200,
		displayHeight: 600,
		fbScale:       1,
	}
	c.io = imgui.CurrentIO()
	c.io.SetIniFilename("")

	for _, opt := range options {
		opt(c)
	}
	c.fbWidth = uint32(c.displayWidth * c.fbScale)
	c.fbHeight = uint32(c.displayHeight * c.fbScale)

	c.io.Fonts().AddFontDefault()
	setKeyMapping(c.io)

	return c
}

func (c *compositor) Registry() *TextureRegistry {
	return c.registry
}

func (c *compositor) InitRenderer(device *wgpu.Device, queue *wgpu.Queue, format wgpu.TextureFormat) error {
	r, err := newDrawDataRenderer(device, queue, format, c.io)
	if err != nil {
		return err
	}
	c.renderer = r
	return nil
}

func (c *compositor) RegisterTexture(name string, texture *wgpu.Texture) (TextureHandle, error) {
	if c.renderer == nil {
		return 0, fmt.Errorf("overlay renderer is not initialized")
	}
	handle, err := c.renderer.registerTexture(name, texture)
	if err != nil {
		return 0, err
	}
	c.registry.Register(name, handle)
	return handle, nil
}

func (c *compositor) BeginFrame() *UIFrame {
	now := time.Now()
	dt := float32(1.0 / 60.0)
	if !c.lastFrame.IsZero() {
		if elapsed := float32(now.Sub(c.lastFrame).Seconds()); elapsed > 0 {
			dt = elapsed
		}
	}
	c.lastFrame = now

	c.io.SetDisplaySize(imgui.Vec2{X: c.displayWidth, Y: c.displayHeight})
	c.io.SetDeltaTime(dt)
	imgui.NewFrame()

	return &UIFrame{registry: c.registry}
}

func (c *compositor) EndFrame() DrawData {
	imgui.Render()
	return imgui.RenderedDrawData()
}

func (c *compositor) Render(draw DrawData, queue *wgpu.Queue, device *wgpu.Device, pass *wgpu.RenderPassEncoder) error {
	if c.renderer == nil {
		return fmt.Errorf("overlay renderer is not initialized")
	}
	return c.renderer.render(draw, c.displayWidth, c.displayHeight, c.fbScale, c.fbWidth, c.fbHeight, pass)
}

func (c *compositor) Release() {
	if c.renderer != nil {
		c.renderer.release()
		c.renderer = nil
	}
	c.ctx.Destroy()
}

// UIFrame is the frame-scoped UI declaration handle returned by
// BeginFrame. Declaration order determines layout and z-order for the
// current frame only.
type UIFrame struct {
	registry *TextureRegistry
}

// MainMenuBar declares the always-visible top menu bar and runs the body
// inside it.
//
// Parameters:
//   - body: widget declarations placed in the menu bar
func (f *UIFrame) MainMenuBar(body func()) {
	if imgui.BeginMainMenuBar() {
		body()
		imgui.EndMainMenuBar()
	}
}

// ImageButton declares a clickable image widget bound to a registered
// texture name. Referencing an unregistered name panics; registration is
// a startup-time precondition.
//
// Parameters:
//   - name: the registered texture name
//   - width: button width in logical units
//   - height: button height in logical units
//
// Returns:
//   - bool: true if the button was clicked this frame
func (f *UIFrame) ImageButton(name string, width, height float32) bool {
	return imgui.ImageButton(f.registry.Lookup(name), imgui.Vec2{X: width, Y: height})
}
