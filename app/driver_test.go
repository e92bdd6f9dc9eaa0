package app

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/Carmen-Shannon/spaces/engine/graphics"
	"github.com/Carmen-Shannon/spaces/engine/overlay"
	"github.com/Carmen-Shannon/spaces/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrame struct {
	recordErr error
	submitErr error

	clear     wgpu.Color
	recorded  int
	submitted int
	presented int
	abandoned int
}

func (f *fakeFrame) RecordPass(clear wgpu.Color, render func(pass *wgpu.RenderPassEncoder) error) error {
	f.recorded++
	f.clear = clear
	if f.recordErr != nil {
		return f.recordErr
	}
	return render(nil)
}

func (f *fakeFrame) Submit() error {
	f.submitted++
	return f.submitErr
}

func (f *fakeFrame) Present() {
	f.presented++
}

func (f *fakeFrame) Abandon() {
	f.abandoned++
}

type fakeContext struct {
	frames     []*fakeFrame
	acquireErr error
	acquired   int

	reconfigures [][2]int
}

func (c *fakeContext) Device() *wgpu.Device { return nil }
func (c *fakeContext) Queue() *wgpu.Queue   { return nil }
func (c *fakeContext) SurfaceConfiguration() wgpu.SurfaceConfiguration {
	return wgpu.SurfaceConfiguration{}
}

func (c *fakeContext) AcquireFrame() (graphics.Frame, error) {
	if c.acquireErr != nil {
		return nil, c.acquireErr
	}
	frame := c.frames[c.acquired]
	c.acquired++
	return frame, nil
}

func (c *fakeContext) Reconfigure(width, height int) {
	c.reconfigures = append(c.reconfigures, [2]int{width, height})
}

func (c *fakeContext) Release() {}

type fakeCompositor struct {
	events    []window.Event
	begun     int
	ended     int
	rendered  int
	renderErr error
}

func (f *fakeCompositor) ProcessEvent(ev window.Event) {
	f.events = append(f.events, ev)
}

func (f *fakeCompositor) InitRenderer(*wgpu.Device, *wgpu.Queue, wgpu.TextureFormat) error {
	return nil
}

func (f *fakeCompositor) RegisterTexture(string, *wgpu.Texture) (overlay.TextureHandle, error) {
	return 2, nil
}

func (f *fakeCompositor) Registry() *overlay.TextureRegistry {
	return overlay.NewTextureRegistry()
}

func (f *fakeCompositor) BeginFrame() *overlay.UIFrame {
	f.begun++
	return nil
}

func (f *fakeCompositor) EndFrame() overlay.DrawData {
	f.ended++
	var draw overlay.DrawData
	return draw
}

func (f *fakeCompositor) Render(overlay.DrawData, *wgpu.Queue, *wgpu.Device, *wgpu.RenderPassEncoder) error {
	f.rendered++
	return f.renderErr
}

func (f *fakeCompositor) Release() {}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func noUI(*overlay.UIFrame) {}

func TestRenderFrameSuccess(t *testing.T) {
	frame := &fakeFrame{}
	ctx := &fakeContext{frames: []*fakeFrame{frame}}
	comp := &fakeCompositor{}

	driver := NewFrameDriver(ctx, comp, noUI, discardLogger())
	driver.RenderFrame()

	assert.Equal(t, 1, comp.begun)
	assert.Equal(t, 1, comp.ended)
	assert.Equal(t, 1, comp.rendered)
	assert.Equal(t, 1, frame.recorded)
	assert.Equal(t, 1, frame.submitted)
	assert.Equal(t, 1, frame.presented)
	assert.Equal(t, 0, frame.abandoned)

	assert.InDelta(t, 3.2/255.0, frame.clear.R, 1e-9)
	assert.InDelta(t, 3.1/255.0, frame.clear.G, 1e-9)
	assert.InDelta(t, 3.4/255.0, frame.clear.B, 1e-9)
	assert.InDelta(t, 1.0, frame.clear.A, 1e-9)
}

func TestRenderFrameAcquireFailure(t *testing.T) {
	ctx := &fakeContext{acquireErr: errors.New("surface lost")}
	comp := &fakeCompositor{}

	driver := NewFrameDriver(ctx, comp, noUI, discardLogger())
	driver.RenderFrame()

	// No UI work happens when no surface was acquired.
	assert.Equal(t, 0, comp.begun)
	assert.Equal(t, 0, comp.ended)
}

func TestRenderFrameRecordFailureIsIsolated(t *testing.T) {
	bad := &fakeFrame{recordErr: errors.New("encoder failed")}
	good := &fakeFrame{}
	ctx := &fakeContext{frames: []*fakeFrame{bad, good}}
	comp := &fakeCompositor{}

	driver := NewFrameDriver(ctx, comp, noUI, discardLogger())

	driver.RenderFrame()
	assert.Equal(t, 1, bad.abandoned)
	assert.Equal(t, 0, bad.presented)
	assert.Equal(t, 0, bad.submitted)

	// The next frame renders normally.
	driver.RenderFrame()
	assert.Equal(t, 1, good.presented)
	assert.Equal(t, 0, good.abandoned)
}

func TestRenderFrameSubmitFailure(t *testing.T) {
	frame := &fakeFrame{submitErr: errors.New("queue rejected submission")}
	ctx := &fakeContext{frames: []*fakeFrame{frame}}
	comp := &fakeCompositor{}

	driver := NewFrameDriver(ctx, comp, noUI, discardLogger())
	driver.RenderFrame()

	assert.Equal(t, 1, frame.abandoned)
	assert.Equal(t, 0, frame.presented)
}

func TestRenderFrameOverlayFailure(t *testing.T) {
	frame := &fakeFrame{}
	ctx := &fakeContext{frames: []*fakeFrame{frame}}
	comp := &fakeCompositor{renderErr: errors.New("unregistered texture")}

	driver := NewFrameDriver(ctx, comp, noUI, discardLogger())
	driver.RenderFrame()

	assert.Equal(t, 1, frame.abandoned)
	assert.Equal(t, 0, frame.presented)
}

func TestRenderFrameUIBuiltBeforeRecording(t *testing.T) {
	frame := &fakeFrame{}
	ctx := &fakeContext{frames: []*fakeFrame{frame}}
	comp := &fakeCompositor{}

	built := false
	driver := NewFrameDriver(ctx, comp, func(*overlay.UIFrame) {
		built = true
		// The pass has not been recorded while the UI is declared.
		require.Equal(t, 0, frame.recorded)
	}, discardLogger())
	driver.RenderFrame()

	assert.True(t, built)
	assert.Equal(t, 1, frame.recorded)
}

func TestWithClearColor(t *testing.T) {
	frame := &fakeFrame{}
	ctx := &fakeContext{frames: []*fakeFrame{frame}}

	driver := NewFrameDriver(ctx, &fakeCompositor{}, noUI, discardLogger(),
		WithClearColor(wgpu.Color{R: 1, A: 1}),
	)
	driver.RenderFrame()

	assert.Equal(t, wgpu.Color{R: 1, A: 1}, frame.clear)
}
