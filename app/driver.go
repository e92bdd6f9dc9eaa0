// Package app ties the window, the GPU context, and the overlay together
// into the per-frame render loop and the event-driven application shell.
package app

import (
	"log/slog"

	"github.com/Carmen-Shannon/spaces/engine/graphics"
	"github.com/Carmen-Shannon/spaces/engine/overlay"
	"github.com/Carmen-Shannon/spaces/engine/profiler"
	"github.com/cogentcore/webgpu/wgpu"
)

// FrameDriver renders exactly one frame per invocation: acquire the
// surface, declare and finalize the UI, record a single clear-and-draw
// pass, submit, present. A failure at any step abandons the frame and is
// absorbed; the next invocation starts clean.
type FrameDriver interface {
	// RenderFrame produces one frame. Frame-local failures are logged and
	// swallowed so a single bad frame never ends the application.
	RenderFrame()
}

// frameDriver is the implementation of FrameDriver.
type frameDriver struct {
	ctx     graphics.Context
	comp    overlay.Compositor
	buildUI func(*overlay.UIFrame)

	clearColor wgpu.Color
	prof       *profiler.Profiler
	log        *slog.Logger
}

var _ FrameDriver = &frameDriver{}

// NewFrameDriver creates a frame driver rendering the given UI on top of
// the fixed background color.
//
// Parameters:
//   - ctx: the graphics context frames are acquired from
//   - comp: the compositor declaring and rendering the UI
//   - buildUI: the per-frame widget declaration callback
//   - log: the logger frame failures are reported to
//   - options: functional options for the clear color and profiling
//
// Returns:
//   - FrameDriver: the configured frame driver
func NewFrameDriver(ctx graphics.Context, comp overlay.Compositor, buildUI func(*overlay.UIFrame), log *slog.Logger, options ...FrameDriverBuilderOption) FrameDriver {
	d := &frameDriver{
		ctx:        ctx,
		comp:       comp,
		buildUI:    buildUI,
		clearColor: wgpu.Color{R: 3.2 / 255.0, G: 3.1 / 255.0, B: 3.4 / 255.0, A: 1.0},
		log:        log,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

func (d *frameDriver) RenderFrame() {
	frame, err := d.ctx.AcquireFrame()
	if err != nil {
		d.log.Warn("skipping frame, surface acquisition failed", "error", err)
		return
	}

	// The UI is finalized before any GPU commands are recorded.
	ui := d.comp.BeginFrame()
	d.buildUI(ui)
	draw := d.comp.EndFrame()

	err = frame.RecordPass(d.clearColor, func(pass *wgpu.RenderPassEncoder) error {
		return d.comp.Render(draw, d.ctx.Queue(), d.ctx.Device(), pass)
	})
	if err != nil {
		frame.Abandon()
		d.log.Warn("skipping frame, pass recording failed", "error", err)
		return
	}

	if err := frame.Submit(); err != nil {
		frame.Abandon()
		d.log.Warn("skipping frame, submission failed", "error", err)
		return
	}

	frame.Present()
	if d.prof != nil {
		d.prof.Tick()
	}
}
