package app

import (
	"github.com/Carmen-Shannon/spaces/engine/profiler"
	"github.com/cogentcore/webgpu/wgpu"
)

// FrameDriverBuilderOption is a function which modifies a frameDriver
// during construction.
type FrameDriverBuilderOption func(*frameDriver)

// WithClearColor overrides the background color frames are cleared to.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - FrameDriverBuilderOption: the option to apply
func WithClearColor(color wgpu.Color) FrameDriverBuilderOption {
	return func(d *frameDriver) {
		d.clearColor = color
	}
}

// WithProfiler attaches a profiler ticked once per presented frame.
//
// Parameters:
//   - prof: the profiler to tick
//
// Returns:
//   - FrameDriverBuilderOption: the option to apply
func WithProfiler(prof *profiler.Profiler) FrameDriverBuilderOption {
	return func(d *frameDriver) {
		d.prof = prof
	}
}
