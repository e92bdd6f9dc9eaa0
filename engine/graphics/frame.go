package graphics

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Frame is one ephemeral unit of render work: an acquired presentable
// image, a view over it, and a single command recording. A Frame lives for
// one driver invocation and ends in exactly one of Present or Abandon.
type Frame interface {
	// RecordPass records the frame's single render pass. The pass targets
	// the acquired image's view, clears it to the given color, and keeps
	// the result. The render callback issues draws into the open pass; the
	// pass is closed and the command recording finished before RecordPass
	// returns.
	//
	// Parameters:
	//   - clear: the background color loaded into the target
	//   - render: callback issuing draw commands into the open pass
	//
	// Returns:
	//   - error: an error if recording could not start or finish; the
	//     frame must then be abandoned
	RecordPass(clear wgpu.Color, render func(pass *wgpu.RenderPassEncoder) error) error

	// Submit hands the finished command recording to the queue, exactly once.
	//
	// Returns:
	//   - error: an error if no recording exists or submission fails
	Submit() error

	// Present presents the acquired image and releases the frame's
	// resources. This is the frame's externally observable effect.
	Present()

	// Abandon releases the frame's resources without presenting. Used when
	// any step of the frame failed; the next acquisition is unaffected.
	Abandon()
}

// wgpuFrame is the WebGPU implementation of Frame.
type wgpuFrame struct {
	ctx            *wgpuContext
	surfaceTexture *wgpu.Texture
	view           *wgpu.TextureView
	commands       *wgpu.CommandBuffer
}

var _ Frame = &wgpuFrame{}

func (f *wgpuFrame) RecordPass(clear wgpu.Color, render func(pass *wgpu.RenderPassEncoder) error) error {
	encoder, err := f.ctx.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("failed to create command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Overlay Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       f.view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	})

	renderErr := render(pass)

	// The pass must close before the recording finishes, even when the
	// render callback failed.
	pass.End()

	if renderErr != nil {
		encoder.Release()
		return renderErr
	}

	commands, err := encoder.Finish(nil)
	encoder.Release()
	if err != nil {
		return fmt.Errorf("failed to finish command recording: %w", err)
	}
	f.commands = commands

	return nil
}

func (f *wgpuFrame) Submit() error {
	if f.commands == nil {
		return fmt.Errorf("no command recording to submit")
	}
	f.ctx.queue.Submit(f.commands)
	f.commands.Release()
	f.commands = nil
	return nil
}

func (f *wgpuFrame) Present() {
	f.ctx.surface.Present()
	f.release()
}

func (f *wgpuFrame) Abandon() {
	f.release()
}

// release frees the frame's GPU references and clears the context's
// outstanding-frame guard so the next acquisition can proceed.
func (f *wgpuFrame) release() {
	if f.commands != nil {
		f.commands.Release()
		f.commands = nil
	}
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.surfaceTexture != nil {
		f.surfaceTexture.Release()
		f.surfaceTexture = nil
	}
	f.ctx.frameOutstanding = false
}
