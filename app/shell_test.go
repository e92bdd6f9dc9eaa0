package app

import (
	"testing"

	"github.com/Carmen-Shannon/spaces/common"
	"github.com/Carmen-Shannon/spaces/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	callback func(window.Event)
	batches  [][]window.Event
	closed   bool
}

func (w *fakeWindow) SetEventCallback(callback func(window.Event)) {
	w.callback = callback
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }

func (w *fakeWindow) IsRunning() bool { return !w.closed }

func (w *fakeWindow) RequestClose() { w.closed = true }

func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}

// ProcessMessages delivers one batch per call; the window closes once all
// batches are drained.
func (w *fakeWindow) ProcessMessages() {
	if len(w.batches) == 0 {
		w.closed = true
		return
	}
	batch := w.batches[0]
	w.batches = w.batches[1:]
	for _, ev := range batch {
		w.callback(ev)
	}
}

func (w *fakeWindow) Width() int  { return 1200 }
func (w *fakeWindow) Height() int { return 600 }

func (w *fakeWindow) LogicalSize() (float32, float32) { return 1200, 600 }

type fakeDriver struct {
	renders int
}

func (d *fakeDriver) RenderFrame() {
	d.renders++
}

func TestShellStartsCreated(t *testing.T) {
	shell := NewShell(&fakeWindow{}, &fakeContext{}, &fakeCompositor{}, &fakeDriver{}, discardLogger())
	assert.Equal(t, ShellCreated, shell.State())
}

func TestShellRendersOnRedrawWhileRunning(t *testing.T) {
	win := &fakeWindow{batches: [][]window.Event{
		{{Kind: window.EventRedraw}},
		{{Kind: window.EventRedraw}},
	}}
	driver := &fakeDriver{}
	shell := NewShell(win, &fakeContext{}, &fakeCompositor{}, driver, discardLogger())

	shell.Run()

	assert.Equal(t, 2, driver.renders)
	assert.Equal(t, ShellExiting, shell.State())
}

func TestShellIgnoresRedrawBeforeRunning(t *testing.T) {
	driver := &fakeDriver{}
	shell := NewShell(&fakeWindow{}, &fakeContext{}, &fakeCompositor{}, driver, discardLogger())

	shell.OnEvent(window.Event{Kind: window.EventRedraw})
	assert.Equal(t, 0, driver.renders)
}

func TestShellEscapeExits(t *testing.T) {
	win := &fakeWindow{batches: [][]window.Event{
		{{Kind: window.EventRedraw}},
		{{Kind: window.EventKeyDown, Key: common.KeyEsc}},
		// Never delivered: the loop stops before this batch.
		{{Kind: window.EventRedraw}},
	}}
	driver := &fakeDriver{}
	shell := NewShell(win, &fakeContext{}, &fakeCompositor{}, driver, discardLogger())

	shell.Run()

	assert.True(t, win.closed)
	assert.Equal(t, ShellExiting, shell.State())
	assert.Equal(t, 1, driver.renders)
}

func TestShellNonEscapeKeyDoesNotExit(t *testing.T) {
	s := NewShell(&fakeWindow{}, &fakeContext{}, &fakeCompositor{}, &fakeDriver{}, discardLogger()).(*shell)
	s.state = ShellRunning
	s.OnEvent(window.Event{Kind: window.EventKeyDown, Key: common.KeyA})
	assert.Equal(t, ShellRunning, s.state)
}

func TestShellResizeReconfigures(t *testing.T) {
	ctx := &fakeContext{}
	shell := NewShell(&fakeWindow{}, ctx, &fakeCompositor{}, &fakeDriver{}, discardLogger())

	shell.OnEvent(window.Event{Kind: window.EventResize, Width: 1600, Height: 900})

	require.Len(t, ctx.reconfigures, 1)
	assert.Equal(t, [2]int{1600, 900}, ctx.reconfigures[0])
}

func TestShellForwardsEveryEventToCompositor(t *testing.T) {
	comp := &fakeCompositor{}
	driver := &fakeDriver{}
	win := &fakeWindow{batches: [][]window.Event{{
		{Kind: window.EventCursorMove, X: 10, Y: 20},
		{Kind: window.EventMouseButton, Button: window.MouseButtonLeft, Pressed: true},
		{Kind: window.EventRedraw},
	}}}
	shell := NewShell(win, &fakeContext{}, comp, driver, discardLogger())

	shell.Run()

	require.Len(t, comp.events, 3)
	assert.Equal(t, window.EventCursorMove, comp.events[0].Kind)
	assert.Equal(t, window.EventMouseButton, comp.events[1].Kind)
	assert.Equal(t, window.EventRedraw, comp.events[2].Kind)
	assert.Equal(t, 1, driver.renders)
}

func TestShellRequestExitStopsRendering(t *testing.T) {
	win := &fakeWindow{}
	driver := &fakeDriver{}
	s := NewShell(win, &fakeContext{}, &fakeCompositor{}, driver, discardLogger()).(*shell)
	s.state = ShellRunning

	s.RequestExit()
	assert.Equal(t, ShellExiting, s.State())
	assert.True(t, win.closed)

	s.OnEvent(window.Event{Kind: window.EventRedraw})
	assert.Equal(t, 0, driver.renders)
}
