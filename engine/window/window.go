package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetEventCallback sets the function receiving every typed window event.
	// Input events are delivered during ProcessMessages in the order the
	// platform reports them, followed by one EventRedraw per loop iteration.
	//
	// Parameters:
	//   - callback: function receiving each Event (or nil to disable)
	SetEventCallback(callback func(Event))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the platform to terminate the message loop.
	// The window stays valid until Close releases it.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Each iteration polls platform
	// events (delivered through the event callback) and then emits one
	// EventRedraw.
	ProcessMessages()

	// Width returns the current framebuffer width in physical pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in physical pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// LogicalSize returns the window client area size in logical (screen)
	// coordinates. On high-DPI displays this differs from Width/Height.
	//
	// Returns:
	//   - float32: logical width
	//   - float32: logical height
	LogicalSize() (float32, float32)
}

// appWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and the event callback.
type appWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// resizable controls whether the user may resize the window.
	resizable bool

	// decorated controls whether the window has a title bar and border.
	decorated bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onEvent receives every typed window event.
	onEvent func(Event)
}

var _ Window = &appWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &appWindow{
		title:     "SpaceS",
		width:     1200,
		height:    600,
		resizable: false,
		decorated: false,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *appWindow) SetEventCallback(callback func(Event)) {
	w.onEvent = callback
}

// emit forwards an event to the registered callback, if any.
func (w *appWindow) emit(ev Event) {
	if w.onEvent != nil {
		w.onEvent(ev)
	}
}

func (w *appWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *appWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *appWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *appWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *appWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		w.emit(Event{Kind: EventRedraw})

		runtime.Gosched()
	}
}

func (w *appWindow) Width() int {
	return w.width
}

func (w *appWindow) Height() int {
	return w.height
}

func (w *appWindow) LogicalSize() (float32, float32) {
	return platformLogicalSize(w)
}
