package window

import "github.com/Carmen-Shannon/spaces/common"

// WindowBuilderOption is a functional option for configuring an appWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *appWindow)

// WithTitle sets the window title displayed in the title bar.
// An empty title keeps the default.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *appWindow) {
		w.title = common.Coalesce(title, w.title)
	}
}

// WithSize sets the requested window client area size in logical coordinates.
// The actual framebuffer size may differ on high-DPI displays. A zero
// dimension keeps the default for that dimension.
//
// Parameters:
//   - width: requested width
//   - height: requested height
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *appWindow) {
		w.width = common.Coalesce(width, w.width)
		w.height = common.Coalesce(height, w.height)
	}
}

// WithResizable controls whether the user may resize the window.
//
// Parameters:
//   - resizable: true to allow resizing
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithResizable(resizable bool) WindowBuilderOption {
	return func(w *appWindow) {
		w.resizable = resizable
	}
}

// WithDecorations controls whether the window has a title bar and border.
//
// Parameters:
//   - decorated: true for a decorated window
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithDecorations(decorated bool) WindowBuilderOption {
	return func(w *appWindow) {
		w.decorated = decorated
	}
}
