package overlay

// CompositorBuilderOption is a function which modifies a compositor
// during construction.
type CompositorBuilderOption func(*compositor)

// WithDisplaySize sets the logical display size the UI lays out against.
//
// Parameters:
//   - width: logical display width
//   - height: logical display height
//
// Returns:
//   - CompositorBuilderOption: the option to apply
func WithDisplaySize(width, height float32) CompositorBuilderOption {
	return func(c *compositor) {
		if width > 0 && height > 0 {
			c.displayWidth = width
			c.displayHeight = height
		}
	}
}

// WithFramebufferScale sets the logical-to-physical pixel scale used for
// clip rectangles on high-DPI displays.
//
// Parameters:
//   - scale: framebuffer pixels per logical unit
//
// Returns:
//   - CompositorBuilderOption: the option to apply
func WithFramebufferScale(scale float32) CompositorBuilderOption {
	return func(c *compositor) {
		if scale > 0 {
			c.fbScale = scale
		}
	}
}
