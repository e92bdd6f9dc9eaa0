package window

// EventKind discriminates the typed window events delivered to the application.
type EventKind int

const (
	// EventRedraw is emitted once per message-loop iteration and requests one frame.
	EventRedraw EventKind = iota
	// EventKeyDown is a key press or repeat; Key holds the virtual key code.
	EventKeyDown
	// EventKeyUp is a key release; Key holds the virtual key code.
	EventKeyUp
	// EventChar is a translated text input character; Char holds the rune.
	EventChar
	// EventCursorMove reports the cursor position in logical window coordinates.
	EventCursorMove
	// EventMouseButton reports a button transition; Button and Pressed are set.
	EventMouseButton
	// EventScroll reports wheel movement; ScrollX and ScrollY are set.
	EventScroll
	// EventResize reports the new framebuffer size in physical pixels.
	EventResize
)

// MouseButton identifies a mouse button. Values match GLFW button indices.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Event is one typed window or input event. Only the fields relevant to
// Kind carry meaning; the rest are zero.
type Event struct {
	Kind EventKind

	// Key is the virtual key code for EventKeyDown/EventKeyUp.
	Key uint32

	// Char is the input character for EventChar.
	Char rune

	// X, Y is the cursor position in logical coordinates for EventCursorMove.
	X, Y float64

	// Button and Pressed describe an EventMouseButton transition.
	Button  MouseButton
	Pressed bool

	// ScrollX, ScrollY are the wheel deltas for EventScroll.
	ScrollX, ScrollY float32

	// Width, Height is the framebuffer size in pixels for EventResize.
	Width, Height int
}
