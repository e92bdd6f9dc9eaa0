package overlay

import (
	"github.com/Carmen-Shannon/spaces/common"
	"github.com/Carmen-Shannon/spaces/engine/window"
	"github.com/inkyblackness/imgui-go/v4"
)

// setKeyMapping wires navigation and text-editing keys to the platform
// key codes the window layer reports.
func setKeyMapping(io imgui.IO) {
	io.KeyMap(imgui.KeyTab, int(common.KeyTab))
	io.KeyMap(imgui.KeyLeftArrow, int(common.KeyLeft))
	io.KeyMap(imgui.KeyRightArrow, int(common.KeyRight))
	io.KeyMap(imgui.KeyUpArrow, int(common.KeyUp))
	io.KeyMap(imgui.KeyDownArrow, int(common.KeyDown))
	io.KeyMap(imgui.KeyPageUp, int(common.KeyPageUp))
	io.KeyMap(imgui.KeyPageDown, int(common.KeyPageDown))
	io.KeyMap(imgui.KeyHome, int(common.KeyHome))
	io.KeyMap(imgui.KeyEnd, int(common.KeyEnd))
	io.KeyMap(imgui.KeyInsert, int(common.KeyInsert))
	io.KeyMap(imgui.KeyDelete, int(common.KeyDelete))
	io.KeyMap(imgui.KeyBackspace, int(common.KeyBackspace))
	io.KeyMap(imgui.KeySpace, int(common.KeySpace))
	io.KeyMap(imgui.KeyEnter, int(common.KeyEnter))
	io.KeyMap(imgui.KeyEscape, int(common.KeyEsc))
	io.KeyMap(imgui.KeyA, int(common.KeyA))
	io.KeyMap(imgui.KeyC, int(common.KeyC))
	io.KeyMap(imgui.KeyV, int(common.KeyV))
	io.KeyMap(imgui.KeyX, int(common.KeyX))
	io.KeyMap(imgui.KeyY, int(common.KeyY))
	io.KeyMap(imgui.KeyZ, int(common.KeyZ))
}

// ProcessEvent folds one window event into the cumulative I/O state.
// Events for kinds the UI does not consume pass through untouched.
func (c *compositor) ProcessEvent(ev window.Event) {
	switch ev.Kind {
	case window.EventKeyDown:
		c.io.KeyPress(int(ev.Key))
		c.updateKeyModifiers()
	case window.EventKeyUp:
		c.io.KeyRelease(int(ev.Key))
		c.updateKeyModifiers()
	case window.EventChar:
		c.io.AddInputCharacters(string(ev.Char))
	case window.EventCursorMove:
		c.io.SetMousePosition(imgui.Vec2{X: float32(ev.X), Y: float32(ev.Y)})
	case window.EventMouseButton:
		c.io.SetMouseButtonDown(int(ev.Button), ev.Pressed)
	case window.EventScroll:
		c.io.AddMouseWheelDelta(ev.ScrollX, ev.ScrollY)
	case window.EventResize:
		if ev.Width > 0 && ev.Height > 0 {
			c.fbWidth = uint32(ev.Width)
			c.fbHeight = uint32(ev.Height)
			// The scale is a display property; the logical layout size
			// follows the framebuffer.
			c.displayWidth = float32(ev.Width) / c.fbScale
			c.displayHeight = float32(ev.Height) / c.fbScale
		}
	}
}

// Modifier key state is derived from the left/right key pairs rather
// than event modifier bits, which differ across platforms.
func (c *compositor) updateKeyModifiers() {
	c.io.KeyShift(int(common.KeyLeftShift), int(common.KeyRightShift))
	c.io.KeyCtrl(int(common.KeyLeftControl), int(common.KeyRightControl))
	c.io.KeyAlt(int(common.KeyLeftAlt), int(common.KeyRightAlt))
	c.io.KeySuper(int(common.KeyLeftSuper), int(common.KeyRightSuper))
}
