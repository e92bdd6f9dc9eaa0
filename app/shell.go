package app

import (
	"log/slog"

	"github.com/Carmen-Shannon/spaces/common"
	"github.com/Carmen-Shannon/spaces/engine/graphics"
	"github.com/Carmen-Shannon/spaces/engine/overlay"
	"github.com/Carmen-Shannon/spaces/engine/window"
)

// ShellState is the lifecycle state of the application shell.
type ShellState int

const (
	// ShellCreated means the shell is wired up but the event loop has not
	// started.
	ShellCreated ShellState = iota
	// ShellRunning means the event loop is pumping and frames render on
	// redraw events.
	ShellRunning
	// ShellExiting means shutdown has begun; no further frames render.
	ShellExiting
)

// Shell routes window events to the UI and the renderer and owns the
// application lifecycle. Every event reaches the compositor before any
// shell-level reaction so UI input state never lags the frame that
// consumes it.
type Shell interface {
	// OnEvent handles one window event. Called by the window layer for
	// every event; also callable directly.
	//
	// Parameters:
	//   - ev: the window event
	OnEvent(ev window.Event)

	// Run pumps the event loop until the window closes or exit is
	// requested. Blocks the calling goroutine.
	Run()

	// RequestExit begins shutdown: the shell stops rendering and asks the
	// window to close.
	RequestExit()

	// State returns the current lifecycle state.
	//
	// Returns:
	//   - ShellState: the current state
	State() ShellState
}

// shell is the implementation of Shell.
type shell struct {
	win    window.Window
	ctx    graphics.Context
	comp   overlay.Compositor
	driver FrameDriver
	log    *slog.Logger
	state  ShellState
}

var _ Shell = &shell{}

// NewShell wires the window's event stream into the compositor and the
// frame driver.
//
// Parameters:
//   - win: the application window
//   - ctx: the graphics context, reconfigured on resize
//   - comp: the compositor receiving every event
//   - driver: the frame driver invoked on redraw
//   - log: the logger lifecycle transitions are reported to
//
// Returns:
//   - Shell: the configured shell in the created state
func NewShell(win window.Window, ctx graphics.Context, comp overlay.Compositor, driver FrameDriver, log *slog.Logger) Shell {
	s := &shell{
		win:    win,
		ctx:    ctx,
		comp:   comp,
		driver: driver,
		log:    log,
		state:  ShellCreated,
	}
	win.SetEventCallback(s.OnEvent)
	return s
}

func (s *shell) OnEvent(ev window.Event) {
	// The compositor sees every event first, redraws included.
	s.comp.ProcessEvent(ev)

	switch ev.Kind {
	case window.EventKeyDown:
		if ev.Key == common.KeyEsc {
			s.log.Info("escape pressed, exiting")
			s.RequestExit()
		}
	case window.EventResize:
		s.ctx.Reconfigure(ev.Width, ev.Height)
	case window.EventRedraw:
		if s.state == ShellRunning {
			s.driver.RenderFrame()
		}
	}
}

func (s *shell) Run() {
	s.state = ShellRunning
	s.log.Info("entering event loop")

	for s.win.IsRunning() && s.state == ShellRunning {
		s.win.ProcessMessages()
	}

	s.state = ShellExiting
	s.log.Info("event loop stopped")
}

func (s *shell) RequestExit() {
	s.state = ShellExiting
	s.win.RequestClose()
}

func (s *shell) State() ShellState {
	return s.state
}
