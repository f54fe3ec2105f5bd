// Package nativewin opens native top-level windows and reports their input
// through a platform-neutral event vocabulary.
//
// A Window is owned by the goroutine that created it. On Windows that
// goroutine must be locked to its OS thread (runtime.LockOSThread) for the
// whole lifetime of the window, because Win32 delivers a window's messages
// only to the thread that created it.
package nativewin

import (
	"errors"

	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/platform"
)

type (
	// Rect is an unsigned (x, y) pair used for positions and sizes.
	Rect = platform.Rect
	// RawWindowHandle is a Win32Handle or an X11Handle.
	RawWindowHandle = platform.RawWindowHandle
	Win32Handle     = platform.Win32Handle
	X11Handle       = platform.X11Handle
	// Options tunes window creation. The zero value is valid.
	Options = platform.Options
	// Error is the error type of every backend failure.
	Error   = platform.Error
	Kind    = platform.Kind
	Monitor = platform.Monitor
	Bounds  = platform.Bounds
)

const (
	KindUnsupported   = platform.KindUnsupported
	KindRegisterClass = platform.KindRegisterClass
	KindCreateWindow  = platform.KindCreateWindow
	KindShowWindow    = platform.KindShowWindow
	KindSetTitle      = platform.KindSetTitle
	KindConnect       = platform.KindConnect
	KindID            = platform.KindID
	KindReply         = platform.KindReply
	KindConnection    = platform.KindConnection
)

var (
	ErrUnsupported   = platform.ErrUnsupported
	ErrRegisterClass = platform.ErrRegisterClass
	ErrCreateWindow  = platform.ErrCreateWindow
	ErrShowWindow    = platform.ErrShowWindow
	ErrSetTitle      = platform.ErrSetTitle
	ErrConnect       = platform.ErrConnect
	ErrID            = platform.ErrID
	ErrReply         = platform.ErrReply
	ErrConnection    = platform.ErrConnection

	// ErrDestroyed is returned by operations on a destroyed window.
	ErrDestroyed = errors.New("nativewin: window destroyed")
)

// State is the lifecycle state of a Window.
type State int

const (
	StateCreated State = iota
	StateShown
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateShown:
		return "shown"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// openBackend is replaced in tests.
var openBackend = newBackend

// Window is a native top-level window.
type Window struct {
	backend platform.Backend
	state   State
}

// Create opens a hidden window titled title whose client area is size at
// position pos. Every event the window receives is delivered to sink from
// inside PumpMessages.
func Create(title string, sink events.Sink, pos, size Rect) (*Window, error) {
	return CreateWithOptions(title, sink, pos, size, Options{})
}

// CreateWithOptions is Create with explicit options.
func CreateWithOptions(title string, sink events.Sink, pos, size Rect, opts Options) (*Window, error) {
	if sink == nil {
		return nil, platform.NewError(platform.KindCreateWindow, "nil event sink", nil)
	}
	backend, err := openBackend(title, sink, pos, size, opts)
	if err != nil {
		return nil, err
	}
	return &Window{backend: backend, state: StateCreated}, nil
}

// State returns the lifecycle state.
func (w *Window) State() State {
	return w.state
}

// Show makes the window visible. Showing a shown window does nothing.
func (w *Window) Show() error {
	switch w.state {
	case StateDestroyed:
		return ErrDestroyed
	case StateShown:
		return nil
	}
	if err := w.backend.Show(); err != nil {
		return err
	}
	w.state = StateShown
	return nil
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) error {
	if w.state == StateDestroyed {
		return ErrDestroyed
	}
	return w.backend.SetTitle(title)
}

// PumpMessages dispatches every pending native event to the sink and
// returns without waiting for more.
func (w *Window) PumpMessages() error {
	if w.state == StateDestroyed {
		return ErrDestroyed
	}
	return w.backend.PumpMessages()
}

// InnerSize returns the client-area size, or the zero Rect once destroyed.
func (w *Window) InnerSize() Rect {
	if w.state == StateDestroyed {
		return Rect{}
	}
	return w.backend.InnerSize()
}

// RawHandle returns the native handle, or nil once destroyed. The handle is
// only valid until Destroy.
func (w *Window) RawHandle() RawWindowHandle {
	if w.state == StateDestroyed {
		return nil
	}
	return w.backend.RawHandle()
}

// Destroy releases the native window. It is safe to call more than once.
// Close requests never destroy the window on their own; call Destroy from
// the sink's OnClose handler or after PumpMessages returns.
func (w *Window) Destroy() {
	if w.state == StateDestroyed {
		return
	}
	w.backend.Destroy()
	w.backend = nil
	w.state = StateDestroyed
}

// Monitors lists the active monitors of the display named in opts.
func Monitors(opts Options) ([]Monitor, error) {
	return listMonitors(opts)
}

// PrimaryMonitor returns the primary monitor from a Monitors result, or the
// first one when none is flagged.
func PrimaryMonitor(monitors []Monitor) (Monitor, bool) {
	return platform.PrimaryMonitor(monitors)
}

// MonitorAt returns the monitor whose bounds contain the virtual-screen
// point x, y.
func MonitorAt(monitors []Monitor, x, y int) (Monitor, bool) {
	return platform.MonitorAt(monitors, x, y)
}
