// Package platform defines the contract every native window backend
// implements and the platform-neutral values they exchange with the public
// Window wrapper.
package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
)

// Rect is an unsigned (x, y) pair used both for positions and sizes.
type Rect struct {
	X uint16
	Y uint16
}

// RawWindowHandle exposes the native identifiers graphics APIs need to bind
// to a window. It is either a Win32Handle or an X11Handle.
type RawWindowHandle interface {
	rawWindowHandle()
}

// Win32Handle identifies a Win32 window and the module that owns its class.
type Win32Handle struct {
	HWND      uintptr
	HInstance uintptr
}

// X11Handle identifies an X11 window on an xgb connection. Display is the
// display name the connection was opened with, for consumers that need to
// open their own connection to the same server.
type X11Handle struct {
	Conn    *xgb.Conn
	Window  uint32
	Display string
}

func (Win32Handle) rawWindowHandle() {}
func (X11Handle) rawWindowHandle()   {}

// Options carries backend-independent construction settings.
type Options struct {
	// Logger receives backend diagnostics. Nil means slog.Default().
	Logger *slog.Logger
	// Display selects the X11 display. Empty means $DISPLAY. Ignored on
	// Win32.
	Display string
}

// Log returns the configured logger or the process default.
func (o Options) Log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Backend abstracts native window operations across platforms.
type Backend interface {
	Show() error
	SetTitle(title string) error
	Destroy()
	PumpMessages() error
	InnerSize() Rect
	RawHandle() RawWindowHandle
}

// Kind classifies backend failures by the step that produced them.
type Kind int

const (
	KindUnsupported Kind = iota

	// Win32
	KindRegisterClass
	KindCreateWindow
	KindShowWindow
	KindSetTitle

	// X11
	KindConnect
	KindID
	KindReply
	KindConnection
)

var kindNames = map[Kind]string{
	KindUnsupported:   "unsupported platform",
	KindRegisterClass: "failed to register window class",
	KindCreateWindow:  "failed to create window",
	KindShowWindow:    "failed to show window",
	KindSetTitle:      "failed to set title",
	KindConnect:       "failed to connect to X server",
	KindID:            "failed to generate X resource id",
	KindReply:         "X request failed",
	KindConnection:    "X connection error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type returned by every backend operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError wraps err with kind and the name of the native call that failed.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can test against the
// per-kind sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Per-kind sentinels for errors.Is.
var (
	ErrUnsupported   = &Error{Kind: KindUnsupported}
	ErrRegisterClass = &Error{Kind: KindRegisterClass}
	ErrCreateWindow  = &Error{Kind: KindCreateWindow}
	ErrShowWindow    = &Error{Kind: KindShowWindow}
	ErrSetTitle      = &Error{Kind: KindSetTitle}
	ErrConnect       = &Error{Kind: KindConnect}
	ErrID            = &Error{Kind: KindID}
	ErrReply         = &Error{Kind: KindReply}
	ErrConnection    = &Error{Kind: KindConnection}
)
