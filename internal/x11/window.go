package x11

import (
	"log/slog"
	"os"

	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// WindowClass is the WM_CLASS class name set on every window.
const WindowClass = "Nativewin"

const eventMask = xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange

// eventSource is the non-blocking half of an X connection's event queue.
type eventSource interface {
	PollForEvent() (xgb.Event, xgb.Error)
}

// Window is a top-level X11 window with its own server connection. All
// methods must be called from the goroutine that created it.
type Window struct {
	conn *Connection
	id   xproto.Window
	src  eventSource
	sink events.Sink
	log  *slog.Logger

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom

	width  uint16
	height uint16

	// One event of lookahead, used to fold auto-repeat release/press pairs.
	pending    xgb.Event
	pendingErr xgb.Error
	hasPending bool

	down [256]bool
}

var _ platform.Backend = (*Window)(nil)

// New opens a connection, creates an unmapped top-level window at pos with
// a client area of size, and installs sink as its event receiver.
func New(title string, sink events.Sink, pos, size platform.Rect, opts platform.Options) (*Window, error) {
	log := opts.Log()

	conn, err := NewConnection(opts.Display)
	if err != nil {
		log.Error("x11 connect failed", "display", opts.Display, "error", err)
		return nil, platform.NewError(platform.KindConnect, "connect "+displayName(opts.Display), err)
	}
	return open(conn, title, sink, pos, size, log)
}

// open creates the window on conn and takes ownership of conn: it is closed
// here on failure, or by Destroy on success.
func open(conn *Connection, title string, sink events.Sink, pos, size platform.Rect, log *slog.Logger) (*Window, error) {
	w, err := create(conn, title, sink, pos, size, log)
	if err != nil {
		log.Error("x11 window creation failed", "title", title, "error", err)
		conn.Close()
		return nil, err
	}

	log.Debug("x11 window created",
		"window", w.id,
		"display", displayName(conn.Display),
		"x", pos.X, "y", pos.Y,
		"width", size.X, "height", size.Y,
	)
	return w, nil
}

func create(conn *Connection, title string, sink events.Sink, pos, size platform.Rect, log *slog.Logger) (*Window, error) {
	xu := conn.XUtil

	xwin, err := xwindow.Generate(xu)
	if err != nil {
		return nil, platform.NewError(platform.KindID, "generate window id", err)
	}

	protocols, err := xprop.Atm(xu, "WM_PROTOCOLS")
	if err != nil {
		return nil, platform.NewError(platform.KindReply, "intern WM_PROTOCOLS", err)
	}
	deleteWindow, err := xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		return nil, platform.NewError(platform.KindReply, "intern WM_DELETE_WINDOW", err)
	}

	err = xwin.CreateChecked(conn.Root,
		int(pos.X), int(pos.Y), int(size.X), int(size.Y),
		xproto.CwBackPixel|xproto.CwEventMask,
		xu.Screen().BlackPixel, eventMask)
	if err != nil {
		return nil, platform.NewError(platform.KindCreateWindow, "create window", err)
	}

	w := &Window{
		conn:           conn,
		id:             xwin.Id,
		src:            conn.Conn(),
		sink:           sink,
		log:            log,
		wmProtocols:    protocols,
		wmDeleteWindow: deleteWindow,
		width:          size.X,
		height:         size.Y,
	}

	if err := w.setProperties(title); err != nil {
		w.abandon()
		return nil, err
	}
	return w, nil
}

// abandon releases a half-initialized X window. The connection is left
// open for the caller to close.
func (w *Window) abandon() {
	xproto.DestroyWindow(w.conn.Conn(), w.id)
}

func (w *Window) setProperties(title string) error {
	xu := w.conn.XUtil

	if err := w.SetTitle(title); err != nil {
		return err
	}
	if err := icccm.WmProtocolsSet(xu, w.id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return platform.NewError(platform.KindReply, "set WM_PROTOCOLS", err)
	}
	if err := icccm.WmClassSet(xu, w.id, &icccm.WmClass{Instance: "nativewin", Class: WindowClass}); err != nil {
		return platform.NewError(platform.KindReply, "set WM_CLASS", err)
	}
	if err := ewmh.WmPidSet(xu, w.id, uint(os.Getpid())); err != nil {
		// Informational for the window manager; not fatal.
		w.log.Debug("x11 set _NET_WM_PID failed", "window", w.id, "error", err)
	}
	return nil
}

// Show maps the window.
func (w *Window) Show() error {
	if err := xproto.MapWindowChecked(w.conn.Conn(), w.id).Check(); err != nil {
		return platform.NewError(platform.KindShowWindow, "map window", err)
	}
	return nil
}

// SetTitle sets both the ICCCM and the EWMH (UTF-8) window name.
func (w *Window) SetTitle(title string) error {
	xu := w.conn.XUtil
	if err := icccm.WmNameSet(xu, w.id, title); err != nil {
		return platform.NewError(platform.KindSetTitle, "set WM_NAME", err)
	}
	if err := ewmh.WmNameSet(xu, w.id, title); err != nil {
		return platform.NewError(platform.KindSetTitle, "set _NET_WM_NAME", err)
	}
	return nil
}

// InnerSize queries the server for the current client-area size. On failure
// the last size seen in a ConfigureNotify is returned.
func (w *Window) InnerSize() platform.Rect {
	geom, err := xproto.GetGeometry(w.conn.Conn(), xproto.Drawable(w.id)).Reply()
	if err != nil {
		w.log.Warn("x11 get geometry failed", "window", w.id, "error", err)
		return platform.Rect{X: w.width, Y: w.height}
	}
	return platform.Rect{X: geom.Width, Y: geom.Height}
}

// RawHandle exposes the connection and window id for graphics interop.
func (w *Window) RawHandle() platform.RawWindowHandle {
	return platform.X11Handle{
		Conn:    w.conn.Conn(),
		Window:  uint32(w.id),
		Display: w.conn.Display,
	}
}

// Destroy destroys the window and closes its connection. Failures are logged
// and otherwise ignored.
func (w *Window) Destroy() {
	w.destroyWindow()
	w.sink = nil
	w.pending, w.pendingErr, w.hasPending = nil, nil, false
}

func (w *Window) destroyWindow() {
	if w.conn == nil {
		return
	}
	if err := xproto.DestroyWindowChecked(w.conn.Conn(), w.id).Check(); err != nil {
		w.log.Debug("x11 destroy window failed", "window", w.id, "error", err)
	}
	w.conn.Close()
	w.conn = nil
}

func displayName(display string) string {
	if display == "" {
		if env := os.Getenv("DISPLAY"); env != "" {
			return env
		}
		return "$DISPLAY"
	}
	return display
}
