package win32

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"unsafe"

	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/userdata"
	"golang.org/x/sys/windows"
)

// windowContext is the per-window state reachable from the window procedure.
type windowContext struct {
	sink events.Sink
	log  *slog.Logger
}

var (
	// contexts holds every live window's context. GWLP_USERDATA stores only
	// the registry key.
	contexts userdata.Registry[*windowContext]

	wndProcCallback = windows.NewCallback(wndProc)

	classMu       sync.Mutex
	classInstance windows.Handle
	className     *uint16
)

// ContextCount reports the number of windows whose context is attached.
func ContextCount() int {
	return contexts.Len()
}

// Window is a top-level Win32 window. It must be created, pumped and
// destroyed on one OS thread; callers lock the goroutine with
// runtime.LockOSThread.
type Window struct {
	hwnd     windows.HWND
	instance windows.Handle
	key      userdata.Key
	log      *slog.Logger
}

var _ platform.Backend = (*Window)(nil)

// registerClass registers the process-wide window class on first use. The
// class name includes the PID so that several copies of the library loaded
// into one process never collide on a class with a different WndProc.
func registerClass() (windows.Handle, *uint16, error) {
	classMu.Lock()
	defer classMu.Unlock()

	if className != nil {
		return classInstance, className, nil
	}

	var instance windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &instance); err != nil {
		return 0, nil, platform.NewError(platform.KindRegisterClass, "GetModuleHandleExW", err)
	}

	name, err := windows.UTF16PtrFromString(fmt.Sprintf("nativewin_%d", os.Getpid()))
	if err != nil {
		return 0, nil, platform.NewError(platform.KindRegisterClass, "class name", err)
	}

	cursor, _, _ := procLoadCursor.Call(0, idcArrow)
	icon, _, _ := procLoadIcon.Call(0, idiApplication)

	wc := wndClassEx{
		style:         csDblClks,
		lpfnWndProc:   wndProcCallback,
		hInstance:     instance,
		hIcon:         windows.Handle(icon),
		hCursor:       windows.Handle(cursor),
		lpszClassName: name,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))

	ret, _, callErr := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc)))
	if ret == 0 && callErr != windows.ERROR_CLASS_ALREADY_EXISTS {
		return 0, nil, platform.NewError(platform.KindRegisterClass, "RegisterClassExW", winErr("RegisterClassExW", callErr))
	}

	classInstance, className = instance, name
	return classInstance, className, nil
}

// New creates a hidden window whose client area is size at pos and attaches
// sink as its event receiver.
func New(title string, sink events.Sink, pos, size platform.Rect, opts platform.Options) (*Window, error) {
	log := opts.Log()

	instance, class, err := registerClass()
	if err != nil {
		log.Error("win32 window class registration failed", "error", err)
		return nil, err
	}

	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		log.Error("win32 invalid window title", "error", err)
		return nil, platform.NewError(platform.KindCreateWindow, "title", err)
	}

	x, y, width, height := frameRect(pos, size, log)

	hwnd, _, callErr := procCreateWindowEx.Call(
		wsExAppWindow,
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(titlePtr)),
		wsOverlappedWindow,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		0, 0,
		uintptr(instance),
		0,
	)
	if hwnd == 0 {
		err := platform.NewError(platform.KindCreateWindow, "CreateWindowExW", winErr("CreateWindowExW", callErr))
		log.Error("win32 window creation failed", "title", title, "error", err)
		return nil, err
	}

	w := &Window{
		hwnd:     windows.HWND(hwnd),
		instance: instance,
		log:      log,
	}

	w.key = contexts.Attach(&windowContext{sink: sink, log: log})
	if prev, err := setWindowLongPtr(w.hwnd, gwlpUserData, uintptr(w.key)); prev == 0 && err != nil && err != windows.Errno(0) {
		contexts.Detach(w.key)
		procDestroyWindow.Call(hwnd)
		err := platform.NewError(platform.KindCreateWindow, "SetWindowLongPtrW", winErr("SetWindowLongPtrW", err))
		log.Error("win32 attaching window context failed", "error", err)
		return nil, err
	}

	log.Debug("win32 window created",
		"hwnd", hwnd,
		"x", pos.X, "y", pos.Y,
		"width", size.X, "height", size.Y,
	)
	return w, nil
}

// frameRect grows the requested client rectangle by the frame insets of the
// window style, so that the client area ends up at pos with the given size.
func frameRect(pos, size platform.Rect, log *slog.Logger) (x, y, width, height int32) {
	r := rect{right: int32(size.X), bottom: int32(size.Y)}
	ret, _, callErr := procAdjustWindowRectEx.Call(
		uintptr(unsafe.Pointer(&r)),
		wsOverlappedWindow,
		0,
		wsExAppWindow,
	)
	if ret == 0 {
		log.Warn("win32 AdjustWindowRectEx failed; using client size as frame size", "error", callErr)
		r = rect{right: int32(size.X), bottom: int32(size.Y)}
	}
	return int32(pos.X) + r.left, int32(pos.Y) + r.top, r.right - r.left, r.bottom - r.top
}

func wndProc(hwnd windows.HWND, message, wparam, lparam uintptr) uintptr {
	key := userdata.Key(getWindowLongPtr(hwnd, gwlpUserData))
	ctx, ok := contexts.Lookup(key)
	if !ok {
		// WM_NCCREATE, WM_CREATE and friends arrive before the context is
		// attached.
		slog.Debug("win32 message before context attached", "hwnd", hwnd, "msg", message)
		return defWindowProc(hwnd, message, wparam, lparam)
	}

	if result, handled := translate(ctx.sink, uint32(message), wparam, lparam); handled {
		return result
	}
	return defWindowProc(hwnd, message, wparam, lparam)
}

func defWindowProc(hwnd windows.HWND, message, wparam, lparam uintptr) uintptr {
	ret, _, _ := procDefWindowProc.Call(uintptr(hwnd), message, wparam, lparam)
	return ret
}

// Show makes the window visible and activates it.
func (w *Window) Show() error {
	// The return value is the previous visibility, not an error.
	procShowWindow.Call(uintptr(w.hwnd), swShow)
	return nil
}

// SetTitle replaces the caption text.
func (w *Window) SetTitle(title string) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return platform.NewError(platform.KindSetTitle, "title", err)
	}
	ret, _, callErr := procSetWindowText.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(titlePtr)))
	if ret == 0 {
		return platform.NewError(platform.KindSetTitle, "SetWindowTextW", winErr("SetWindowTextW", callErr))
	}
	return nil
}

// PumpMessages removes and dispatches every message queued for the window
// without blocking.
func (w *Window) PumpMessages() error {
	var m msg
	for {
		ret, _, _ := procPeekMessage.Call(
			uintptr(unsafe.Pointer(&m)),
			uintptr(w.hwnd),
			0,
			0,
			pmRemove,
		)
		if ret == 0 {
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// InnerSize returns the client-area size.
func (w *Window) InnerSize() platform.Rect {
	var r rect
	ret, _, callErr := procGetClientRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		w.log.Warn("win32 GetClientRect failed", "hwnd", w.hwnd, "error", callErr)
		return platform.Rect{}
	}
	return platform.Rect{X: uint16(r.right - r.left), Y: uint16(r.bottom - r.top)}
}

// RawHandle returns the window and module handles.
func (w *Window) RawHandle() platform.RawWindowHandle {
	return platform.Win32Handle{HWND: uintptr(w.hwnd), HInstance: uintptr(w.instance)}
}

// Destroy detaches the window context and destroys the window. The slot is
// cleared first so that WM_DESTROY and later messages fall through to
// DefWindowProcW instead of reaching a released sink.
func (w *Window) Destroy() {
	if w.hwnd == 0 {
		return
	}
	setWindowLongPtr(w.hwnd, gwlpUserData, 0)
	if _, err := contexts.Detach(w.key); err != nil {
		w.log.Debug("win32 window context already detached", "hwnd", w.hwnd, "error", err)
	}
	if ret, _, callErr := procDestroyWindow.Call(uintptr(w.hwnd)); ret == 0 {
		w.log.Debug("win32 DestroyWindow failed", "hwnd", w.hwnd, "error", callErr)
	}
	w.hwnd = 0
}

var (
	monitorMu       sync.Mutex
	monitorResults  []platform.Monitor
	monitorCallback = windows.NewCallback(monitorEnumProc)
)

func monitorEnumProc(hmon, hdc uintptr, clip *rect, data uintptr) uintptr {
	var mi monitorInfoEx
	mi.cbSize = uint32(unsafe.Sizeof(mi))
	if ret, _, _ := procGetMonitorInfo.Call(hmon, uintptr(unsafe.Pointer(&mi))); ret == 0 {
		return 1
	}
	monitorResults = append(monitorResults, platform.Monitor{
		Name:     windows.UTF16ToString(mi.szDevice[:]),
		Primary:  mi.dwFlags&monitorPrimary != 0,
		Bounds:   rectBounds(mi.rcMonitor),
		WorkArea: rectBounds(mi.rcWork),
	})
	return 1
}

func rectBounds(r rect) platform.Bounds {
	return platform.Bounds{
		X:      int(r.left),
		Y:      int(r.top),
		Width:  int(r.right - r.left),
		Height: int(r.bottom - r.top),
	}
}

// Monitors lists the display monitors attached to the desktop. The display
// option has no meaning on Win32 and is ignored.
func Monitors(opts platform.Options) ([]platform.Monitor, error) {
	monitorMu.Lock()
	defer monitorMu.Unlock()

	monitorResults = nil
	ret, _, callErr := procEnumDisplayMonitor.Call(0, 0, monitorCallback, 0)
	if ret == 0 {
		return nil, platform.NewError(platform.KindConnect, "EnumDisplayMonitors", winErr("EnumDisplayMonitors", callErr))
	}
	out := monitorResults
	monitorResults = nil
	return out, nil
}
