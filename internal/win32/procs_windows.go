package win32

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	csDblClks = 0x0008

	wsOverlappedWindow = 0x00CF0000
	wsExAppWindow      = 0x00040000

	swShow   = 5
	pmRemove = 0x0001

	idcArrow       = 32512
	idiApplication = 32512
	monitorPrimary = 0x00000001
	ccDeviceName   = 32
	gwlpUserData   = -21
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

type point struct {
	x int32
	y int32
}

type msg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

type rect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

type monitorInfoEx struct {
	cbSize    uint32
	rcMonitor rect
	rcWork    rect
	dwFlags   uint32
	szDevice  [ccDeviceName]uint16
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassEx    = user32.NewProc("RegisterClassExW")
	procCreateWindowEx     = user32.NewProc("CreateWindowExW")
	procDefWindowProc      = user32.NewProc("DefWindowProcW")
	procDestroyWindow      = user32.NewProc("DestroyWindow")
	procShowWindow         = user32.NewProc("ShowWindow")
	procSetWindowText      = user32.NewProc("SetWindowTextW")
	procGetClientRect      = user32.NewProc("GetClientRect")
	procAdjustWindowRectEx = user32.NewProc("AdjustWindowRectEx")
	procPeekMessage        = user32.NewProc("PeekMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessage    = user32.NewProc("DispatchMessageW")
	procSetWindowLongPtr   = user32.NewProc("SetWindowLongPtrW")
	procGetWindowLongPtr   = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLong      = user32.NewProc("SetWindowLongW")
	procGetWindowLong      = user32.NewProc("GetWindowLongW")
	procLoadCursor         = user32.NewProc("LoadCursorW")
	procLoadIcon           = user32.NewProc("LoadIconW")
	procEnumDisplayMonitor = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfo     = user32.NewProc("GetMonitorInfoW")

	procSetLastError = kernel32.NewProc("SetLastError")
)

func clearLastError() {
	procSetLastError.Call(0)
}

// winErr wraps the error captured from a LazyProc.Call. Call always returns
// a non-nil error; a zero Errno means the API did not set one.
func winErr(op string, callErr error) error {
	if errno, ok := callErr.(windows.Errno); ok && errno == 0 {
		return fmt.Errorf("%s failed", op)
	}
	return fmt.Errorf("%s failed: %w", op, callErr)
}

// 32-bit Windows only exports the non-Ptr variants of the window long
// accessors.
func setWindowLongPtr(hwnd windows.HWND, index int32, value uintptr) (uintptr, error) {
	proc := procSetWindowLongPtr
	if proc.Find() != nil {
		proc = procSetWindowLong
	}
	clearLastError()
	prev, _, err := proc.Call(uintptr(hwnd), uintptr(index), value)
	return prev, err
}

func getWindowLongPtr(hwnd windows.HWND, index int32) uintptr {
	proc := procGetWindowLongPtr
	if proc.Find() != nil {
		proc = procGetWindowLong
	}
	v, _, _ := proc.Call(uintptr(hwnd), uintptr(index))
	return v
}
