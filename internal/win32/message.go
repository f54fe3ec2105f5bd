package win32

import (
	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/inputs"
)

const (
	wmDestroy     = 0x0002
	wmSize        = 0x0005
	wmClose       = 0x0010
	wmEraseBkgnd  = 0x0014
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C

	xButton1 = 0x0001
	xButton2 = 0x0002

	// Bit 30 of a key message's lParam is the previous key state.
	keyPrevDownBit = 30
)

func loWord(v uintptr) uint16 { return uint16(v) }
func hiWord(v uintptr) uint16 { return uint16(v >> 16) }

// translate converts one window message into sink calls. handled is false
// when the message should also be passed to DefWindowProcW; result is the
// value returned from the window procedure otherwise.
func translate(sink events.Sink, msg uint32, wparam, lparam uintptr) (result uintptr, handled bool) {
	switch msg {
	case wmEraseBkgnd:
		// The application paints the whole client area.
		return 1, true

	case wmClose:
		sink.OnClose()
		return 0, true

	case wmDestroy:
		return 0, true

	case wmSize:
		sink.OnResize(events.ResizeEvent{
			Width:  uint32(loWord(lparam)),
			Height: uint32(hiWord(lparam)),
		})
		return 0, true

	case wmKeyDown, wmKeyUp:
		sink.OnKey(keyEvent(msg == wmKeyDown, wparam, lparam))
		return 0, true

	case wmSysKeyDown, wmSysKeyUp:
		// Reported, but left to DefWindowProcW so Alt+F4 and the system
		// menu keep working.
		sink.OnKey(keyEvent(msg == wmSysKeyDown, wparam, lparam))
		return 0, false

	case wmMouseMove:
		sink.OnMouseMove(events.MouseMoveEvent{
			X: clampCoord(int16(loWord(lparam))),
			Y: clampCoord(int16(hiWord(lparam))),
		})
		return 0, true

	case wmMouseWheel:
		if dir, ok := inputs.WheelDirectionFromDelta(int(int16(hiWord(wparam)))); ok {
			sink.OnMouseWheel(events.MouseWheelEvent{Direction: dir})
		}
		return 0, true

	case wmLButtonDown, wmLButtonUp:
		sink.OnMouseButton(events.MouseButtonEvent{Down: msg == wmLButtonDown, Button: inputs.ButtonLeft})
		return 0, true

	case wmRButtonDown, wmRButtonUp:
		sink.OnMouseButton(events.MouseButtonEvent{Down: msg == wmRButtonDown, Button: inputs.ButtonRight})
		return 0, true

	case wmMButtonDown, wmMButtonUp:
		sink.OnMouseButton(events.MouseButtonEvent{Down: msg == wmMButtonDown, Button: inputs.ButtonMiddle})
		return 0, true

	case wmXButtonDown, wmXButtonUp:
		var button inputs.MouseButton
		switch hiWord(wparam) {
		case xButton1:
			button = inputs.CustomButton(0)
		case xButton2:
			button = inputs.CustomButton(1)
		default:
			return 0, false
		}
		sink.OnMouseButton(events.MouseButtonEvent{Down: msg == wmXButtonDown, Button: button})
		// XBUTTON messages return TRUE when processed.
		return 1, true
	}

	return 0, false
}

func keyEvent(down bool, wparam, lparam uintptr) events.KeyEvent {
	var repeat uint32
	if down {
		repeat = uint32(lparam>>keyPrevDownBit) & 1
	}
	return events.KeyEvent{
		Key:    TranslateVirtualKey(wparam),
		Down:   down,
		Repeat: repeat,
	}
}

// clampCoord converts a signed client coordinate to the unsigned range.
// While the mouse is captured the pointer can move left of or above the
// client area, which reports as negative offsets; those clamp to 0.
func clampCoord(v int16) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
