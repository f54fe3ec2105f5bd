package x11

import (
	"context"
	"log/slog"

	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// PumpMessages drains every event currently queued on the connection and
// dispatches each to the sink. It never blocks waiting for new events.
func (w *Window) PumpMessages() error {
	for {
		ev, xerr := w.next()
		if xerr != nil {
			return platform.NewError(platform.KindReply, "poll event", xerr)
		}
		if ev == nil {
			return nil
		}
		w.dispatch(ev)
	}
}

func (w *Window) next() (xgb.Event, xgb.Error) {
	if w.hasPending {
		ev, xerr := w.pending, w.pendingErr
		w.pending, w.pendingErr, w.hasPending = nil, nil, false
		return ev, xerr
	}
	return w.src.PollForEvent()
}

func (w *Window) peek() (xgb.Event, xgb.Error) {
	if !w.hasPending {
		w.pending, w.pendingErr = w.src.PollForEvent()
		w.hasPending = true
	}
	return w.pending, w.pendingErr
}

func (w *Window) dispatch(ev xgb.Event) {
	if w.sink == nil {
		return
	}

	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		repeat := uint32(0)
		if w.down[e.Detail] {
			repeat = 1
		}
		w.down[e.Detail] = true
		w.emitKey(e.Detail, e.State, true, repeat)

	case xproto.KeyReleaseEvent:
		// With server auto-repeat a held key produces release/press pairs
		// that share a timestamp. Fold them into one repeated press.
		if next, _ := w.peek(); next != nil {
			if press, ok := next.(xproto.KeyPressEvent); ok && press.Detail == e.Detail && press.Time == e.Time {
				w.next()
				w.down[e.Detail] = true
				w.emitKey(press.Detail, press.State, true, 1)
				return
			}
		}
		w.down[e.Detail] = false
		w.emitKey(e.Detail, e.State, false, 0)

	case xproto.ButtonPressEvent:
		if dir, ok := wheelDirection(e.Detail); ok {
			w.sink.OnMouseWheel(events.MouseWheelEvent{Direction: dir})
			return
		}
		if button, ok := translateButton(e.Detail); ok {
			w.sink.OnMouseButton(events.MouseButtonEvent{Down: true, Button: button})
		}

	case xproto.ButtonReleaseEvent:
		// Wheel buttons report a release for every step; only presses count.
		if button, ok := translateButton(e.Detail); ok {
			w.sink.OnMouseButton(events.MouseButtonEvent{Down: false, Button: button})
		}

	case xproto.MotionNotifyEvent:
		w.sink.OnMouseMove(events.MouseMoveEvent{
			X: clampCoord(e.EventX),
			Y: clampCoord(e.EventY),
		})

	case xproto.ConfigureNotifyEvent:
		if e.Window != w.id {
			return
		}
		if e.Width == w.width && e.Height == w.height {
			return
		}
		w.width, w.height = e.Width, e.Height
		w.sink.OnResize(events.ResizeEvent{Width: uint32(e.Width), Height: uint32(e.Height)})

	case xproto.ClientMessageEvent:
		if e.Type != w.wmProtocols || e.Format != 32 || len(e.Data.Data32) == 0 {
			return
		}
		if xproto.Atom(e.Data.Data32[0]) == w.wmDeleteWindow {
			w.sink.OnClose()
		}

	case xproto.FocusOutEvent:
		// Releases that happen while another client has focus are never
		// delivered here, so forget every held key.
		if e.Event == w.id {
			w.down = [256]bool{}
		}

	case xproto.MappingNotifyEvent:
		if e.Request == xproto.MappingKeyboard || e.Request == xproto.MappingModifier {
			w.refreshKeymap()
		}

	default:
		w.log.Debug("x11 event ignored", "event", ev.String())
	}
}

func (w *Window) emitKey(code xproto.Keycode, state uint16, down bool, repeat uint32) {
	key := TranslateKeycode(code)
	if w.conn != nil && w.conn.XUtil.Keymap != nil && w.log.Enabled(context.Background(), slog.LevelDebug) {
		w.log.Debug("x11 key",
			"keycode", code,
			"keysym", keybind.LookupString(w.conn.XUtil, state, code),
			"key", key.String(),
			"down", down,
		)
	}
	w.sink.OnKey(events.KeyEvent{Key: key, Down: down, Repeat: repeat})
}

func (w *Window) refreshKeymap() {
	if w.conn == nil {
		return
	}
	keyMap, modMap := keybind.MapsGet(w.conn.XUtil)
	keybind.KeyMapSet(w.conn.XUtil, keyMap)
	keybind.ModMapSet(w.conn.XUtil, modMap)
	w.log.Debug("x11 keyboard mapping refreshed", "window", w.id)
}

// clampCoord converts a signed window-relative coordinate to the unsigned
// range. The pointer lies left of or above the window during a grab, which
// reports as negative offsets; those clamp to 0.
func clampCoord(v int16) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
