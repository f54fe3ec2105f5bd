package x11

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const (
	testWindow       xproto.Window = 0x400001
	testProtocols    xproto.Atom   = 300
	testDeleteWindow xproto.Atom   = 301
)

// fakeSource replays a fixed queue and then reports it empty.
type fakeSource struct {
	queue []any
	polls int
}

func (f *fakeSource) PollForEvent() (xgb.Event, xgb.Error) {
	f.polls++
	if len(f.queue) == 0 {
		return nil, nil
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	switch v := item.(type) {
	case xgb.Event:
		return v, nil
	case xgb.Error:
		return nil, v
	}
	return nil, nil
}

func newTestWindow(rec *events.Recorder, queue ...any) (*Window, *fakeSource) {
	src := &fakeSource{queue: queue}
	w := &Window{
		id:             testWindow,
		src:            src,
		sink:           rec,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		wmProtocols:    testProtocols,
		wmDeleteWindow: testDeleteWindow,
		width:          640,
		height:         480,
	}
	return w, src
}

func deleteMessage() xproto.ClientMessageEvent {
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: testWindow,
		Type:   testProtocols,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(testDeleteWindow), 0, 0, 0, 0}),
	}
}

func pump(t *testing.T, w *Window) {
	t.Helper()
	if err := w.PumpMessages(); err != nil {
		t.Fatalf("PumpMessages: %v", err)
	}
}

func assertEvents(t *testing.T, rec *events.Recorder, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	got := rec.Events
	if got == nil {
		got = []string{}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %q, want %q", got, want)
	}
}

func TestPumpEmptyQueue(t *testing.T) {
	rec := &events.Recorder{}
	w, src := newTestWindow(rec)

	pump(t, w)
	assertEvents(t, rec)
	if src.polls != 1 {
		t.Fatalf("polls = %d, want 1", src.polls)
	}
}

func TestPumpCloseRequest(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec, deleteMessage())

	pump(t, w)
	assertEvents(t, rec, "close")
}

func TestPumpCloseRequestKeepsDraining(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		deleteMessage(),
		xproto.MotionNotifyEvent{EventX: 3, EventY: 4},
	)

	pump(t, w)
	assertEvents(t, rec, "close", "move 3,4")
}

func TestPumpIgnoresForeignClientMessages(t *testing.T) {
	rec := &events.Recorder{}
	other := deleteMessage()
	other.Type = 999
	short := deleteMessage()
	short.Format = 8
	w, _ := newTestWindow(rec, other, short)

	pump(t, w)
	assertEvents(t, rec)
}

func TestPumpResize(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec, xproto.ConfigureNotifyEvent{
		Event:  testWindow,
		Window: testWindow,
		Width:  800,
		Height: 600,
	})

	pump(t, w)
	assertEvents(t, rec, "resize 800x600")
}

func TestPumpConfigureWithoutSizeChange(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.ConfigureNotifyEvent{Window: testWindow, X: 50, Y: 60, Width: 640, Height: 480},
		xproto.ConfigureNotifyEvent{Window: testWindow, Width: 800, Height: 600},
		xproto.ConfigureNotifyEvent{Window: testWindow, X: 10, Width: 800, Height: 600},
	)

	pump(t, w)
	assertEvents(t, rec, "resize 800x600")
}

func TestPumpKeys(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.KeyPressEvent{Detail: 38, Time: 100},
		xproto.KeyReleaseEvent{Detail: 38, Time: 150},
		xproto.KeyPressEvent{Detail: 255, Time: 200},
	)

	pump(t, w)
	assertEvents(t, rec,
		"key A down=true repeat=0",
		"key A down=false repeat=0",
		"key Unidentified down=true repeat=0",
	)
}

func TestPumpFoldsAutoRepeat(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.KeyPressEvent{Detail: 9, Time: 100},
		xproto.KeyReleaseEvent{Detail: 9, Time: 600},
		xproto.KeyPressEvent{Detail: 9, Time: 600},
		xproto.KeyReleaseEvent{Detail: 9, Time: 630},
		xproto.KeyPressEvent{Detail: 9, Time: 630},
		xproto.KeyReleaseEvent{Detail: 9, Time: 700},
	)

	pump(t, w)
	assertEvents(t, rec,
		"key Esc down=true repeat=0",
		"key Esc down=true repeat=1",
		"key Esc down=true repeat=1",
		"key Esc down=false repeat=0",
	)
}

func TestPumpFocusOutForgetsHeldKeys(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.KeyPressEvent{Detail: 38, Time: 100},
		// The release happens while another client has focus.
		xproto.FocusOutEvent{Event: testWindow},
		xproto.FocusInEvent{Event: testWindow},
		xproto.KeyPressEvent{Detail: 38, Time: 9000},
		xproto.KeyPressEvent{Detail: 38, Time: 9030},
	)

	pump(t, w)
	assertEvents(t, rec,
		"key A down=true repeat=0",
		"key A down=true repeat=0",
		"key A down=true repeat=1",
	)
}

func TestPumpFocusOutOfOtherWindowKeepsHeldKeys(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.KeyPressEvent{Detail: 38, Time: 100},
		xproto.FocusOutEvent{Event: testWindow + 1},
		xproto.KeyPressEvent{Detail: 38, Time: 130},
	)

	pump(t, w)
	assertEvents(t, rec,
		"key A down=true repeat=0",
		"key A down=true repeat=1",
	)
}

func TestPumpReleaseThenDifferentPress(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.KeyPressEvent{Detail: 24, Time: 10},
		xproto.KeyReleaseEvent{Detail: 24, Time: 20},
		xproto.KeyPressEvent{Detail: 25, Time: 20},
	)

	pump(t, w)
	assertEvents(t, rec,
		"key Q down=true repeat=0",
		"key Q down=false repeat=0",
		"key W down=true repeat=0",
	)
}

func TestPumpButtonsAndWheel(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.ButtonPressEvent{Detail: 1},
		xproto.ButtonReleaseEvent{Detail: 1},
		xproto.ButtonPressEvent{Detail: 2},
		xproto.ButtonPressEvent{Detail: 3},
		xproto.ButtonPressEvent{Detail: 4},
		xproto.ButtonReleaseEvent{Detail: 4},
		xproto.ButtonPressEvent{Detail: 5},
		xproto.ButtonReleaseEvent{Detail: 5},
		xproto.ButtonPressEvent{Detail: 6},
		xproto.ButtonPressEvent{Detail: 7},
		xproto.ButtonPressEvent{Detail: 8},
		xproto.ButtonReleaseEvent{Detail: 9},
	)

	pump(t, w)
	assertEvents(t, rec,
		"button down=true button=Left",
		"button down=false button=Left",
		"button down=true button=Middle",
		"button down=true button=Right",
		"wheel Up",
		"wheel Down",
		"button down=true button=Custom(0)",
		"button down=false button=Custom(1)",
	)
}

func TestPumpMotionClampsNegative(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.MotionNotifyEvent{EventX: 120, EventY: 45},
		xproto.MotionNotifyEvent{EventX: -5, EventY: 7},
		xproto.MotionNotifyEvent{EventX: 9, EventY: -32768},
	)

	pump(t, w)
	assertEvents(t, rec, "move 120,45", "move 0,7", "move 9,0")
}

func TestPumpProtocolErrorAborts(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.MotionNotifyEvent{EventX: 1, EventY: 1},
		xproto.WindowError{BadValue: uint32(testWindow)},
		xproto.MotionNotifyEvent{EventX: 2, EventY: 2},
	)

	err := w.PumpMessages()
	if err == nil {
		t.Fatalf("expected error")
	}
	perr, ok := err.(*platform.Error)
	if !ok {
		t.Fatalf("error type = %T, want *platform.Error", err)
	}
	if perr.Kind != platform.KindReply {
		t.Fatalf("kind = %v, want %v", perr.Kind, platform.KindReply)
	}
	assertEvents(t, rec, "move 1,1")

	// The remaining queue is still delivered on the next pump.
	rec.Reset()
	pump(t, w)
	assertEvents(t, rec, "move 2,2")
}

func TestPumpErrorAfterReleaseIsNotLost(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec,
		xproto.KeyReleaseEvent{Detail: 38, Time: 5},
		xproto.WindowError{},
	)

	if err := w.PumpMessages(); err == nil {
		t.Fatalf("expected error from the event after the release")
	}
	assertEvents(t, rec, "key A down=false repeat=0")
}

func TestPumpAfterDestroyDispatchesNothing(t *testing.T) {
	rec := &events.Recorder{}
	w, _ := newTestWindow(rec, deleteMessage())

	w.Destroy()
	pump(t, w)
	assertEvents(t, rec)
}
