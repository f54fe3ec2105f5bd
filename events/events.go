// Package events defines the callback contract through which window backends
// deliver translated input and window events.
package events

import "github.com/1broseidon/nativewin/inputs"

// Sink receives translated events. Backends call it synchronously from
// PumpMessages, on the thread that owns the window.
type Sink interface {
	OnMouseButton(e MouseButtonEvent)
	OnMouseWheel(e MouseWheelEvent)
	OnMouseMove(e MouseMoveEvent)
	OnKey(e KeyEvent)
	OnResize(e ResizeEvent)
	OnClose()
}

// MouseButtonEvent reports a pointer button press or release.
type MouseButtonEvent struct {
	Down   bool
	Button inputs.MouseButton
}

// MouseWheelEvent reports one vertical wheel step.
type MouseWheelEvent struct {
	Direction inputs.WheelDirection
}

// MouseMoveEvent reports the pointer position in client-area coordinates.
type MouseMoveEvent struct {
	X uint32
	Y uint32
}

// KeyEvent reports a key press or release. Repeat is 1 when the press was
// generated by auto-repeat and 0 otherwise.
type KeyEvent struct {
	Key    inputs.Key
	Down   bool
	Repeat uint32
}

// ResizeEvent reports the new client-area size.
type ResizeEvent struct {
	Width  uint32
	Height uint32
}

// Funcs adapts a set of optional functions to the Sink interface. Nil fields
// drop the corresponding event.
type Funcs struct {
	MouseButton func(MouseButtonEvent)
	MouseWheel  func(MouseWheelEvent)
	MouseMove   func(MouseMoveEvent)
	Key         func(KeyEvent)
	Resize      func(ResizeEvent)
	Close       func()
}

var _ Sink = Funcs{}

func (f Funcs) OnMouseButton(e MouseButtonEvent) {
	if f.MouseButton != nil {
		f.MouseButton(e)
	}
}

func (f Funcs) OnMouseWheel(e MouseWheelEvent) {
	if f.MouseWheel != nil {
		f.MouseWheel(e)
	}
}

func (f Funcs) OnMouseMove(e MouseMoveEvent) {
	if f.MouseMove != nil {
		f.MouseMove(e)
	}
}

func (f Funcs) OnKey(e KeyEvent) {
	if f.Key != nil {
		f.Key(e)
	}
}

func (f Funcs) OnResize(e ResizeEvent) {
	if f.Resize != nil {
		f.Resize(e)
	}
}

func (f Funcs) OnClose() {
	if f.Close != nil {
		f.Close()
	}
}

// Multi fans every event out to each sink in order.
type Multi []Sink

var _ Sink = Multi{}

func (m Multi) OnMouseButton(e MouseButtonEvent) {
	for _, s := range m {
		s.OnMouseButton(e)
	}
}

func (m Multi) OnMouseWheel(e MouseWheelEvent) {
	for _, s := range m {
		s.OnMouseWheel(e)
	}
}

func (m Multi) OnMouseMove(e MouseMoveEvent) {
	for _, s := range m {
		s.OnMouseMove(e)
	}
}

func (m Multi) OnKey(e KeyEvent) {
	for _, s := range m {
		s.OnKey(e)
	}
}

func (m Multi) OnResize(e ResizeEvent) {
	for _, s := range m {
		s.OnResize(e)
	}
}

func (m Multi) OnClose() {
	for _, s := range m {
		s.OnClose()
	}
}
