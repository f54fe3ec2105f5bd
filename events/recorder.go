package events

import "fmt"

// Recorder is a Sink that keeps a textual log of every event it receives.
// It is intended for tests and diagnostics.
type Recorder struct {
	Events []string
}

var _ Sink = (*Recorder)(nil)

func (r *Recorder) OnMouseButton(e MouseButtonEvent) {
	r.add("button down=%t button=%s", e.Down, e.Button)
}

func (r *Recorder) OnMouseWheel(e MouseWheelEvent) {
	r.add("wheel %s", e.Direction)
}

func (r *Recorder) OnMouseMove(e MouseMoveEvent) {
	r.add("move %d,%d", e.X, e.Y)
}

func (r *Recorder) OnKey(e KeyEvent) {
	r.add("key %s down=%t repeat=%d", e.Key, e.Down, e.Repeat)
}

func (r *Recorder) OnResize(e ResizeEvent) {
	r.add("resize %dx%d", e.Width, e.Height)
}

func (r *Recorder) OnClose() {
	r.add("close")
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

func (r *Recorder) add(format string, args ...any) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}
