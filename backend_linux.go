package nativewin

import (
	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/x11"
)

func newBackend(title string, sink events.Sink, pos, size Rect, opts Options) (platform.Backend, error) {
	w, err := x11.New(title, sink, pos, size, opts)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func listMonitors(opts Options) ([]Monitor, error) {
	return x11.Monitors(opts)
}
