//go:build !linux && !windows

package nativewin

import (
	"runtime"

	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/platform"
)

func newBackend(string, events.Sink, Rect, Rect, Options) (platform.Backend, error) {
	return nil, platform.NewError(platform.KindUnsupported, runtime.GOOS, nil)
}

func listMonitors(Options) ([]Monitor, error) {
	return nil, platform.NewError(platform.KindUnsupported, runtime.GOOS, nil)
}
