package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/1broseidon/nativewin"
	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/config"
	"github.com/1broseidon/nativewin/internal/trace"
)

func runWindow(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file path (default: ~/.config/nativewin/config.yaml)")
	title := fs.String("title", "", "Window title (overrides config and disables title reload)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nativewin run [--config PATH] [--title TITLE]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window and log every input event until it is closed.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		*path = p
	}
	res, err := config.LoadFromPath(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config
	if *title != "" {
		cfg.Title = *title
	}

	logger := newLogger(os.Stderr, stderrIsTerminal(), cfg.SlogLevel())
	slog.SetDefault(logger)
	routeProtocolLogs(logger)

	// Win32 only delivers a window's messages to the thread that created it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tc := cfg.GetTraceConfig()
	tracer, err := trace.Open(trace.Config{
		Enabled:   tc.Enabled,
		Level:     trace.ParseLevel(cfg.LogLevel),
		FilePath:  tc.File,
		MaxSizeMB: tc.MaxSizeMB,
		MaxFiles:  tc.MaxFiles,
	})
	if err != nil {
		logger.Error("failed to open trace file", "error", err)
		return 1
	}
	defer tracer.Close()
	if tc.Enabled {
		logger.Info("tracing events", "file", tc.File)
	}

	opts := nativewin.Options{Logger: logger, Display: cfg.Display}
	pos := initialPosition(cfg, opts, logger)
	size := nativewin.Rect{X: uint16(cfg.Width), Y: uint16(cfg.Height)}

	closeRequested := false
	sink := events.Multi{
		logSink(logger, func() { closeRequested = true }),
		tracer.Sink(),
	}

	win, err := nativewin.CreateWithOptions(cfg.Title, sink, pos, size, opts)
	if err != nil {
		logger.Error("failed to create window", "error", err)
		return 1
	}
	defer win.Destroy()

	if err := win.Show(); err != nil {
		logger.Error("failed to show window", "error", err)
		return 1
	}
	inner := win.InnerSize()
	logger.Info("window shown",
		"title", cfg.Title,
		"x", pos.X, "y", pos.Y,
		"width", inner.X, "height", inner.Y,
		"frame_rate", cfg.FrameRate)

	var titles <-chan string
	if *title == "" {
		watcher, err := watchTitle(*path, cfg.Title, logger)
		if err != nil {
			logger.Debug("config reload disabled", "error", err)
		} else {
			defer watcher.Stop()
			titles = watcher.Titles
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer ticker.Stop()

	for !closeRequested {
		select {
		case <-ticker.C:
			if err := win.PumpMessages(); err != nil {
				logger.Error("event pump failed", "error", err)
				return 1
			}
		case t := <-titles:
			if err := win.SetTitle(t); err != nil {
				logger.Warn("failed to set title", "title", t, "error", err)
			}
		case sig := <-sigCh:
			logger.Info("received signal, closing window", "signal", sig.String())
			closeRequested = true
		}
	}

	logger.Info("window closed")
	return 0
}

// initialPosition returns the configured position, or the centered position
// on the primary monitor when center is set or the configured position is
// off every monitor.
func initialPosition(cfg *config.Config, opts nativewin.Options, logger *slog.Logger) nativewin.Rect {
	monitors, err := nativewin.Monitors(opts)
	return placeWindow(cfg, monitors, err, logger)
}

func placeWindow(cfg *config.Config, monitors []nativewin.Monitor, listErr error, logger *slog.Logger) nativewin.Rect {
	configured := nativewin.Rect{X: uint16(cfg.X), Y: uint16(cfg.Y)}
	if listErr != nil {
		if cfg.Center {
			logger.Warn("monitor enumeration failed, using configured position", "error", listErr)
		} else {
			logger.Debug("monitor enumeration failed", "error", listErr)
		}
		return configured
	}
	if !cfg.Center {
		if len(monitors) == 0 {
			return configured
		}
		if _, ok := nativewin.MonitorAt(monitors, cfg.X, cfg.Y); ok {
			return configured
		}
		logger.Warn("configured position is off every monitor, centering instead", "x", cfg.X, "y", cfg.Y)
	}
	primary, ok := nativewin.PrimaryMonitor(monitors)
	if !ok {
		logger.Warn("no active monitors, using configured position")
		return configured
	}
	pos := primary.Center(nativewin.Rect{X: uint16(cfg.Width), Y: uint16(cfg.Height)})
	logger.Debug("centering window", "monitor", primary.Name, "x", pos.X, "y", pos.Y)
	return pos
}

// logSink logs every event. Pointer motion is logged at debug level.
func logSink(logger *slog.Logger, onClose func()) events.Sink {
	return events.Funcs{
		MouseButton: func(e events.MouseButtonEvent) {
			logger.Info("mouse button", "button", e.Button.String(), "down", e.Down)
		},
		MouseWheel: func(e events.MouseWheelEvent) {
			logger.Info("mouse wheel", "direction", e.Direction.String())
		},
		MouseMove: func(e events.MouseMoveEvent) {
			logger.Debug("mouse move", "x", e.X, "y", e.Y)
		},
		Key: func(e events.KeyEvent) {
			logger.Info("key", "key", e.Key.String(), "down", e.Down, "repeat", e.Repeat)
		},
		Resize: func(e events.ResizeEvent) {
			logger.Info("resize", "width", e.Width, "height", e.Height)
		},
		Close: func() {
			logger.Info("close requested")
			if onClose != nil {
				onClose()
			}
		},
	}
}
