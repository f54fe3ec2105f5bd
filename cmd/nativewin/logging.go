package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgbutil"
	"golang.org/x/term"
)

// newLogger builds the process logger. Terminals get the text handler,
// anything else (journald, pipes, files) gets JSON.
func newLogger(w io.Writer, tty bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if tty {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// routeProtocolLogs sends the xgb and xgbutil package loggers through
// logger at debug level. Both libraries log connection chatter such as a
// missing Xauthority entry.
func routeProtocolLogs(logger *slog.Logger) {
	std := slog.NewLogLogger(logger.Handler(), slog.LevelDebug)
	std.SetPrefix("")
	std.SetFlags(0)
	xgb.Logger = std
	xgbutil.Logger = std
}
