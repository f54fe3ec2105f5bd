// Package trace records received window events to a size-rotated file.
package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/1broseidon/nativewin/events"
)

// Level defines the trace verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
)

// Kind is the event category written in each entry.
type Kind string

const (
	KindKey    Kind = "KEY"
	KindButton Kind = "BUTTON"
	KindWheel  Kind = "WHEEL"
	KindMove   Kind = "MOVE"
	KindResize Kind = "RESIZE"
	KindClose  Kind = "CLOSE"
)

// kindLevel returns the level an event kind is recorded at. Pointer motion
// arrives at frame rate and is only kept at debug level.
func kindLevel(kind Kind) Level {
	if kind == KindMove {
		return LevelDebug
	}
	return LevelInfo
}

// Config holds configuration for the trace writer.
type Config struct {
	Enabled   bool
	Level     Level
	FilePath  string
	MaxSizeMB int
	MaxFiles  int
}

// Writer appends trace entries to a file, rotating it when it grows past
// MaxSizeMB.
type Writer struct {
	mu          sync.Mutex
	file        *os.File
	config      Config
	currentSize int64
	now         func() time.Time
}

// Open creates a writer. A disabled config yields a writer that drops
// everything.
func Open(cfg Config) (*Writer, error) {
	if !cfg.Enabled {
		return &Writer{config: cfg, now: time.Now}, nil
	}

	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file %s: %w", cfg.FilePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat trace file: %w", err)
	}

	return &Writer{
		file:        f,
		config:      cfg,
		currentSize: stat.Size(),
		now:         time.Now,
	}, nil
}

// Record writes one entry.
func (w *Writer) Record(kind Kind, details map[string]any) {
	if w == nil || !w.config.Enabled {
		return
	}
	if kindLevel(kind) < w.config.Level {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return
	}

	maxBytes := int64(w.config.MaxSizeMB) * 1024 * 1024
	if maxBytes > 0 && w.currentSize >= maxBytes {
		if err := w.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "trace rotation failed: %v\n", err)
		}
		if w.file == nil {
			return
		}
	}

	var sb strings.Builder
	sb.WriteString(w.now().Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" [")
	sb.WriteString(string(kind))
	sb.WriteString("]")

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch val := details[k].(type) {
		case string:
			fmt.Fprintf(&sb, " %s=%q", k, val)
		default:
			fmt.Fprintf(&sb, " %s=%v", k, val)
		}
	}
	sb.WriteString("\n")

	n, err := w.file.WriteString(sb.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write trace entry: %v\n", err)
		return
	}
	w.currentSize += int64(n)
}

// Close closes the trace file.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// rotate shifts trace.log -> trace.log.1 -> trace.log.2 and so on, keeping
// MaxFiles rotated files.
func (w *Writer) rotate() error {
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}

	basePath := w.config.FilePath
	for i := w.config.MaxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		if i == w.config.MaxFiles {
			os.Remove(oldPath)
		} else {
			os.Rename(oldPath, fmt.Sprintf("%s.%d", basePath, i+1))
		}
	}

	if w.config.MaxFiles > 0 {
		if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to rotate trace file: %w", err)
		}
	} else if err := os.Remove(basePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to truncate trace file: %w", err)
	}

	f, err := os.OpenFile(basePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new trace file: %w", err)
	}
	w.file = f
	w.currentSize = 0
	return nil
}

// Sink returns an events.Sink that records every event to w.
func (w *Writer) Sink() events.Sink {
	return sink{w: w}
}

type sink struct{ w *Writer }

func (s sink) OnMouseButton(e events.MouseButtonEvent) {
	s.w.Record(KindButton, map[string]any{"button": e.Button.String(), "down": e.Down})
}

func (s sink) OnMouseWheel(e events.MouseWheelEvent) {
	s.w.Record(KindWheel, map[string]any{"direction": e.Direction.String()})
}

func (s sink) OnMouseMove(e events.MouseMoveEvent) {
	s.w.Record(KindMove, map[string]any{"x": e.X, "y": e.Y})
}

func (s sink) OnKey(e events.KeyEvent) {
	s.w.Record(KindKey, map[string]any{"key": e.Key.String(), "down": e.Down, "repeat": e.Repeat})
}

func (s sink) OnResize(e events.ResizeEvent) {
	s.w.Record(KindResize, map[string]any{"width": e.Width, "height": e.Height})
}

func (s sink) OnClose() {
	s.w.Record(KindClose, nil)
}

// ParseLevel converts a log level name to a trace level. Anything other
// than debug records at info.
func ParseLevel(s string) Level {
	if strings.EqualFold(s, "debug") {
		return LevelDebug
	}
	return LevelInfo
}
