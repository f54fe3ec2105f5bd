package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/nativewin/internal/runtimepath"
)

const (
	DefaultTitle     = "nativewin"
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultFrameRate = 60
	DefaultLogLevel  = "info"

	DefaultTraceMaxSizeMB = 10
	DefaultTraceMaxFiles  = 3

	maxCoord     = 0xFFFF
	maxFrameRate = 1000
)

// Config is the effective configuration of the demo window.
type Config struct {
	Title     string      `yaml:"title"`
	X         int         `yaml:"x"`
	Y         int         `yaml:"y"`
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	Center    bool        `yaml:"center"`
	Display   string      `yaml:"display"`
	LogLevel  string      `yaml:"log_level"`
	FrameRate int         `yaml:"frame_rate"`
	Trace     TraceConfig `yaml:"trace"`
}

// TraceConfig controls the event trace file.
type TraceConfig struct {
	Enabled   bool   `yaml:"enabled"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Title:     DefaultTitle,
		X:         100,
		Y:         100,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		LogLevel:  DefaultLogLevel,
		FrameRate: DefaultFrameRate,
		Trace: TraceConfig{
			MaxSizeMB: DefaultTraceMaxSizeMB,
			MaxFiles:  DefaultTraceMaxFiles,
		},
	}
}

// GetTraceConfig returns the trace configuration with defaults applied.
func (c *Config) GetTraceConfig() TraceConfig {
	if c == nil {
		return TraceConfig{}
	}
	cfg := c.Trace
	if cfg.File == "" {
		path, err := runtimepath.TracePath()
		if err != nil {
			// Last resort fallback - use current directory
			path = runtimepath.TraceFileName
		}
		cfg.File = path
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = DefaultTraceMaxSizeMB
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = DefaultTraceMaxFiles
	}
	return cfg
}

// SlogLevel maps log_level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if strings.ContainsRune(c.Title, 0) {
		return &ValidationError{Path: "title", Err: fmt.Errorf("title must not contain NUL")}
	}
	if c.X < 0 || c.X > maxCoord {
		return &ValidationError{Path: "x", Err: fmt.Errorf("x must be between 0 and %d", maxCoord)}
	}
	if c.Y < 0 || c.Y > maxCoord {
		return &ValidationError{Path: "y", Err: fmt.Errorf("y must be between 0 and %d", maxCoord)}
	}
	if c.Width < 1 || c.Width > maxCoord {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be between 1 and %d", maxCoord)}
	}
	if c.Height < 1 || c.Height > maxCoord {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be between 1 and %d", maxCoord)}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	if c.FrameRate < 1 || c.FrameRate > maxFrameRate {
		return &ValidationError{Path: "frame_rate", Err: fmt.Errorf("frame_rate must be between 1 and %d", maxFrameRate)}
	}
	if c.Trace.MaxSizeMB < 0 {
		return &ValidationError{Path: "trace.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Trace.MaxFiles < 0 {
		return &ValidationError{Path: "trace.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	return nil
}

// ValidationError reports an invalid value, with the file position that set
// it when known.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
