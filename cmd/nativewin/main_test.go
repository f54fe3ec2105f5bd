package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/nativewin"
	"github.com/1broseidon/nativewin/events"
	"github.com/1broseidon/nativewin/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunConfigValidate(t *testing.T) {
	path := writeConfig(t, "title: hello\nwidth: 640\n")

	var stdout, stderr bytes.Buffer
	if code := runConfig([]string{"validate", "--config", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("validate exit = %d, stderr: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "config: ok\n" {
		t.Fatalf("stdout = %q", got)
	}
}

func TestRunConfigValidateRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "width: 0\n")

	var stdout, stderr bytes.Buffer
	if code := runConfig([]string{"validate", "--config", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("validate exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "width") {
		t.Fatalf("stderr %q does not name the bad field", stderr.String())
	}
}

func TestRunConfigExplain(t *testing.T) {
	path := writeConfig(t, "title: hello\nwidth: 640\n")

	var stdout, stderr bytes.Buffer
	if code := runConfig([]string{"explain", "--config", path, "width"}, &stdout, &stderr); code != 0 {
		t.Fatalf("explain exit = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"path: width\n", "source: file:", "value: 640\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("explain output %q missing %q", out, want)
		}
	}

	stdout.Reset()
	if code := runConfig([]string{"explain", "--config", path, "height"}, &stdout, &stderr); code != 0 {
		t.Fatalf("explain height exit = %d", code)
	}
	if !strings.Contains(stdout.String(), "source: default\n") {
		t.Fatalf("height should come from defaults, got %q", stdout.String())
	}
}

func TestRunConfigPrintDefaults(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runConfig([]string{"print", "--defaults"}, &stdout, &stderr); code != 0 {
		t.Fatalf("print exit = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "title: nativewin\n") {
		t.Fatalf("defaults output missing title:\n%s", stdout.String())
	}
}

func TestRunConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	var stdout, stderr bytes.Buffer
	if code := runConfig([]string{"init", "--config", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("init exit = %d, stderr: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "wrote "+path+"\n" {
		t.Fatalf("stdout = %q", got)
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if res.Config.Title != config.DefaultTitle || res.Config.Width != config.DefaultWidth {
		t.Fatalf("written config = %+v, want defaults", res.Config)
	}

	if err := os.WriteFile(path, []byte("title: mine\n"), 0644); err != nil {
		t.Fatalf("edit config: %v", err)
	}
	stderr.Reset()
	if code := runConfig([]string{"init", "--config", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("init over existing file exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if data, _ := os.ReadFile(path); string(data) != "title: mine\n" {
		t.Fatalf("existing file was modified: %q", data)
	}

	if code := runConfig([]string{"init", "--config", path, "--force"}, &stdout, &stderr); code != 0 {
		t.Fatalf("init --force exit = %d, stderr: %s", code, stderr.String())
	}
	if res, err := config.LoadFromPath(path); err != nil || res.Config.Title != config.DefaultTitle {
		t.Fatalf("forced init did not restore defaults: %v", err)
	}
}

func TestRunConfigUnknownSubcommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runConfig([]string{"frobnicate"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestRunKeys(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{backend: "x11", want: "0x26     A\n"},
		{backend: "x11", want: "0x09     Esc\n"},
		{backend: "win32", want: "0x41     A\n"},
		{backend: "win32", want: "0x1b     Esc\n"},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		if code := runKeys([]string{"--backend", tt.backend}, &stdout, &stderr); code != 0 {
			t.Fatalf("keys %s exit = %d", tt.backend, code)
		}
		if !strings.Contains(stdout.String(), tt.want) {
			t.Fatalf("keys %s output missing %q", tt.backend, tt.want)
		}
		if strings.Contains(stdout.String(), "Unidentified") {
			t.Fatalf("keys %s should skip unidentified codes", tt.backend)
		}
	}

	var stdout, stderr bytes.Buffer
	if code := runKeys([]string{"--backend", "cocoa"}, &stdout, &stderr); code != 2 {
		t.Fatalf("unknown backend exit = %d, want 2", code)
	}
}

func TestPrintMonitors(t *testing.T) {
	var buf bytes.Buffer
	printMonitors(&buf, []nativewin.Monitor{{
		Name:     "DP-1",
		Primary:  true,
		Bounds:   nativewin.Bounds{Width: 1920, Height: 1080},
		WorkArea: nativewin.Bounds{Y: 32, Width: 1920, Height: 1048},
	}})
	want := "0: DP-1 (primary)\n" +
		"   bounds:   1920x1080+0+0\n" +
		"   workarea: 1920x1048+0+32\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	printMonitors(&buf, nil)
	if buf.String() != "no active monitors\n" {
		t.Fatalf("empty output = %q", buf.String())
	}
}

func TestPlaceWindow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Center = true
	monitors := []nativewin.Monitor{
		{Name: "left", Bounds: nativewin.Bounds{Width: 1280, Height: 1024}, WorkArea: nativewin.Bounds{Width: 1280, Height: 1024}},
		{Name: "main", Primary: true, Bounds: nativewin.Bounds{X: 1280, Width: 1920, Height: 1080}, WorkArea: nativewin.Bounds{X: 1280, Width: 1920, Height: 1080}},
	}

	got := placeWindow(cfg, monitors, nil, discardLogger())
	if want := (nativewin.Rect{X: 1280 + 560, Y: 240}); got != want {
		t.Fatalf("centered = %+v, want %+v", got, want)
	}

	fallback := nativewin.Rect{X: uint16(cfg.X), Y: uint16(cfg.Y)}
	if got := placeWindow(cfg, nil, errors.New("no randr"), discardLogger()); got != fallback {
		t.Fatalf("error fallback = %+v, want %+v", got, fallback)
	}
	if got := placeWindow(cfg, nil, nil, discardLogger()); got != fallback {
		t.Fatalf("empty fallback = %+v, want %+v", got, fallback)
	}
}

func TestPlaceWindowUncentered(t *testing.T) {
	cfg := config.DefaultConfig()
	monitors := []nativewin.Monitor{
		{Name: "main", Primary: true, Bounds: nativewin.Bounds{Width: 1920, Height: 1080}},
	}

	configured := nativewin.Rect{X: uint16(cfg.X), Y: uint16(cfg.Y)}
	if got := placeWindow(cfg, monitors, nil, discardLogger()); got != configured {
		t.Fatalf("on-screen position = %+v, want %+v", got, configured)
	}
	if got := placeWindow(cfg, nil, errors.New("no randr"), discardLogger()); got != configured {
		t.Fatalf("enumeration failure = %+v, want %+v", got, configured)
	}

	cfg.X, cfg.Y = 5000, 100
	want := nativewin.Rect{X: uint16((1920 - cfg.Width) / 2), Y: uint16((1080 - cfg.Height) / 2)}
	if got := placeWindow(cfg, monitors, nil, discardLogger()); got != want {
		t.Fatalf("off-screen position = %+v, want %+v", got, want)
	}
}

func TestLogSinkClose(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, slog.LevelInfo)

	closed := false
	sink := logSink(logger, func() { closed = true })
	sink.OnMouseMove(events.MouseMoveEvent{X: 1, Y: 2})
	if buf.Len() != 0 {
		t.Fatalf("mouse move logged at info level: %s", buf.String())
	}
	sink.OnClose()
	if !closed {
		t.Fatalf("close callback not called")
	}
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"close requested"`) {
		t.Fatalf("expected JSON close record, got %q", buf.String())
	}
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, true, slog.LevelDebug).Debug("hello", "k", 1)
	if !strings.Contains(buf.String(), "level=DEBUG msg=hello k=1") {
		t.Fatalf("unexpected text record %q", buf.String())
	}
}

func TestWatchTitleReloads(t *testing.T) {
	path := writeConfig(t, "title: first\n")

	w, err := watchTitle(path, "first", discardLogger())
	if err != nil {
		t.Fatalf("watchTitle: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("title: second\n"), 0644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-w.Titles:
			if got == "second" {
				return
			}
		case <-deadline:
			t.Fatalf("no reload to title \"second\" within 5s")
		}
	}
}
