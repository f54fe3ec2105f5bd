package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/1broseidon/nativewin"
	"github.com/1broseidon/nativewin/inputs"
	"github.com/1broseidon/nativewin/internal/config"
	"github.com/1broseidon/nativewin/internal/win32"
	"github.com/1broseidon/nativewin/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stderr)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runWindow(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:], os.Stdout, os.Stderr))
	case "keys":
		os.Exit(runKeys(os.Args[2:], os.Stdout, os.Stderr))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:], os.Stdout, os.Stderr))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  nativewin run [--config PATH] [--title TITLE]")
	fmt.Fprintln(w, "  nativewin config init [--config PATH] [--force]")
	fmt.Fprintln(w, "  nativewin config validate [--config PATH]")
	fmt.Fprintln(w, "  nativewin config print [--config PATH] [--defaults]")
	fmt.Fprintln(w, "  nativewin config explain [--config PATH] <yaml.path>")
	fmt.Fprintln(w, "  nativewin keys [--backend x11|win32]")
	fmt.Fprintln(w, "  nativewin monitors [--display DISPLAY]")
}

// configPath returns path, or the default location when path is empty.
func configPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}

func loadConfig(path string) (*config.LoadResult, error) {
	path, err := configPath(path)
	if err != nil {
		return nil, err
	}
	return config.LoadFromPath(path)
}

func runConfig(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  nativewin config init [--config PATH] [--force]")
		fmt.Fprintln(stderr, "  nativewin config validate [--config PATH]")
		fmt.Fprintln(stderr, "  nativewin config print [--config PATH] [--defaults]")
		fmt.Fprintln(stderr, "  nativewin config explain [--config PATH] <yaml.path>")
		return 2
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "Config file path (default: ~/.config/nativewin/config.yaml)")

	switch args[0] {
	case "init":
		force := fs.Bool("force", false, "Overwrite an existing config file")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		target, err := configPath(*path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if _, err := os.Stat(target); err == nil && !*force {
			fmt.Fprintf(stderr, "%s already exists (use --force to overwrite)\n", target)
			return 1
		}
		if err := config.Save(config.DefaultConfig(), target); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", target)
		return 0

	case "validate":
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if _, err := loadConfig(*path); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, "config: ok")
		return 0

	case "print":
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			cfg = res.Config
			if res.File != "" {
				fmt.Fprintf(stdout, "# file: %s\n", res.File)
			}
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		stdout.Write(data)
		return 0

	case "explain":
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() < 1 {
			fmt.Fprintln(stderr, "explain requires <yaml.path>")
			return 2
		}
		queryPath := fs.Arg(0)

		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		value, src, err := config.Explain(res, queryPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		fmt.Fprintf(stdout, "path: %s\n", queryPath)
		fmt.Fprintf(stdout, "source: %s\n", formatSource(src))
		fmt.Fprintf(stdout, "value: %v\n", value)
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	default:
		return "default"
	}
}

func runKeys(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backend := fs.String("backend", defaultBackendName(), "Translation table to print (x11|win32)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: nativewin keys [--backend x11|win32]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Print the native key code translation table.")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var table [256]inputs.Key
	var label string
	switch *backend {
	case "x11":
		table, label = x11.KeycodeTable(), "keycode"
	case "win32":
		table, label = win32.VirtualKeyTable(), "vk"
	default:
		fmt.Fprintf(stderr, "unknown backend %q (want x11 or win32)\n", *backend)
		return 2
	}

	fmt.Fprintf(stdout, "%-8s KEY\n", label)
	for code, key := range table {
		if key == inputs.KeyUnidentified {
			continue
		}
		fmt.Fprintf(stdout, "0x%02x     %s\n", code, key)
	}
	return 0
}

func defaultBackendName() string {
	if runtime.GOOS == "windows" {
		return "win32"
	}
	return "x11"
}

func runMonitors(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(stderr)
	display := fs.String("display", "", "X11 display (default: $DISPLAY)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: nativewin monitors [--display DISPLAY]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "List active monitors with their bounds and work areas.")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	monitors, err := nativewin.Monitors(nativewin.Options{Display: *display})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	printMonitors(stdout, monitors)
	return 0
}

func printMonitors(w io.Writer, monitors []nativewin.Monitor) {
	if len(monitors) == 0 {
		fmt.Fprintln(w, "no active monitors")
		return
	}
	for i, m := range monitors {
		primary := ""
		if m.Primary {
			primary = " (primary)"
		}
		fmt.Fprintf(w, "%d: %s%s\n", i, m.Name, primary)
		fmt.Fprintf(w, "   bounds:   %dx%d+%d+%d\n", m.Bounds.Width, m.Bounds.Height, m.Bounds.X, m.Bounds.Y)
		fmt.Fprintf(w, "   workarea: %dx%d+%d+%d\n", m.WorkArea.Width, m.WorkArea.Height, m.WorkArea.X, m.WorkArea.Y)
	}
}
