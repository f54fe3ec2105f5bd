package config

import "fmt"

// Explain returns the effective value at the given YAML path and where it
// came from.
//
// Supported paths are the top-level keys (title, x, y, width, height,
// center, display, log_level, frame_rate) and trace.enabled, trace.file,
// trace.max_size_mb, trace.max_files.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "title":
		return cfg.Title, nil
	case "x":
		return cfg.X, nil
	case "y":
		return cfg.Y, nil
	case "width":
		return cfg.Width, nil
	case "height":
		return cfg.Height, nil
	case "center":
		return cfg.Center, nil
	case "display":
		return cfg.Display, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "frame_rate":
		return cfg.FrameRate, nil
	case "trace.enabled":
		return cfg.Trace.Enabled, nil
	case "trace.file":
		return cfg.Trace.File, nil
	case "trace.max_size_mb":
		return cfg.Trace.MaxSizeMB, nil
	case "trace.max_files":
		return cfg.Trace.MaxFiles, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}
