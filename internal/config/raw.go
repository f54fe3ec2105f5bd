package config

// RawConfig mirrors Config with pointer fields so that keys absent from the
// file keep their defaults.
type RawConfig struct {
	Title     *string         `yaml:"title"`
	X         *int            `yaml:"x"`
	Y         *int            `yaml:"y"`
	Width     *int            `yaml:"width"`
	Height    *int            `yaml:"height"`
	Center    *bool           `yaml:"center"`
	Display   *string         `yaml:"display"`
	LogLevel  *string         `yaml:"log_level"`
	FrameRate *int            `yaml:"frame_rate"`
	Trace     *RawTraceConfig `yaml:"trace"`
}

type RawTraceConfig struct {
	Enabled   *bool   `yaml:"enabled"`
	File      *string `yaml:"file"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	setIf(&cfg.Title, raw.Title)
	setIf(&cfg.X, raw.X)
	setIf(&cfg.Y, raw.Y)
	setIf(&cfg.Width, raw.Width)
	setIf(&cfg.Height, raw.Height)
	setIf(&cfg.Center, raw.Center)
	setIf(&cfg.Display, raw.Display)
	setIf(&cfg.LogLevel, raw.LogLevel)
	setIf(&cfg.FrameRate, raw.FrameRate)

	if raw.Trace != nil {
		setIf(&cfg.Trace.Enabled, raw.Trace.Enabled)
		setIf(&cfg.Trace.File, raw.Trace.File)
		setIf(&cfg.Trace.MaxSizeMB, raw.Trace.MaxSizeMB)
		setIf(&cfg.Trace.MaxFiles, raw.Trace.MaxFiles)
	}

	return cfg
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
