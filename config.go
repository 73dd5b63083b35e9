package phineas

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// DefaultTPS is the tick rate used when a config does not set one.
const DefaultTPS = 40

// Config holds everything Run needs to open a window and drive a Game.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Loop    LoopConfig    `toml:"loop"`
	Debug   DebugConfig   `toml:"debug"`
	Logging LoggingConfig `toml:"logging"`
}

// WindowConfig is the [window] section: title, logical size and resizing.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

// LoopConfig is the [loop] section.
type LoopConfig struct {
	TPS int `toml:"tps"` // ticks per second
}

// DebugConfig is the [debug] section controlling frame stats, the FPS
// overlay and where screenshots are written.
type DebugConfig struct {
	Enabled       bool   `toml:"enabled"` // log per-frame stats
	ScreenshotDir string `toml:"screenshot_dir"`
	ShowFPS       bool   `toml:"show_fps"`
}

// LoggingConfig is the [logging] section consumed by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DefaultConfig returns the configuration used for any field a config file
// leaves out.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "phineas",
			Width:  640,
			Height: 480,
		},
		Loop: LoopConfig{
			TPS: DefaultTPS,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML data on top of DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Window.Width <= 0 {
		err = multierr.Append(err, fmt.Errorf("window.width must be positive, got %d", c.Window.Width))
	}
	if c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window.height must be positive, got %d", c.Window.Height))
	}
	if c.Loop.TPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("loop.tps must be positive, got %d", c.Loop.TPS))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format))
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
