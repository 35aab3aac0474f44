// Package config loads apstudio settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apstudio/apstudio/internal/history"
	"github.com/apstudio/apstudio/internal/markup"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig       = "APSTUDIO_CONFIG"
	EnvDataDir      = "APSTUDIO_DATA_DIR"
	EnvLogLevel     = "APSTUDIO_LOG_LEVEL"
	EnvColor        = "APSTUDIO_COLOR"
	EnvHistoryLimit = "APSTUDIO_HISTORY_LIMIT"
	EnvClipboardCmd = "APSTUDIO_CLIPBOARD_CMD"
)

// Color settings.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

const appDir = "apstudio"

// Config holds the application configuration.
type Config struct {
	DataDir          string         `yaml:"data_dir"`
	HistoryLimit     int            `yaml:"history_limit"`
	LogLevel         string         `yaml:"log_level"`
	Color            string         `yaml:"color"`
	ClipboardCommand string         `yaml:"clipboard_command"`
	Samples          markup.Samples `yaml:"samples"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir:      defaultDataDir(),
		HistoryLimit: history.DefaultLimit,
		LogLevel:     "info",
		Color:        ColorAuto,
		Samples:      markup.DefaultSamples(),
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDir)
	}
	return filepath.Join(dir, appDir)
}

// DefaultPath returns the config file location: $APSTUDIO_CONFIG when set,
// otherwise config.yaml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty), then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	f, err := os.Open(path) //nolint:gosec // config path is user controlled by design
	switch {
	case err == nil:
		defer func() { _ = f.Close() }()
		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to parse: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = normalizeColor(v)
	}
	if v := os.Getenv(EnvClipboardCmd); v != "" {
		c.ClipboardCommand = v
	}
	if v := os.Getenv(EnvHistoryLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvHistoryLimit, v)
		}
		c.HistoryLimit = n
	}
	return nil
}

// normalizeColor maps the usual boolean spellings onto on/off.
func normalizeColor(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "always":
		return ColorOn
	case "0", "false", "no", "off", "never":
		return ColorOff
	default:
		return ColorAuto
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be at least 1, got %d", c.HistoryLimit)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir must be non-empty")
	}
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("color must be one of auto, on, off, got %q", c.Color)
	}
	return nil
}

// DraftPath is where the working draft is kept.
func (c *Config) DraftPath() string {
	return filepath.Join(c.DataDir, "draft.yaml")
}

// HistoryPath is where copied commands are kept.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.json")
}
