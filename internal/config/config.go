package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/datepicker/internal/daterange"
	"github.com/xolan/datepicker/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultTheme is the bubbletint theme used when none is configured
	DefaultTheme = "dracula"
)

// Config represents the application configuration
type Config struct {
	// DefaultGranularity is used when there is no saved picker state (day, week or month)
	DefaultGranularity string `toml:"default_granularity"`
	// Timezone defines the timezone ranges are computed in (IANA timezone name, e.g., "Europe/Berlin")
	Timezone string `toml:"timezone"`
	// Theme is the TUI color theme
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - default_granularity: "week"
// - timezone: "Local" (use system local timezone)
// - theme: "dracula"
func DefaultConfig() Config {
	return Config{
		DefaultGranularity: string(daterange.Week),
		Timezone:           "Local",
		Theme:              DefaultTheme,
	}
}

// GetConfigPath returns the path to the config file, creating its directory if needed.
func GetConfigPath() (string, error) {
	return osutil.AppFile(ConfigFile)
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config key(s): %s", strings.Join(keys, ", "))
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, or returns DefaultConfig if it doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to access config file: %w", err)
	}
	return Load(path)
}

// Normalize canonicalizes user-entered values in place.
func (c *Config) Normalize() {
	if g, err := daterange.ParseGranularity(c.DefaultGranularity); err == nil {
		c.DefaultGranularity = string(g)
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
}

// Validate checks that the configuration values are valid
func (c Config) Validate() error {
	if !daterange.Granularity(c.DefaultGranularity).Valid() {
		return fmt.Errorf("invalid default_granularity %q: %w (valid values: day, week, month)", c.DefaultGranularity, daterange.ErrInvalidGranularity)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Granularity returns the configured default granularity.
func (c Config) Granularity() daterange.Granularity {
	return daterange.Granularity(c.DefaultGranularity)
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GenerateSampleConfig returns a commented TOML config with the default values.
func GenerateSampleConfig() string {
	cfg := DefaultConfig()
	return Render(cfg)
}

// Render formats cfg as a commented TOML document.
func Render(cfg Config) string {
	return fmt.Sprintf(`# datepicker configuration file

# Granularity used when no range has been picked yet: "day", "week" or "month"
default_granularity = %q

# Timezone: IANA timezone name (e.g., "Europe/Berlin") or "Local"
timezone = %q

# TUI color theme (any bubbletint theme id)
theme = %q
`, cfg.DefaultGranularity, cfg.Timezone, cfg.Theme)
}
