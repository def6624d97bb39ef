// Package config loads the server and exporter settings from an optional
// YAML file layered over built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// Duration parses YAML strings like "1500ms" as a time.Duration; bare
// integers are taken as nanoseconds for compatibility.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("config: invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("config: invalid duration value")
	}
	*d = Duration(n)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	SubmitDelay Duration `yaml:"submit_delay"`
}

// ExportConfig fixes the capture and output geometry.
type ExportConfig struct {
	ViewportWidth int     `yaml:"viewport_width"`
	Scale         float64 `yaml:"scale"`
	Quality       int     `yaml:"quality"`
	OutputDir     string  `yaml:"output_dir"`
	ChromeBin     string  `yaml:"chrome_bin"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			SubmitDelay: Duration(1500 * time.Millisecond),
		},
		Export: ExportConfig{
			ViewportWidth: 794,
			Scale:         2,
			Quality:       95,
			OutputDir:     ".",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the exporter or server cannot work with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if c.Server.SubmitDelay < 0 {
		return fmt.Errorf("config: server.submit_delay must not be negative")
	}
	if c.Export.ViewportWidth <= 0 {
		return fmt.Errorf("config: export.viewport_width must be positive")
	}
	if c.Export.Scale <= 0 {
		return fmt.Errorf("config: export.scale must be positive")
	}
	if c.Export.Quality <= 0 || c.Export.Quality > 100 {
		return fmt.Errorf("config: export.quality must be in (0,100]")
	}
	return nil
}
