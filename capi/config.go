package capi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/urlkit/i18n"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "URLKIT_CAPI_CONFIG"

// Config tunes the boundary library. The zero value is valid: no size
// limit, logging disabled, English messages.
type Config struct {
	// MaxSpecBytes rejects longer specs in Arena.New. Zero means no limit.
	MaxSpecBytes int64 `yaml:"max_spec_bytes"`
	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string `yaml:"log_level"`
	// LogFormat is json (default) or text.
	LogFormat string `yaml:"log_format"`
	// Language selects the message language for error strings (BCP 47).
	Language string `yaml:"language"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config { return Config{} }

// LoadConfig decodes a YAML document. Unknown keys are rejected; an empty
// document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("capi: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("capi: read config: %w", err)
	}
	return LoadConfig(bytes.NewReader(b))
}

// LoadConfigFromEnv loads the file named by ConfigEnv, or returns
// DefaultConfig when the variable is unset.
func LoadConfigFromEnv() (Config, error) {
	path := strings.TrimSpace(os.Getenv(ConfigEnv))
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(path)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.MaxSpecBytes < 0 {
		return fmt.Errorf("capi: max_spec_bytes must not be negative, got %d", c.MaxSpecBytes)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "json", "text":
	default:
		return fmt.Errorf("capi: unknown log_format %q", c.LogFormat)
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("capi: invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Logger builds the logger described by c, writing to w. An empty LogLevel
// returns a no-op logger.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if c.LogLevel == "" || err != nil || w == nil {
		return NewNope()
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts)).With("component", "urlkit-capi")
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With("component", "urlkit-capi")
}

// Apply installs the process-wide settings of c (currently the message
// language).
func (c Config) Apply() {
	if c.Language != "" {
		i18n.SetLanguage(c.Language)
	}
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
