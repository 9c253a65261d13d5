package config

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a config file is absent or a key is omitted.
const (
	DefaultEncoding   = "utf-8"
	DefaultSampleSize = 16 * 1024
	DefaultFlushEvery = 10
	DefaultWidth      = 1000
	DefaultHeight     = 618
)

// Config holds the viewer configuration
type Config struct {
	// Encoding is the IANA name of the file's text encoding. Bytes that
	// cannot be decoded are replaced, never raised as errors.
	Encoding string `yaml:"encoding"`

	// SampleSize is the number of bytes read for dialect sniffing.
	SampleSize int `yaml:"sample_size"`

	// FlushEvery is the loader's pump period: the UI is refreshed on the
	// first FlushEvery rows and every FlushEvery-th row thereafter.
	FlushEvery int `yaml:"flush_every"`

	// Zebra enables alternating row background striping.
	Zebra bool `yaml:"zebra"`

	Window WindowConfig `yaml:"window"`
}

// WindowConfig holds the initial window geometry
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns a config with all defaults applied
func Default() *Config {
	return &Config{
		Encoding:   DefaultEncoding,
		SampleSize: DefaultSampleSize,
		FlushEvery: DefaultFlushEvery,
		Zebra:      true,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load loads and parses a viewer config file
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// validate performs basic validation on the config values
func validate(cfg *Config) error {
	if cfg.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be positive, got %d", cfg.SampleSize)
	}
	if cfg.FlushEvery <= 0 {
		return fmt.Errorf("flush_every must be positive, got %d", cfg.FlushEvery)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if _, err := cfg.NewDecoder(); err != nil {
		return err
	}
	return nil
}

// NewDecoder resolves the configured encoding name to a decoder.
// Undecodable input bytes are replaced with U+FFFD rather than reported.
func (c *Config) NewDecoder() (*encoding.Decoder, error) {
	enc, err := ianaindex.IANA.Encoding(c.Encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", c.Encoding, err)
	}
	if enc == nil {
		// ianaindex maps some registered names to a nil Encoding.
		return nil, fmt.Errorf("unsupported encoding %q", c.Encoding)
	}
	return enc.NewDecoder(), nil
}
