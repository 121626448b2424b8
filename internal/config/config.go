// Package config provides configuration management for colfram DataFrame
// operations.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for colfram.
type Config struct {
	// Display Configuration
	NullText       string `json:"null_text" yaml:"null_text"`               // Placeholder rendered for absent slots
	FloatPrecision int    `json:"float_precision" yaml:"float_precision"`   // Digits for float rendering (-1 = shortest round-trip)
	MaxDisplayRows int    `json:"max_display_rows" yaml:"max_display_rows"` // Rows shown by DataFrame String (0 = all)

	// Validation Configuration
	ValidateOnBuild bool `json:"validate_on_build" yaml:"validate_on_build"` // Reject misaligned columns at construction
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultNullText       = "null"
	DefaultFloatPrecision = -1
)

func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values.
func NewConfig() Config {
	return Config{
		NullText:        DefaultNullText,
		FloatPrecision:  DefaultFloatPrecision,
		MaxDisplayRows:  0, // Unbounded
		ValidateOnBuild: false,
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.NullText == "" {
		return fmt.Errorf("NullText must not be empty")
	}
	if c.FloatPrecision < -1 {
		return fmt.Errorf("FloatPrecision must be -1 or non-negative, got %d", c.FloatPrecision)
	}
	if c.MaxDisplayRows < 0 {
		return fmt.Errorf("MaxDisplayRows must be non-negative, got %d", c.MaxDisplayRows)
	}
	return nil
}

// WithDefaults fills zero-valued fields with defaults.
func (c Config) WithDefaults() Config {
	if c.NullText == "" {
		c.NullText = DefaultNullText
	}
	if c.FloatPrecision == 0 {
		c.FloatPrecision = DefaultFloatPrecision
	}
	return c
}

// SetGlobalConfig sets the global configuration.
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration.
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// WithConfig runs fn with config installed globally and restores the
// previous configuration afterwards. Intended for tests.
func WithConfig(config Config, fn func()) {
	previous := GetGlobalConfig()
	SetGlobalConfig(config)
	defer SetGlobalConfig(previous)
	fn()
}

// LoadFromJSON loads configuration from JSON data.
func LoadFromJSON(data []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a JSON or YAML file.
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config.WithDefaults(), nil
}

// LoadFromEnv loads configuration from environment variables, starting from
// defaults.
func LoadFromEnv() Config {
	config := NewConfig()

	if val := os.Getenv("COLFRAM_NULL_TEXT"); val != "" {
		config.NullText = val
	}

	if val := os.Getenv("COLFRAM_FLOAT_PRECISION"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.FloatPrecision = parsed
		}
	}

	if val := os.Getenv("COLFRAM_MAX_DISPLAY_ROWS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.MaxDisplayRows = parsed
		}
	}

	if val := os.Getenv("COLFRAM_VALIDATE_ON_BUILD"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.ValidateOnBuild = parsed
		}
	}

	return config
}
