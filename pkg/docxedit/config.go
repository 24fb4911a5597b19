package docxedit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration options for document editing
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// NoisePatterns names the catalog patterns applied by a clean pass. Empty means the whole catalog.
	NoisePatterns []string `toml:"noise_patterns" yaml:"noise_patterns"`
	// NormalizeCaps strips caps formatting and upper-cases the text when merging runs
	NormalizeCaps bool `toml:"normalize_caps" yaml:"normalize_caps"`
	// Author is stamped on tracked changes
	Author string `toml:"author" yaml:"author"`
	// StrictMarkup turns malformed run markup into a hard failure instead of a skipped document
	StrictMarkup bool `toml:"strict_markup" yaml:"strict_markup"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		NoisePatterns: nil,
		NormalizeCaps: false,
		Author:        "docxedit",
		StrictMarkup:  true,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()
	config.applyEnvironment()
	return config
}

func (c *Config) applyEnvironment() {
	// DOCXEDIT_LOG_LEVEL
	if val := os.Getenv("DOCXEDIT_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	// DOCXEDIT_NOISE_PATTERNS (comma separated)
	if val := os.Getenv("DOCXEDIT_NOISE_PATTERNS"); val != "" {
		c.NoisePatterns = nil
		for _, name := range strings.Split(val, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.NoisePatterns = append(c.NoisePatterns, name)
			}
		}
	}

	// DOCXEDIT_NORMALIZE_CAPS
	if val := os.Getenv("DOCXEDIT_NORMALIZE_CAPS"); val != "" {
		c.NormalizeCaps = parseBool(val)
	}

	// DOCXEDIT_AUTHOR
	if val := os.Getenv("DOCXEDIT_AUTHOR"); val != "" {
		c.Author = val
	}

	// DOCXEDIT_STRICT_MARKUP
	if val := os.Getenv("DOCXEDIT_STRICT_MARKUP"); val != "" {
		c.StrictMarkup = parseBool(val)
	}
}

// LoadConfig reads a TOML or YAML file, chosen by extension, on top of the
// defaults and then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	config.applyEnvironment()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return config, nil
}

// Validate checks if the configuration is valid and reports every problem found
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	errs := NewMultiError()
	if !validLogLevels[c.LogLevel] {
		errs.Add(errors.New("invalid log level: " + c.LogLevel))
	}

	for _, name := range c.NoisePatterns {
		if _, ok := lookupPattern(name); !ok {
			errs.Add(NewPatternError(name))
		}
	}

	if strings.TrimSpace(c.Author) == "" {
		errs.Add(errors.New("author cannot be empty"))
	}

	return errs.Err()
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	configCopy.NoisePatterns = append([]string(nil), globalConfig.NoisePatterns...)
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Outside the lock: the logger reads the config back
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
