package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/xinci/pkg/xinci/internalerr"
)

// Default filter thresholds. These mirror the constants the discovery
// engine has always shipped with; a config file or CLI flag overrides them.
const (
	DefaultMinCount   = 5
	DefaultMinPMI     = 4.0
	DefaultMinEntropy = 0.8
	DefaultMaxWordLen = 4
)

// Config holds the candidate filter thresholds.
type Config struct {
	// MinCount is the minimum raw occurrence count for a candidate.
	MinCount int `yaml:"min_count"`
	// MinPMI is the minimum cohesion (min-split PMI) score.
	MinPMI float64 `yaml:"min_pmi"`
	// MinEntropy is the minimum freedom (min boundary entropy) score.
	MinEntropy float64 `yaml:"min_entropy"`
	// MaxWordLen is the maximum candidate length in characters.
	MaxWordLen int `yaml:"max_word_len"`
}

// Default returns the built-in thresholds.
func Default() Config {
	return Config{
		MinCount:   DefaultMinCount,
		MinPMI:     DefaultMinPMI,
		MinEntropy: DefaultMinEntropy,
		MaxWordLen: DefaultMaxWordLen,
	}
}

// Load reads thresholds from a YAML file. Options left at their zero value
// fall back to the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MinCount == 0 {
		c.MinCount = DefaultMinCount
	}
	if c.MinPMI == 0 {
		c.MinPMI = DefaultMinPMI
	}
	if c.MinEntropy == 0 {
		c.MinEntropy = DefaultMinEntropy
	}
	if c.MaxWordLen == 0 {
		c.MaxWordLen = DefaultMaxWordLen
	}
}

// Validate rejects configurations the filter cannot run with.
func (c Config) Validate() error {
	if c.MinCount < 1 {
		return fmt.Errorf("%w: min_count must be >= 1, got %d", internalerr.ErrInvalidConfig, c.MinCount)
	}
	if c.MaxWordLen < 2 {
		return fmt.Errorf("%w: max_word_len must be >= 2, got %d", internalerr.ErrInvalidConfig, c.MaxWordLen)
	}
	if c.MinPMI < 0 {
		return fmt.Errorf("%w: min_pmi must be >= 0, got %g", internalerr.ErrInvalidConfig, c.MinPMI)
	}
	if c.MinEntropy < 0 {
		return fmt.Errorf("%w: min_entropy must be >= 0, got %g", internalerr.ErrInvalidConfig, c.MinEntropy)
	}
	return nil
}
