package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/romsum/internal/adapters/checksum"
	"github.com/iamNilotpal/romsum/internal/core/domain"
	"github.com/iamNilotpal/romsum/pkg/logger"
)

type Config struct {
	Sum          SumConfig `yaml:"sum"`
	LogLevel     string    `yaml:"log_level"`      // Logging verbosity (debug, info, warn, error)
	Workers      uint8     `yaml:"workers"`        // Concurrent images when summing a batch
	BufferSize   uint32    `yaml:"buffer_size"`    // Staging buffer size for streamed images
	MaxImageSize uint32    `yaml:"max_image_size"` // Upper bound on decoded image bytes
	Decompress   bool      `yaml:"decompress"`     // Decode .zst/.gz images before summing
}

// Holds accumulation-specific configuration
type SumConfig struct {
	Mode           string `yaml:"mode"`             // byte-wise, word-wise or mirror
	AllowOddLength bool   `yaml:"allow_odd_length"` // Word-wise: drop a trailing unpaired byte
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		Workers:      4,
		Decompress:   true,
		BufferSize:   1024 * 1024,      // 1MB
		MaxImageSize: 1024 * 1024 * 64, // 64MB
		Sum: SumConfig{
			Mode: string(checksum.ByteWise),
		},
	}
}

// Loads configuration from a YAML file. Absent keys keep their default
// values, so a file only needs the settings it changes.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Overlay the file on top of the defaults
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Options converts the file configuration into service options. Bounds
// beyond what validateConfig covers are enforced by the image service.
func (c *Config) Options() *domain.Options {
	return &domain.Options{
		BufferSize:   c.BufferSize,
		MaxImageSize: c.MaxImageSize,
		Workers:      c.Workers,
		Sum: &domain.SumOptions{
			Mode:           domain.Mode(c.Sum.Mode),
			AllowOddLength: c.Sum.AllowOddLength,
		},
		Decompress: &domain.DecompressOptions{
			Enable: c.Decompress,
		},
	}
}

func validateConfig(config *Config) error {
	if _, err := logger.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("log_level %q is not a valid level: %w", config.LogLevel, err)
	}

	if err := validateSumConfig(&config.Sum); err != nil {
		return fmt.Errorf("invalid sum configuration: %w", err)
	}

	return nil
}

func validateSumConfig(config *SumConfig) error {
	if config.Mode == "" {
		return nil
	}
	return checksum.Validate(&domain.SumOptions{Mode: domain.Mode(config.Mode)})
}
