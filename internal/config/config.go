package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Analysis  AnalysisConfig  `json:"analysis"`
	Isolation IsolationConfig `json:"isolation"`
	Output    OutputConfig    `json:"output"`
}

// AnalysisConfig holds configuration for the analysis pass
type AnalysisConfig struct {
	Stride            int     `json:"stride"`
	DistanceThreshold float64 `json:"distance_threshold"`
	MaxDimension      int     `json:"max_dimension"`
	TopClusters       int     `json:"top_clusters"`
}

// IsolationConfig holds configuration for channel isolation
type IsolationConfig struct {
	Workers int `json:"workers"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Format   string `json:"format"`
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
	Dir      string `json:"dir"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Stride:            5,
			DistanceThreshold: 15.0,
			MaxDimension:      1000,
			TopClusters:       50,
		},
		Isolation: IsolationConfig{
			Workers: 0, // 0 = number of CPUs
		},
		Output: OutputConfig{
			Format:   "png",
			Quality:  90,
			Lossless: false,
			Dir:      "./out",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Analysis.Stride < 1 {
		return fmt.Errorf("analysis.stride must be positive")
	}

	if c.Analysis.DistanceThreshold <= 0 {
		return fmt.Errorf("analysis.distance_threshold must be positive")
	}

	if c.Analysis.MaxDimension < 1 {
		return fmt.Errorf("analysis.max_dimension must be positive")
	}

	if c.Analysis.TopClusters < 1 {
		return fmt.Errorf("analysis.top_clusters must be positive")
	}

	if c.Isolation.Workers < 0 {
		return fmt.Errorf("isolation.workers must not be negative")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	switch c.Output.Format {
	case "png", "jpg", "jpeg", "webp":
	default:
		return fmt.Errorf("output.format must be one of png, jpg, jpeg, webp")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "cmyk-analyzer", "config.json")
}
