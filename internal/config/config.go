package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardbook/internal/search"
)

// Config represents the application configuration
type Config struct {
	DefaultDataset string  `toml:"default_dataset"` // Empty means the embedded dataset
	Threshold      float64 `toml:"threshold"`
	ReducedMotion  bool    `toml:"reduced_motion"`
	AssetDir       string  `toml:"asset_dir"` // Where images of the embedded dataset live
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Threshold: search.DefaultThreshold,
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetDatasetLibraryPath returns the path to the dataset library
func GetDatasetLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardbook", "datasets")
}

// GetCacheDir returns the directory for generated files such as ANSI art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardbook")
}

// GetConfigFilePath returns the path to the config file. CARDBOOK_CONFIG
// overrides the XDG location.
func GetConfigFilePath() string {
	if path := os.Getenv("CARDBOOK_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(GetXDGConfigHome(), "cardbook", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if !meta.IsDefined("threshold") {
		config.Threshold = search.DefaultThreshold
	}
	if config.Threshold < 0 || config.Threshold > 1 {
		return nil, fmt.Errorf("threshold must be between 0 and 1, got %v", config.Threshold)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// writeConfig encodes config to the config file, creating its directory
func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDatasetPath returns the path to a dataset, either in the dataset
// library or a relative path
func GetDatasetPath(datasetName string) (string, error) {
	// First, try to find the dataset in the library
	datasetPath := filepath.Join(GetDatasetLibraryPath(), datasetName)
	if _, err := os.Stat(datasetPath); err == nil {
		return datasetPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(datasetName); err == nil {
		return datasetName, nil
	}

	return "", fmt.Errorf("dataset not found: %s", datasetName)
}

// GetDefaultDataset returns the default dataset name from config
func GetDefaultDataset() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDataset, nil
}

// SetDefaultDataset sets the default dataset in the config
func SetDefaultDataset(datasetName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDataset = datasetName
	return writeConfig(config)
}
