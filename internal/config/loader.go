package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the config file name searched in the current directory.
	DefaultConfigFile = ".logreport"

	// XDGConfigFile is the config file name searched in XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration.
// Every field is optional; zero values leave the defaults untouched.
type File struct {
	// Concurrency is the default worker count.
	Concurrency int `yaml:"concurrency"`

	// Format is the default output format.
	Format string `yaml:"format"`

	// Output is the default report file.
	Output string `yaml:"output"`

	// MetricsFile is the default Prometheus textfile path.
	MetricsFile string `yaml:"metrics_file"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile loads the YAML configuration at path.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. configPath, if specified
// 2. .logreport in the current directory
// 3. config.yaml in XDGConfigDir
//
// Returns the path of the first file found, or an empty string.
// An explicit configPath is returned as is even when it does not exist,
// so that LoadConfigFile reports it.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Load resolves and reads the configuration file.
// A missing file is an error only when configPath was given explicitly;
// otherwise Load returns nil and no error.
func Load(configPath string) (*File, error) {
	path := FindConfigFile(configPath)
	if path == "" {
		return nil, nil
	}

	cf, err := LoadConfigFile(path)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) && configPath == "" {
			return nil, nil
		}
		if errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	return cf, nil
}
