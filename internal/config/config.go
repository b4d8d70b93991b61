package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/nao1215/logreport/internal/report"
	"github.com/shirou/gopsutil/v3/cpu"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "logreport"

	// DefaultFormat is the report format used when none is given.
	DefaultFormat = report.FormatText
)

// Config holds all options for a single logreport run.
// It is populated from CLI flags and the config file and passed to the
// run explicitly rather than kept in global state.
type Config struct {
	// LogFiles is the list of log file paths to analyze, in command-line order.
	LogFiles []string

	// ReportType is the name of the report to generate.
	// Only "handlers" is currently registered.
	ReportType string

	// Format selects the report writer (text, json or markdown).
	Format report.Format

	// OutputFile is the file the report is written to.
	// When empty, the report goes to stdout.
	OutputFile string

	// Concurrency is the maximum number of files analyzed at the same time.
	Concurrency int

	// MetricsFile is the path of the Prometheus textfile written after the run.
	// When empty, no metrics are written.
	MetricsFile string

	// ConfigFilePath is the explicitly requested configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		Concurrency: DefaultConcurrency(),
	}
}

// DefaultConcurrency returns the number of logical CPUs.
// It falls back to runtime.NumCPU when the count cannot be read from the host.
func DefaultConcurrency() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// XDGConfigDir returns the XDG config directory for logreport.
// On Linux: ~/.config/logreport
// On macOS: ~/Library/Application Support/logreport
// On Windows: %APPDATA%\logreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Apply copies the values set in the config file into c.
// Only fields whose flag was not changed on the command line are overwritten;
// changed reports whether the named flag was set explicitly.
func (c *Config) Apply(f *File, changed func(flag string) bool) {
	if f == nil {
		return
	}
	if f.Concurrency > 0 && !changed("concurrency") {
		c.Concurrency = f.Concurrency
	}
	if f.Format != "" && !changed("format") {
		c.Format = report.Format(f.Format)
	}
	if f.Output != "" && !changed("output") {
		c.OutputFile = f.Output
	}
	if f.MetricsFile != "" && !changed("metrics-file") {
		c.MetricsFile = f.MetricsFile
	}
	if f.Verbose && !changed("verbose") {
		c.Verbose = true
	}
}

// Validate checks if the configuration is valid.
// Checks run in a fixed order and the first failure is returned:
// log files must exist, then the report type must be known, then the
// format and concurrency are checked. Nothing is processed before this passes.
func (c *Config) Validate() error {
	if len(c.LogFiles) == 0 {
		return ErrNoLogFiles
	}

	for _, path := range c.LogFiles {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrLogFileNotFound, path)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrLogFileNotFound, path)
		}
	}

	if _, err := report.Lookup(c.ReportType); err != nil {
		return err
	}

	if !c.Format.Valid() {
		return fmt.Errorf("%w %q (available: %v)", ErrUnknownFormat, c.Format, report.Formats())
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}
