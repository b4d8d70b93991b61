package config

import (
	"errors"

	"github.com/nao1215/logreport/internal/report"
)

// Configuration validation errors returned by Config.Validate.
// Callers match them with errors.Is.
var (
	// ErrNoLogFiles is returned when no log file path was given.
	ErrNoLogFiles = errors.New("no log files specified")

	// ErrLogFileNotFound is returned when a log file path does not exist
	// or is not a regular file.
	ErrLogFileNotFound = errors.New("log file not found")

	// ErrUnknownReportType is returned when the report name is not registered.
	// It is the same value as report.ErrUnknownReportType.
	ErrUnknownReportType = report.ErrUnknownReportType

	// ErrUnknownFormat is returned when the output format is not supported.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrInvalidConcurrency is returned when the worker count is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)
