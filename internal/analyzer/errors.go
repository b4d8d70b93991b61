package analyzer

import "errors"

// Structural errors for marker lines. These never escape the Analyzer: the
// line is reported on the diagnostics writer and processing continues.
var (
	// ErrTooFewTokens is returned when a marker line has no level token.
	ErrTooFewTokens = errors.New("line has fewer than 3 whitespace-separated tokens")

	// ErrMissingDelimiter is returned when a marker line lacks "django.request:".
	ErrMissingDelimiter = errors.New("request delimiter \"django.request:\" not found")
)

// ErrInvalidEncoding is returned when the input is not valid UTF-8.
// Unlike the structural errors it aborts processing of the whole input.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")
