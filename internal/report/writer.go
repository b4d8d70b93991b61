package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/logreport/internal/model"
)

// Format is an output format for reports.
type Format string

const (
	// FormatText is the fixed-width table.
	FormatText Format = "text"

	// FormatJSON is structured JSON.
	FormatJSON Format = "json"

	// FormatMarkdown is a GitHub Flavored Markdown document.
	FormatMarkdown Format = "markdown"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatMarkdown}
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// ErrUnsupportedFormat is returned by NewWriter when a report type cannot
// be rendered in the requested format.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Writer defines the interface for report output.
type Writer interface {
	// Write renders the report for the per-file results to the configured
	// destination. Returns the number of bytes written and any error encountered.
	Write(results []model.AnalysisResult) (int, error)
}

// NewWriter returns the Writer for reportType in format.
// Text output is produced by the registered generator of reportType; JSON and
// Markdown are structured layouts available for the handlers report only.
func NewWriter(reportType string, format Format, output io.Writer) (Writer, error) {
	gen, err := Lookup(reportType)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatText, "":
		return NewTextWriter(output, gen), nil
	case FormatJSON, FormatMarkdown:
		if reportType != HandlersReport {
			return nil, fmt.Errorf("%w %q for report %q", ErrUnsupportedFormat, format, reportType)
		}
		if format == FormatJSON {
			return NewJSONWriter(output, WithPrettyPrint()), nil
		}
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// TextWriter outputs the text produced by a Generator followed by a newline.
type TextWriter struct {
	baseWriter
	generate Generator
}

// NewTextWriter creates a TextWriter that renders with gen.
// A nil gen renders the handlers report.
func NewTextWriter(output io.Writer, gen Generator) *TextWriter {
	if gen == nil {
		gen = GenerateHandlersReport
	}
	return &TextWriter{baseWriter: newBaseWriter(output), generate: gen}
}

// Write outputs the generated report.
func (w *TextWriter) Write(results []model.AnalysisResult) (int, error) {
	return io.WriteString(w.output, w.generate(results)+"\n")
}
