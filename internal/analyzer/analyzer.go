package analyzer

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/logreport/internal/model"
)

const (
	// Marker identifies request log lines.
	Marker = "django.request"

	// Delimiter separates the log prefix from the request segment.
	Delimiter = Marker + ":"

	// levelTokenIndex is the position of the level among whitespace tokens,
	// after the date and time tokens.
	levelTokenIndex = 2

	// endpointTokenIndex is the position of the path inside the request
	// segment, after the HTTP method.
	endpointTokenIndex = 1
)

// Analyzer accumulates counts over a sequence of lines.
type Analyzer struct {
	result model.AnalysisResult

	// diagnostics receives one line per malformed marker line.
	diagnostics io.Writer

	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithDiagnostics sets where malformed-line diagnostics are written.
// The default is os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(a *Analyzer) {
		a.diagnostics = w
	}
}

// New creates an Analyzer with empty counters.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		result:      model.NewAnalysisResult(""),
		diagnostics: os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.diagnostics == nil {
		a.diagnostics = io.Discard
	}

	return a
}

// ProcessLine updates the counters for a single line and reports what
// happened to it. A trailing line terminator is allowed but not required.
func (a *Analyzer) ProcessLine(line string) model.LineOutcome {
	a.result.LinesRead++

	if !strings.Contains(line, Marker) {
		return model.LineOutcome{Kind: model.LineIgnored}
	}

	// Counted before parsing so malformed marker lines are part of the total.
	a.result.TotalRequests++

	outcome := parseLine(line)
	switch outcome.Kind {
	case model.LineCounted:
		a.result.HandlerCounts.Add(outcome.Endpoint, outcome.Level, 1)
		if !outcome.Level.Known() {
			a.logger.Debug("counted request with unknown level",
				"source", a.result.Source,
				"level", outcome.Level,
				"endpoint", outcome.Endpoint,
			)
		}
	case model.LineMalformed:
		a.result.MalformedLines++
		a.reportMalformed(line, outcome.Err)
	}

	return outcome
}

// parseLine extracts the level and endpoint from a marker line.
func parseLine(line string) model.LineOutcome {
	tokens := strings.Fields(line)
	if len(tokens) <= levelTokenIndex {
		return model.LineOutcome{Kind: model.LineMalformed, Err: ErrTooFewTokens}
	}
	level := model.Level(tokens[levelTokenIndex])

	_, request, found := strings.Cut(line, Delimiter)
	if !found {
		return model.LineOutcome{Kind: model.LineMalformed, Level: level, Err: ErrMissingDelimiter}
	}

	requestTokens := strings.Fields(request)
	if len(requestTokens) <= endpointTokenIndex {
		return model.LineOutcome{Kind: model.LineNoEndpoint, Level: level}
	}

	return model.LineOutcome{
		Kind:     model.LineCounted,
		Level:    level,
		Endpoint: requestTokens[endpointTokenIndex],
	}
}

// reportMalformed writes the diagnostic line for a skipped marker line.
func (a *Analyzer) reportMalformed(line string, err error) {
	line = strings.TrimRight(line, "\r\n")

	a.logger.Debug("skipping malformed request line",
		"source", a.result.Source,
		"error", err,
		"line", line,
	)

	// A failing diagnostics writer must not abort the run.
	_, _ = fmt.Fprintf(a.diagnostics, "Error processing line: %v - %s\n", err, line)
}

// maxLineSize bounds the line buffer. Lines are otherwise unlimited.
const maxLineSize = math.MaxInt32

// ProcessReader feeds every line of r to ProcessLine, in order.
// Lines end at "\n", "\r\n" or a lone "\r"; the terminator is not passed on.
// It stops at the first read error, at invalid UTF-8, or when ctx is done.
func (a *Analyzer) ProcessReader(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	scanner.Split(scanLines)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}
		lineNo++

		line := scanner.Text()
		if !utf8.ValidString(line) {
			return fmt.Errorf("line %d: %w", lineNo, ErrInvalidEncoding)
		}
		a.ProcessLine(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
	}
	return nil
}

// scanLines is a bufio.SplitFunc that accepts "\n", "\r\n" and "\r" as
// line terminators. A final line without terminator is returned as is.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		default:
			// A trailing "\r" may be the first half of "\r\n".
			return 0, nil, nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ProcessFile analyzes the file at path and returns the result snapshot.
// Open and read errors are returned unchanged in meaning, wrapped with path.
func (a *Analyzer) ProcessFile(ctx context.Context, path string) (model.AnalysisResult, error) {
	f, err := os.Open(path) //nolint:gosec // Log file paths are provided by the user
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	a.result.Source = path
	a.logger.Debug("processing log file", "path", path)

	if err := a.ProcessReader(ctx, f); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("failed to process %s: %w", path, err)
	}

	result := a.Result()
	a.logger.Debug("processed log file",
		"path", path,
		"lines", result.LinesRead,
		"requests", result.TotalRequests,
		"malformed", result.MalformedLines,
	)

	return result, nil
}

// Result returns a snapshot of the current counters. Later calls to
// ProcessLine do not affect a returned snapshot.
func (a *Analyzer) Result() model.AnalysisResult {
	return a.result.Clone()
}
