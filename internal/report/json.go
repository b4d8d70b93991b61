package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/logreport/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON using indent for each level.
func WithIndent(indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// HandlerRow is one endpoint of the JSON handlers report.
type HandlerRow struct {
	Handler string              `json:"handler"`
	Counts  map[model.Level]int `json:"counts"`
}

// JSONReport is the JSON document written by JSONWriter.
// Handlers are sorted by endpoint and every row carries all report levels.
type JSONReport struct {
	Report        string              `json:"report"`
	TotalRequests int                 `json:"total_requests"`
	Levels        []model.Level       `json:"levels"`
	Handlers      []HandlerRow        `json:"handlers"`
	Totals        map[model.Level]int `json:"totals"`
}

// NewJSONReport builds the JSON document for a merged report.
func NewJSONReport(report *model.MergedReport) *JSONReport {
	levels := model.ReportLevels()

	doc := &JSONReport{
		Report:        HandlersReport,
		TotalRequests: report.TotalRequests,
		Levels:        levels,
		Handlers:      make([]HandlerRow, 0, len(report.HandlerCounts)),
		Totals:        make(map[model.Level]int, len(levels)),
	}

	for _, endpoint := range report.Endpoints() {
		row := HandlerRow{Handler: endpoint, Counts: make(map[model.Level]int, len(levels))}
		for _, level := range levels {
			row.Counts[level] = report.HandlerCounts.Get(endpoint, level)
		}
		doc.Handlers = append(doc.Handlers, row)
	}
	for _, level := range levels {
		doc.Totals[level] = report.LevelTotal(level)
	}

	return doc
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(results []model.AnalysisResult) (int, error) {
	var data []byte
	var err error

	doc := NewJSONReport(model.Merge(results...))
	if w.indent {
		data, err = json.MarshalIndent(doc, "", w.indentString)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
