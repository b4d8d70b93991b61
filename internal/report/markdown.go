package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/logreport/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs the handlers report as a Markdown document.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(results []model.AnalysisResult) (int, error) {
	report := model.Merge(results...)
	md := markdown.NewMarkdown(w.output)

	md.H1("Handlers Report")
	md.PlainText("")
	md.PlainTextf("Total requests: %d", report.TotalRequests)
	md.PlainText("")

	if len(report.HandlerCounts) == 0 {
		md.Note("No request log lines with an endpoint were found.")
		md.PlainText("")
	}

	md.Table(w.table(report))

	return len(md.String()), md.Build()
}

// table builds the Markdown table with title-cased level headings and a
// bold totals row.
func (w *MarkdownWriter) table(report *model.MergedReport) markdown.TableSet {
	grid := newHandlersTable(report)
	title := cases.Title(language.English)

	header := make([]string, len(grid.header))
	header[0] = "Handler"
	for i, level := range grid.header[1:] {
		header[i+1] = title.String(level)
	}

	rows := make([][]string, 0, len(grid.rows)+1)
	for _, row := range grid.rows {
		cells := make([]string, len(row))
		cells[0] = endpointCell(row[0])
		copy(cells[1:], row[1:])
		rows = append(rows, cells)
	}

	totals := make([]string, len(grid.totals))
	totals[0] = "**Total**"
	for i, sum := range grid.totals[1:] {
		totals[i+1] = "**" + sum + "**"
	}
	rows = append(rows, totals)

	return markdown.TableSet{Header: header, Rows: rows}
}

// markdownEscaper escapes characters with inline meaning in a table cell.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
)

// endpointCell renders an endpoint as a code span. Pipes are escaped so the
// table keeps its columns; endpoints containing a backtick cannot be a code
// span and are written as escaped plain text.
func endpointCell(endpoint string) string {
	if strings.Contains(endpoint, "`") {
		return markdownEscaper.Replace(endpoint)
	}
	return "`" + strings.ReplaceAll(endpoint, "|", `\|`) + "`"
}
