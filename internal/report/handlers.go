package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/logreport/internal/model"
)

// handlerColumn is the header of the endpoint column.
const handlerColumn = "HANDLER"

// handlersTable is the cell grid shared by all handlers report formats.
type handlersTable struct {
	header []string
	rows   [][]string
	totals []string
}

// newHandlersTable lays out a merged report as rows of cells.
// Columns are the endpoint followed by the report levels in fixed order;
// endpoints are sorted and unobserved levels render as "0".
func newHandlersTable(merged *model.MergedReport) handlersTable {
	levels := model.ReportLevels()

	header := make([]string, 0, len(levels)+1)
	header = append(header, handlerColumn)
	for _, level := range levels {
		header = append(header, level.String())
	}

	endpoints := merged.Endpoints()
	rows := make([][]string, 0, len(endpoints))
	sums := make([]int, len(levels))
	for _, endpoint := range endpoints {
		row := make([]string, 0, len(levels)+1)
		row = append(row, endpoint)
		for i, level := range levels {
			count := merged.HandlerCounts.Get(endpoint, level)
			sums[i] += count
			row = append(row, strconv.Itoa(count))
		}
		rows = append(rows, row)
	}

	totals := make([]string, 0, len(levels)+1)
	totals = append(totals, "")
	for _, sum := range sums {
		totals = append(totals, strconv.Itoa(sum))
	}

	return handlersTable{header: header, rows: rows, totals: totals}
}

// widths returns the display width of every column over header, rows and totals.
func (t handlersTable) widths() []int {
	widths := make([]int, len(t.header))
	measure := func(row []string) {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	measure(t.totals)

	return widths
}

// GenerateHandlersReport merges results and renders the handlers table.
//
// The output starts with "Total requests: N" and a blank line, followed by
// the header, one row per endpoint and a totals row. Every cell is
// left-justified to its column width and followed by a single space.
// The returned text has no trailing newline.
func GenerateHandlersReport(results []model.AnalysisResult) string {
	return renderHandlers(model.Merge(results...))
}

// renderHandlers renders an already merged report as a text table.
func renderHandlers(merged *model.MergedReport) string {
	table := newHandlersTable(merged)
	widths := table.widths()

	lines := make([]string, 0, len(table.rows)+4)
	lines = append(lines,
		fmt.Sprintf("Total requests: %d", merged.TotalRequests),
		"",
		formatRow(table.header, widths),
	)
	for _, row := range table.rows {
		lines = append(lines, formatRow(row, widths))
	}
	lines = append(lines, formatRow(table.totals, widths))

	return strings.Join(lines, "\n")
}

// formatRow pads each cell to its column width and appends a separator space.
func formatRow(cells []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		// fmt pads by rune count, matching widths().
		fmt.Fprintf(&sb, "%-*s ", widths[i], cell)
	}
	return sb.String()
}
