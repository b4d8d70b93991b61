// Package report turns analysis results into human- and machine-readable reports.
//
// The handlers report merges any number of per-file results and renders one
// row per endpoint with a column per log level. Rendering is pure: the same
// merged input always yields byte-identical output.
//
// Output formats are provided by Writer implementations:
//   - TextWriter: fixed-width table for terminals (the default)
//   - JSONWriter: structured output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown table
package report
