// Package model defines the data structures shared by the analyzer, the
// pipeline and the report writers.
//
// This package contains the following main types:
//   - Level: the severity token of a request log line
//   - AnalysisResult: the counts collected from a single log file
//   - LineOutcome: what happened to one input line
//   - MergedReport: the union of several AnalysisResults
//
// The types are plain values with JSON tags so the report writers can
// serialize them directly.
package model
