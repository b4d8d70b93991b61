package model

import "sort"

// MergedReport is the key-by-key sum of any number of AnalysisResults.
// It is the only input used for rendering reports.
type MergedReport struct {
	HandlerCounts HandlerCounts `json:"handler_counts"`
	TotalRequests int           `json:"total_requests"`
}

// NewMergedReport returns an empty MergedReport.
func NewMergedReport() *MergedReport {
	return &MergedReport{HandlerCounts: make(HandlerCounts)}
}

// Merge sums the given results. Order does not matter: addition is done
// independently per (endpoint, level) key.
func Merge(results ...AnalysisResult) *MergedReport {
	merged := NewMergedReport()
	for _, r := range results {
		merged.Add(r)
	}
	return merged
}

// Add folds a single result into m.
func (m *MergedReport) Add(r AnalysisResult) {
	m.TotalRequests += r.TotalRequests
	for endpoint, levels := range r.HandlerCounts {
		for level, count := range levels {
			m.HandlerCounts.Add(endpoint, level, count)
		}
	}
}

// Endpoints returns the endpoints in ascending byte order.
func (m *MergedReport) Endpoints() []string {
	endpoints := make([]string, 0, len(m.HandlerCounts))
	for endpoint := range m.HandlerCounts {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)
	return endpoints
}

// LevelTotal returns the sum of a level's count across all endpoints.
func (m *MergedReport) LevelTotal(level Level) int {
	var total int
	for _, levels := range m.HandlerCounts {
		total += levels[level]
	}
	return total
}
