package model

// HandlerCounts maps an endpoint to the number of requests seen per level.
// Keys are only present once observed; there are no zero-valued entries.
type HandlerCounts map[string]map[Level]int

// Add increments the count for endpoint and level by n.
func (h HandlerCounts) Add(endpoint string, level Level, n int) {
	levels, ok := h[endpoint]
	if !ok {
		levels = make(map[Level]int)
		h[endpoint] = levels
	}
	levels[level] += n
}

// Get returns the count for endpoint and level, or 0 if never observed.
func (h HandlerCounts) Get(endpoint string, level Level) int {
	return h[endpoint][level]
}

// Clone returns a deep copy of h.
func (h HandlerCounts) Clone() HandlerCounts {
	clone := make(HandlerCounts, len(h))
	for endpoint, levels := range h {
		copied := make(map[Level]int, len(levels))
		for level, count := range levels {
			copied[level] = count
		}
		clone[endpoint] = copied
	}
	return clone
}

// AnalysisResult is the outcome of scanning a single log file.
//
// TotalRequests counts every line containing the request marker, including
// lines that could not be parsed. Malformed lines are therefore visible in
// TotalRequests and MalformedLines but never in HandlerCounts, so the sum of
// HandlerCounts is allowed to be lower than TotalRequests.
type AnalysisResult struct {
	// Source is the path of the analyzed file. Empty when the result was
	// produced from a reader rather than a file.
	Source string `json:"source,omitempty"`

	// HandlerCounts holds per-endpoint, per-level request counts.
	HandlerCounts HandlerCounts `json:"handler_counts"`

	// TotalRequests is the number of marker lines seen.
	TotalRequests int `json:"total_requests"`

	// LinesRead is the number of lines read, marker or not.
	LinesRead int `json:"lines_read"`

	// MalformedLines is the number of marker lines that failed structural parsing.
	MalformedLines int `json:"malformed_lines"`
}

// NewAnalysisResult returns an empty result for the given source.
func NewAnalysisResult(source string) AnalysisResult {
	return AnalysisResult{
		Source:        source,
		HandlerCounts: make(HandlerCounts),
	}
}

// Clone returns a deep copy of r, safe to hand to another goroutine.
func (r AnalysisResult) Clone() AnalysisResult {
	r.HandlerCounts = r.HandlerCounts.Clone()
	return r
}
