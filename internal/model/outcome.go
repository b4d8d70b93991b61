package model

// LineKind classifies what happened to a single input line.
type LineKind int

const (
	// LineIgnored means the line carried no request marker and changed nothing.
	LineIgnored LineKind = iota

	// LineCounted means the line was counted for an endpoint and level.
	LineCounted

	// LineNoEndpoint means the line was a well-formed request line without a
	// path token. It is only counted in the request total.
	LineNoEndpoint

	// LineMalformed means the line carried the marker but its layout was not
	// recognized. It is only counted in the request total.
	LineMalformed
)

// String returns a short name for the kind.
func (k LineKind) String() string {
	switch k {
	case LineIgnored:
		return "ignored"
	case LineCounted:
		return "counted"
	case LineNoEndpoint:
		return "no_endpoint"
	case LineMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LineOutcome is the explicit result of processing one line.
type LineOutcome struct {
	Kind     LineKind
	Endpoint string
	Level    Level

	// Err describes the structural problem when Kind is LineMalformed.
	Err error
}
