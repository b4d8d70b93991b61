package model

// Level is the severity token found at a fixed position of a request log line.
//
// Level is a string type rather than an enum because the log format is not
// controlled by us: an unrecognized token is still a valid Level and is
// tallied under its literal text.
type Level string

const (
	// LevelDebug is the Django DEBUG level.
	LevelDebug Level = "DEBUG"

	// LevelInfo is the Django INFO level.
	LevelInfo Level = "INFO"

	// LevelWarning is the Django WARNING level.
	LevelWarning Level = "WARNING"

	// LevelError is the Django ERROR level.
	LevelError Level = "ERROR"

	// LevelCritical is the Django CRITICAL level.
	LevelCritical Level = "CRITICAL"
)

// reportLevels is the fixed column order used by every report.
var reportLevels = []Level{
	LevelDebug,
	LevelInfo,
	LevelWarning,
	LevelError,
	LevelCritical,
}

// ReportLevels returns the known levels in report column order.
// The returned slice is a copy and may be modified by the caller.
func ReportLevels() []Level {
	levels := make([]Level, len(reportLevels))
	copy(levels, reportLevels)
	return levels
}

// String returns the level token.
func (l Level) String() string {
	return string(l)
}

// Known reports whether l is one of the five report levels.
func (l Level) Known() bool {
	for _, known := range reportLevels {
		if l == known {
			return true
		}
	}
	return false
}
