// Package log builds the slog loggers used by logreport.
//
// Raw request log lines end up in debug output when a line cannot be
// parsed. Such lines often carry credentials in query strings
// (?token=..., ?api_key=...) or bearer tokens, so the RedactingHandler masks
// them before the record reaches the underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("skipping malformed request line",
//	    "line", "GET /login/?token=abc123", // logged as "GET /login/?token=***REDACTED***"
//	)
package log
