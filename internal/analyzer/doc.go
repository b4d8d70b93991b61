// Package analyzer counts Django request log lines per endpoint and level.
//
// An Analyzer owns the counters for exactly one input. It is not safe for
// concurrent use; parallel processing creates one Analyzer per file and
// merges the resulting snapshots afterwards (see the pipeline package).
//
// Only lines containing the "django.request" marker are considered. Such a
// line is expected to look like:
//
//	2025-03-28 12:44:46,000 INFO django.request: GET /api/v1/reviews/ 204 OK [192.168.1.59]
//
// The third whitespace-separated token is the level, and the endpoint is the
// second token after "django.request:". Marker lines with an unexpected
// layout are reported on the diagnostics writer and skipped; they still
// count towards the request total.
package analyzer
