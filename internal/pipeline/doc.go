// Package pipeline runs the analysis of many log files in parallel.
//
// Each file is handled by its own FileProcessor instance, so workers share
// no mutable state and need no locking. The BatchProcessor bounds the
// number of files in flight with errgroup and waits for every worker before
// returning, so the report stage always sees complete results.
//
// A file that cannot be opened or read fails the whole batch. Malformed
// lines inside a file are handled by the analyzer and never reach this
// package.
package pipeline
