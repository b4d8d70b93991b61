// Package main provides the entry point for the logreport CLI.
//
// logreport reads Django request log files and prints, for every endpoint,
// how many requests were logged at each severity level.
//
// Usage:
//
//	logreport --report handlers app1.log app2.log
//
// See --help for all available options.
package main

func main() {
	Execute()
}
