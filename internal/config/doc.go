// Package config provides the configuration structures for logreport.
// It holds the run options collected from CLI flags and the optional
// YAML configuration file, together with their defaults and validation.
package config
