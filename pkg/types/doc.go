// Package types defines the core types and interfaces used throughout templater.
// This includes the filesystem interface consumed by the walker, materializer
// and reporter, the flag set, and the per-file and per-run result structures.
package types
