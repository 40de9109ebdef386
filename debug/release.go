//go:build !debug

// Package debug carries the build-time flag gating verbose diagnostics.
package debug

const Debug = false
