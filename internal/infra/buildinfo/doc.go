// Package buildinfo provides build information for sortbench.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// Commit and the Go version fall back to what the Go toolchain embedded
// in the binary when they were not injected.
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/sortbench/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
