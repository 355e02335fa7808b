// Package config provides CLI configuration for sortbench.
//
// This package defines the CLI configuration:
//
//   - spec.go: Config struct and defaults
//   - loader.go: layered loading (defaults, ~/.sortbench/config.yaml, env, flags)
//   - verify.go: validation of loaded values
//
// Problem size and iteration count are deliberately left without
// defaults: when no source sets them the CLI prompts for them.
package config
