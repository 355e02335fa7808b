// Package confloader provides the layered configuration loader.
//
// It uses koanf to merge configuration from several sources into a typed
// struct. Priority (highest to lowest):
//
//  1. Command-line flags (passed as a map)
//  2. Environment variables (SORTBENCH_ prefix)
//  3. Configuration file (YAML)
//  4. Default values (passed as a map)
//
// Keys are dot separated and lower case ("bench.size"); the environment
// variable SORTBENCH_BENCH_SIZE maps to the same key.
package confloader
