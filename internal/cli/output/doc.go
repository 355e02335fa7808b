// Package output provides output formatting for sortbench.
//
// This package handles all CLI output:
//
//   - formatter.go: Formatter interface and factory
//   - text.go: the canonical plain-text benchmark report
//   - report.go: report rendering in every supported format
//   - table.go: table rendering for summaries and listings
//   - json.go, yaml.go: machine-readable encodings
//   - progress.go: iteration progress bar on stderr
//
// Reports go to stdout; progress goes to stderr so it never mixes with
// machine-readable output.
package output
