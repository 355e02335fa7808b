// Package command provides the CLI command definitions for sortbench.
//
// It uses urfave/cli/v2 for command parsing. The benchmark (run) is the
// default action, so "sortbench -n 100 -i 5" and "sortbench run -n 100 -i 5"
// are equivalent.
package command
