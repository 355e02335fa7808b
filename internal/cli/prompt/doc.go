// Package prompt reads the benchmark parameters interactively.
//
// Answers are read as whitespace-separated tokens, so "250 5" on one line
// answers both questions at once. Each answer is validated before the
// next question is asked.
package prompt
