// Package domain defines the core domain models for sortbench.
package domain

import "time"

// AlgorithmID identifies a sorting strategy.
type AlgorithmID string

// Known algorithms, listed in report order.
const (
	AlgorithmBruteForce AlgorithmID = "bruteforce"
	AlgorithmGreedy     AlgorithmID = "greedy"
	AlgorithmBubble     AlgorithmID = "bubble"
	AlgorithmInsertion  AlgorithmID = "insertion"
	AlgorithmMerge      AlgorithmID = "merge"
)

// Algorithm describes a sorting strategy without its implementation.
type Algorithm struct {
	ID         AlgorithmID `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Stable     bool        `json:"stable" yaml:"stable"`
	Complexity string      `json:"complexity" yaml:"complexity" table:"wide"`
}

// SortResult pairs the sorted output of one algorithm invocation with
// the wall-clock time it took.
type SortResult struct {
	Sorted  Dataset
	Elapsed time.Duration
}

// Milliseconds returns the elapsed time in fractional milliseconds.
func (r SortResult) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}
