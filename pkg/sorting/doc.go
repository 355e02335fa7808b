// Package sorting implements the comparison sorts benchmarked by sortbench.
//
// Every algorithm takes a dataset, sorts its own copy and returns it; the
// caller's slice is never touched. Items compare lexicographically.
//
// Algorithms:
//
//   - BruteForce: repeatedly remove the first minimum of a pool, O(n²)
//   - Greedy: in-place selection sort, O(n²), not stable
//   - Bubble: adjacent swaps over every shrinking pass, O(n²), stable
//   - Insertion: shift-and-insert, O(n²) worst, O(n) on sorted input
//   - Merge: top-down merge sort over index ranges, O(n log n), stable
//
// Run wraps an algorithm in the timing envelope used by the benchmark.
package sorting
