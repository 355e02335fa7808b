// Package service provides the benchmark driver for sortbench.
//
// Benchmark runs every registered sorting algorithm over fresh copies of a
// single dataset for a number of iterations, accumulates per-algorithm
// timings and keeps the sorted output of the first iteration for display.
//
// Execution is strictly sequential: algorithms never run concurrently, so
// one measurement cannot disturb another.
package service
