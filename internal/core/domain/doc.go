// Package domain defines the core domain models for sortbench.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - Item: a single sortable token ("A05", "Z99")
//   - Dataset: an ordered sequence of items with copy and order helpers
//   - SortResult: the output and timing of one algorithm invocation
//   - Algorithm: identity and display name of a sorting strategy
//   - Errors: domain-specific error definitions
package domain
