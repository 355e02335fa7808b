// Package sorting implements the comparison sorts benchmarked by sortbench.
package sorting

import (
	"time"

	"github.com/yndnr/sortbench/internal/core/domain"
)

// Func sorts a copy of its input and returns it.
type Func func(domain.Dataset) domain.Dataset

// Sorter binds an algorithm description to its implementation.
type Sorter struct {
	domain.Algorithm
	Sort Func
}

// registry lists the sorters in report order.
var registry = []Sorter{
	{
		Algorithm: domain.Algorithm{ID: domain.AlgorithmBruteForce, Name: "Brute Force", Stable: true, Complexity: "O(n^2)"},
		Sort:      BruteForce,
	},
	{
		Algorithm: domain.Algorithm{ID: domain.AlgorithmGreedy, Name: "Greedy", Stable: false, Complexity: "O(n^2)"},
		Sort:      Greedy,
	},
	{
		Algorithm: domain.Algorithm{ID: domain.AlgorithmBubble, Name: "Bubble", Stable: true, Complexity: "O(n^2)"},
		Sort:      Bubble,
	},
	{
		Algorithm: domain.Algorithm{ID: domain.AlgorithmInsertion, Name: "Insertion", Stable: true, Complexity: "O(n^2)"},
		Sort:      Insertion,
	},
	{
		Algorithm: domain.Algorithm{ID: domain.AlgorithmMerge, Name: "Merge", Stable: true, Complexity: "O(n log n)"},
		Sort:      Merge,
	},
}

// All returns every sorter in report order.
func All() []Sorter {
	out := make([]Sorter, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the sorter registered under id.
func Lookup(id domain.AlgorithmID) (Sorter, error) {
	for _, s := range registry {
		if s.ID == id {
			return s, nil
		}
	}
	return Sorter{}, domain.ErrUnknownAlgorithm.WithDetails(string(id))
}

// Run invokes sort on input and measures the wall-clock time of the call,
// including the copy the algorithm makes of its input.
// time.Now carries a monotonic reading, so Since is immune to clock steps.
func Run(sort Func, input domain.Dataset) domain.SortResult {
	start := time.Now()
	sorted := sort(input)
	elapsed := time.Since(start)

	return domain.SortResult{
		Sorted:  sorted,
		Elapsed: elapsed,
	}
}

// Run invokes the sorter through the package level Run.
func (s Sorter) Run(input domain.Dataset) domain.SortResult {
	return Run(s.Sort, input)
}
