package sorting

import "github.com/yndnr/sortbench/internal/core/domain"

// BruteForce repeatedly scans the remaining pool for its minimum, appends
// it to the output and removes it from the pool. Ties resolve to the first
// occurrence in scan order.
func BruteForce(input domain.Dataset) domain.Dataset {
	pool := input.Clone()
	out := make(domain.Dataset, 0, len(pool))

	for len(pool) > 0 {
		minIdx := 0
		for j := 1; j < len(pool); j++ {
			if pool[j] < pool[minIdx] {
				minIdx = j
			}
		}
		out = append(out, pool[minIdx])
		pool = append(pool[:minIdx], pool[minIdx+1:]...)
	}

	return out
}
