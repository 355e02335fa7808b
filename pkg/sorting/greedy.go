package sorting

import "github.com/yndnr/sortbench/internal/core/domain"

// Greedy is an in-place selection sort: for each position i it swaps the
// minimum of data[i:] into place.
func Greedy(input domain.Dataset) domain.Dataset {
	data := input.Clone()

	for i := 0; i < len(data); i++ {
		minIdx := i
		for j := i + 1; j < len(data); j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		data[i], data[minIdx] = data[minIdx], data[i]
	}

	return data
}
