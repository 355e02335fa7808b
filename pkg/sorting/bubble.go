package sorting

import "github.com/yndnr/sortbench/internal/core/domain"

// Bubble swaps strictly out-of-order neighbours over n passes of
// shrinking length. Every pass runs, so sorted input costs the same as
// any other.
func Bubble(input domain.Dataset) domain.Dataset {
	data := input.Clone()
	n := len(data)

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}

	return data
}
