package sorting

import "github.com/yndnr/sortbench/internal/core/domain"

// Insertion grows a sorted prefix one element at a time, shifting larger
// elements one slot right to open a gap for the key.
func Insertion(input domain.Dataset) domain.Dataset {
	data := input.Clone()

	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}

	return data
}
