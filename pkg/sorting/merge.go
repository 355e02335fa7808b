package sorting

import "github.com/yndnr/sortbench/internal/core/domain"

// Merge is a top-down merge sort over inclusive index ranges.
func Merge(input domain.Dataset) domain.Dataset {
	data := input.Clone()
	if len(data) > 1 {
		// One scratch buffer serves every merge.
		scratch := make(domain.Dataset, len(data))
		mergeSortRange(data, scratch, 0, len(data)-1)
	}
	return data
}

func mergeSortRange(data, scratch domain.Dataset, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSortRange(data, scratch, left, mid)
	mergeSortRange(data, scratch, mid+1, right)
	merge(data, scratch, left, mid, right)
}

// merge combines the sorted runs data[left:mid+1] and data[mid+1:right+1].
// Ties take the left element first.
func merge(data, scratch domain.Dataset, left, mid, right int) {
	copy(scratch[left:right+1], data[left:right+1])

	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		if scratch[i] <= scratch[j] {
			data[k] = scratch[i]
			i++
		} else {
			data[k] = scratch[j]
			j++
		}
		k++
	}
	for i <= mid {
		data[k] = scratch[i]
		i++
		k++
	}
	for j <= right {
		data[k] = scratch[j]
		j++
		k++
	}
}
