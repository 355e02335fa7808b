// Package domain defines the core domain models for sortbench.
package domain

import (
	"encoding/binary"
	"strings"

	"github.com/spaolacci/murmur3"
)

// ItemLength is the fixed length of an Item: one letter and two digits.
const ItemLength = 3

// Item is a sortable token made of one uppercase ASCII letter followed by
// a zero-padded two-digit number, e.g. "B07".
//
// Items compare lexicographically, byte by byte.
type Item string

// Valid reports whether the item matches the letter+two-digit format.
func (i Item) Valid() bool {
	if len(i) != ItemLength {
		return false
	}
	if i[0] < 'A' || i[0] > 'Z' {
		return false
	}
	return isDigit(i[1]) && isDigit(i[2])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Dataset is an ordered sequence of items.
type Dataset []Item

// Clone returns an independent copy of the dataset.
// A nil dataset clones to an empty, non-nil one.
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}

// IsSorted reports whether the dataset is in non-decreasing order.
func (d Dataset) IsSorted() bool {
	for i := 1; i < len(d); i++ {
		if d[i] < d[i-1] {
			return false
		}
	}
	return true
}

// Equal reports whether both datasets hold the same items in the same order.
func (d Dataset) Equal(other Dataset) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Counts returns the multiset of items as item -> occurrences.
func (d Dataset) Counts() map[Item]int {
	counts := make(map[Item]int, len(d))
	for _, it := range d {
		counts[it]++
	}
	return counts
}

// IsPermutationOf reports whether d holds exactly the items of other,
// regardless of order.
func (d Dataset) IsPermutationOf(other Dataset) bool {
	if len(d) != len(other) {
		return false
	}
	counts := d.Counts()
	for _, it := range other {
		counts[it]--
		if counts[it] < 0 {
			return false
		}
	}
	return true
}

// Fingerprint returns a 64-bit murmur3 hash of the items in order.
// Two runs over the same dataset report the same fingerprint.
func (d Dataset) Fingerprint() uint64 {
	h := murmur3.New64()
	var sep [binary.MaxVarintLen64]byte
	for _, it := range d {
		h.Write([]byte(it))
		// Length-prefix each item so ("AB","C") and ("A","BC") differ.
		n := binary.PutUvarint(sep[:], uint64(len(it)))
		h.Write(sep[:n])
	}
	return h.Sum64()
}

// Strings returns the items as plain strings.
func (d Dataset) Strings() []string {
	out := make([]string, len(d))
	for i, it := range d {
		out[i] = string(it)
	}
	return out
}

// String joins the items with single spaces.
func (d Dataset) String() string {
	return strings.Join(d.Strings(), " ")
}
