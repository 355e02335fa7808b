// Package itemgen generates random datasets for sortbench.
package itemgen

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"github.com/yndnr/sortbench/internal/core/domain"
)

const (
	letterCount = 26
	numberRange = 100
)

// Generator produces random items from a seeded PCG source.
type Generator struct {
	seed uint64
	rng  *mrand.Rand
}

// New creates a generator for the given seed.
// A zero seed is replaced by one drawn from crypto/rand.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = randomSeed()
	}
	return &Generator{
		seed: seed,
		rng:  mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the effective seed of the generator.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Item returns one random item.
func (g *Generator) Item() domain.Item {
	letter := byte('A' + g.rng.IntN(letterCount))
	n := g.rng.IntN(numberRange)
	return domain.Item([]byte{letter, byte('0' + n/10), byte('0' + n%10)})
}

// Generate returns n random items. Duplicates are expected.
// n <= 0 yields an empty dataset.
func (g *Generator) Generate(n int) domain.Dataset {
	if n <= 0 {
		return domain.Dataset{}
	}
	data := make(domain.Dataset, n)
	for i := range data {
		data[i] = g.Item()
	}
	return data
}

func randomSeed() uint64 {
	var b [8]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(err)
		}
		if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
			return s
		}
	}
}
