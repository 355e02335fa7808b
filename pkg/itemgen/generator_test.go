package itemgen

import (
	"testing"
)

func TestGenerate_Count(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{250, 250},
	}

	for _, tt := range tests {
		data := New(42).Generate(tt.n)
		if data == nil {
			t.Fatalf("Generate(%d) returned nil", tt.n)
		}
		if len(data) != tt.want {
			t.Errorf("Generate(%d) len = %d, want %d", tt.n, len(data), tt.want)
		}
	}
}

func TestGenerate_Format(t *testing.T) {
	data := New(7).Generate(2000)
	for i, it := range data {
		if !it.Valid() {
			t.Fatalf("item %d = %q is not letter+two digits", i, it)
		}
	}
}

func TestGenerate_Coverage(t *testing.T) {
	data := New(99).Generate(20000)

	letters := make(map[byte]bool)
	padded := false
	for _, it := range data {
		letters[it[0]] = true
		if it[1] == '0' {
			padded = true
		}
	}

	if len(letters) != letterCount {
		t.Errorf("saw %d distinct letters, want %d", len(letters), letterCount)
	}
	if !padded {
		t.Error("expected some numbers below 10 to be zero padded")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := New(1234).Generate(100)
	b := New(1234).Generate(100)
	if !a.Equal(b) {
		t.Error("same seed should produce the same dataset")
	}

	c := New(4321).Generate(100)
	if a.Equal(c) {
		t.Error("different seeds should produce different datasets")
	}
}

func TestNew_RandomSeed(t *testing.T) {
	g := New(0)
	if g.Seed() == 0 {
		t.Error("zero seed should be replaced by a random one")
	}
	if New(5).Seed() != 5 {
		t.Error("explicit seed should be kept")
	}
}
