package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestSeedFromKeyDeterministic(t *testing.T) {
	a := SeedFromKey([]byte("a seed key"), 4)
	b := SeedFromKey([]byte("a seed key"), 4)
	assert.Equal(t, a, b)
}

func TestSeedFromKeyVariesByCounter(t *testing.T) {
	s := SeedFromKey([]byte("a seed key"), 4)
	for i := range s {
		for j := range s {
			if i == j {
				continue
			}
			assert.That(t, s[i] != s[j])
		}
	}
}

func TestSeedFromKeyVariesByKey(t *testing.T) {
	a := SeedFromKey([]byte("key one"), 2)
	b := SeedFromKey([]byte("key two"), 2)
	assert.That(t, a[0] != b[0])
}

func TestSeedFromKeyFeedsJKiss(t *testing.T) {
	seed := SeedFromKey([]byte("deterministic-generator-seed"), 4)
	seed32 := make([]uint32, len(seed))
	for i, s := range seed {
		seed32[i] = uint32(s)
	}

	k, err := NewJKiss(seed32)
	assert.NoError(t, err)

	// Smoke-check: the derived seed produces output, and is fully
	// reproducible from the same key.
	k2, _ := NewJKiss(seed32)
	assert.Equal(t, k.Next32(), k2.Next32())
}
