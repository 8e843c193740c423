package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func jlkissSeed() []uint64 {
	return []uint64{123456789123, 987654321987, uint64(43219876)<<32 | 6543217}
}

func TestJLKissSeedRoundTrip(t *testing.T) {
	j, err := NewJLKiss(jlkissSeed())
	assert.NoError(t, err)
	assert.Equal(t, j.SeedGet(), jlkissSeed())
}

func TestJLKissJumpAheadMatchesStepping(t *testing.T) {
	const n = 5000

	stepped, _ := NewJLKiss(jlkissSeed())
	for i := 0; i < n; i++ {
		stepped.Next64()
	}

	jumped, _ := NewJLKiss(jlkissSeed())
	jumped.JumpAhead(n)

	assert.Equal(t, jumped.SeedGet(), stepped.SeedGet())
}

func TestJLKissJumpAheadECMatchesJumpAhead(t *testing.T) {
	j1, _ := NewJLKiss(jlkissSeed())
	j2, _ := NewJLKiss(jlkissSeed())

	j1.JumpAhead(2066) // 2^11 + 18
	j2.JumpAheadEC(11, 18)

	assert.Equal(t, j1.SeedGet(), j2.SeedGet())
}

func TestJLKissJumpBackInvertsJumpAhead(t *testing.T) {
	j, _ := NewJLKiss(jlkissSeed())
	orig := j.SeedGet()

	j.JumpAhead(999999)
	j.JumpBack(999999)

	assert.Equal(t, j.SeedGet(), orig)
}

func TestJLKissJumpCycleIsIdentityOnOutput(t *testing.T) {
	a, _ := NewJLKiss(jlkissSeed())
	b, _ := NewJLKiss(jlkissSeed())
	b.JumpCycle()

	for i := 0; i < 1024; i++ {
		assert.Equal(t, a.Next64(), b.Next64())
	}
}

// TestJLKissReferenceVectors checks the Next64 sequence against the
// reference implementation's recurrence, computed directly from
// _examples/original_source/jlkiss.h's rng64 body for this seed.
func TestJLKissReferenceVectors(t *testing.T) {
	j, err := NewJLKiss(jlkissSeed())
	assert.NoError(t, err)

	assert.Equal(t, j.Next64(), uint64(15527384057137504232))
	assert.Equal(t, j.Next64(), uint64(15968976852414987393))
	assert.Equal(t, j.Next64(), uint64(5949061806212910748))
}
