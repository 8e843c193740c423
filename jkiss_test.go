package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func jkissSeed() []uint32 {
	return []uint32{1234567, 987654321, 43219876, 6543217}
}

func TestJKissSeedRoundTrip(t *testing.T) {
	k, err := NewJKiss(jkissSeed())
	assert.NoError(t, err)
	assert.Equal(t, k.SeedGet(), jkissSeed())
}

func TestJKissJumpAheadMatchesStepping(t *testing.T) {
	const n = 10000

	stepped, _ := NewJKiss(jkissSeed())
	for i := 0; i < n; i++ {
		stepped.Next32()
	}

	jumped, _ := NewJKiss(jkissSeed())
	jumped.JumpAhead(n)

	assert.Equal(t, jumped.SeedGet(), stepped.SeedGet())
}

func TestJKissJumpAheadECMatchesJumpAhead(t *testing.T) {
	k1, _ := NewJKiss(jkissSeed())
	k2, _ := NewJKiss(jkissSeed())

	k1.JumpAhead(4111) // 2^12 + 15
	k2.JumpAheadEC(12, 15)

	assert.Equal(t, k1.SeedGet(), k2.SeedGet())
}

func TestJKissJumpBackInvertsJumpAhead(t *testing.T) {
	k, _ := NewJKiss(jkissSeed())
	orig := k.SeedGet()

	k.JumpAhead(777777)
	k.JumpBack(777777)

	assert.Equal(t, k.SeedGet(), orig)
}

func TestJKissJumpCycleIsIdentityOnOutput(t *testing.T) {
	a, _ := NewJKiss(jkissSeed())
	b, _ := NewJKiss(jkissSeed())
	b.JumpCycle()

	for i := 0; i < 1024; i++ {
		assert.Equal(t, a.Next32(), b.Next32())
	}
}

// TestJKissReferenceVectors checks the first three Next32 words against
// the reference implementation's recurrence, computed directly from
// _examples/original_source/jkiss.h's rng32 body for this seed.
func TestJKissReferenceVectors(t *testing.T) {
	k, err := NewJKiss(jkissSeed())
	assert.NoError(t, err)

	assert.Equal(t, k.Next32(), uint32(3586512915))
	assert.Equal(t, k.Next32(), uint32(1214677547))
	assert.Equal(t, k.Next32(), uint32(2764448110))
}
