package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func lfsr88Seed() []uint32 {
	return []uint32{12345, 23456, 34567}
}

func TestLfsr88SeedRoundTrip(t *testing.T) {
	l, err := NewLfsr88(lfsr88Seed())
	assert.NoError(t, err)
	assert.Equal(t, l.SeedGet(), lfsr88Seed())
}

func TestLfsr88SeedDegenerateIsBumped(t *testing.T) {
	l, err := NewLfsr88([]uint32{0, 0, 0})
	assert.NoError(t, err)
	assert.Equal(t, l.SeedGet(), []uint32{lfsr88Min0, lfsr88Min1, lfsr88Min2})
}

func TestLfsr88SeedTooShort(t *testing.T) {
	_, err := NewLfsr88([]uint32{1, 2})
	assert.That(t, err != nil)
}

func TestLfsr88JumpAheadMatchesStepping(t *testing.T) {
	const n = 10000

	stepped, _ := NewLfsr88(lfsr88Seed())
	for i := 0; i < n; i++ {
		stepped.Next32()
	}

	jumped, _ := NewLfsr88(lfsr88Seed())
	jumped.JumpAhead(n)

	assert.Equal(t, jumped.SeedGet(), stepped.SeedGet())
}

func TestLfsr88JumpAheadECMatchesJumpAhead(t *testing.T) {
	l1, _ := NewLfsr88(lfsr88Seed())
	l2, _ := NewLfsr88(lfsr88Seed())

	l1.JumpAhead(4121) // 2^12 + 25
	l2.JumpAheadEC(12, 25)

	assert.Equal(t, l1.SeedGet(), l2.SeedGet())
}

func TestLfsr88JumpBackInvertsJumpAhead(t *testing.T) {
	l, _ := NewLfsr88(lfsr88Seed())
	orig := l.SeedGet()

	l.JumpAhead(777777)
	l.JumpBack(777777)

	assert.Equal(t, l.SeedGet(), orig)
}

func TestLfsr88JumpCycleIsIdentityOnOutput(t *testing.T) {
	a, _ := NewLfsr88(lfsr88Seed())
	b, _ := NewLfsr88(lfsr88Seed())
	b.JumpCycle()

	for i := 0; i < 1024; i++ {
		assert.Equal(t, a.Next32(), b.Next32())
	}
}
