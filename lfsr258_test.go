package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func lfsr258Seed() []uint64 {
	return []uint64{123456, 234567, 345678, 456789, 567890}
}

func TestLfsr258SeedRoundTrip(t *testing.T) {
	l, err := NewLfsr258(lfsr258Seed())
	assert.NoError(t, err)
	assert.Equal(t, l.SeedGet(), lfsr258Seed())
}

func TestLfsr258SeedDegenerateIsBumped(t *testing.T) {
	l, err := NewLfsr258([]uint64{0, 0, 0, 0, 0})
	assert.NoError(t, err)
	assert.Equal(t, l.SeedGet(), []uint64{lfsr258Min0, lfsr258Min1, lfsr258Min2, lfsr258Min3, lfsr258Min4})
}

func TestLfsr258SeedTooShort(t *testing.T) {
	_, err := NewLfsr258([]uint64{1, 2, 3, 4})
	assert.That(t, err != nil)
}

func TestLfsr258JumpAheadMatchesStepping(t *testing.T) {
	const n = 10000

	stepped, _ := NewLfsr258(lfsr258Seed())
	for i := 0; i < n; i++ {
		stepped.Next64()
	}

	jumped, _ := NewLfsr258(lfsr258Seed())
	jumped.JumpAhead(n)

	assert.Equal(t, jumped.SeedGet(), stepped.SeedGet())
}

func TestLfsr258JumpAheadECMatchesJumpAhead(t *testing.T) {
	l1, _ := NewLfsr258(lfsr258Seed())
	l2, _ := NewLfsr258(lfsr258Seed())

	l1.JumpAhead(8233) // 2^13 + 41
	l2.JumpAheadEC(13, 41)

	assert.Equal(t, l1.SeedGet(), l2.SeedGet())
}

func TestLfsr258JumpBackInvertsJumpAhead(t *testing.T) {
	l, _ := NewLfsr258(lfsr258Seed())
	orig := l.SeedGet()

	l.JumpAhead(555555)
	l.JumpBack(555555)

	assert.Equal(t, l.SeedGet(), orig)
}

func TestLfsr258JumpCycleIsIdentityOnOutput(t *testing.T) {
	a, _ := NewLfsr258(lfsr258Seed())
	b, _ := NewLfsr258(lfsr258Seed())
	b.JumpCycle()

	for i := 0; i < 1024; i++ {
		assert.Equal(t, a.Next64(), b.Next64())
	}
}

func TestLfsr258MatrixInverts(t *testing.T) {
	for i := range lfsr258Matrix {
		prod := lfsr258MatrixInv[i].Mul(lfsr258Matrix[i])
		for bit := 0; bit < 64; bit++ {
			v := uint64(1) << uint(bit)
			assert.Equal(t, prod.MulVec(v), v)
		}
	}
}
