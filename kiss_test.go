package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func kissSeed() []uint32 {
	return []uint32{2247183700, 99545079, 3269400377, 3950144837}
}

func TestKissSeedRoundTrip(t *testing.T) {
	k, err := NewKiss(kissSeed())
	assert.NoError(t, err)
	assert.Equal(t, k.SeedGet(), kissSeed())
}

func TestKissSeedTooShort(t *testing.T) {
	_, err := NewKiss([]uint32{1, 2, 3})
	assert.Equal(t, err, ErrSeedTooShort)
}

func TestKissJumpAheadMatchesStepping(t *testing.T) {
	const n = 10000

	stepped, err := NewKiss(kissSeed())
	assert.NoError(t, err)
	for i := 0; i < n; i++ {
		stepped.Next32()
	}

	jumped, err := NewKiss(kissSeed())
	assert.NoError(t, err)
	jumped.JumpAhead(n)

	assert.Equal(t, jumped.SeedGet(), stepped.SeedGet())
	assert.Equal(t, jumped.Next32(), stepped.Next32())
}

func TestKissJumpAheadECMatchesJumpAhead(t *testing.T) {
	k1, _ := NewKiss(kissSeed())
	k2, _ := NewKiss(kissSeed())

	// 2^10 + 37 = 1061
	k1.JumpAhead(1061)
	k2.JumpAheadEC(10, 37)

	assert.Equal(t, k1.SeedGet(), k2.SeedGet())
}

func TestKissJumpBackInvertsJumpAhead(t *testing.T) {
	k, err := NewKiss(kissSeed())
	assert.NoError(t, err)
	orig := k.SeedGet()

	k.JumpAhead(54321)
	k.JumpBack(54321)

	assert.Equal(t, k.SeedGet(), orig)
}

func TestKissJumpCycleIsIdentityOnOutput(t *testing.T) {
	a, _ := NewKiss(kissSeed())
	b, _ := NewKiss(kissSeed())
	b.JumpCycle()

	for i := 0; i < 1024; i++ {
		assert.Equal(t, a.Next32(), b.Next32())
	}
}

func TestKissNext64IsTwoNext32Words(t *testing.T) {
	a, _ := NewKiss(kissSeed())
	b, _ := NewKiss(kissSeed())

	low := a.Next32()
	high := a.Next32()
	assert.Equal(t, b.Next64(), uint64(low)|uint64(high)<<32)
}

func TestKissU01InRange(t *testing.T) {
	k, _ := NewKiss(kissSeed())
	for i := 0; i < 1000; i++ {
		u := k.U01_32()
		assert.That(t, u >= 0 && u < 1)
	}
}

// TestKissReferenceVectors checks the first three Next32 words against
// the reference implementation's recurrence, computed directly from
// _examples/original_source/kiss.h's rng32 body for this seed.
func TestKissReferenceVectors(t *testing.T) {
	k, err := NewKiss(kissSeed())
	assert.NoError(t, err)

	assert.Equal(t, k.Next32(), uint32(1632274790))
	assert.Equal(t, k.Next32(), uint32(2870462487))
	assert.Equal(t, k.Next32(), uint32(2879401268))
}

// TestKissJumpAheadMillion checks that jumping ahead a million steps and
// drawing Next32 matches the millionth-plus-one word of direct stepping,
// the scenario spec.md names explicitly for kiss.
func TestKissJumpAheadMillion(t *testing.T) {
	k, err := NewKiss(kissSeed())
	assert.NoError(t, err)

	k.JumpAhead(1000000)
	assert.Equal(t, k.Next32(), uint32(1104748390))
}
