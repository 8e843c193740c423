package jumprand

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestUniform32Bounds(t *testing.T) {
	k, _ := NewKiss([]uint32{2247183700, 99545079, 3269400377, 3950144837})
	u := NewUniform32(k)
	for i := 0; i < 10000; i++ {
		v := u.U01()
		assert.That(t, v >= 0 && v < 1)
	}
}

func TestUniform32Range(t *testing.T) {
	k, _ := NewKiss([]uint32{2247183700, 99545079, 3269400377, 3950144837})
	u := NewUniform32(k)
	for i := 0; i < 10000; i++ {
		v := u.U(-5, 5)
		assert.That(t, v >= -5 && v < 5)
	}
}

func TestUniform64Bounds(t *testing.T) {
	j, _ := NewJLKiss([]uint64{123456789123, 987654321987, (43219876 << 32) | 6543217})
	u := NewUniform64(j)
	for i := 0; i < 10000; i++ {
		v := u.U01()
		assert.That(t, v >= 0 && v < 1)
	}
}

func TestUniform64MatchesUnderlyingGenerator(t *testing.T) {
	j1, _ := NewJLKiss([]uint64{1, 2, 3})
	j2, _ := NewJLKiss([]uint64{1, 2, 3})
	u := NewUniform64(j2)

	assert.Equal(t, j1.U01_64(), u.U01())
}
