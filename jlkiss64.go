package jumprand

import (
	"github.com/zeebo/jumprand/internal/modmath"
)

// JLKiss64 extends jlkiss with a second multiply-with-carry stream, one
// feeding the low half and one the high half of each 64-bit output. Its
// period is (2^64)(2^64-1)(4294584393*2^31-1)(698769069*2^31-1), about
// 2^251.
type JLKiss64 struct {
	s1, s2         uint64
	s3, s4, s5, s6 uint32
}

const (
	jlkiss64LCMult      = 1490024343005336237
	jlkiss64LCConst     = 123456789
	jlkiss64LCMultInv   = 14241175500494512421
	jlkiss64MWC1Mult    = 4294584393
	jlkiss64MWC1Mod     = 0xfffa2848ffffffff
	jlkiss64MWC1MultInv = 4294967296 // 2^32
	jlkiss64MWC2Mult    = 698769069
	jlkiss64MWC2Mod     = 0x29a65eacffffffff
	jlkiss64MWC2MultInv = 4294967296 // 2^32
	jlkiss64NSeeds      = 4
)

// jlkiss64Matrix/Inv are identical to jlkiss's: both generators drive the
// same 64-bit xorshift triple (21,17,30).
var jlkiss64Matrix = jlkissMatrix
var jlkiss64MatrixInv = jlkissMatrixInv

// jlkiss64Cycle is the all-positive power-of-two decomposition of
// jlkiss64's full period, ~2^251.
var jlkiss64Cycle = []uint64{
	251, 249, 246, 245, 243, 240, 238, 236, 235, 233, 231, 230, 228, 226, 224, 221,
	219, 216, 215, 214, 211, 209, 208, 207, 200, 199, 198, 196, 194, 191, 189, 183,
	182, 178, 177, 174, 173, 168, 167, 165, 163, 162, 161, 160, 159, 158, 156, 154,
	153, 149, 148, 146, 142, 141, 140, 139, 138, 137, 133, 131, 130, 126, 124, 122,
	119, 118, 116, 110, 105, 104, 102, 101, 100, 99, 97, 95, 94, 93, 92, 91,
	90, 89, 88, 87, 86, 85, 84, 83, 82, 81, 80, 79, 78, 77, 76, 75,
	74, 73, 72, 71, 70, 69, 68, 67, 66, 65, 64,
}

func NewJLKiss64(seed []uint64) (*JLKiss64, error) {
	j := &JLKiss64{}
	if err := j.SeedSet(seed); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *JLKiss64) SeedSet(seed []uint64) error {
	if len(seed) < jlkiss64NSeeds {
		return ErrSeedTooShort
	}
	j.s1 = seed[0]
	j.s2 = seed[1]
	j.s3 = uint32(seed[2] >> 32)
	j.s4 = uint32(seed[2])
	j.s5 = uint32(seed[3] >> 32)
	j.s6 = uint32(seed[3])
	return nil
}

func (j *JLKiss64) SeedGet() []uint64 {
	return []uint64{
		j.s1,
		j.s2,
		uint64(j.s3)<<32 | uint64(j.s4),
		uint64(j.s5)<<32 | uint64(j.s6),
	}
}

func (j *JLKiss64) step() {
	j.s1 = modmath.Add64(modmath.Mul64(jlkiss64LCMult, j.s1), jlkiss64LCConst)

	j.s2 ^= j.s2 << 21
	j.s2 ^= j.s2 >> 17
	j.s2 ^= j.s2 << 30

	a := modmath.Add64(uint64(jlkiss64MWC1Mult)*uint64(j.s3), uint64(j.s4))
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)

	b := modmath.Add64(uint64(jlkiss64MWC2Mult)*uint64(j.s5), uint64(j.s6))
	j.s6 = uint32(b >> 32)
	j.s5 = uint32(b)
}

func (j *JLKiss64) Next32() uint32 {
	j.step()
	return uint32(j.s1 + j.s2 + uint64(j.s3))
}

func (j *JLKiss64) Next64() uint64 {
	j.step()
	return j.s1 + j.s2 + uint64(j.s3) + uint64(j.s5)<<32
}

func (j *JLKiss64) U01_32() float64 { return float64(j.Next32()) * two32Inv }
func (j *JLKiss64) U01_64() float64 { return float64(j.Next64()) * two64Inv }

func (j *JLKiss64) JumpAhead(n uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.Pow64(jlkiss64LCMult, n), j.s1), modmath.Mul64(jlkiss64LCConst, modmath.GS64(jlkiss64LCMult, n)))

	j.s2 = jlkiss64Matrix.Pow(n).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(jlkiss64MWC1Mult, n, jlkiss64MWC1Mod), a, jlkiss64MWC1Mod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)

	b := uint64(j.s5) | uint64(j.s6)<<32
	b = modmath.MulMod64(modmath.PowMod64(jlkiss64MWC2Mult, n, jlkiss64MWC2Mod), b, jlkiss64MWC2Mod)
	j.s6 = uint32(b >> 32)
	j.s5 = uint32(b)
}

func (j *JLKiss64) JumpAheadEC(e, c uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.PowEC64(jlkiss64LCMult, e, c), j.s1), modmath.Mul64(jlkiss64LCConst, modmath.GSEC64(jlkiss64LCMult, e, c)))

	j.s2 = jlkiss64Matrix.PowEC(e, c).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(jlkiss64MWC1Mult, e, c, jlkiss64MWC1Mod), a, jlkiss64MWC1Mod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)

	b := uint64(j.s5) | uint64(j.s6)<<32
	b = modmath.MulMod64(modmath.PowModEC64(jlkiss64MWC2Mult, e, c, jlkiss64MWC2Mod), b, jlkiss64MWC2Mod)
	j.s6 = uint32(b >> 32)
	j.s5 = uint32(b)
}

func (j *JLKiss64) JumpBack(n uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.Pow64(jlkiss64LCMultInv, n), j.s1-jlkiss64LCConst), jlkiss64LCConst-modmath.Mul64(jlkiss64LCConst, modmath.GS64(jlkiss64LCMultInv, n)))

	j.s2 = jlkiss64MatrixInv.Pow(n).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(jlkiss64MWC1MultInv, n, jlkiss64MWC1Mod), a, jlkiss64MWC1Mod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)

	b := uint64(j.s5) | uint64(j.s6)<<32
	b = modmath.MulMod64(modmath.PowMod64(jlkiss64MWC2MultInv, n, jlkiss64MWC2Mod), b, jlkiss64MWC2Mod)
	j.s6 = uint32(b >> 32)
	j.s5 = uint32(b)
}

func (j *JLKiss64) JumpBackEC(e, c uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.PowEC64(jlkiss64LCMultInv, e, c), j.s1-jlkiss64LCConst), jlkiss64LCConst-modmath.Mul64(jlkiss64LCConst, modmath.GSEC64(jlkiss64LCMultInv, e, c)))

	j.s2 = jlkiss64MatrixInv.PowEC(e, c).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(jlkiss64MWC1MultInv, e, c, jlkiss64MWC1Mod), a, jlkiss64MWC1Mod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)

	b := uint64(j.s5) | uint64(j.s6)<<32
	b = modmath.MulMod64(modmath.PowModEC64(jlkiss64MWC2MultInv, e, c, jlkiss64MWC2Mod), b, jlkiss64MWC2Mod)
	j.s6 = uint32(b >> 32)
	j.s5 = uint32(b)
}

func (j *JLKiss64) JumpCycle() {
	for _, e := range jlkiss64Cycle {
		j.JumpAheadEC(e, 0)
	}
}
