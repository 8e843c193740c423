package jumprand

import (
	"github.com/zeebo/jumprand/internal/bitmatrix"
	"github.com/zeebo/jumprand/internal/modmath"
)

// JLKiss is the 64-bit extension of jkiss: a 64-bit linear congruential
// stream, a 64-bit three-shift xorshift stream, and a 32-bit
// multiply-with-carry stream, combined by addition. Its period is
// (2^64)(2^64-1)(4294584393*2^31-1), about 2^191.
type JLKiss struct {
	s1, s2 uint64
	s3, s4 uint32
}

const (
	jlkissLCMult     = 1490024343005336237
	jlkissLCConst    = 123456789
	jlkissLCMultInv  = 14241175500494512421
	jlkissMWCMult    = 4294584393
	jlkissMWCMod     = 0xfffa2848ffffffff
	jlkissMWCMultInv = 4294967296 // 2^32
	jlkissNSeeds     = 3
)

var jlkissMatrix = bitmatrix.Matrix64{Cols: [64]uint64{
	0x0008000440200011, 0x0010000880400022, 0x0020001100800044, 0x0040002201000088, 0x0080004402000110, 0x0100008804000220, 0x0200011008000440, 0x0400022010000880,
	0x0800044020001100, 0x1000088040002200, 0x2000110080004400, 0x4000220100008800, 0x8000440200011000, 0x0000880400022000, 0x0001100800044000, 0x0002201000088000,
	0x0004402000110000, 0x0008804040220001, 0x0011008080440002, 0x0022010100880004, 0x0044020201100008, 0x0088040402200010, 0x0110080804400020, 0x0220101008800040,
	0x0440202011000080, 0x0880404022000100, 0x1100808044000200, 0x2201010088000400, 0x4402020110000800, 0x8804040220001000, 0x1008080440002000, 0x2010100880004000,
	0x4020201100008000, 0x8040402200010000, 0x0080804400020000, 0x0101008800040000, 0x0202011000080000, 0x0404022000100000, 0x0808044000200000, 0x1010088000400000,
	0x2020110000800000, 0x4040220001000000, 0x8080440002000000, 0x0100080004000000, 0x0200100008000000, 0x0400200010000000, 0x0800400020000000, 0x1000800040000000,
	0x2001000080000000, 0x4002000100000000, 0x8004000200000000, 0x0008000400000000, 0x0010000800000000, 0x0020001000000000, 0x0040002000000000, 0x0080004000000000,
	0x0100008000000000, 0x0200010000000000, 0x0400020000000000, 0x0800040000000000, 0x1000080000000000, 0x2000100000000000, 0x4000200000000000, 0x8000400000000000,
}}

var jlkissMatrixInv = bitmatrix.Matrix64{Cols: [64]uint64{
	0x90808c0404202201, 0x2101180808404402, 0x4202301010808804, 0x8404602021011008, 0x8880444402220011, 0x1100888804440022, 0x2201111008880044, 0x4402222011100088,
	0x8804444022200110, 0x1008888044400220, 0x2011110088800440, 0x4022220111000880, 0x8044440222001100, 0x0088880444002200, 0x0111100888004400, 0x0222201110008800,
	0x0444402220011000, 0x8888844440222001, 0x1111088880444002, 0x2222111100888004, 0x4444222201110008, 0x0888404402020011, 0x1110808804040022, 0x2221011008080044,
	0x4442022010100088, 0x8884044020200110, 0x1108088040400220, 0x2210110080800440, 0x4420220101000880, 0x8840440202001100, 0x1080880404002200, 0x2101100808004400,
	0x4202201010008800, 0x8404402020011000, 0x8880044400220001, 0x1100088800440002, 0x2200111000880004, 0x4400222001100008, 0x8800444002200010, 0x1000888004400020,
	0x2001110008800040, 0x4002220011000080, 0x8004440022000100, 0x0008880044000200, 0x0011100088000400, 0x0022200110000800, 0x0044400220001000, 0x0088800440002000,
	0x0111000880004000, 0x0222001100008000, 0x0444002200010000, 0x8888044400220001, 0x1110088800440002, 0x2220111000880004, 0x4440222001100008, 0x8880444002200010,
	0x1100888004400020, 0x2201110008800040, 0x4402220011000080, 0x8804440022000100, 0x1008880044000200, 0x2011100088000400, 0x4022200110000800, 0x8044400220001000,
}}

// jlkissCycle is the signed power-of-two decomposition of jlkiss's full
// period.
var jlkissCycle = []int{191, -127, -178, 114, 176, -112, 172, -108, 170, -106, 165, -101, 162, -98, 159, -95, -128, 64}

func NewJLKiss(seed []uint64) (*JLKiss, error) {
	j := &JLKiss{}
	if err := j.SeedSet(seed); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *JLKiss) SeedSet(seed []uint64) error {
	if len(seed) < jlkissNSeeds {
		return ErrSeedTooShort
	}
	j.s1 = seed[0]
	j.s2 = seed[1]
	j.s3 = uint32(seed[2] >> 32)
	j.s4 = uint32(seed[2])
	return nil
}

func (j *JLKiss) SeedGet() []uint64 {
	return []uint64{j.s1, j.s2, uint64(j.s3)<<32 | uint64(j.s4)}
}

func (j *JLKiss) step() {
	j.s1 = modmath.Add64(modmath.Mul64(jlkissLCMult, j.s1), jlkissLCConst)

	j.s2 ^= j.s2 << 21
	j.s2 ^= j.s2 >> 17
	j.s2 ^= j.s2 << 30

	a := modmath.Add64(uint64(jlkissMWCMult)*uint64(j.s3), uint64(j.s4))
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)
}

func (j *JLKiss) Next32() uint32 {
	j.step()
	return uint32(j.s1 + j.s2 + uint64(j.s3))
}

func (j *JLKiss) Next64() uint64 {
	j.step()
	return j.s1 + j.s2 + uint64(j.s4)<<32 + uint64(j.s3)
}

func (j *JLKiss) U01_32() float64 { return float64(j.Next32()) * two32Inv }
func (j *JLKiss) U01_64() float64 { return float64(j.Next64()) * two64Inv }

func (j *JLKiss) JumpAhead(n uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.Pow64(jlkissLCMult, n), j.s1), modmath.Mul64(jlkissLCConst, modmath.GS64(jlkissLCMult, n)))

	j.s2 = jlkissMatrix.Pow(n).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(jlkissMWCMult, n, jlkissMWCMod), a, jlkissMWCMod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)
}

func (j *JLKiss) JumpAheadEC(e, c uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.PowEC64(jlkissLCMult, e, c), j.s1), modmath.Mul64(jlkissLCConst, modmath.GSEC64(jlkissLCMult, e, c)))

	j.s2 = jlkissMatrix.PowEC(e, c).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(jlkissMWCMult, e, c, jlkissMWCMod), a, jlkissMWCMod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)
}

func (j *JLKiss) JumpBack(n uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.Pow64(jlkissLCMultInv, n), j.s1-jlkissLCConst), jlkissLCConst-modmath.Mul64(jlkissLCConst, modmath.GS64(jlkissLCMultInv, n)))

	j.s2 = jlkissMatrixInv.Pow(n).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(jlkissMWCMultInv, n, jlkissMWCMod), a, jlkissMWCMod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)
}

func (j *JLKiss) JumpBackEC(e, c uint64) {
	j.s1 = modmath.Add64(modmath.Mul64(modmath.PowEC64(jlkissLCMultInv, e, c), j.s1-jlkissLCConst), jlkissLCConst-modmath.Mul64(jlkissLCConst, modmath.GSEC64(jlkissLCMultInv, e, c)))

	j.s2 = jlkissMatrixInv.PowEC(e, c).MulVec(j.s2)

	a := uint64(j.s3) | uint64(j.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(jlkissMWCMultInv, e, c, jlkissMWCMod), a, jlkissMWCMod)
	j.s4 = uint32(a >> 32)
	j.s3 = uint32(a)
}

func (j *JLKiss) JumpCycle() {
	for _, e := range jlkissCycle {
		if e >= 0 {
			j.JumpAheadEC(uint64(e), 0)
		} else {
			j.JumpBackEC(uint64(-e), 0)
		}
	}
}
