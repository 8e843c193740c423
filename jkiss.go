package jumprand

import (
	"github.com/zeebo/jumprand/internal/bitmatrix"
	"github.com/zeebo/jumprand/internal/modmath"
)

// JKiss is David Jones's variant of Marsaglia's KISS generator, combining
// a linear congruential stream, a three-shift xorshift stream, and a
// multiply-with-carry stream by addition. Its period is
// (2^32)(2^32-1)(4294584393*2^31-1), about 2^127.
type JKiss struct {
	s1, s2, s3, s4 uint32
}

const (
	jkissLCMult     = 314527869
	jkissLCConst    = 1234567
	jkissLCMultInv  = 1644210389
	jkissMWCMult    = 4294584393
	jkissMWCMod     = 0xfffa2848ffffffff
	jkissMWCMultInv = 4294967296 // 2^32
	jkissNSeeds     = 4
)

var jkissMatrix = bitmatrix.Matrix32{Cols: [32]uint32{
	0x08400021, 0x10800042, 0x21400085, 0x4280010a, 0x85000214, 0x0a000428, 0x14000850, 0x284010a1,
	0x50802142, 0xa1004284, 0x42008508, 0x84010a10, 0x08021420, 0x10042840, 0x20085080, 0x4010a100,
	0x80214200, 0x00428400, 0x00850800, 0x010a1000, 0x02142000, 0x04284000, 0x08508000, 0x10a10000,
	0x21420000, 0x42840000, 0x85080000, 0x08100000, 0x10200000, 0x20400000, 0x40800000, 0x81000000,
}}

var jkissMatrixInv = bitmatrix.Matrix32{Cols: [32]uint32{
	0x9ce52d63, 0x39ca5ac6, 0x7394b58c, 0xe7296b18, 0xce52d630, 0x9ca5ac60, 0x7b5bdce1, 0xb4a73de3,
	0x694e7bc6, 0xd29cf78c, 0x5294a508, 0xa5294a10, 0x4a529420, 0x94a52840, 0x6b5ad4a1, 0xd6b5a942,
	0xad6b5284, 0x5ad6a508, 0xb5ad4a10, 0x6b5a9420, 0xd6b52840, 0xef7ad4a1, 0xdef5a942, 0xbdeb5284,
	0x7bd6a508, 0xf7ad4a10, 0xef5a9420, 0xdeb52840, 0xff7ad4a1, 0xfef5a942, 0xfdeb5284, 0xfbd6a508,
}}

// jkissCycle is the signed power-of-two decomposition of jkiss's full
// period: positive entries jump ahead, negative entries jump back.
var jkissCycle = []int{127, -114, 112, 108, 106, 101, 98, 82, -80, -76, -74, -69, -66, -64, -63, 32}

func NewJKiss(seed []uint32) (*JKiss, error) {
	k := &JKiss{}
	if err := k.SeedSet(seed); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *JKiss) SeedSet(seed []uint32) error {
	if len(seed) < jkissNSeeds {
		return ErrSeedTooShort
	}
	k.s1, k.s2, k.s3, k.s4 = seed[0], seed[1], seed[2], seed[3]
	return nil
}

func (k *JKiss) SeedGet() []uint32 {
	return []uint32{k.s1, k.s2, k.s3, k.s4}
}

func (k *JKiss) Next32() uint32 {
	k.s1 = modmath.Add32(modmath.Mul32(jkissLCMult, k.s1), jkissLCConst)

	k.s2 ^= k.s2 << 5
	k.s2 ^= k.s2 >> 7
	k.s2 ^= k.s2 << 22

	a := modmath.Add64(uint64(jkissMWCMult)*uint64(k.s3), uint64(k.s4))
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)

	return k.s1 + k.s2 + k.s3
}

func (k *JKiss) Next64() uint64 {
	low := uint64(k.Next32())
	high := uint64(k.Next32())
	return low | high<<32
}

func (k *JKiss) U01_32() float64 { return float64(k.Next32()) * two32Inv }
func (k *JKiss) U01_64() float64 { return float64(k.Next64()) * two64Inv }

func (k *JKiss) JumpAhead(n uint64) {
	p := modmath.Mul32(modmath.Pow32(jkissLCMult, n), k.s1)
	q := modmath.Mul32(jkissLCConst, modmath.GS32(jkissLCMult, n))
	k.s1 = modmath.Add32(p, q)

	k.s2 = jkissMatrix.Pow(n).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(jkissMWCMult, n, jkissMWCMod), a, jkissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *JKiss) JumpAheadEC(e, c uint64) {
	p := modmath.Mul32(modmath.PowEC32(jkissLCMult, e, c), k.s1)
	q := modmath.Mul32(jkissLCConst, modmath.GSEC32(jkissLCMult, e, c))
	k.s1 = modmath.Add32(p, q)

	k.s2 = jkissMatrix.PowEC(e, c).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(jkissMWCMult, e, c, jkissMWCMod), a, jkissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *JKiss) JumpBack(n uint64) {
	p := modmath.Mul32(modmath.Pow32(jkissLCMultInv, n), modmath.Add32(k.s1, modmath.Neg32(jkissLCConst)))
	q := modmath.Mul32(modmath.Neg32(jkissLCConst), modmath.GS32(jkissLCMultInv, n))
	r := modmath.Add32(p, q)
	k.s1 = modmath.Add32(jkissLCConst, r)

	k.s2 = jkissMatrixInv.Pow(n).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(jkissMWCMultInv, n, jkissMWCMod), a, jkissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *JKiss) JumpBackEC(e, c uint64) {
	p := modmath.Mul32(modmath.PowEC32(jkissLCMultInv, e, c), modmath.Add32(k.s1, modmath.Neg32(jkissLCConst)))
	q := modmath.Mul32(modmath.Neg32(jkissLCConst), modmath.GSEC32(jkissLCMultInv, e, c))
	r := modmath.Add32(p, q)
	k.s1 = modmath.Add32(jkissLCConst, r)

	k.s2 = jkissMatrixInv.PowEC(e, c).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(jkissMWCMultInv, e, c, jkissMWCMod), a, jkissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *JKiss) JumpCycle() {
	for _, e := range jkissCycle {
		if e >= 0 {
			k.JumpAheadEC(uint64(e), 0)
		} else {
			k.JumpBackEC(uint64(-e), 0)
		}
	}
}
