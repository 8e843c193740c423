package jumprand

import (
	"github.com/zeebo/jumprand/internal/bitmatrix"
	"github.com/zeebo/jumprand/internal/modmath"
)

// Kiss is Marsaglia's KISS generator: a linear congruential stream, a
// three-shift xorshift stream, and a multiply-with-carry stream, combined
// by addition. Its period is (2^32)(2^32-1)(698769069*2^31-1), about 2^124.
type Kiss struct {
	s1, s2, s3, s4 uint32
}

const (
	kissLCMult     = 69069
	kissLCConst    = 12345
	kissLCMultInv  = 2783094533
	kissMWCMult    = 698769069
	kissMWCMod     = 0x29a65eacffffffff
	kissMWCMultInv = 4294967296 // 2^32
	kissNSeeds     = 4
)

var kissMatrix = bitmatrix.Matrix32{Cols: [32]uint32{
	0x00042021, 0x00084042, 0x00108084, 0x00210108, 0x00420231, 0x00840462, 0x010808C4, 0x02101188,
	0x04202310, 0x08404620, 0x10808C40, 0x21011880, 0x42023100, 0x84046200, 0x0808C400, 0x10118800,
	0x20231000, 0x40462021, 0x808C4042, 0x01080084, 0x02100108, 0x04200210, 0x08400420, 0x10800840,
	0x21001080, 0x42002100, 0x84004200, 0x08008400, 0x10010800, 0x20021000, 0x40042000, 0x80084000,
}}

var kissMatrixInv = bitmatrix.Matrix32{Cols: [32]uint32{
	0xf2b58529, 0xe56b0a52, 0xded6b4a5, 0xbdad694a, 0x7b5ad294, 0xf6b5a528, 0xed6b4a50, 0xced634a1,
	0x9dac6942, 0x3b58d284, 0x76b1a508, 0xed634a10, 0xcec63421, 0x9d8c6842, 0x3b18d084, 0x7631a108,
	0xec634210, 0xccc62421, 0x998c4842, 0x33189084, 0x66312108, 0xcc624210, 0x88c40420, 0x11880840,
	0x23101080, 0x46202100, 0x8c404200, 0x08800400, 0x11000800, 0x22001000, 0x44002000, 0x88004000,
}}

var kissCycleExponents = bitsetExponents(
	"10100110100110010111101010110011010110010110011010000101010001000000000000000000000000000000100000000000000000000000000000000")

// NewKiss builds a Kiss from a four-word seed.
func NewKiss(seed []uint32) (*Kiss, error) {
	k := &Kiss{}
	if err := k.SeedSet(seed); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *Kiss) SeedSet(seed []uint32) error {
	if len(seed) < kissNSeeds {
		return ErrSeedTooShort
	}
	k.s1, k.s2, k.s3, k.s4 = seed[0], seed[1], seed[2], seed[3]
	return nil
}

func (k *Kiss) SeedGet() []uint32 {
	return []uint32{k.s1, k.s2, k.s3, k.s4}
}

func (k *Kiss) Next32() uint32 {
	k.s1 = modmath.Add32(modmath.Mul32(kissLCMult, k.s1), kissLCConst)

	k.s2 ^= k.s2 << 13
	k.s2 ^= k.s2 >> 17
	k.s2 ^= k.s2 << 5

	a := modmath.Add64(uint64(kissMWCMult)*uint64(k.s3), uint64(k.s4))
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)

	return k.s1 + k.s2 + k.s3
}

func (k *Kiss) Next64() uint64 {
	low := uint64(k.Next32())
	high := uint64(k.Next32())
	return low | high<<32
}

func (k *Kiss) U01_32() float64 { return float64(k.Next32()) * two32Inv }
func (k *Kiss) U01_64() float64 { return float64(k.Next64()) * two64Inv }

func (k *Kiss) JumpAhead(n uint64) {
	p := modmath.Mul32(modmath.Pow32(kissLCMult, n), k.s1)
	q := modmath.Mul32(kissLCConst, modmath.GS32(kissLCMult, n))
	k.s1 = modmath.Add32(p, q)

	k.s2 = kissMatrix.Pow(n).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(kissMWCMult, n, kissMWCMod), a, kissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *Kiss) JumpAheadEC(e, c uint64) {
	p := modmath.Mul32(modmath.PowEC32(kissLCMult, e, c), k.s1)
	q := modmath.Mul32(kissLCConst, modmath.GSEC32(kissLCMult, e, c))
	k.s1 = modmath.Add32(p, q)

	k.s2 = kissMatrix.PowEC(e, c).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(kissMWCMult, e, c, kissMWCMod), a, kissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *Kiss) JumpBack(n uint64) {
	p := modmath.Mul32(modmath.Pow32(kissLCMultInv, n), modmath.Add32(k.s1, modmath.Neg32(kissLCConst)))
	q := modmath.Mul32(modmath.Neg32(kissLCConst), modmath.GS32(kissLCMultInv, n))
	r := modmath.Add32(p, q)
	k.s1 = modmath.Add32(kissLCConst, r)

	k.s2 = kissMatrixInv.Pow(n).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowMod64(kissMWCMultInv, n, kissMWCMod), a, kissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *Kiss) JumpBackEC(e, c uint64) {
	p := modmath.Mul32(modmath.PowEC32(kissLCMultInv, e, c), modmath.Add32(k.s1, modmath.Neg32(kissLCConst)))
	q := modmath.Mul32(modmath.Neg32(kissLCConst), modmath.GSEC32(kissLCMultInv, e, c))
	r := modmath.Add32(p, q)
	k.s1 = modmath.Add32(kissLCConst, r)

	k.s2 = kissMatrixInv.PowEC(e, c).MulVec(k.s2)

	a := uint64(k.s3) | uint64(k.s4)<<32
	a = modmath.MulMod64(modmath.PowModEC64(kissMWCMultInv, e, c, kissMWCMod), a, kissMWCMod)
	k.s4 = uint32(a >> 32)
	k.s3 = uint32(a)
}

func (k *Kiss) JumpCycle() {
	for _, e := range kissCycleExponents {
		k.JumpAheadEC(e, 0)
	}
}
