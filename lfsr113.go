package jumprand

import (
	"github.com/zeebo/jumprand/internal/bitmatrix"
)

// Lfsr113 is L'Ecuyer's combined Tausworthe generator over four
// independent 32-bit shift-register components, combined by XOR. Its
// period is (2^31-1)(2^29-1)(2^28-1)(2^25-1), about 2^113.
type Lfsr113 struct {
	s [4]uint32
}

const (
	lfsr113C0     = 0xffffffff
	lfsr113C1     = 0xfffffffe
	lfsr113C2     = 0xfffffff8
	lfsr113C3     = 0xfffffff0
	lfsr113C4     = 0xffffff80
	lfsr113NSeeds = 4
	lfsr113Min0   = 2
	lfsr113Min1   = 8
	lfsr113Min2   = 16
	lfsr113Min3   = 128
)

var lfsr113Matrix = [4]bitmatrix.Matrix32{
	{Cols: [32]uint32{
		0x00000000, 0x00080000, 0x00100000, 0x00200000, 0x00400000, 0x00800000, 0x01000000, 0x02000001,
		0x04000002, 0x08000004, 0x10000008, 0x20000010, 0x40000020, 0x80000041, 0x00000082, 0x00000104,
		0x00000208, 0x00000410, 0x00000820, 0x00001040, 0x00002080, 0x00004100, 0x00008200, 0x00010400,
		0x00020800, 0x00041000, 0x00002000, 0x00004000, 0x00008000, 0x00010000, 0x00020000, 0x00040000,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000020, 0x00000040, 0x00000080, 0x00000100, 0x00000200,
		0x00000400, 0x00000800, 0x00001000, 0x00002000, 0x00004000, 0x00008000, 0x00010000, 0x00020000,
		0x00040000, 0x00080000, 0x00100000, 0x00200000, 0x00400000, 0x00800000, 0x01000000, 0x02000000,
		0x04000000, 0x08000001, 0x10000002, 0x20000005, 0x4000000a, 0x80000014, 0x00000008, 0x00000010,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000800, 0x00001000, 0x00002000, 0x00004000,
		0x00008001, 0x00010002, 0x00020004, 0x00040008, 0x00080010, 0x00100020, 0x00200040, 0x00400080,
		0x00800100, 0x01000200, 0x02000400, 0x04000000, 0x08000000, 0x10000001, 0x20000002, 0x40000004,
		0x80000008, 0x00000010, 0x00000020, 0x00000040, 0x00000080, 0x00000100, 0x00000200, 0x00000400,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00100000,
		0x00200000, 0x00400001, 0x00800002, 0x01000004, 0x02000009, 0x04000012, 0x08000024, 0x10000048,
		0x20000090, 0x40000120, 0x80000240, 0x00000480, 0x00000900, 0x00001200, 0x00002400, 0x00004800,
		0x00009000, 0x00012000, 0x00024000, 0x00048000, 0x00090000, 0x00020000, 0x00040000, 0x00080000,
	}},
}

var lfsr113MatrixInv = [4]bitmatrix.Matrix32{
	{Cols: [32]uint32{
		0x00000000, 0x04104000, 0x08208000, 0x10410000, 0x20820000, 0x41040000, 0x82080000, 0x04100000,
		0x08200000, 0x10400000, 0x20800000, 0x41000000, 0x82000000, 0x04000000, 0x08000000, 0x10000000,
		0x20000000, 0x40000000, 0x80000001, 0x00000002, 0x00000004, 0x00000008, 0x00000010, 0x00000020,
		0x00000040, 0x00000080, 0x04104100, 0x08208200, 0x10410400, 0x20820800, 0x41041000, 0x82082000,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x40000002, 0x80000004, 0x00000008, 0x00000010, 0x00000020,
		0x00000040, 0x00000080, 0x00000100, 0x00000200, 0x00000400, 0x00000800, 0x00001000, 0x00002000,
		0x00004000, 0x00008000, 0x00010000, 0x00020000, 0x00040000, 0x00080000, 0x00100000, 0x00200000,
		0x00400000, 0x00800000, 0x01000000, 0x02000000, 0x04000000, 0x08000001, 0x50000000, 0xa0000001,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x02000000, 0x04000000, 0x08000000, 0x10000001,
		0x20000002, 0x40000004, 0x80000008, 0x00000010, 0x00000020, 0x00000040, 0x00000080, 0x00000100,
		0x00000200, 0x00000400, 0x00000800, 0x02001000, 0x04002000, 0x08004000, 0x10008000, 0x20010000,
		0x40020000, 0x80040000, 0x00080000, 0x00100000, 0x00200000, 0x00400000, 0x00800000, 0x01000000,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x92480000,
		0x24900000, 0x49200000, 0x92400000, 0x24800000, 0x49000000, 0x92000001, 0x24000002, 0x48000004,
		0x90000008, 0x20000010, 0x40000020, 0x80000040, 0x00000080, 0x00000100, 0x00000200, 0x00000400,
		0x00000800, 0x00001000, 0x00002000, 0x00004000, 0x00008000, 0x92490000, 0x24920000, 0x49240000,
	}},
}

func NewLfsr113(seed []uint32) (*Lfsr113, error) {
	l := &Lfsr113{}
	if err := l.SeedSet(seed); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lfsr113) SeedSet(seed []uint32) error {
	if len(seed) < lfsr113NSeeds {
		return ErrSeedTooShort
	}
	l.s[0] = degenerate32(seed[0], lfsr113Min0)
	l.s[1] = degenerate32(seed[1], lfsr113Min1)
	l.s[2] = degenerate32(seed[2], lfsr113Min2)
	l.s[3] = degenerate32(seed[3], lfsr113Min3)
	return nil
}

func (l *Lfsr113) SeedGet() []uint32 {
	return []uint32{l.s[0], l.s[1], l.s[2], l.s[3]}
}

func (l *Lfsr113) Next32() uint32 {
	l.s[0] = ((l.s[0] & lfsr113C1) << 18) ^ (((l.s[0] << 6) ^ l.s[0]) >> 13)
	l.s[1] = ((l.s[1] & lfsr113C2) << 2) ^ (((l.s[1] << 2) ^ l.s[1]) >> 27)
	l.s[2] = ((l.s[2] & lfsr113C3) << 7) ^ (((l.s[2] << 13) ^ l.s[2]) >> 21)
	l.s[3] = ((l.s[3] & lfsr113C4) << 13) ^ (((l.s[3] << 3) ^ l.s[3]) >> 12)
	return (l.s[0] ^ l.s[1] ^ l.s[2] ^ l.s[3]) & lfsr113C0
}

func (l *Lfsr113) Next64() uint64 {
	low := uint64(l.Next32())
	high := uint64(l.Next32())
	return low | high<<32
}

func (l *Lfsr113) U01_32() float64 { return float64(l.Next32()) * two32Inv }
func (l *Lfsr113) U01_64() float64 { return float64(l.Next64()) * two64Inv }

func (l *Lfsr113) JumpAhead(n uint64) {
	for i := range l.s {
		l.s[i] = lfsr113Matrix[i].Pow(n).MulVec(l.s[i])
	}
}

func (l *Lfsr113) JumpAheadEC(e, c uint64) {
	for i := range l.s {
		l.s[i] = lfsr113Matrix[i].PowEC(e, c).MulVec(l.s[i])
	}
}

func (l *Lfsr113) JumpBack(n uint64) {
	for i := range l.s {
		l.s[i] = lfsr113MatrixInv[i].Pow(n).MulVec(l.s[i])
	}
}

func (l *Lfsr113) JumpBackEC(e, c uint64) {
	for i := range l.s {
		l.s[i] = lfsr113MatrixInv[i].PowEC(e, c).MulVec(l.s[i])
	}
}

func (l *Lfsr113) JumpCycle() {
	const a, b, c, d = 31, 29, 28, 25
	l.JumpAheadEC(a+b+c+d, 0)
	l.JumpBackEC(a+b+c, 0)
	l.JumpBackEC(a+b+d, 0)
	l.JumpBackEC(a+c+d, 0)
	l.JumpBackEC(b+c+d, 0)
	l.JumpAheadEC(a+b, 0)
	l.JumpAheadEC(a+c, 0)
	l.JumpAheadEC(a+d, 0)
	l.JumpAheadEC(b+c, 0)
	l.JumpAheadEC(b+d, 0)
	l.JumpAheadEC(c+d, 0)
	l.JumpBackEC(a, 0)
	l.JumpBackEC(b, 0)
	l.JumpBackEC(c, 0)
	l.JumpBackEC(d, 0)
	l.JumpAhead(1)
}
