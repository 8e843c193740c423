package jumprand

import (
	"github.com/zeebo/jumprand/internal/bitmatrix"
)

// Lfsr88 is L'Ecuyer's combined Tausworthe generator over three
// independent 32-bit shift-register components, combined by XOR. Its
// period is (2^31-1)(2^29-1)(2^28-1), about 2^88.
type Lfsr88 struct {
	s [3]uint32
}

const (
	lfsr88C0     = 0xffffffff
	lfsr88C1     = 0xfffffffe
	lfsr88C2     = 0xfffffff8
	lfsr88C3     = 0xfffffff0
	lfsr88NSeeds = 3
	lfsr88Min0   = 2
	lfsr88Min1   = 8
	lfsr88Min2   = 16
)

var lfsr88Matrix = [3]bitmatrix.Matrix32{
	{Cols: [32]uint32{
		0x00000000, 0x00002000, 0x00004000, 0x00008000, 0x00010000, 0x00020000, 0x00040001, 0x00080002,
		0x00100004, 0x00200008, 0x00400010, 0x00800020, 0x01000040, 0x02000080, 0x04000100, 0x08000200,
		0x10000400, 0x20000800, 0x40001000, 0x80000001, 0x00000002, 0x00000004, 0x00000008, 0x00000010,
		0x00000020, 0x00000040, 0x00000080, 0x00000100, 0x00000200, 0x00000400, 0x00000800, 0x00001000,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000080, 0x00000100, 0x00000200, 0x00000400, 0x00000800,
		0x00001000, 0x00002000, 0x00004000, 0x00008000, 0x00010000, 0x00020000, 0x00040000, 0x00080000,
		0x00100000, 0x00200000, 0x00400000, 0x00800000, 0x01000000, 0x02000000, 0x04000000, 0x08000001,
		0x10000002, 0x20000005, 0x4000000A, 0x80000014, 0x00000028, 0x00000050, 0x00000020, 0x00000040,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00200000, 0x00400000, 0x00800000, 0x01000000,
		0x02000001, 0x04000002, 0x08000004, 0x10000009, 0x20000012, 0x40000024, 0x80000048, 0x00000090,
		0x00000120, 0x00000240, 0x00000480, 0x00000900, 0x00001200, 0x00002400, 0x00004800, 0x00009000,
		0x00012000, 0x00024000, 0x00048000, 0x00090000, 0x00120000, 0x00040000, 0x00080000, 0x00100000,
	}},
}

var lfsr88MatrixInv = [3]bitmatrix.Matrix32{
	{Cols: [32]uint32{
		0x00000000, 0x00100000, 0x00200000, 0x00400000, 0x00800000, 0x01000000, 0x02000000, 0x04000000,
		0x08000000, 0x10000000, 0x20000000, 0x40000000, 0x80000001, 0x00000002, 0x00000004, 0x00000008,
		0x00000010, 0x00000020, 0x00000040, 0x00100080, 0x00200100, 0x00400200, 0x00800400, 0x01000800,
		0x02001000, 0x04002000, 0x08004000, 0x10008000, 0x20010000, 0x40020000, 0x80040000, 0x00080000,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x50000000, 0xa0000001, 0x40000002, 0x80000004, 0x00000008,
		0x00000010, 0x00000020, 0x00000040, 0x00000080, 0x00000100, 0x00000200, 0x00000400, 0x00000800,
		0x00001000, 0x00002000, 0x00004000, 0x00008000, 0x00010000, 0x00020000, 0x00040000, 0x00080000,
		0x00100000, 0x00200000, 0x00400000, 0x00800000, 0x01000000, 0x02000000, 0x54000000, 0xa8000000,
	}},
	{Cols: [32]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x49248000, 0x92490000, 0x24920000, 0x49240000,
		0x92480000, 0x24900000, 0x49200000, 0x92400000, 0x24800000, 0x49000000, 0x92000000, 0x24000000,
		0x48000000, 0x90000001, 0x20000002, 0x40000004, 0x80000008, 0x00000010, 0x00000020, 0x00000040,
		0x00000080, 0x00000100, 0x00000200, 0x00000400, 0x00000800, 0x49249000, 0x92492000, 0x24924000,
	}},
}

func NewLfsr88(seed []uint32) (*Lfsr88, error) {
	l := &Lfsr88{}
	if err := l.SeedSet(seed); err != nil {
		return nil, err
	}
	return l, nil
}

// SeedSet installs seed, silently adding its minimum (2, 8, 16) to any
// component that is below it, as L'Ecuyer's reference implementation
// does, rather than rejecting the seed.
func (l *Lfsr88) SeedSet(seed []uint32) error {
	if len(seed) < lfsr88NSeeds {
		return ErrSeedTooShort
	}
	l.s[0] = degenerate32(seed[0], lfsr88Min0)
	l.s[1] = degenerate32(seed[1], lfsr88Min1)
	l.s[2] = degenerate32(seed[2], lfsr88Min2)
	return nil
}

func (l *Lfsr88) SeedGet() []uint32 {
	return []uint32{l.s[0], l.s[1], l.s[2]}
}

func (l *Lfsr88) Next32() uint32 {
	l.s[0] = ((l.s[0] & lfsr88C1) << 12) ^ (((l.s[0] << 13) ^ l.s[0]) >> 19)
	l.s[1] = ((l.s[1] & lfsr88C2) << 4) ^ (((l.s[1] << 2) ^ l.s[1]) >> 25)
	l.s[2] = ((l.s[2] & lfsr88C3) << 17) ^ (((l.s[2] << 3) ^ l.s[2]) >> 11)
	return (l.s[0] ^ l.s[1] ^ l.s[2]) & lfsr88C0
}

func (l *Lfsr88) Next64() uint64 {
	low := uint64(l.Next32())
	high := uint64(l.Next32())
	return low | high<<32
}

func (l *Lfsr88) U01_32() float64 { return float64(l.Next32()) * two32Inv }
func (l *Lfsr88) U01_64() float64 { return float64(l.Next64()) * two64Inv }

func (l *Lfsr88) JumpAhead(n uint64) {
	for i := range l.s {
		l.s[i] = lfsr88Matrix[i].Pow(n).MulVec(l.s[i])
	}
}

func (l *Lfsr88) JumpAheadEC(e, c uint64) {
	for i := range l.s {
		l.s[i] = lfsr88Matrix[i].PowEC(e, c).MulVec(l.s[i])
	}
}

func (l *Lfsr88) JumpBack(n uint64) {
	for i := range l.s {
		l.s[i] = lfsr88MatrixInv[i].Pow(n).MulVec(l.s[i])
	}
}

func (l *Lfsr88) JumpBackEC(e, c uint64) {
	for i := range l.s {
		l.s[i] = lfsr88MatrixInv[i].PowEC(e, c).MulVec(l.s[i])
	}
}

func (l *Lfsr88) JumpCycle() {
	const a, b, c = 31, 29, 28
	l.JumpAheadEC(a+b+c, 0)
	l.JumpBackEC(a+b, 0)
	l.JumpBackEC(a+c, 0)
	l.JumpBackEC(b+c, 0)
	l.JumpAheadEC(a, 0)
	l.JumpAheadEC(b, 0)
	l.JumpAheadEC(c, 0)
	l.JumpBack(1)
}
