package jumprand

import (
	"github.com/zeebo/jumprand/internal/bitmatrix"
)

// Lfsr258 extends the lfsr88/lfsr113 combined-Tausworthe construction to
// five independent 64-bit shift-register components, combined by XOR.
// Its period is (2^63-1)(2^55-1)(2^52-1)(2^47-1)(2^41-1), about 2^258 --
// the source of its name.
type Lfsr258 struct {
	s [5]uint64
}

const (
	lfsr258C0     = ^uint64(0)
	lfsr258NSeeds = 5
	lfsr258Min0   = 2
	lfsr258Min1   = 512
	lfsr258Min2   = 4096
	lfsr258Min3   = 131072
	lfsr258Min4   = 8388608
)

// lfsr258Param holds one component's (p, q, r, mask) tuple for the
// recurrence s <- ((s & C) << q) ^ (((s << p) ^ s) >> r).
type lfsr258Param struct {
	p, q, r uint
	c       uint64
}

// lfsr258Mask returns lfsr258C0 << n; expressed as a function rather than a
// constant expression because Go's constant arithmetic checks shl overflow
// against the untruncated result, even though the runtime uint64 shift below
// wraps exactly as intended.
func lfsr258Mask(n uint) uint64 { return lfsr258C0 << n }

// lfsr258Params is L'Ecuyer's published parameterization of the 64-bit,
// five-component combined LFSR; unlike lfsr88/lfsr113, no header for this
// generator survives in original_source/, so the forward transition
// matrices below are built from these recurrence parameters directly
// (see DESIGN.md) rather than transcribed from a reference bitmatrix
// literal.
var lfsr258Params = [5]lfsr258Param{
	{p: 1, q: 10, r: 53, c: lfsr258Mask(1)},
	{p: 24, q: 5, r: 50, c: lfsr258Mask(9)},
	{p: 3, q: 29, r: 23, c: lfsr258Mask(12)},
	{p: 5, q: 23, r: 24, c: lfsr258Mask(17)},
	{p: 3, q: 8, r: 33, c: lfsr258Mask(23)},
}

func lfsr258Step(i int, s uint64) uint64 {
	p := lfsr258Params[i]
	b := ((s << p.p) ^ s) >> p.r
	return ((s & p.c) << p.q) ^ b
}

var (
	lfsr258Matrix    [5]bitmatrix.Matrix64
	lfsr258MatrixInv [5]bitmatrix.Matrix64
)

// Each component's transition is GF(2)-linear, so its matrix is built by
// applying the recurrence to each standard basis vector once at package
// init. The matrix is singular (the recurrence never reads the low bits
// cleared by the mask), so it has no true inverse; the back-step matrix is
// A^(2^k-2), with k = q + r the component's degree, which undoes one step
// on every state the recurrence can produce. Both are computed here, never
// per jump.
func init() {
	for i, p := range lfsr258Params {
		var m bitmatrix.Matrix64
		for col := 0; col < 64; col++ {
			m.Cols[col] = lfsr258Step(i, uint64(1)<<uint(col))
		}
		lfsr258Matrix[i] = m
		lfsr258MatrixInv[i] = m.Pow(uint64(1)<<(p.q+p.r) - 2)
	}
}

// NewLfsr258 builds a Lfsr258 from a five-word seed.
func NewLfsr258(seed []uint64) (*Lfsr258, error) {
	l := &Lfsr258{}
	if err := l.SeedSet(seed); err != nil {
		return nil, err
	}
	return l, nil
}

// SeedSet installs seed, silently adding its minimum (2, 512, 4096,
// 131072, 8388608) to any component that is below it, the same
// auto-correction lfsr88/lfsr113 apply.
func (l *Lfsr258) SeedSet(seed []uint64) error {
	if len(seed) < lfsr258NSeeds {
		return ErrSeedTooShort
	}
	l.s[0] = degenerate64(seed[0], lfsr258Min0)
	l.s[1] = degenerate64(seed[1], lfsr258Min1)
	l.s[2] = degenerate64(seed[2], lfsr258Min2)
	l.s[3] = degenerate64(seed[3], lfsr258Min3)
	l.s[4] = degenerate64(seed[4], lfsr258Min4)
	return nil
}

func (l *Lfsr258) SeedGet() []uint64 {
	return []uint64{l.s[0], l.s[1], l.s[2], l.s[3], l.s[4]}
}

func (l *Lfsr258) step() uint64 {
	var r uint64
	for i := range l.s {
		l.s[i] = lfsr258Step(i, l.s[i])
		r ^= l.s[i]
	}
	return r & lfsr258C0
}

func (l *Lfsr258) Next64() uint64 { return l.step() }
func (l *Lfsr258) Next32() uint32 { return uint32(l.step()) }

func (l *Lfsr258) U01_32() float64 { return float64(l.Next32()) * two32Inv }
func (l *Lfsr258) U01_64() float64 { return float64(l.Next64()) * two64Inv }

func (l *Lfsr258) JumpAhead(n uint64) {
	for i := range l.s {
		l.s[i] = lfsr258Matrix[i].Pow(n).MulVec(l.s[i])
	}
}

func (l *Lfsr258) JumpAheadEC(e, c uint64) {
	for i := range l.s {
		l.s[i] = lfsr258Matrix[i].PowEC(e, c).MulVec(l.s[i])
	}
}

func (l *Lfsr258) JumpBack(n uint64) {
	for i := range l.s {
		l.s[i] = lfsr258MatrixInv[i].Pow(n).MulVec(l.s[i])
	}
}

func (l *Lfsr258) JumpBackEC(e, c uint64) {
	for i := range l.s {
		l.s[i] = lfsr258MatrixInv[i].PowEC(e, c).MulVec(l.s[i])
	}
}

// JumpCycle advances by the full period via the five-term
// inclusion-exclusion generalization of lfsr113's four-term identity:
// every subset of the five component exponents is jumped ahead or back
// depending on the parity of (5 - subset size). The non-empty subsets
// together advance by the period plus one step; the closing JumpBack(1)
// (the empty subset) removes that step, so each component returns to its
// starting point in the cycle.
func (l *Lfsr258) JumpCycle() {
	const a, b, c, d, e = 63, 55, 52, 47, 41

	l.JumpAheadEC(a+b+c+d+e, 0)

	l.JumpBackEC(a+b+c+d, 0)
	l.JumpBackEC(a+b+c+e, 0)
	l.JumpBackEC(a+b+d+e, 0)
	l.JumpBackEC(a+c+d+e, 0)
	l.JumpBackEC(b+c+d+e, 0)

	l.JumpAheadEC(a+b+c, 0)
	l.JumpAheadEC(a+b+d, 0)
	l.JumpAheadEC(a+b+e, 0)
	l.JumpAheadEC(a+c+d, 0)
	l.JumpAheadEC(a+c+e, 0)
	l.JumpAheadEC(a+d+e, 0)
	l.JumpAheadEC(b+c+d, 0)
	l.JumpAheadEC(b+c+e, 0)
	l.JumpAheadEC(b+d+e, 0)
	l.JumpAheadEC(c+d+e, 0)

	l.JumpBackEC(a+b, 0)
	l.JumpBackEC(a+c, 0)
	l.JumpBackEC(a+d, 0)
	l.JumpBackEC(a+e, 0)
	l.JumpBackEC(b+c, 0)
	l.JumpBackEC(b+d, 0)
	l.JumpBackEC(b+e, 0)
	l.JumpBackEC(c+d, 0)
	l.JumpBackEC(c+e, 0)
	l.JumpBackEC(d+e, 0)

	l.JumpAheadEC(a, 0)
	l.JumpAheadEC(b, 0)
	l.JumpAheadEC(c, 0)
	l.JumpAheadEC(d, 0)
	l.JumpAheadEC(e, 0)

	l.JumpBack(1)
}
