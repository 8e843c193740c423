// Package bitmatrix implements packed GF(2) bit matrices used to jump a
// linear-feedback stream ahead or back in O(log n) time: 32x32 matrices
// over uint32 columns and 64x64 matrices over uint64 columns, with
// exponentiation by squaring and Gauss-Jordan inversion.
package bitmatrix

import "golang.org/x/sys/cpu"

// Matrix32 is a 32x32 matrix over GF(2), stored column-major: Cols[i] is
// the i-th column, and multiplying by a vector v XORs together the
// columns whose corresponding bit of v is set.
type Matrix32 struct {
	Cols [32]uint32
}

// Identity32 returns the 32x32 identity matrix.
func Identity32() Matrix32 {
	var m Matrix32
	v := uint32(1)
	for i := range m.Cols {
		m.Cols[i] = v
		v <<= 1
	}
	return m
}

// MulVec returns A*v.
func (a Matrix32) MulVec(v uint32) uint32 {
	var r uint32
	for i := 0; v != 0; i, v = i+1, v>>1 {
		if v&1 != 0 {
			r ^= a.Cols[i]
		}
	}
	return r
}

// Mul returns A*B.
func (a Matrix32) Mul(b Matrix32) Matrix32 {
	var c Matrix32
	for i, col := range b.Cols {
		c.Cols[i] = a.MulVec(col)
	}
	return c
}

// Pow returns A^n via exponentiation by squaring.
func (a Matrix32) Pow(n uint64) Matrix32 {
	b := Identity32()
	for n > 0 {
		if n&1 != 0 {
			b = b.Mul(a)
		}
		a = a.Mul(a)
		n >>= 1
	}
	return b
}

// PowEC returns A^n, where n = 2^e + c. When e == 0, n is simply c, not
// "identity times A^0" — matching the reference's special-cased behavior.
func (a Matrix32) PowEC(e, c uint64) Matrix32 {
	var b Matrix32
	if e > 0 {
		b = a
		for i := uint64(0); i < e; i++ {
			b = b.Mul(b)
		}
	}
	r := a.Pow(c)
	if e > 0 {
		r = r.Mul(b)
	}
	return r
}

// Inverse computes A^-1 over GF(2) by Gauss-Jordan elimination on the
// augmented [A | I] matrix, expressed column-major the same way A is
// stored. No generator calls it: the 32-bit generators use precomputed
// inverse tables.
func (a Matrix32) Inverse() Matrix32 {
	rows := matrixToRows32(a)
	id := matrixToRows32(Identity32())

	n := 32
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if rows[r]&(1<<uint(col)) != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			panic("bitmatrix: matrix is singular over GF(2)")
		}
		rows[col], rows[pivot] = rows[pivot], rows[col]
		id[col], id[pivot] = id[pivot], id[col]
		for r := 0; r < n; r++ {
			if r != col && rows[r]&(1<<uint(col)) != 0 {
				rows[r] ^= rows[col]
				id[r] ^= id[col]
			}
		}
	}
	return rowsToMatrix32(id)
}

func matrixToRows32(a Matrix32) [32]uint32 {
	var rows [32]uint32
	for col := 0; col < 32; col++ {
		c := a.Cols[col]
		for row := 0; row < 32; row++ {
			if c&(1<<uint(row)) != 0 {
				rows[row] |= 1 << uint(col)
			}
		}
	}
	return rows
}

func rowsToMatrix32(rows [32]uint32) Matrix32 {
	var m Matrix32
	for col := 0; col < 32; col++ {
		var c uint32
		for row := 0; row < 32; row++ {
			if rows[row]&(1<<uint(col)) != 0 {
				c |= 1 << uint(row)
			}
		}
		m.Cols[col] = c
	}
	return m
}

// Matrix64 is the 64x64 analogue of Matrix32.
type Matrix64 struct {
	Cols [64]uint64
}

// Identity64 returns the 64x64 identity matrix.
func Identity64() Matrix64 {
	var m Matrix64
	v := uint64(1)
	for i := range m.Cols {
		m.Cols[i] = v
		v <<= 1
	}
	return m
}

// MulVec returns A*v.
func (a Matrix64) MulVec(v uint64) uint64 {
	return mulVec64(a, v)
}

// mulVec64 is feature-gated the same way the teacher's inthist package
// picks between sumHistogramAVX2 and sumHistogramSlow: a map keyed by a
// cpu feature flag instead of a branch, so the dispatch costs one load.
// Both sides here are plain Go -- this package carries no assembly --
// chosen for a sparse bit-scan fold when few bits of v are set and a
// branch-predictable unrolled fold when the hardware can pipeline it,
// which matters here because Pow calls MulVec 64 times per squaring.
var mulVec64 = map[bool]func(Matrix64, uint64) uint64{
	true:  mulVec64Unrolled,
	false: mulVec64Scan,
}[cpu.X86.HasAVX2]

func mulVec64Scan(a Matrix64, v uint64) uint64 {
	var r uint64
	for i := 0; v != 0; i, v = i+1, v>>1 {
		if v&1 != 0 {
			r ^= a.Cols[i]
		}
	}
	return r
}

// mulVec64Unrolled folds all 64 columns unconditionally instead of
// stopping once v's remaining bits are exhausted, trading the early
// exit for a fixed, unrolled-by-8 instruction sequence.
func mulVec64Unrolled(a Matrix64, v uint64) uint64 {
	var r uint64
	for i := 0; i < 64; i += 8 {
		r ^= (v>>uint(i+0)&1)*a.Cols[i+0] ^
			(v>>uint(i+1)&1)*a.Cols[i+1] ^
			(v>>uint(i+2)&1)*a.Cols[i+2] ^
			(v>>uint(i+3)&1)*a.Cols[i+3] ^
			(v>>uint(i+4)&1)*a.Cols[i+4] ^
			(v>>uint(i+5)&1)*a.Cols[i+5] ^
			(v>>uint(i+6)&1)*a.Cols[i+6] ^
			(v>>uint(i+7)&1)*a.Cols[i+7]
	}
	return r
}

// Mul returns A*B.
func (a Matrix64) Mul(b Matrix64) Matrix64 {
	var c Matrix64
	for i, col := range b.Cols {
		c.Cols[i] = a.MulVec(col)
	}
	return c
}

// Pow returns A^n via exponentiation by squaring.
func (a Matrix64) Pow(n uint64) Matrix64 {
	b := Identity64()
	for n > 0 {
		if n&1 != 0 {
			b = b.Mul(a)
		}
		a = a.Mul(a)
		n >>= 1
	}
	return b
}

// PowEC returns A^n, where n = 2^e + c.
func (a Matrix64) PowEC(e, c uint64) Matrix64 {
	var b Matrix64
	if e > 0 {
		b = a
		for i := uint64(0); i < e; i++ {
			b = b.Mul(b)
		}
	}
	r := a.Pow(c)
	if e > 0 {
		r = r.Mul(b)
	}
	return r
}

// Inverse computes A^-1 over GF(2) by Gauss-Jordan elimination.
func (a Matrix64) Inverse() Matrix64 {
	rows := matrixToRows64(a)
	id := matrixToRows64(Identity64())

	n := 64
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if rows[r]&(1<<uint(col)) != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			panic("bitmatrix: matrix is singular over GF(2)")
		}
		rows[col], rows[pivot] = rows[pivot], rows[col]
		id[col], id[pivot] = id[pivot], id[col]
		for r := 0; r < n; r++ {
			if r != col && rows[r]&(1<<uint(col)) != 0 {
				rows[r] ^= rows[col]
				id[r] ^= id[col]
			}
		}
	}
	return rowsToMatrix64(id)
}

func matrixToRows64(a Matrix64) [64]uint64 {
	var rows [64]uint64
	for col := 0; col < 64; col++ {
		c := a.Cols[col]
		for row := 0; row < 64; row++ {
			if c&(1<<uint(row)) != 0 {
				rows[row] |= 1 << uint(col)
			}
		}
	}
	return rows
}

func rowsToMatrix64(rows [64]uint64) Matrix64 {
	var m Matrix64
	for col := 0; col < 64; col++ {
		var c uint64
		for row := 0; row < 64; row++ {
			if rows[row]&(1<<uint(col)) != 0 {
				c |= 1 << uint(row)
			}
		}
		m.Cols[col] = c
	}
	return m
}
