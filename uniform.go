package jumprand

// Uniform32 wraps a Generator32 with range-mapped sampling. It holds a
// non-owning reference: the caller owns g and must keep it alive for as
// long as the Uniform32 is used.
type Uniform32 struct {
	g Generator32
}

// NewUniform32 returns a Uniform32 borrowing g.
func NewUniform32(g Generator32) *Uniform32 { return &Uniform32{g: g} }

// U01 returns a float64 in [0, 1).
func (u *Uniform32) U01() float64 { return u.g.U01_32() }

// U returns a float64 uniformly distributed in [a, b).
func (u *Uniform32) U(a, b float64) float64 { return a + (b-a)*u.U01() }

// Uniform64 is the 64-bit analogue of Uniform32.
type Uniform64 struct {
	g Generator64
}

// NewUniform64 returns a Uniform64 borrowing g.
func NewUniform64(g Generator64) *Uniform64 { return &Uniform64{g: g} }

// U01 returns a float64 in [0, 1).
func (u *Uniform64) U01() float64 { return u.g.U01_64() }

// U returns a float64 uniformly distributed in [a, b).
func (u *Uniform64) U(a, b float64) float64 { return a + (b-a)*u.U01() }
