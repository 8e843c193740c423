package jumprand

// two32Inv and two64Inv convert a uniformly-distributed 32/64-bit integer
// into a float64 in [0, 1) by scaling: x * 2^-w. U01_64 returns a plain
// float64, so its result carries 53 significant bits, not all 64 bits of
// the Next64 word.
const (
	two32Inv = 2.3283064365386963e-10 // 2^-32
	two64Inv = 5.421010862427522e-20  // 2^-64
)
