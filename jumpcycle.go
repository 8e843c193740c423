package jumprand

// bitsetExponents decodes a string of '0'/'1' characters, written most
// significant bit first (the same convention std::bitset<N> uses when
// constructed from a string), into the list of bit positions that are
// set. kiss's jump_cycle walks its full period as a sum of power-of-two
// jumps taken straight from such a bitset rather than a signed digit
// decomposition.
func bitsetExponents(bits string) []uint64 {
	n := len(bits)
	var exps []uint64
	for i := 0; i < n; i++ {
		if bits[n-1-i] == '1' {
			exps = append(exps, uint64(i))
		}
	}
	return exps
}
