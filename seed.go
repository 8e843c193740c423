package jumprand

import (
	"github.com/zeebo/errs"
	"github.com/zeebo/xxh3"
)

// ErrSeedTooShort is returned by SeedSet when the seed slice has fewer
// words than the generator requires.
var ErrSeedTooShort = errs.New("jumprand: seed too short")

// degenerate32 adds min to s if s falls below the tausworthe
// component's minimum, matching the source generators' own
// "if (_s[i] < min) _s[i] += min" correction rather than rejecting the
// seed outright.
func degenerate32(s, min uint32) uint32 {
	if s < min {
		return s + min
	}
	return s
}

func degenerate64(s, min uint64) uint64 {
	if s < min {
		return s + min
	}
	return s
}

// SeedFromKey expands an arbitrary byte key into n seed words by hashing
// the key concatenated with a counter. Useful for seeding a generator
// deterministically from a string or other caller-supplied key rather
// than hand-picked integers.
func SeedFromKey(key []byte, n int) []uint64 {
	out := make([]uint64, n)
	buf := make([]byte, 0, len(key)+8)
	for i := range out {
		buf = buf[:0]
		buf = append(buf, key...)
		buf = append(buf,
			byte(i), byte(i>>8), byte(i>>16), byte(i>>24),
			byte(i>>32), byte(i>>40), byte(i>>48), byte(i>>56))
		out[i] = xxh3.Hash(buf)
	}
	return out
}
