package uintn

// RandSource is any source of random uint64s; math/rand's Rand and
// crypto-quality sources both qualify.
type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// Larger returns the larger of a and b.
func Larger(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Smaller returns the smaller of a and b.
func Smaller(a, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
