package uintn

import "math/big"

// FromBig creates a Uint of the given width from a big.Int. Negative
// values yield zero; values too wide truncate to Max. Both set accurate
// to false.
func FromBig(bits uint, v *big.Int) (out Uint, accurate bool) {
	if v.Sign() < 0 {
		return Zero(bits), false
	}
	if uint(v.BitLen()) > bits {
		return Max(bits), false
	}
	out, _ = FromBEBytes(bits, v.Bytes())
	return out, true
}

// IntoBigInt writes the value of u into an existing big.Int.
func (u Uint) IntoBigInt(b *big.Int) {
	b.SetBytes(u.ToBEBytes(Nbytes(u.bits)))
}

// AsBigInt returns the value of u as a new big.Int.
func (u Uint) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}
