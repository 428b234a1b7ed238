package uintn

import (
	"fmt"
)

// Uint is an unsigned integer in the ring of numbers modulo 2^bits.
//
// The width is chosen at construction and never changes. Internally the
// value is a little-endian sequence of 64-bit limbs; the unused high
// bits of the most significant limb are always zero, so two values of
// the same width are equal exactly when their limbs are equal.
//
// The zero value of Uint is the zero-width value, whose only inhabitant
// is zero.
type Uint struct {
	bits  uint
	limbs []uint64
}

// Nlimbs returns the number of 64-bit limbs required to represent the
// given number of bits.
func Nlimbs(bits uint) int { return int((bits + 63) / 64) }

// Nbytes returns the number of bytes required to represent the given
// number of bits.
func Nbytes(bits uint) int { return int((bits + 7) / 8) }

// mask is the bit mask for the valid portion of the highest limb.
func mask(bits uint) uint64 {
	if bits == 0 {
		return 0
	}
	if bits%64 == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << (bits % 64)) - 1
}

// Zero returns the zero value of the given width. Zero is also the
// smallest value of every width.
func Zero(bits uint) Uint {
	return Uint{bits: bits, limbs: make([]uint64, Nlimbs(bits))}
}

// One returns the multiplicative identity of the given width. For a
// zero-width Uint this is zero, the ring's only value.
func One(bits uint) Uint {
	u := Zero(bits)
	if bits > 0 {
		u.limbs[0] = 1
	}
	return u
}

// Max returns the largest value of the given width, 2^bits - 1.
func Max(bits uint) Uint {
	u := Uint{bits: bits, limbs: make([]uint64, Nlimbs(bits))}
	for i := range u.limbs {
		u.limbs[i] = ^uint64(0)
	}
	if len(u.limbs) > 0 {
		u.limbs[len(u.limbs)-1] = mask(bits)
	}
	return u
}

// FromLimbs creates a Uint of the given width from a little-endian limb
// sequence. The input is copied.
//
// FromLimbs panics if the limb count does not match the width, or if
// the top limb has bits set above the width; both are programming
// errors, not data errors. Untrusted input should arrive through
// FromBEBytes, FromLEBytes or FromString instead.
func FromLimbs(bits uint, limbs []uint64) Uint {
	if len(limbs) != Nlimbs(bits) {
		panic(fmt.Sprintf("uintn: %d bits requires %d limbs, found %d", bits, Nlimbs(bits), len(limbs)))
	}
	if len(limbs) > 0 && limbs[len(limbs)-1] > mask(bits) {
		panic(fmt.Sprintf("uintn: limb value exceeds %d bits", bits))
	}
	out := make([]uint64, len(limbs))
	copy(out, limbs)
	return Uint{bits: bits, limbs: out}
}

// FromLimbsSlice is FromLimbs for callers holding a slice of unknown
// length: the length is validated against the width before the copy.
func FromLimbsSlice(bits uint, slice []uint64) Uint {
	return FromLimbs(bits, slice)
}

// From64 creates a Uint of the given width from a uint64. It panics if
// the value does not fit in the width.
func From64(bits uint, v uint64) Uint {
	if bits < 64 && v > mask(bits) {
		panic(fmt.Sprintf("uintn: value %d exceeds %d bits", v, bits))
	}
	u := Zero(bits)
	if v != 0 {
		u.limbs[0] = v
	}
	return u
}

// Rand generates a uniformly distributed value of the given width from
// an external source of random uint64s.
func Rand(bits uint, source RandSource) Uint {
	u := Zero(bits)
	for i := range u.limbs {
		u.limbs[i] = source.Uint64()
	}
	if len(u.limbs) > 0 {
		u.limbs[len(u.limbs)-1] &= mask(bits)
	}
	return u
}

// BitWidth returns the width of u in bits.
func (u Uint) BitWidth() uint { return u.bits }

// AsLimbs returns the little-endian limbs of u. The returned slice is
// the value's own storage and must not be modified; see IntoLimbs for a
// copy.
func (u Uint) AsLimbs() []uint64 { return u.limbs }

// IntoLimbs returns a copy of the little-endian limbs of u.
func (u Uint) IntoLimbs() []uint64 {
	out := make([]uint64, len(u.limbs))
	copy(out, u.limbs)
	return out
}

// mustMatch panics when two operands belong to different rings.
func (u Uint) mustMatch(n Uint) {
	if u.bits != n.bits {
		panic(fmt.Sprintf("uintn: mismatched bit widths %d and %d", u.bits, n.bits))
	}
}

// raw wraps limbs of the correct length without copying or validation.
// The caller guarantees canonical form.
func raw(bits uint, limbs []uint64) Uint {
	return Uint{bits: bits, limbs: limbs}
}

// widen copies a limb sequence of at most Nlimbs(bits) limbs into a
// full-length canonical value.
func widen(bits uint, limbs []uint64) Uint {
	out := make([]uint64, Nlimbs(bits))
	copy(out, limbs)
	return Uint{bits: bits, limbs: out}
}

// trim drops leading zero limbs from x, returning a subslice.
func trim(x []uint64) []uint64 {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}
