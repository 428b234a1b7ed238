package uintn

import "math/bits"

// BitLen returns the number of bits required to represent u; the
// position of the highest set bit plus one, or 0 for zero.
func (u Uint) BitLen() int {
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if u.limbs[i] != 0 {
			return i*64 + bits.Len64(u.limbs[i])
		}
	}
	return 0
}

// LeadingZeros returns the number of zero bits above the highest set
// bit, counted within the logical width.
func (u Uint) LeadingZeros() int {
	return int(u.bits) - u.BitLen()
}

// TrailingZeros returns the number of zero bits below the lowest set
// bit, or the full width for zero.
func (u Uint) TrailingZeros() int {
	for i, limb := range u.limbs {
		if limb != 0 {
			return i*64 + bits.TrailingZeros64(limb)
		}
	}
	return int(u.bits)
}

// OnesCount returns the number of set bits in u.
func (u Uint) OnesCount() int {
	var n int
	for _, limb := range u.limbs {
		n += bits.OnesCount64(limb)
	}
	return n
}

// CheckedLog returns the floor of the base-b logarithm of u. The result
// is defined only for u > 0 and base > 1; otherwise ok is false.
//
// Computed by repeated division, which is exact for any base, including
// bases that are not powers of two.
func (u Uint) CheckedLog(base Uint) (log uint, ok bool) {
	u.mustMatch(base)
	if u.IsZero() || base.Cmp(One(base.bits)) <= 0 {
		return 0, false
	}
	v := u
	for v.Cmp(base) >= 0 {
		v = v.Quo(base)
		log++
	}
	return log, true
}

// CheckedLog2 returns the floor of the base-2 logarithm of u, or
// ok == false for zero.
func (u Uint) CheckedLog2() (log uint, ok bool) {
	if u.IsZero() {
		return 0, false
	}
	return uint(u.BitLen() - 1), true
}

// CheckedLog10 returns the floor of the base-10 logarithm of u, or
// ok == false for zero.
func (u Uint) CheckedLog10() (log uint, ok bool) {
	if u.IsZero() {
		return 0, false
	}
	if u.bits < 4 {
		// The width cannot represent 10; any nonzero value is below
		// it.
		return 0, true
	}
	return u.CheckedLog(From64(u.bits, 10))
}
