package uintn

import "math/bits"

// Add returns u + n, wrapping modulo 2^bits.
func (u Uint) Add(n Uint) Uint {
	v, _ := u.OverflowingAdd(n)
	return v
}

// Sub returns u - n, wrapping modulo 2^bits.
func (u Uint) Sub(n Uint) Uint {
	v, _ := u.OverflowingSub(n)
	return v
}

// OverflowingAdd returns u + n wrapped modulo 2^bits, along with whether
// the unbounded sum left the ring.
func (u Uint) OverflowingAdd(n Uint) (Uint, bool) {
	u.mustMatch(n)
	out := make([]uint64, len(u.limbs))
	var carry uint64
	for i := range u.limbs {
		out[i], carry = bits.Add64(u.limbs[i], n.limbs[i], carry)
	}
	overflow := carry != 0
	if top := len(out) - 1; top >= 0 {
		// For widths that are not a multiple of 64 the overflow shows
		// up as a spill past the top mask rather than a carry out.
		if m := mask(u.bits); out[top] > m {
			overflow = true
			out[top] &= m
		}
	}
	return raw(u.bits, out), overflow
}

// OverflowingSub returns u - n wrapped modulo 2^bits, along with whether
// the unbounded difference would be negative.
func (u Uint) OverflowingSub(n Uint) (Uint, bool) {
	u.mustMatch(n)
	out := make([]uint64, len(u.limbs))
	var borrow uint64
	for i := range u.limbs {
		out[i], borrow = bits.Sub64(u.limbs[i], n.limbs[i], borrow)
	}
	if top := len(out) - 1; top >= 0 {
		out[top] &= mask(u.bits)
	}
	return raw(u.bits, out), borrow != 0
}

// CheckedAdd returns u + n and true, or the wrapped sum and false if the
// unbounded sum does not fit.
func (u Uint) CheckedAdd(n Uint) (Uint, bool) {
	v, overflow := u.OverflowingAdd(n)
	return v, !overflow
}

// CheckedSub returns u - n and true, or the wrapped difference and false
// if n is greater than u.
func (u Uint) CheckedSub(n Uint) (Uint, bool) {
	v, overflow := u.OverflowingSub(n)
	return v, !overflow
}

// SaturatingAdd returns u + n, clamping to Max on overflow.
func (u Uint) SaturatingAdd(n Uint) Uint {
	v, overflow := u.OverflowingAdd(n)
	if overflow {
		return Max(u.bits)
	}
	return v
}

// SaturatingSub returns u - n, clamping to zero when n is greater
// than u.
func (u Uint) SaturatingSub(n Uint) Uint {
	v, overflow := u.OverflowingSub(n)
	if overflow {
		return Zero(u.bits)
	}
	return v
}

// Inc returns u + 1, wrapping modulo 2^bits.
func (u Uint) Inc() Uint {
	out := make([]uint64, len(u.limbs))
	carry := uint64(1)
	for i := range u.limbs {
		out[i], carry = bits.Add64(u.limbs[i], 0, carry)
	}
	if top := len(out) - 1; top >= 0 {
		out[top] &= mask(u.bits)
	}
	return raw(u.bits, out)
}

// Dec returns u - 1, wrapping modulo 2^bits.
func (u Uint) Dec() Uint {
	out := make([]uint64, len(u.limbs))
	borrow := uint64(1)
	for i := range u.limbs {
		out[i], borrow = bits.Sub64(u.limbs[i], 0, borrow)
	}
	if top := len(out) - 1; top >= 0 {
		out[top] &= mask(u.bits)
	}
	return raw(u.bits, out)
}

// Neg returns the two's complement of u, so that u.Add(u.Neg()) is
// zero.
func (u Uint) Neg() Uint {
	return Zero(u.bits).Sub(u)
}

// overflowingAdd64 adds a single uint64 to u. Unlike From64 followed by
// OverflowingAdd it accepts addends wider than the ring, reporting them
// as overflow; base conversion relies on this for small widths.
func (u Uint) overflowingAdd64(w uint64) (Uint, bool) {
	if len(u.limbs) == 0 {
		return u, w != 0
	}
	out := make([]uint64, len(u.limbs))
	var c uint64
	out[0], c = bits.Add64(u.limbs[0], w, 0)
	for i := 1; i < len(u.limbs); i++ {
		out[i], c = bits.Add64(u.limbs[i], 0, c)
	}
	overflow := c != 0
	top := len(out) - 1
	if m := mask(u.bits); out[top] > m {
		overflow = true
		out[top] &= m
	}
	return raw(u.bits, out), overflow
}
