package uintn

import "math/bits"

// Mul returns u * n, wrapping modulo 2^bits.
func (u Uint) Mul(n Uint) Uint {
	v, _ := u.OverflowingMul(n)
	return v
}

// OverflowingMul returns u * n wrapped modulo 2^bits, along with
// whether the unbounded product left the ring.
func (u Uint) OverflowingMul(n Uint) (Uint, bool) {
	u.mustMatch(n)
	if len(u.limbs) == 0 {
		return u, false
	}
	z := umul(u.limbs, n.limbs)

	overflow := false
	for _, limb := range z[len(u.limbs):] {
		if limb != 0 {
			overflow = true
			break
		}
	}
	out := z[:len(u.limbs)]
	top := len(out) - 1
	if m := mask(u.bits); out[top] > m {
		overflow = true
		out[top] &= m
	}
	return raw(u.bits, out), overflow
}

// CheckedMul returns u * n and true, or the wrapped product and false
// if the unbounded product does not fit.
func (u Uint) CheckedMul(n Uint) (Uint, bool) {
	v, overflow := u.OverflowingMul(n)
	return v, !overflow
}

// SaturatingMul returns u * n, clamping to Max on overflow.
func (u Uint) SaturatingMul(n Uint) Uint {
	v, overflow := u.OverflowingMul(n)
	if overflow {
		return Max(u.bits)
	}
	return v
}

// umul is schoolbook multiplication into a freshly allocated
// double-length product. Partial products are 128 bits wide via
// bits.Mul64; the running row sum x[i]*y[j] + z[i+j] + carry cannot
// exceed 2^128 - 1, so the high word never overflows.
func umul(x, y []uint64) []uint64 {
	z := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			hi, lo := bits.Mul64(xi, yj)
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[i+len(y)] = carry
	}
	return z
}

// overflowingMul64 multiplies u by a single uint64. Like
// overflowingAdd64 it accepts multipliers wider than the ring.
func (u Uint) overflowingMul64(w uint64) (Uint, bool) {
	if len(u.limbs) == 0 {
		return u, false
	}
	out := make([]uint64, len(u.limbs))
	var carry uint64
	for i, x := range u.limbs {
		hi, lo := bits.Mul64(x, w)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		out[i] = lo
		carry = hi + c
	}
	overflow := carry != 0
	top := len(out) - 1
	if m := mask(u.bits); out[top] > m {
		overflow = true
		out[top] &= m
	}
	return raw(u.bits, out), overflow
}
