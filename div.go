package uintn

import "math/bits"

// Quo returns the quotient u/n for n != 0. A zero divisor panics with
// ErrDivideByZero, matching the built-in integer types; use CheckedQuo
// when the divisor is runtime data.
func (u Uint) Quo(n Uint) Uint {
	q, _ := u.QuoRem(n)
	return q
}

// Rem returns the remainder u%n for n != 0. If n == 0, Rem panics with
// ErrDivideByZero.
func (u Uint) Rem(n Uint) Uint {
	_, r := u.QuoRem(n)
	return r
}

// QuoRem returns the quotient and remainder of u/n, such that
// u == q*n + r and r < n, exactly. If n == 0, QuoRem panics with
// ErrDivideByZero.
func (u Uint) QuoRem(n Uint) (q, r Uint) {
	u.mustMatch(n)
	if n.IsZero() {
		panic(ErrDivideByZero)
	}
	qs, rs := udivrem(u.limbs, n.limbs)
	return widen(u.bits, qs), widen(u.bits, rs)
}

// CheckedQuo returns u/n and true, or zero and false if n is zero.
func (u Uint) CheckedQuo(n Uint) (Uint, bool) {
	q, _, ok := u.CheckedQuoRem(n)
	return q, ok
}

// CheckedRem returns u%n and true, or zero and false if n is zero.
func (u Uint) CheckedRem(n Uint) (Uint, bool) {
	_, r, ok := u.CheckedQuoRem(n)
	return r, ok
}

// CheckedQuoRem is QuoRem with a zero divisor reported as ok == false
// instead of a panic.
func (u Uint) CheckedQuoRem(n Uint) (q, r Uint, ok bool) {
	u.mustMatch(n)
	if n.IsZero() {
		return Zero(u.bits), Zero(u.bits), false
	}
	q, r = u.QuoRem(n)
	return q, r, true
}

// udivrem divides u by d at the limb level, returning quotient and
// remainder limb sequences (possibly shorter than the inputs). The
// inputs are not modified. d must be nonzero.
func udivrem(u, d []uint64) (q, r []uint64) {
	un := trim(u)
	dn := trim(d)
	switch {
	case len(dn) == 0:
		panic(ErrDivideByZero)

	case len(un) < len(dn):
		// Dividend smaller than divisor: quotient 0, remainder u.
		r = make([]uint64, len(un))
		copy(r, un)
		return nil, r

	case len(dn) == 1:
		// Single-limb divisor: plain ripple division, no
		// normalization needed. bits.Div64 is safe because the
		// running remainder is always below dn[0].
		q = make([]uint64, len(un))
		var rem uint64
		for i := len(un) - 1; i >= 0; i-- {
			q[i], rem = bits.Div64(rem, un[i], dn[0])
		}
		return q, []uint64{rem}

	default:
		return udivremKnuth(un, dn)
	}
}

// udivremKnuth is Knuth's Algorithm D (TAOCP 4.3.1) for divisors of two
// limbs or more. Both operands are shifted left so the divisor's top
// bit is set; each quotient limb is estimated from the top two dividend
// limbs against the top divisor limb, corrected downward at most twice
// against the second divisor limb, then verified by the multiply-
// subtract step with a single add-back when it was still one too high.
func udivremKnuth(un, dn []uint64) (q, r []uint64) {
	n := len(dn)
	m := len(un) - n

	s := uint(bits.LeadingZeros64(dn[n-1]))
	vn := shlTo(dn, s, n)
	u2n := shlTo(un, s, len(un)+1)

	q = make([]uint64, m+1)
	dh, dl := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		u2 := u2n[j+n]
		var qhat uint64
		if u2 >= dh {
			qhat = ^uint64(0)
		} else {
			var rhat uint64
			qhat, rhat = bits.Div64(u2, u2n[j+n-1], dh)
			ph, pl := bits.Mul64(qhat, dl)
			for ph > rhat || (ph == rhat && pl > u2n[j+n-2]) {
				qhat--
				rhat += dh
				if rhat < dh {
					// rhat wrapped; further trial products
					// cannot exceed it.
					break
				}
				ph, pl = bits.Mul64(qhat, dl)
			}
		}

		borrow := subMul(u2n[j:j+n], vn, qhat)
		u2n[j+n] = u2 - borrow
		if u2 < borrow {
			// The estimate was still one too high; undo one
			// subtraction of the divisor.
			qhat--
			u2n[j+n] += addTo(u2n[j:j+n], vn)
		}
		q[j] = qhat
	}

	return q, shrTo(u2n[:n], s)
}

// shlTo shifts x left by s bits (s < 64) into a fresh slice of outLen
// limbs. When outLen exceeds len(x) the spill out of the top limb is
// kept in the extra limb.
func shlTo(x []uint64, s uint, outLen int) []uint64 {
	out := make([]uint64, outLen)
	if s == 0 {
		copy(out, x)
		return out
	}
	var prev uint64
	for i, xi := range x {
		out[i] = xi<<s | prev>>(64-s)
		prev = xi
	}
	if outLen > len(x) {
		out[len(x)] = prev >> (64 - s)
	}
	return out
}

// shrTo shifts x right by s bits (s < 64) into a fresh slice.
func shrTo(x []uint64, s uint) []uint64 {
	out := make([]uint64, len(x))
	if s == 0 {
		copy(out, x)
		return out
	}
	for i := range x {
		out[i] = x[i] >> s
		if i+1 < len(x) {
			out[i] |= x[i+1] << (64 - s)
		}
	}
	return out
}

// subMul computes x -= y*m limb-wise and returns the borrow out of the
// top limb. len(y) must equal len(x).
func subMul(x, y []uint64, m uint64) uint64 {
	var borrow uint64
	for i := range x {
		s, carry1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], m)
		t, carry2 := bits.Sub64(s, pl, 0)
		x[i] = t
		borrow = ph + carry1 + carry2
	}
	return borrow
}

// addTo computes x += y limb-wise and returns the carry out of the top
// limb. len(y) must equal len(x).
func addTo(x, y []uint64) uint64 {
	var carry uint64
	for i := range x {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}
