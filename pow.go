package uintn

// Pow returns u raised to exp, wrapping modulo 2^bits. Any base raised
// to a zero exponent is one, including zero.
func (u Uint) Pow(exp Uint) Uint {
	v, _ := u.OverflowingPow(exp)
	return v
}

// OverflowingPow returns u^exp wrapped modulo 2^bits, along with
// whether the unbounded power left the ring.
//
// Binary exponentiation, walking the exponent bits from least to most
// significant. If no step wraps, no intermediate ever left the ring and
// the result is exact; if any contributing step wraps, the true power
// is at least 2^bits.
func (u Uint) OverflowingPow(exp Uint) (Uint, bool) {
	u.mustMatch(exp)
	result := One(u.bits)
	base := u
	e := exp
	overflow := false
	for !e.IsZero() {
		if e.Bit(0) == 1 {
			var o bool
			result, o = result.OverflowingMul(base)
			overflow = overflow || o
		}
		e = e.Rsh(1)
		if !e.IsZero() {
			var o bool
			base, o = base.OverflowingMul(base)
			overflow = overflow || o
		}
	}
	return result, overflow
}

// CheckedPow returns u^exp and true, or the wrapped power and false if
// the unbounded power does not fit.
func (u Uint) CheckedPow(exp Uint) (Uint, bool) {
	v, overflow := u.OverflowingPow(exp)
	return v, !overflow
}

// PowMod returns u^exp modulo mod. A zero modulus is runtime data here,
// not a programming error, so it is reported as ErrDivideByZero rather
// than a panic.
func (u Uint) PowMod(exp, mod Uint) (Uint, error) {
	u.mustMatch(exp)
	u.mustMatch(mod)
	if mod.IsZero() {
		return Zero(u.bits), ErrDivideByZero
	}
	result := One(u.bits).Rem(mod)
	base := u.Rem(mod)
	e := exp
	for !e.IsZero() {
		if e.Bit(0) == 1 {
			result = mulMod(result, base, mod)
		}
		e = e.Rsh(1)
		if !e.IsZero() {
			base = mulMod(base, base, mod)
		}
	}
	return result, nil
}

// mulMod reduces the double-width product of x and y against m. The
// slice-level division kernel accepts the 2×LIMBS product directly, so
// no width change is observable to the caller.
func mulMod(x, y, m Uint) Uint {
	if len(x.limbs) == 0 {
		return x
	}
	_, r := udivrem(umul(x.limbs, y.limbs), m.limbs)
	return widen(m.bits, r)
}
