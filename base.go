package uintn

import (
	"fmt"
	"math/bits"
)

// ToBaseLE converts u to digits in the given base, least significant
// digit first. Zero yields a single zero digit. Any base of 2 or more
// is supported; a smaller base panics.
func (u Uint) ToBaseLE(base uint64) []uint64 {
	checkBase(base)
	if u.IsZero() {
		return []uint64{0}
	}
	v := trim(u.IntoLimbs())
	digits := make([]uint64, 0, baseDigits(u.bits, base))
	for len(v) > 0 {
		digits = append(digits, divWVW(v, base))
		v = trim(v)
	}
	return digits
}

// ToBaseBE converts u to digits in the given base, most significant
// digit first.
func (u Uint) ToBaseBE(base uint64) []uint64 {
	digits := u.ToBaseLE(base)
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// FromBaseLE accumulates a least-significant-first digit sequence in
// the given base into a value of the given width. Digits at or above
// the base, or a value that does not fit the width, are reported as a
// *BaseConvertError.
func FromBaseLE(bits uint, base uint64, digits []uint64) (Uint, error) {
	checkBase(base)
	result := Zero(bits)
	for i := len(digits) - 1; i >= 0; i-- {
		var err error
		result, err = accumDigit(result, base, digits[i])
		if err != nil {
			return Zero(bits), err
		}
	}
	return result, nil
}

// FromBaseBE accumulates a most-significant-first digit sequence in the
// given base into a value of the given width.
func FromBaseBE(bits uint, base uint64, digits []uint64) (Uint, error) {
	checkBase(base)
	result := Zero(bits)
	for _, d := range digits {
		var err error
		result, err = accumDigit(result, base, d)
		if err != nil {
			return Zero(bits), err
		}
	}
	return result, nil
}

// accumDigit folds one more significant digit into the running value:
// result*base + d, refusing to leave the ring.
func accumDigit(result Uint, base uint64, d uint64) (Uint, error) {
	if d >= base {
		return result, &BaseConvertError{Base: base, Err: ErrInvalidDigit}
	}
	result, o1 := result.overflowingMul64(base)
	result, o2 := result.overflowingAdd64(d)
	if o1 || o2 {
		return result, &BaseConvertError{Base: base, Err: ErrValueTooLarge}
	}
	return result, nil
}

func checkBase(base uint64) {
	if base < 2 {
		panic(fmt.Sprintf("uintn: invalid base %d", base))
	}
}

// divWVW divides x in place by the single-limb divisor w, returning the
// remainder.
func divWVW(x []uint64, w uint64) (rem uint64) {
	for i := len(x) - 1; i >= 0; i-- {
		x[i], rem = bits.Div64(rem, x[i], w)
	}
	return rem
}

// baseDigits estimates the digit count of a full-width value in the
// given base, for pre-sizing only.
func baseDigits(width uint, base uint64) int {
	return int(width)/(bits.Len64(base)-1) + 1
}
