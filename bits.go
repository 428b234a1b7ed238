package uintn

import "fmt"

// Bit returns the value of the i'th bit of u, or 0 when i is at or
// beyond the width.
func (u Uint) Bit(i uint) uint {
	if i >= u.bits {
		return 0
	}
	return uint(u.limbs[i/64]>>(i%64)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). SetBit panics
// if i is at or beyond the width or b is not a valid bit value.
func (u Uint) SetBit(i uint, b uint) Uint {
	if i >= u.bits {
		panic(fmt.Sprintf("uintn: bit index %d out of range for %d bits", i, u.bits))
	}
	if b > 1 {
		panic(fmt.Sprintf("uintn: invalid bit value %d", b))
	}
	out := u.IntoLimbs()
	if b == 1 {
		out[i/64] |= uint64(1) << (i % 64)
	} else {
		out[i/64] &^= uint64(1) << (i % 64)
	}
	return raw(u.bits, out)
}

// Not returns the bitwise complement of u within the width.
func (u Uint) Not() Uint {
	out := make([]uint64, len(u.limbs))
	for i, limb := range u.limbs {
		out[i] = ^limb
	}
	if top := len(out) - 1; top >= 0 {
		out[top] &= mask(u.bits)
	}
	return raw(u.bits, out)
}

// And returns the bitwise AND of u and n.
func (u Uint) And(n Uint) Uint {
	u.mustMatch(n)
	out := make([]uint64, len(u.limbs))
	for i := range u.limbs {
		out[i] = u.limbs[i] & n.limbs[i]
	}
	return raw(u.bits, out)
}

// Or returns the bitwise OR of u and n.
func (u Uint) Or(n Uint) Uint {
	u.mustMatch(n)
	out := make([]uint64, len(u.limbs))
	for i := range u.limbs {
		out[i] = u.limbs[i] | n.limbs[i]
	}
	return raw(u.bits, out)
}

// Xor returns the bitwise XOR of u and n.
func (u Uint) Xor(n Uint) Uint {
	u.mustMatch(n)
	out := make([]uint64, len(u.limbs))
	for i := range u.limbs {
		out[i] = u.limbs[i] ^ n.limbs[i]
	}
	return raw(u.bits, out)
}

// AndNot returns the bit clear u &^ n.
func (u Uint) AndNot(n Uint) Uint {
	u.mustMatch(n)
	out := make([]uint64, len(u.limbs))
	for i := range u.limbs {
		out[i] = u.limbs[i] &^ n.limbs[i]
	}
	return raw(u.bits, out)
}

// Lsh returns u << n, discarding bits shifted past the width.
func (u Uint) Lsh(n uint) Uint {
	if n >= u.bits {
		return Zero(u.bits)
	}
	out := make([]uint64, len(u.limbs))
	words, shift := int(n/64), n%64
	if shift == 0 {
		copy(out[words:], u.limbs)
	} else {
		for i := len(out) - 1; i >= words; i-- {
			out[i] = u.limbs[i-words] << shift
			if i-words > 0 {
				out[i] |= u.limbs[i-words-1] >> (64 - shift)
			}
		}
	}
	out[len(out)-1] &= mask(u.bits)
	return raw(u.bits, out)
}

// Rsh returns u >> n, discarding bits shifted below position zero.
func (u Uint) Rsh(n uint) Uint {
	if n >= u.bits {
		return Zero(u.bits)
	}
	out := make([]uint64, len(u.limbs))
	words, shift := int(n/64), n%64
	if shift == 0 {
		copy(out, u.limbs[words:])
	} else {
		for i := 0; i < len(out)-words; i++ {
			out[i] = u.limbs[i+words] >> shift
			if i+words+1 < len(u.limbs) {
				out[i] |= u.limbs[i+words+1] << (64 - shift)
			}
		}
	}
	return raw(u.bits, out)
}

// OverflowingShl returns u << n, along with whether any set bit was
// shifted out of the width.
//
// This deliberately diverges from the built-in shift semantics, which
// key overflow purely off the shift amount: here shifting 0b11001000 in
// an 8-bit ring left by 1 overflows, because bit 7 is lost, even though
// the shift amount is well within the width. Safe-narrowing callers
// depend on this exactness.
func (u Uint) OverflowingShl(n uint) (Uint, bool) {
	overflow := u.BitLen() > 0 && uint(u.BitLen())+n > u.bits
	return u.Lsh(n), overflow
}

// OverflowingShr returns u >> n, along with whether any set bit was
// shifted out below position zero. The same divergence from the
// built-in semantics as OverflowingShl applies.
func (u Uint) OverflowingShr(n uint) (Uint, bool) {
	overflow := !u.IsZero() && uint(u.TrailingZeros()) < n
	return u.Rsh(n), overflow
}

// CheckedShl returns u << n and true, or the truncated shift and false
// if a set bit was shifted out.
func (u Uint) CheckedShl(n uint) (Uint, bool) {
	v, overflow := u.OverflowingShl(n)
	return v, !overflow
}

// CheckedShr returns u >> n and true, or the truncated shift and false
// if a set bit was shifted out.
func (u Uint) CheckedShr(n uint) (Uint, bool) {
	v, overflow := u.OverflowingShr(n)
	return v, !overflow
}

// Bits is a bit-vector view over the same storage as Uint, for code
// that works with the bits of a value rather than its numeric meaning.
type Bits struct {
	u Uint
}

// AsBits reinterprets u as a bit vector. The storage is shared; both
// views are immutable.
func (u Uint) AsBits() Bits { return Bits{u: u} }

// AsUint reinterprets the bit vector as a number.
func (b Bits) AsUint() Uint { return b.u }

// Len returns the width of the bit vector.
func (b Bits) Len() uint { return b.u.bits }

// Bit returns the value of the i'th bit.
func (b Bits) Bit(i uint) uint { return b.u.Bit(i) }

// SetBit returns b with the i'th bit set to v.
func (b Bits) SetBit(i uint, v uint) Bits { return Bits{u: b.u.SetBit(i, v)} }

// Not returns the bitwise complement within the width.
func (b Bits) Not() Bits { return Bits{u: b.u.Not()} }

// And returns the bitwise AND of b and n.
func (b Bits) And(n Bits) Bits { return Bits{u: b.u.And(n.u)} }

// Or returns the bitwise OR of b and n.
func (b Bits) Or(n Bits) Bits { return Bits{u: b.u.Or(n.u)} }

// Xor returns the bitwise XOR of b and n.
func (b Bits) Xor(n Bits) Bits { return Bits{u: b.u.Xor(n.u)} }

// Lsh returns b << n, discarding bits shifted past the width.
func (b Bits) Lsh(n uint) Bits { return Bits{u: b.u.Lsh(n)} }

// Rsh returns b >> n.
func (b Bits) Rsh(n uint) Bits { return Bits{u: b.u.Rsh(n)} }

// CheckedShl returns b << n and true, or the truncated shift and false
// if a set bit was shifted out of the width. See Uint.OverflowingShl
// for how this differs from the built-in shift semantics.
func (b Bits) CheckedShl(n uint) (Bits, bool) {
	v, ok := b.u.CheckedShl(n)
	return Bits{u: v}, ok
}

// CheckedShr returns b >> n and true, or the truncated shift and false
// if a set bit was shifted out.
func (b Bits) CheckedShr(n uint) (Bits, bool) {
	v, ok := b.u.CheckedShr(n)
	return Bits{u: v}, ok
}

// OnesCount returns the number of set bits.
func (b Bits) OnesCount() int { return b.u.OnesCount() }

// LeadingZeros returns the number of zero bits above the highest set
// bit.
func (b Bits) LeadingZeros() int { return b.u.LeadingZeros() }

// TrailingZeros returns the number of zero bits below the lowest set
// bit.
func (b Bits) TrailingZeros() int { return b.u.TrailingZeros() }

// Equal reports whether two bit vectors have identical bits.
func (b Bits) Equal(n Bits) bool { return b.u.Equal(n.u) }

// IsZero reports whether no bit is set.
func (b Bits) IsZero() bool { return b.u.IsZero() }

func (b Bits) String() string { return "0x" + b.u.Text(16) }
