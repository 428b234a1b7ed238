package uintn

// IsZero reports whether u is zero.
func (u Uint) IsZero() bool {
	for _, limb := range u.limbs {
		if limb != 0 {
			return false
		}
	}
	return true
}

// Cmp compares u and n, returning -1, 0 or 1 if u is smaller, equal or
// greater.
func (u Uint) Cmp(n Uint) int {
	u.mustMatch(n)
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if u.limbs[i] > n.limbs[i] {
			return 1
		}
		if u.limbs[i] < n.limbs[i] {
			return -1
		}
	}
	return 0
}

// Equal reports whether u and n are the same value.
func (u Uint) Equal(n Uint) bool {
	return u.Cmp(n) == 0
}

func (u Uint) GreaterThan(n Uint) bool { return u.Cmp(n) > 0 }

func (u Uint) GreaterOrEqualTo(n Uint) bool { return u.Cmp(n) >= 0 }

func (u Uint) LessThan(n Uint) bool { return u.Cmp(n) < 0 }

func (u Uint) LessOrEqualTo(n Uint) bool { return u.Cmp(n) <= 0 }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool {
	return u.BitLen() <= 64
}

// AsUint64 truncates u to its lowest 64 bits. See IsUint64 if you want
// to check before you convert.
func (u Uint) AsUint64() uint64 {
	if len(u.limbs) == 0 {
		return 0
	}
	return u.limbs[0]
}
