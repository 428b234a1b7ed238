package uintn

import "fmt"

// ToBEBytes returns u as n big-endian bytes. The requested length is
// independent of the width: larger buffers are zero-padded at the
// front, but a buffer too small for the width panics rather than
// silently truncating.
func (u Uint) ToBEBytes(n int) []byte {
	checkByteLen(u.bits, n)
	out := make([]byte, n)
	for i, limb := range u.limbs {
		for j := 0; j < 8; j++ {
			pos := n - 1 - (i*8 + j)
			if pos < 0 {
				break
			}
			out[pos] = byte(limb >> (8 * j))
		}
	}
	return out
}

// ToLEBytes returns u as n little-endian bytes, zero-padded at the end.
// A length too small for the width panics.
func (u Uint) ToLEBytes(n int) []byte {
	checkByteLen(u.bits, n)
	out := make([]byte, n)
	for i, limb := range u.limbs {
		for j := 0; j < 8; j++ {
			pos := i*8 + j
			if pos >= n {
				break
			}
			out[pos] = byte(limb >> (8 * j))
		}
	}
	return out
}

// FromBEBytes interprets b as a big-endian unsigned integer of the
// given width. The input may be any length; set bits beyond the width
// are data errors reported as ErrValueTooLarge.
func FromBEBytes(bits uint, b []byte) (Uint, error) {
	return fromBytes(bits, b, true)
}

// FromLEBytes interprets b as a little-endian unsigned integer of the
// given width.
func FromLEBytes(bits uint, b []byte) (Uint, error) {
	return fromBytes(bits, b, false)
}

func fromBytes(bits uint, b []byte, bigEndian bool) (Uint, error) {
	limbs := make([]uint64, Nlimbs(bits))
	for i, bb := range b {
		pos := i
		if bigEndian {
			pos = len(b) - 1 - i
		}
		if pos/8 < len(limbs) {
			limbs[pos/8] |= uint64(bb) << (8 * (pos % 8))
		} else if bb != 0 {
			return Zero(bits), ErrValueTooLarge
		}
	}
	if top := len(limbs) - 1; top >= 0 && limbs[top] > mask(bits) {
		return Zero(bits), ErrValueTooLarge
	}
	return raw(bits, limbs), nil
}

// Byte returns the i'th byte of u in little-endian order. It panics if
// i is out of range for the width.
func (u Uint) Byte(i int) byte {
	if i < 0 || i >= Nbytes(u.bits) {
		panic(fmt.Sprintf("uintn: byte index %d out of range for %d bits", i, u.bits))
	}
	return byte(u.limbs[i/8] >> (8 * (i % 8)))
}

func checkByteLen(bits uint, n int) {
	if n < Nbytes(bits) {
		panic(fmt.Sprintf("uintn: %d bytes cannot hold %d bits", n, bits))
	}
}
