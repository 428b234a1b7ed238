package uintn

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	for _, tc := range []struct {
		bits    int
		a, e, c string
	}{
		{64, "2", "10", "1024"},
		{64, "3", "4", "81"},
		{64, "0", "0", "1"}, // 0^0 == 1 by convention
		{64, "0", "5", "0"},
		{64, "12345", "0", "1"},
		{64, "12345", "1", "12345"},
		{64, "2", "64", "0"}, // wraps out of the ring
		{128, "2", "127", "0x 8000000000000000 0000000000000000"},
		{128, "10", "38", "0x 4B3B4CA85A86C47A 098A224000000000"},
		{7, "2", "7", "0"},
		{7, "3", "4", "81"},
		{0, "0", "0", "0"}, // the only 0-width value
	} {
		t.Run(fmt.Sprintf("%d/%s^%s=%s", tc.bits, tc.a, tc.e, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			bits := uint(tc.bits)
			tt.MustAssert(us(bits, tc.c).Equal(us(bits, tc.a).Pow(us(bits, tc.e))))
		})
	}
}

func TestPowIdentities(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, bits := range testWidths {
		for i := 0; i < 50; i++ {
			a := randUint(globalRNG, bits)
			tt.MustAssert(a.Pow(Zero(bits)).Equal(One(bits)), "width %d", bits)
			tt.MustAssert(a.Pow(One(bits)).Equal(a), "width %d", bits)

			if bits < 4 {
				continue
			}
			// a^(m+n) == a^m * a^n in the ring.
			m, n := From64(bits, uint64(globalRNG.Intn(8))), From64(bits, uint64(globalRNG.Intn(8)))
			tt.MustAssert(a.Pow(m.Add(n)).Equal(a.Pow(m).Mul(a.Pow(n))), "width %d: %s^(%s+%s)", bits, a, m, n)
		}
	}
}

func TestOverflowingPow(t *testing.T) {
	tt := assert.WrapTB(t)

	v, overflow := From64(8, 2).OverflowingPow(From64(8, 7))
	tt.MustAssert(!overflow)
	tt.MustEqual("128", v.String())

	v, overflow = From64(8, 2).OverflowingPow(From64(8, 8))
	tt.MustAssert(overflow)
	tt.MustAssert(v.IsZero())

	_, ok := From64(8, 2).CheckedPow(From64(8, 7))
	tt.MustAssert(ok)
	_, ok = From64(8, 3).CheckedPow(From64(8, 6)) // 729
	tt.MustAssert(!ok)
}

func TestPowMod(t *testing.T) {
	for _, tc := range []struct {
		bits       int
		a, e, m, c string
	}{
		{64, "2", "10", "1000", "24"},
		{64, "3", "0", "7", "1"},
		{64, "3", "0", "1", "0"}, // identity collapses mod 1
		{64, "12345", "67", "101", "45"},
		{256, "0xFFFFFFFFFFFFFFFF", "0xFFFF", "0x10001", "0"},
	} {
		t.Run(fmt.Sprintf("%d/%s^%s mod %s", tc.bits, tc.a, tc.e, tc.m), func(t *testing.T) {
			tt := assert.WrapTB(t)
			bits := uint(tc.bits)
			v, err := us(bits, tc.a).PowMod(us(bits, tc.e), us(bits, tc.m))
			tt.MustOK(err)
			tt.MustEqual(us(bits, tc.c).String(), v.String())
		})
	}
}

func TestPowModAgainstBig(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, bits := range testWidths {
		if bits == 0 {
			continue
		}
		for i := 0; i < 100; i++ {
			a, e, m := randUint(globalRNG, bits), randUint(globalRNG, bits), randUint(globalRNG, bits)
			if m.IsZero() {
				continue
			}
			v, err := a.PowMod(e, m)
			tt.MustOK(err)
			ref := new(big.Int).Exp(a.AsBigInt(), e.AsBigInt(), m.AsBigInt())
			tt.MustEqual(ref.String(), v.String(), "width %d: %s^%s mod %s", bits, a, e, m)
		}
	}
}

func TestPowModZeroModulus(t *testing.T) {
	_, err := From64(64, 2).PowMod(From64(64, 10), Zero(64))
	require.ErrorIs(t, err, ErrDivideByZero)
}
