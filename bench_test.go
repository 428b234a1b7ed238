package uintn

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    int
	BenchStringResult string
	BenchUintResult   Uint
)

var benchWidths = []uint{64, 128, 256, 384}

func BenchmarkAdd(b *testing.B) {
	for _, bits := range benchWidths {
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			u := Max(bits)
			for i := 0; i < b.N; i++ {
				BenchUintResult = u.Add(u)
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, bits := range benchWidths {
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			u := Max(bits)
			for i := 0; i < b.N; i++ {
				BenchUintResult = u.Mul(u)
			}
		})
	}
}

func BenchmarkCmp(b *testing.B) {
	for _, bits := range benchWidths {
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			u, n := Max(bits), Max(bits)
			for i := 0; i < b.N; i++ {
				BenchIntResult = u.Cmp(n)
			}
		})
	}
}

var benchQuoCases = []struct {
	name     string
	bits     uint
	dividend string
	divisor  string
}{
	{"single-limb divisor", 256, "0x 1234567890123456 7890123456789012 3456789012345678 9012345678901234", "0xFF"},
	{"power of two", 256, "0x 1234567890123456 7890123456789012 3456789012345678 9012345678901234", "0x 1 0000000000000000"},
	{"knuth two-limb", 128, "0x 1234567890123456 7890123456789012", "0x 1000000000000000 0000000000000001"},
	{"knuth wide", 384, "0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF",
		"0x 8000000000000000 0000000000000000 0000000000000001"},
	{"dividend below divisor", 128, "0x1234567890123456", "0x 1 0000000000000000"},
}

func BenchmarkQuoRem(b *testing.B) {
	for _, bc := range benchQuoCases {
		b.Run(bc.name, func(b *testing.B) {
			u, n := us(bc.bits, bc.dividend), us(bc.bits, bc.divisor)
			for i := 0; i < b.N; i++ {
				BenchUintResult, _ = u.QuoRem(n)
			}
		})
	}
}

func BenchmarkLsh(b *testing.B) {
	for _, sh := range []uint{1, 8, 64, 127} {
		b.Run(fmt.Sprintf("128>>%d", sh), func(b *testing.B) {
			u := Max(128)
			for i := 0; i < b.N; i++ {
				BenchUintResult = u.Lsh(sh)
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	for _, bits := range benchWidths {
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			u := Max(bits)
			for i := 0; i < b.N; i++ {
				BenchStringResult = u.String()
			}
		})
	}
}

func BenchmarkAsBigInt(b *testing.B) {
	u := Max(256)
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = u.AsBigInt()
	}
}

func BenchmarkFromString(b *testing.B) {
	s := Max(256).String()
	for i := 0; i < b.N; i++ {
		BenchUintResult, _ = FromString(256, s)
	}
}
