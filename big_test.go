package uintn

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFromBig(t *testing.T) {
	tt := assert.WrapTB(t)

	v, acc := FromBig(64, big.NewInt(1234))
	tt.MustAssert(acc)
	tt.MustEqual("1234", v.String())

	// Negative clamps to zero, too-wide clamps to Max.
	v, acc = FromBig(64, big.NewInt(-1))
	tt.MustAssert(!acc)
	tt.MustAssert(v.IsZero())

	v, acc = FromBig(8, big.NewInt(256))
	tt.MustAssert(!acc)
	tt.MustAssert(v.Equal(Max(8)))

	v, acc = FromBig(8, big.NewInt(255))
	tt.MustAssert(acc)
	tt.MustAssert(v.Equal(Max(8)))

	v, acc = FromBig(0, big.NewInt(0))
	tt.MustAssert(acc)
	tt.MustAssert(v.IsZero())
}

func TestBigRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, bits := range testWidths {
		for i := 0; i < 100; i++ {
			v := randUint(globalRNG, bits)

			back, acc := FromBig(bits, v.AsBigInt())
			tt.MustAssert(acc)
			tt.MustAssert(v.Equal(back), "width %d: %s", bits, v)

			var b big.Int
			v.IntoBigInt(&b)
			tt.MustEqual(v.String(), b.String())
		}
	}
}
