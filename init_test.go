package uintn

import (
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
)

var (
	fuzzIterations = flag.Int("uintn.fuzziter", 2000, "Number of iterations to fuzz each op with")

	globalRNG = rand.New(rand.NewSource(1))
)

// testWidths covers the interesting shapes: zero-width, sub-limb,
// limb-aligned, one-over, partial top limb and several full limbs.
var testWidths = []uint{0, 1, 7, 8, 63, 64, 65, 100, 127, 128, 192, 256, 384}

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(fmt.Errorf("uintn: big string %q invalid", s))
	}
	return v
}

// us creates a Uint through the big.Int bridge, which keeps the test
// fixtures independent of the string parser under test.
func us(bits uint, s string) Uint {
	out, acc := FromBig(bits, bigs(s))
	if !acc {
		panic(fmt.Errorf("uintn: %q does not fit %d bits", s, bits))
	}
	return out
}

// bigWrap reduces v into the ring of the given width.
func bigWrap(v *big.Int, bits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	return new(big.Int).Mod(v, m)
}

// randUint generates values with uniformly distributed bit lengths; a
// plain uniform draw would almost never produce small values.
func randUint(rng *rand.Rand, bits uint) Uint {
	if bits == 0 {
		return Zero(0)
	}
	bl := uint(rng.Intn(int(bits) + 1))
	u := Zero(bits)
	for i := range u.limbs {
		u.limbs[i] = rng.Uint64()
	}
	// Clear everything at or above bl, then pin the bit below it so
	// the value has exactly bl bits.
	nl := int((bl + 63) / 64)
	for i := nl; i < len(u.limbs); i++ {
		u.limbs[i] = 0
	}
	if nl > 0 && bl%64 != 0 {
		u.limbs[nl-1] &= (uint64(1) << (bl % 64)) - 1
	}
	if bl > 0 {
		u.limbs[(bl-1)/64] |= uint64(1) << ((bl - 1) % 64)
	}
	return u
}
