/*
Package uintn provides unsigned integers of any fixed bit width, backed by
an array of 64-bit limbs. A Uint is a value in the ring of integers modulo
2^bits; arithmetic wraps by default, the way hardware integers do, and
every operation also comes in overflow-reporting ("Overflowing"),
optional-result ("Checked") and clamping ("Saturating") shapes.

Uint values are immutable; all operations return new values.

Simple example:

	a := uintn.From64(256, 1)
	b := uintn.Max(256)
	fmt.Println(a.Add(b))
	// Output: 0

The bit width is fixed when a value is constructed and is part of the
value's identity: mixing operands of different widths is a programming
error and panics. Widths that are not multiples of 64 are fully
supported; the unused high bits of the top limb are always zero.

Uint supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

The Bits type is a bit-vector view over the same storage, for code that
treats the value as a bag of bits rather than a number. Its shift
operations report overflow whenever a set bit is shifted out of the
valid range, not merely when the shift amount exceeds the width.
*/
package uintn
