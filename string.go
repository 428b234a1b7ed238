package uintn

import (
	"errors"
	"fmt"
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text returns the string representation of u in the given base, which
// must be between 2 and 36. Digits past 9 use lowercase letters.
func (u Uint) Text(base int) string {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("uintn: invalid text base %d", base))
	}
	digits := u.ToBaseBE(uint64(base))
	buf := make([]byte, len(digits))
	for i, d := range digits {
		buf[i] = digitAlphabet[d]
	}
	return string(buf)
}

func (u Uint) String() string {
	return u.Text(10)
}

// Hex returns u in prefixed hexadecimal notation.
func (u Uint) Hex() string {
	return "0x" + u.Text(16)
}

func (u Uint) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// FromString parses a value of the given width from s. The base is
// inferred from an optional 0x, 0o or 0b prefix, defaulting to decimal,
// and underscores between digits are ignored, so parsing agrees with
// Go integer literal notation. Malformed input is reported as a
// *ParseError, never a panic.
func FromString(bits uint, s string) (Uint, error) {
	input := s
	base := uint64(10)
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, s = 16, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		case 'b', 'B':
			base, s = 2, s[2:]
		}
	}

	digits := make([]uint64, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			continue
		}
		d := digitVal(s[i])
		if d < 0 || uint64(d) >= base {
			return Zero(bits), &ParseError{Input: input, Base: base, Err: ErrInvalidDigit}
		}
		digits = append(digits, uint64(d))
	}
	if len(digits) == 0 {
		return Zero(bits), &ParseError{Input: input, Base: base, Err: ErrEmptyInput}
	}

	v, err := FromBaseBE(bits, base, digits)
	if err != nil {
		var bce *BaseConvertError
		if errors.As(err, &bce) {
			err = bce.Err
		}
		return Zero(bits), &ParseError{Input: input, Base: base, Err: err}
	}
	return v, nil
}

// MustFromString is FromString for literals known good at compile
// time; it panics on malformed input. Values built this way agree
// bit-for-bit with FromString because it is the same parser.
func MustFromString(bits uint, s string) Uint {
	v, err := FromString(bits, s)
	if err != nil {
		panic(err)
	}
	return v
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText parses into the receiver's width, so the receiver must
// have been created with the intended width first:
//
//	v := uintn.Zero(256)
//	err := v.UnmarshalText(bts)
func (u *Uint) UnmarshalText(bts []byte) error {
	v, err := FromString(u.bits, string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare numbers. Like
// UnmarshalText it parses into the receiver's width.
func (u *Uint) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return &ParseError{Input: string(bts), Base: 10, Err: ErrInvalidDigit}
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
