package uintn

import (
	"errors"
	"fmt"
)

// Errors returned (or carried inside *ParseError and *BaseConvertError)
// by operations whose failure depends on runtime data. Violations that
// are avoidable statically, such as constructing with the wrong limb
// count or requesting a byte buffer too small for the width, panic
// instead.
var (
	// ErrDivideByZero is the panic value of Quo, Rem and QuoRem when
	// the divisor is zero, and the error of PowMod when the modulus is
	// zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrInvalidDigit reports a digit at or above the base.
	ErrInvalidDigit = errors.New("digit out of range for base")

	// ErrValueTooLarge reports a decoded value that does not fit the
	// target bit width.
	ErrValueTooLarge = errors.New("value too large for bit width")

	// ErrEmptyInput reports a string with no digits.
	ErrEmptyInput = errors.New("empty input")
)

// ParseError records a failed string conversion. It unwraps to one of
// ErrEmptyInput, ErrInvalidDigit or ErrValueTooLarge.
type ParseError struct {
	Input string
	Base  uint64
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uintn: parsing %q (base %d): %v", e.Input, e.Base, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BaseConvertError records a failed digit-sequence conversion. It
// unwraps to ErrInvalidDigit or ErrValueTooLarge.
type BaseConvertError struct {
	Base uint64
	Err  error
}

func (e *BaseConvertError) Error() string {
	return fmt.Sprintf("uintn: converting base %d digits: %v", e.Base, e.Err)
}

func (e *BaseConvertError) Unwrap() error { return e.Err }
