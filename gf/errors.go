package gf

import "errors"

var (
	// ErrInvalidField is returned when a characteristic is zero or
	// not prime, or a degree is less than 1.
	ErrInvalidField = errors.New("invalid field")

	// ErrOrderOverflow is returned when characteristic^degree does
	// not fit in an int64.
	ErrOrderOverflow = errors.New("field order overflows int64")

	// ErrFieldMismatch is returned by binary operations on elements
	// or fields of differing order.
	ErrFieldMismatch = errors.New("field order mismatch")

	// ErrDivisionByZero is returned by the modulo operations when the
	// right operand is zero.
	ErrDivisionByZero = errors.New("modulo by zero")

	// ErrGCDUndefined is returned by Field.GCD when both operands are
	// zero.
	ErrGCDUndefined = errors.New("gcd of zero and zero")
)
