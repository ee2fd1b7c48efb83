package decimal

import "errors"

// Sentinel errors for the four failure kinds a caller can distinguish
// with errors.Is. Apart from ToStringMaxLength, which panics when maxLen
// is below 8, operations never panic for a user-reachable condition and
// never return an out-of-band numeric sentinel (no NaN, no Inf).
var (
	// ErrParseError is returned when a string is not a well-formed
	// decimal literal: /[-+]?([0-9]+(\.[0-9]*)?|\.[0-9]+)/
	ErrParseError = errors.New("decimal: invalid decimal literal")

	// ErrBadInit is returned when a constructor is given a negative
	// decimals count.
	ErrBadInit = errors.New("decimal: decimals must be non-negative")

	// ErrMathDomain is returned for square root of a negative operand,
	// ln of a non-positive operand, asin/acos outside [-1, 1], and
	// atan2(0, 0).
	ErrMathDomain = errors.New("decimal: argument outside function domain")

	// ErrDivisionByZero is returned when the divisor's mantissa is zero,
	// and by Tan when Cos rounds to exactly zero at the current scale.
	ErrDivisionByZero = errors.New("decimal: division by zero")
)
