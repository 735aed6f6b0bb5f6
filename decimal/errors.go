package decimal

import "github.com/zeebo/errs"

var (
	// Error wraps failures of the underlying stream in Encode and Decode.
	Error = errs.Class("decimal")

	// ErrMalformed is returned for text or byte input that does not encode
	// a decimal, and for invalid contexts and rounding modes.
	ErrMalformed = errs.Class("decimal: malformed")

	// ErrOverflow reports a scale outside the range of an int32, or a
	// value whose magnitude cannot be represented.
	ErrOverflow = errs.Class("decimal: overflow")

	// ErrUndefined is returned for division by zero, the square root of a
	// negative value and exponents outside the supported range.
	ErrUndefined = errs.Class("decimal: undefined")

	// ErrInexact is returned when a result must be rounded but the rounding
	// mode is Unnecessary, and when an exact quotient or square root does
	// not exist.
	ErrInexact = errs.Class("decimal: inexact")

	// ErrNarrowing is returned by the exact conversions when the value has
	// a fractional part or does not fit the target type.
	ErrNarrowing = errs.Class("decimal: narrowing")
)
