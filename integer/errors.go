package integer

import "github.com/zeebo/errs"

var (
	// Error wraps failures of the underlying stream in Encode and Decode.
	Error = errs.Class("integer")

	// ErrMalformed is returned for text or byte input that does not encode
	// an integer.
	ErrMalformed = errs.Class("integer: malformed")

	// ErrOverflow reports a magnitude outside the supported range. Total
	// operations such as Add, Mul and Lsh panic with an error of this
	// class since their result cannot be represented.
	ErrOverflow = errs.Class("integer: overflow")

	// ErrUndefined is returned when the operation has no defined result:
	// division by zero, a non-positive modulus, a missing inverse or the
	// root of a negative number.
	ErrUndefined = errs.Class("integer: undefined")

	// ErrNarrowing is returned by the exact conversions when the value does
	// not fit the target type.
	ErrNarrowing = errs.Class("integer: narrowing")
)
