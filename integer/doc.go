// Package integer provides immutable arbitrary-precision signed integers.
//
// An Int is a sign and a magnitude. The magnitude is stored as big-endian
// 32-bit limbs without leading zero limbs; zero has an empty magnitude and
// sign 0. Every operation returns a new value and never modifies its
// operands, so values may be shared freely between goroutines.
//
// # Multiplication
//
// The product algorithm is picked from the operand lengths (in limbs):
//
//	| Shorter operand | Longer operand | Algorithm     |
//	|-----------------|----------------|---------------|
//	| < 80            | any            | Schoolbook    |
//	| >= 80           | < 240          | Karatsuba     |
//	| >= 80           | >= 240         | Toom-Cook 3   |
//
// Squaring uses dedicated variants with the thresholds 128 (Karatsuba) and
// 216 (Toom-Cook 3), and x.Mul(x) switches to squaring above 20 limbs.
//
// # Division
//
// Divisors shorter than 80 limbs, or dividends less than 40 limbs longer
// than the divisor, use Knuth's algorithm D. Everything else uses
// Burnikel-Ziegler recursive division.
//
// # Range
//
// Magnitudes are limited to MaxMagLength limbs (a bit length below 2^31).
// Operations that always succeed for representable results (Add, Sub, Mul,
// Lsh, ...) panic with an ErrOverflow error when the result would exceed
// this limit; operations with other failure modes return the error.
package integer
