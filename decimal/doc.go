// Package decimal provides immutable arbitrary-precision decimal numbers.
//
// The equation for a decimal number is:
//
//	number = unscaled * 10 ^ -scale
//
// Where unscaled is an arbitrary-precision integer and scale is a 32-bit
// signed integer. For example:
//
//	1.23 = 123 * 10^-2
//	1.23E+3 = 123 * 10^1
//
// Numbers that differ only in scale form a cohort: 2.0 and 2.00 have the
// same value and compare equal with Cmp, but are different decimals under
// Equal.
//
// Unscaled values that fit in an int64 are held directly; larger values
// are held as an *integer.Int.
//
// # Arithmetic
//
// Add, Sub, Mul and Pow are exact. Quo is exact and fails with ErrInexact
// when the quotient has no terminating decimal expansion. The Context
// variants round the result to a number of significant digits with a
// RoundingMode:
//
//	one, _ := decimal.Parse("1")
//	three, _ := decimal.Parse("3")
//	q, _ := one.QuoContext(three, decimal.Context{Precision: 5, Rounding: decimal.HalfUp})
//	// q is 0.33333
//
// Each operation has a preferred scale: the larger scale for sums, the sum
// of the scales for products and their difference for quotients. Exact
// results keep or approach the preferred scale.
//
// # Encoding
//
// The binary encoding is laid out first by the unscaled value, then the
// scale, and finally the last 2 bits are the scale size.
//
// Decoding reads the last byte, discovers the scale size from its low two
// bits, extracts the scale (up to 5 bytes total), and then the remaining
// bytes are the unscaled value.
//
// All integers in the format are encoded big-endian with a trailing sign bit
// (aka zigzag).
//
// The scale size is encoded as two bits:
//
//	| 0 | 1 | Available Scale |
//	|-------|-----------------|
//	| 0 . 0 | No Scale        | 1 byte, all zero.
//	| 0 . 1 | ±2^5 Scale      | 1 byte, remaining bits are the scale value.
//	| 1 . 0 | ±2^21 Scale     | 3 bytes
//	| 1 . 1 | ±2^31 Scale     | 5 bytes
//	|-------|-----------------|
//	| 0 | 1 |
//
// Encode writes the result as a single control data field, so small values
// use the short control blocks.
//
// # Examples
//
// Zero (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 0 . 0 | Data + 1 Control Block with value of 0.
//	|-------------------------------|
//	| 0 . 0 . 0 . 0 . 0 . 0 | 0 . 0 | No Scale.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 0.0001 (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with value of +1.
//	|-------------------------------|
//	| 0 . 0 . 1 . 0 . 0 | 0 | 0 . 1 | ±2^5 Scale with scale of 4.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 20.47 (3 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 1 | 1 . 1 . 1 . 1 | Data + 2 Control Block with value of +2047.
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//	|-------------------------------|
//	| 0 . 0 . 0 . 1 . 0 | 0 | 0 . 1 | ±2^5 Scale with scale of 2.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 3.2767 (4 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 1 | 0 . 0 . 0 . 0 . 1 . 0 | Data Size Control Block with 3 bytes.
//	|-------------------------------|
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 . 1 | Value of +32767
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//	|-------------------------------|
//	| 0 . 0 . 1 . 0 . 0 | 0 | 0 . 1 | ±2^5 Scale with scale of 4.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Ethereum 1 Wei (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with value of +1.
//	|---------------|---------------|
//	| 1 . 0 . 0 . 1 . 0 | 0 | 0 . 1 | ±2^5 Scale with scale of 18.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
package decimal
