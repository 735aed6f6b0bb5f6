// Package bignum reads and writes sequences of arbitrary-precision integers
// and decimals.
//
// Values are written with the binary encodings of the integer and decimal
// packages, one control field each. A nil value is written as a Null
// field. Vectors are written as an unbounded container holding one field
// per element, so a nil vector and an empty vector stay distinct:
//
//	WriteInt(1)                     | 1000_0010 |
//	WriteDecimal(New(1, 4))         | 0010_0010 | 0010_0001 |
//	WriteInts([]*Int{0, nil})       | 0000_0110 | 1000_0000 | 0000_0000 | 0000_0100 |
//	WriteInts(nil)                  | 0000_0000 |
//
// The stream does not record which kind of value a field holds. Readers
// must ask for the same kinds in the same order they were written, or Skip
// fields they are not interested in.
package bignum
