// Package control provides the prefix coded framing used by the binary
// encodings of integers and decimals.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). Small values are packed directly into the control block so
// that the common case of a small integer costs a single byte.
//
// # Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Data and size information is expected
// to be extracted by masking off the fixed bits. This is only the first byte
// (several control block types are multi-byte sequences).
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                                               |
//	|---------------|---------------||---------------------|-----------------------------------------------|
//	| 1 |                           || Data                | 2^7 = 128 values                              |
//	| 0 . 1 |                       || Data Size           | 2^6 = 64 bytes                                |
//	| 0 . 0 . 1 |                   || Data + 1            | 2^(5+8) = 8192 values                         |
//	| 0 . 0 . 0 . 1 |               || Data + 2            | 2^(4+8+8) = 1048576 values                    |
//	| 0 . 0 . 0 . 0 . 1 |           || Data Size Size      | 2^3 = 8 bytes size; up to 2^64 bytes          |
//	| 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | fields follow until Container End             |
//	| 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | closes the innermost Container Unbounded      |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               | Empty value                                   |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                | Null value (for nullable fields)              |
//	|---------------|---------------||---------------------|-----------------------------------------------|
//
// The prefixes 0000_0010, 0000_0011, 0000_0101 and 0000_0111 are reserved
// and rejected by the decoder.
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Data blocks encode 7 bits directly in the block. Data + 1 and Data + 2
// blocks carry 5 and 4 bits in the control byte followed by one and two
// bytes. They are chosen by the encoder when the first data byte fits the
// available bits, so data round trips byte for byte.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data
//  3. Data
//
// Container Unbounded blocks start a sequence of fields that ends at the
// matching Container End. A decoder that does not Enter a container skips
// it as a whole.
package control
