package control

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field is read in a way its type does
// not support (e.g. Data on a container).
var ErrInvalidOperation = Error.New("invalid operation")

// sizeBytes returns the minimal big-endian encoding of v, which is a single
// zero byte for zero.
func sizeBytes(v uint64) []byte {
	n := 1
	for x := v >> 8; x != 0; x >>= 8 {
		n++
	}
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// sizeValue is the inverse of sizeBytes for at most eight bytes.
func sizeValue(b []byte) (v uint64, ok bool) {
	if len(b) > 8 {
		return 0, false
	}
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, true
}
