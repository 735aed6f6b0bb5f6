// Package arith provides word-level arithmetic shared by the integer and
// decimal packages.
package arith

import (
	"math"
	"math/bits"
)

// pow10tab holds every power of ten representable in a uint64.
var pow10tab = [...]uint64{
	1e00, 1e01, 1e02, 1e03, 1e04, 1e05, 1e06, 1e07, 1e08, 1e09,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// MaxPow10 is the largest n for which Pow10 succeeds.
const MaxPow10 = len(pow10tab) - 1

// Pow10 returns 10**n and a bool indicating whether the result fits in a
// uint64.
func Pow10(n uint64) (uint64, bool) {
	if n < uint64(len(pow10tab)) {
		return pow10tab[n], true
	}
	return 0, false
}

// MulPow10 computes x * 10**n and a bool indicating whether the
// multiplication was successful.
func MulPow10(x uint64, n uint64) (uint64, bool) {
	p, ok := Pow10(n)
	if !ok {
		// 0 * 10^n = 0.
		return 0, x == 0
	}
	hi, lo := bits.Mul64(x, p)
	return lo, hi == 0
}

// MulPow10Int64 computes x * 10**n for a signed x and a bool indicating
// whether the result fits in an int64.
func MulPow10Int64(x int64, n int) (int64, bool) {
	if x == 0 || n == 0 {
		return x, true
	}
	if n < 0 || n >= MaxPow10 {
		return 0, false
	}
	return MulInt64(x, int64(pow10tab[n]))
}

// Abs returns |x| as a uint64. Abs(math.MinInt64) is 1<<63.
func Abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// AddInt64 returns x + y and whether the sum did not overflow.
func AddInt64(x, y int64) (int64, bool) {
	s := x + y
	// Overflow iff both operands share a sign the sum does not.
	return s, (x^s)&(y^s) >= 0
}

// SubInt64 returns x - y and whether the difference did not overflow.
func SubInt64(x, y int64) (int64, bool) {
	d := x - y
	return d, (x^y)&(x^d) >= 0
}

// MulInt64 returns x * y and whether the product did not overflow.
func MulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(Abs(x), Abs(y))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// Mul128 returns the 128-bit product of x and y as (hi, lo).
func Mul128(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}

// Div128 divides the 128-bit value (hi, lo) by d. ok is false, and q and r
// are undefined, when d is zero or the quotient does not fit in 64 bits.
func Div128(hi, lo, d uint64) (q, r uint64, ok bool) {
	if d == 0 || hi >= d {
		return 0, 0, false
	}
	q, r = bits.Div64(hi, lo, d)
	return q, r, true
}

// Length returns the number of decimal digits in x. Length(0) is 1.
func Length(x uint64) int {
	if x == 0 {
		return 1
	}
	// 1233/4096 approximates log10(2).
	n := (bits.Len64(x) * 1233) >> 12
	if x >= pow10tab[n] {
		n++
	}
	return n
}
