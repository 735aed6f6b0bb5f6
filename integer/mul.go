package integer

import (
	"math"
)

// Limb thresholds selecting the multiplication and squaring algorithms.
const (
	karatsubaThreshold       = 80
	toomCookThreshold        = 240
	karatsubaSquareThreshold = 128
	toomCookSquareThreshold  = 216

	// multiplySquareThreshold is the length above which x.Mul(x) is
	// computed as a square.
	multiplySquareThreshold = 20
)

type mulAlgorithm int

const (
	schoolbook mulAlgorithm = iota
	karatsuba
	toomCook3
)

func (a mulAlgorithm) String() string {
	switch a {
	case schoolbook:
		return "schoolbook"
	case karatsuba:
		return "karatsuba"
	case toomCook3:
		return "toom-cook-3"
	}
	return "unknown"
}

// mulStrategy selects algorithm when the keyed operand length is below
// limit. Strategies are tried in order.
type mulStrategy struct {
	algorithm mulAlgorithm
	limit     int
	byLonger  bool
}

var mulStrategies = [...]mulStrategy{
	{schoolbook, karatsubaThreshold, false},
	{karatsuba, toomCookThreshold, true},
	{toomCook3, math.MaxInt, true},
}

var squareStrategies = [...]mulStrategy{
	{schoolbook, karatsubaSquareThreshold, true},
	{karatsuba, toomCookSquareThreshold, true},
	{toomCook3, math.MaxInt, true},
}

func selectFrom(strategies []mulStrategy, xlen, ylen int) mulAlgorithm {
	shorter, longer := xlen, ylen
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	for _, s := range strategies {
		n := shorter
		if s.byLonger {
			n = longer
		}
		if n < s.limit {
			return s.algorithm
		}
	}
	return toomCook3
}

func selectMul(xlen, ylen int) mulAlgorithm {
	return selectFrom(mulStrategies[:], xlen, ylen)
}

func selectSquare(n int) mulAlgorithm {
	return selectFrom(squareStrategies[:], n, n)
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	return x.mul(y, false)
}

// mul multiplies x and y. The overflow estimate ahead of Toom-Cook runs only
// for the outermost call; recursive calls pass recursion.
func (x *Int) mul(y *Int, recursion bool) *Int {
	if x.sign == 0 || y.sign == 0 {
		return Zero
	}
	if x == y && len(x.mag) > multiplySquareThreshold {
		return x.square(recursion)
	}
	sign := x.sign * y.sign

	switch selectMul(len(x.mag), len(y.mag)) {
	case schoolbook:
		switch {
		case len(y.mag) == 1:
			return newInt(sign, mulWord(x.mag, y.mag[0]))
		case len(x.mag) == 1:
			return newInt(sign, mulWord(y.mag, x.mag[0]))
		}
		return newInt(sign, mulSchoolbook(x.mag, y.mag))
	case karatsuba:
		return mulKaratsuba(x, y)
	}

	if !recursion {
		checkBitLen(int64(x.mag.bitLen()) + int64(y.mag.bitLen()) - 1)
	}
	return mulToomCook3(x, y)
}

// Square returns x * x.
func (x *Int) Square() *Int {
	return x.square(false)
}

func (x *Int) square(recursion bool) *Int {
	if x.sign == 0 {
		return Zero
	}
	switch selectSquare(len(x.mag)) {
	case schoolbook:
		return newInt(1, sqrSchoolbook(x.mag))
	case karatsuba:
		return squareKaratsuba(x)
	}

	if !recursion {
		checkBitLen(2*int64(x.mag.bitLen()) - 1)
	}
	return squareToomCook3(x)
}

// split returns the upper and lower halves of |x| around half limbs.
func split(x *Int, half int) (upper, lower *Int) {
	return newInt(1, x.mag.upper(half)), newInt(1, x.mag.lower(half))
}

// mulKaratsuba computes x*y from the three half-size products
// xh*yh, xl*yl and (xh+xl)*(yh+yl).
func mulKaratsuba(x, y *Int) *Int {
	half := (max(len(x.mag), len(y.mag)) + 1) / 2

	xh, xl := split(x, half)
	yh, yl := split(y, half)

	p1 := xh.mul(yh, true)
	p2 := xl.mul(yl, true)
	p3 := xh.Add(xl).mul(yh.Add(yl), true)

	shift := 32 * half
	result := p1.Lsh(shift).Add(p3.Sub(p1).Sub(p2)).Lsh(shift).Add(p2)
	if x.sign != y.sign {
		return result.Neg()
	}
	return result
}

func squareKaratsuba(x *Int) *Int {
	half := (len(x.mag) + 1) / 2

	xh, xl := split(x, half)

	xhs := xh.square(true)
	xls := xl.square(true)

	shift := 32 * half
	return xhs.Lsh(shift).Add(xl.Add(xh).square(true).Sub(xhs.Add(xls))).Lsh(shift).Add(xls)
}

// toomSlice returns slice index (0 most significant) of |x| when a number of
// fullSize limbs is cut into an upper slice of upperSize limbs followed by
// slices of lowerSize limbs. x may be shorter than fullSize, in which case
// it is treated as padded with leading zero limbs.
func toomSlice(x *Int, lowerSize, upperSize, index, fullSize int) *Int {
	n := len(x.mag)
	offset := fullSize - n

	var start, end int
	if index == 0 {
		start = -offset
		end = upperSize - 1 - offset
	} else {
		start = upperSize + (index-1)*lowerSize - offset
		end = start + lowerSize - 1
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		return Zero
	}
	size := end - start + 1
	if size <= 0 {
		return Zero
	}
	if start == 0 && size >= n {
		return x.Abs()
	}
	return newInt(1, x.mag[start:start+size].norm())
}

// mulToomCook3 evaluates both operands at 0, 1, -1, 2 and infinity,
// multiplies pointwise and interpolates the five coefficients.
func mulToomCook3(x, y *Int) *Int {
	largest := max(len(x.mag), len(y.mag))

	// k is the size of the lower slices, r the size of the top slice.
	k := (largest + 2) / 3
	r := largest - 2*k

	a2 := toomSlice(x, k, r, 0, largest)
	a1 := toomSlice(x, k, r, 1, largest)
	a0 := toomSlice(x, k, r, 2, largest)
	b2 := toomSlice(y, k, r, 0, largest)
	b1 := toomSlice(y, k, r, 1, largest)
	b0 := toomSlice(y, k, r, 2, largest)

	v0 := a0.mul(b0, true)
	da1 := a2.Add(a0)
	db1 := b2.Add(b0)
	vm1 := da1.Sub(a1).mul(db1.Sub(b1), true)
	da1 = da1.Add(a1)
	db1 = db1.Add(b1)
	v1 := da1.mul(db1, true)
	v2 := da1.Add(a2).Lsh(1).Sub(a0).mul(db1.Add(b2).Lsh(1).Sub(b0), true)
	vinf := a2.mul(b2, true)

	result := interpolate(v0, v1, vm1, v2, vinf, 32*k)
	if x.sign != y.sign {
		return result.Neg()
	}
	return result
}

func squareToomCook3(x *Int) *Int {
	n := len(x.mag)

	k := (n + 2) / 3
	r := n - 2*k

	a2 := toomSlice(x, k, r, 0, n)
	a1 := toomSlice(x, k, r, 1, n)
	a0 := toomSlice(x, k, r, 2, n)

	v0 := a0.square(true)
	da1 := a2.Add(a0)
	vm1 := da1.Sub(a1).square(true)
	da1 = da1.Add(a1)
	v1 := da1.square(true)
	vinf := a2.square(true)
	v2 := da1.Add(a2).Lsh(1).Sub(a0).square(true)

	return interpolate(v0, v1, vm1, v2, vinf, 32*k)
}

// interpolate recovers the product from the point values using Bodrato's
// sequence, then recombines the coefficients shift bits apart.
func interpolate(v0, v1, vm1, v2, vinf *Int, shift int) *Int {
	t2 := v2.Sub(vm1).exactDivideBy3()
	tm1 := v1.Sub(vm1).Rsh(1)
	t1 := v1.Sub(v0)
	t2 = t2.Sub(t1).Rsh(1)
	t1 = t1.Sub(tm1).Sub(vinf)
	t2 = t2.Sub(vinf.Lsh(1))
	tm1 = tm1.Sub(t2)

	return vinf.Lsh(shift).Add(t2).Lsh(shift).Add(t1).Lsh(shift).Add(tm1).Lsh(shift).Add(v0)
}

// exactDivideBy3 divides a multiple of three by three using multiplication
// by the inverse of 3 modulo 2^32.
func (x *Int) exactDivideBy3() *Int {
	if x.sign == 0 {
		return Zero
	}
	z := make(nat, len(x.mag))
	var borrow uint32
	for i := len(x.mag) - 1; i >= 0; i-- {
		w := x.mag[i]
		d := w - borrow
		if borrow > w {
			borrow = 1
		} else {
			borrow = 0
		}

		q := d * 0xAAAAAAAB
		z[i] = q

		// Borrow from the next limb when q*3 spilled past 2^32.
		if q >= 0x55555556 {
			borrow++
			if q >= 0xAAAAAAAB {
				borrow++
			}
		}
	}
	return newInt(x.sign, z.norm())
}
