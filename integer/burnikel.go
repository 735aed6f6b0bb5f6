package integer

import (
	"math/bits"
)

// divBurnikelZiegler divides a by b using the recursive algorithm of
// Burnikel and Ziegler, "Fast Recursive Division" (MPI-I-98-1-022). a is cut
// into blocks of n limbs and divided block by block with divide2n1n.
func divBurnikelZiegler(a, b nat) (q, r nat) {
	s := len(b)
	if len(a) < s {
		return nil, a
	}

	// m is the smallest power of two with m*threshold > s.
	m := 1 << bits.Len(uint(s/burnikelZieglerThreshold))
	j := (s + m - 1) / m
	n := j * m
	n32 := 32 * n

	// Shift b so its length is exactly n limbs with the top bit set.
	sigma := max(0, n32-b.bitLen())
	bShifted := shl(b, uint(sigma))
	aShifted := shl(a, uint(sigma))

	// t blocks hold a plus one spare bit.
	t := (aShifted.bitLen() + n32) / n32
	if t < 2 {
		t = 2
	}

	a1 := block(aShifted, t-1, t, n)
	z := add(block(aShifted, t-2, t, n), shl(a1, uint(n32)))

	var ri nat
	for i := t - 2; i > 0; i-- {
		var qi nat
		qi, ri = divide2n1n(z, bShifted)
		z = add(block(aShifted, i-1, t, n), shl(ri, uint(n32)))
		q = add(q, shl(qi, uint(i*n32)))
	}
	qi, ri := divide2n1n(z, bShifted)
	q = add(q, qi)

	return q, shr(ri, uint(sigma))
}

// block returns block index (0 least significant) of x when x is viewed as
// numBlocks blocks of n limbs. The top block holds whatever remains.
func block(x nat, index, numBlocks, n int) nat {
	blockStart := index * n
	if blockStart >= len(x) {
		return nil
	}
	var blockEnd int
	if index == numBlocks-1 {
		blockEnd = len(x)
	} else {
		blockEnd = (index + 1) * n
	}
	if blockEnd > len(x) {
		blockEnd = len(x)
	}
	return x[len(x)-blockEnd : len(x)-blockStart].norm()
}

// divide2n1n divides a (at most 2n limbs) by b (n limbs, top bit set).
func divide2n1n(a, b nat) (q, r nat) {
	n := len(b)

	if n%2 != 0 || n < burnikelZieglerThreshold {
		return divKnuth(a, b)
	}
	half := n / 2

	// a = [a1, a2, a3, a4] with limbs of half limbs each.
	aUpper := a.upper(half)
	a4 := a.lower(half)

	q1, r1 := divide3n2n(aUpper, b)
	q2, r2 := divide3n2n(add(a4, shl(r1, uint(32*half))), b)

	return add(q2, shl(q1, uint(32*half))), r2
}

// divide3n2n divides a = [a1, a2, a3] by b = [b1, b2], all parts half limbs
// long. It requires a < b * beta^half, so a1 <= b1.
func divide3n2n(a, b nat) (q, r nat) {
	half := len(b) / 2
	shift := uint(32 * half)

	a12 := a.upper(half)
	a3 := a.lower(half)
	b1 := b.upper(half)
	b2 := b.lower(half)

	var d nat
	if cmpShifted(a, b1, 2*half) < 0 {
		// a1 < b1: divide [a1, a2] by b1.
		q, r = divide2n1n(a12, b1)
		d = mulNat(q, b2)
	} else {
		// a1 == b1: the quotient is beta^half - 1.
		q = ones(half)
		r = sub(add(a12, b1), shl(b1, shift))
		d = sub(shl(b2, shift), b2)
	}

	// r = r*beta^half + a3 - d, adding b back while r < d.
	r = add(shl(r, shift), a3)
	for r.cmp(d) < 0 {
		r = add(r, b)
		q = sub(q, nat{1})
	}
	return q, sub(r, d)
}

// cmpShifted compares a with b * 2^(32*limbs).
func cmpShifted(a, b nat, limbs int) int {
	if len(b) == 0 {
		if len(a) == 0 {
			return 0
		}
		return 1
	}
	if len(a) != len(b)+limbs {
		if len(a) < len(b)+limbs {
			return -1
		}
		return 1
	}
	if c := a[:len(b)].cmp(b); c != 0 {
		return c
	}
	for _, w := range a[len(b):] {
		if w != 0 {
			return 1
		}
	}
	return 0
}

// ones returns the nat with n limbs of all one bits.
func ones(n int) nat {
	z := make(nat, n)
	for i := range z {
		z[i] = 0xffffffff
	}
	return z
}

// mulNat multiplies magnitudes through the algorithm dispatch.
func mulNat(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	return newInt(1, x).mul(newInt(1, y), true).mag
}
