package integer

import (
	"math/bits"
)

// BitLen returns the number of bits in the minimal two's complement
// representation of x, excluding the sign bit. For positive x this is the
// length of the magnitude; for negative x it is the length of |x|-1.
func (x *Int) BitLen() int {
	return x.bitLen.get(func() int {
		n := x.mag.bitLen()
		if x.sign < 0 && x.mag.bitCount() == 1 {
			// -2^k needs one bit less than 2^k.
			n--
		}
		return n
	})
}

// BitCount returns the number of bits in the two's complement
// representation of x that differ from its sign bit.
func (x *Int) BitCount() int {
	return x.bitCount.get(func() int {
		n := x.mag.bitCount()
		if x.sign < 0 {
			n += x.mag.trailingZeros() - 1
		}
		return n
	})
}

// LowestSetBit returns the index of the rightmost one bit of x, or -1 when
// x is zero.
func (x *Int) LowestSetBit() int {
	return x.lowestSetBit.get(func() int {
		return x.mag.trailingZeros()
	})
}

// firstNonzeroWord returns the index, counting from the least significant
// limb, of the lowest nonzero limb.
func (x *Int) firstNonzeroWord() int {
	return x.firstNonzero.get(func() int {
		for i := len(x.mag) - 1; i >= 0; i-- {
			if x.mag[i] != 0 {
				return len(x.mag) - 1 - i
			}
		}
		return 0
	})
}

// word returns limb n, counting from the least significant, of the
// infinitely sign-extended two's complement representation of x.
func (x *Int) word(n int) uint32 {
	if n < 0 {
		return 0
	}
	if n >= len(x.mag) {
		if x.sign < 0 {
			return 0xffffffff
		}
		return 0
	}
	m := x.mag[len(x.mag)-1-n]
	switch {
	case x.sign >= 0:
		return m
	case n <= x.firstNonzeroWord():
		return -m
	}
	return ^m
}

// wordLen is the number of limbs needed to hold x in two's complement with
// a sign bit.
func (x *Int) wordLen() int {
	return x.BitLen()>>5 + 1
}

// fromTwos builds an Int from big-endian two's complement limbs.
func fromTwos(w []uint32) *Int {
	if len(w) == 0 || w[0]>>31 == 0 {
		return newInt(1, nat(w).norm())
	}
	m := make(nat, len(w))
	var c uint32 = 1
	for i := len(w) - 1; i >= 0; i-- {
		m[i], c = bits.Add32(^w[i], 0, c)
	}
	return newInt(-1, m.norm())
}

func (x *Int) bitwise(y *Int, op func(a, b uint32) uint32) *Int {
	n := x.wordLen()
	if m := y.wordLen(); m > n {
		n = m
	}
	w := make([]uint32, n)
	for i := range w {
		k := n - 1 - i
		w[i] = op(x.word(k), y.word(k))
	}
	return fromTwos(w)
}

// And returns x & y using two's complement semantics.
func (x *Int) And(y *Int) *Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a & b })
}

// Or returns x | y using two's complement semantics.
func (x *Int) Or(y *Int) *Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a | b })
}

// Xor returns x ^ y using two's complement semantics.
func (x *Int) Xor(y *Int) *Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns x &^ y using two's complement semantics.
func (x *Int) AndNot(y *Int) *Int {
	return x.bitwise(y, func(a, b uint32) uint32 { return a &^ b })
}

// Not returns ^x, which equals -x-1.
func (x *Int) Not() *Int {
	return x.Neg().Sub(One)
}

// Bit reports whether bit n of the two's complement representation of x is
// set.
func (x *Int) Bit(n uint) bool {
	return x.word(int(n>>5))>>(n&31)&1 == 1
}

func (x *Int) withBit(n uint, op func(w, mask uint32) uint32) *Int {
	idx := int(n >> 5)
	checkBitLen(int64(n) + 1)
	l := x.wordLen()
	if idx+2 > l {
		l = idx + 2
	}
	w := make([]uint32, l)
	for i := range w {
		w[i] = x.word(l - 1 - i)
	}
	w[l-1-idx] = op(w[l-1-idx], 1<<(n&31))
	return fromTwos(w)
}

// SetBit returns x with bit n set.
func (x *Int) SetBit(n uint) *Int {
	return x.withBit(n, func(w, mask uint32) uint32 { return w | mask })
}

// ClearBit returns x with bit n cleared.
func (x *Int) ClearBit(n uint) *Int {
	return x.withBit(n, func(w, mask uint32) uint32 { return w &^ mask })
}

// FlipBit returns x with bit n flipped.
func (x *Int) FlipBit(n uint) *Int {
	return x.withBit(n, func(w, mask uint32) uint32 { return w ^ mask })
}

// Lsh returns x << n. A negative n shifts right.
func (x *Int) Lsh(n int) *Int {
	switch {
	case x.sign == 0 || n == 0:
		return x
	case n < 0:
		return x.rsh(uint(-n))
	}
	checkBitLen(int64(x.mag.bitLen()) + int64(n))
	return newInt(x.sign, shl(x.mag, uint(n)))
}

// Rsh returns x >> n rounded toward negative infinity, so that negative
// values shift like their two's complement representation. A negative n
// shifts left.
func (x *Int) Rsh(n int) *Int {
	switch {
	case x.sign == 0 || n == 0:
		return x
	case n < 0:
		return x.Lsh(-n)
	}
	return x.rsh(uint(n))
}

func (x *Int) rsh(n uint) *Int {
	m := shr(x.mag, n)
	if x.sign < 0 {
		// Ones shifted out of a negative value round the magnitude up.
		if uint(x.LowestSetBit()) < n {
			m = addWord(m, 1)
		}
		return newInt(-1, m)
	}
	return newInt(1, m)
}
