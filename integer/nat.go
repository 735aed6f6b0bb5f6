package integer

import (
	"math/bits"
)

// MaxMagLength is the largest supported magnitude length in limbs. A
// magnitude of exactly this length must leave its top bit clear, bounding
// bit lengths to math.MaxInt32.
const MaxMagLength = 1 << 26

// maxBitLen is the largest supported bit length.
const maxBitLen = 32*MaxMagLength - 1

// nat is a magnitude: big-endian 32-bit limbs with no leading zero limb.
// The empty nat is zero. A nat is never modified after it has been
// normalized and handed to an Int.
type nat []uint32

// norm strips leading zero limbs.
func (x nat) norm() nat {
	i := 0
	for i < len(x) && x[i] == 0 {
		i++
	}
	return x[i:]
}

// fits reports whether x is inside the supported range.
func (x nat) fits() bool {
	return len(x) < MaxMagLength || len(x) == MaxMagLength && x[0]>>31 == 0
}

func natFromUint64(v uint64) nat {
	switch {
	case v == 0:
		return nil
	case v>>32 == 0:
		return nat{uint32(v)}
	}
	return nat{uint32(v >> 32), uint32(v)}
}

// natFromBytes interprets b as an unsigned big-endian number.
func natFromBytes(b []byte) nat {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	z := make(nat, (len(b)+3)/4)
	for i, j := len(b)-1, len(z)-1; i >= 0; j-- {
		var w uint32
		for shift := uint(0); shift < 32 && i >= 0; shift, i = shift+8, i-1 {
			w |= uint32(b[i]) << shift
		}
		z[j] = w
	}
	return z.norm()
}

// uint64 returns the low 64 bits of x.
func (x nat) uint64() uint64 {
	switch len(x) {
	case 0:
		return 0
	case 1:
		return uint64(x[0])
	}
	return uint64(x[len(x)-2])<<32 | uint64(x[len(x)-1])
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*32 + bits.Len32(x[0])
}

func (x nat) bitCount() int {
	n := 0
	for _, w := range x {
		n += bits.OnesCount32(w)
	}
	return n
}

// trailingZeros returns the index of the lowest set bit, or -1 for zero.
func (x nat) trailingZeros() int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return (len(x)-1-i)*32 + bits.TrailingZeros32(x[i])
		}
	}
	return -1
}

// bit returns bit n of x.
func (x nat) bit(n int) uint32 {
	w := n >> 5
	if w >= len(x) {
		return 0
	}
	return x[len(x)-1-w] >> uint(n&31) & 1
}

func (x nat) cmp(y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := range x {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// lower returns the n least significant limbs of x.
func (x nat) lower(n int) nat {
	if len(x) <= n {
		return x
	}
	return x[len(x)-n:].norm()
}

// upper returns x without its n least significant limbs.
func (x nat) upper(n int) nat {
	if len(x) <= n {
		return nil
	}
	return x[:len(x)-n]
}

func add(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var c uint32
	i, j := len(x)-1, len(y)-1
	for ; j >= 0; i, j = i-1, j-1 {
		z[i+1], c = bits.Add32(x[i], y[j], c)
	}
	for ; i >= 0; i-- {
		z[i+1], c = bits.Add32(x[i], 0, c)
	}
	z[0] = c
	return z.norm()
}

// sub returns x - y. It requires x >= y.
func sub(x, y nat) nat {
	z := make(nat, len(x))
	var b uint32
	i, j := len(x)-1, len(y)-1
	for ; j >= 0; i, j = i-1, j-1 {
		z[i], b = bits.Sub32(x[i], y[j], b)
	}
	for ; i >= 0; i-- {
		z[i], b = bits.Sub32(x[i], 0, b)
	}
	if b != 0 {
		panic("integer: magnitude underflow")
	}
	return z.norm()
}

func addWord(x nat, w uint32) nat {
	if w == 0 {
		return x
	}
	return add(x, nat{w})
}

// shl returns x << n.
func shl(x nat, n uint) nat {
	if len(x) == 0 {
		return nil
	}
	words, nbits := int(n>>5), n&31
	if nbits == 0 {
		z := make(nat, len(x)+words)
		copy(z, x)
		return z
	}
	ext := 0
	if x[0]>>(32-nbits) != 0 {
		ext = 1
	}
	z := make(nat, ext+len(x)+words)
	var carry uint32
	for i := len(x) - 1; i >= 0; i-- {
		z[ext+i] = x[i]<<nbits | carry
		carry = x[i] >> (32 - nbits)
	}
	if ext == 1 {
		z[0] = carry
	}
	return z
}

// shr returns x >> n.
func shr(x nat, n uint) nat {
	words, nbits := int(n>>5), n&31
	if words >= len(x) {
		return nil
	}
	x = x[:len(x)-words]
	if nbits == 0 {
		return x
	}
	z := make(nat, len(x))
	var carry uint32
	for i := range x {
		z[i] = x[i]>>nbits | carry
		carry = x[i] << (32 - nbits)
	}
	return z.norm()
}

// mulWord returns x * y.
func mulWord(x nat, y uint32) nat {
	if len(x) == 0 || y == 0 {
		return nil
	}
	if y&(y-1) == 0 {
		return shl(x, uint(bits.TrailingZeros32(y)))
	}
	z := make(nat, len(x)+1)
	var c uint64
	for i := len(x) - 1; i >= 0; i-- {
		t := uint64(x[i])*uint64(y) + c
		z[i+1] = uint32(t)
		c = t >> 32
	}
	z[0] = uint32(c)
	return z.norm()
}

// mulInto writes the full product x * y into z, which must have length
// len(x)+len(y). z is not normalized.
func mulInto(z, x, y []uint32) {
	for i := range z {
		z[i] = 0
	}
	for i := len(x) - 1; i >= 0; i-- {
		var c uint64
		xi := uint64(x[i])
		for j := len(y) - 1; j >= 0; j-- {
			t := xi*uint64(y[j]) + uint64(z[i+j+1]) + c
			z[i+j+1] = uint32(t)
			c = t >> 32
		}
		z[i] = uint32(c)
	}
}

// sqrInto writes x * x into z, which must have length 2*len(x). Each cross
// product is computed once and doubled.
func sqrInto(z, x []uint32) {
	n := len(x)
	for i := range z {
		z[i] = 0
	}
	for i := n - 1; i >= 0; i-- {
		var c uint64
		xi := uint64(x[i])
		for j := i - 1; j >= 0; j-- {
			t := xi*uint64(x[j]) + uint64(z[i+j+1]) + c
			z[i+j+1] = uint32(t)
			c = t >> 32
		}
		z[i] = uint32(c)
	}

	var carry uint32
	for k := 2*n - 1; k >= 0; k-- {
		v := z[k]
		z[k] = v<<1 | carry
		carry = v >> 31
	}

	var c uint64
	for i := n - 1; i >= 0; i-- {
		sq := uint64(x[i]) * uint64(x[i])
		t := uint64(z[2*i+1]) + sq&0xffffffff + c
		z[2*i+1] = uint32(t)
		c = t >> 32
		t = uint64(z[2*i]) + sq>>32 + c
		z[2*i] = uint32(t)
		c = t >> 32
	}
}

func mulSchoolbook(x, y nat) nat {
	z := make(nat, len(x)+len(y))
	mulInto(z, x, y)
	return z.norm()
}

func sqrSchoolbook(x nat) nat {
	z := make(nat, 2*len(x))
	sqrInto(z, x)
	return z.norm()
}

// divWord returns x / d and x % d for a single limb divisor.
func divWord(x nat, d uint32) (nat, uint32) {
	q := make(nat, len(x))
	var r uint64
	for i := range x {
		cur := r<<32 | uint64(x[i])
		q[i] = uint32(cur / uint64(d))
		r = cur % uint64(d)
	}
	return q.norm(), uint32(r)
}
