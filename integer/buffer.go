package integer

import (
	"math/bits"
)

// buffer is a mutable magnitude used as scratch space by division, gcd and
// parsing. Unlike nat it may carry leading zero limbs and is modified in
// place. It never escapes the package.
type buffer struct {
	w []uint32
}

// newBuffer copies x into a buffer with extra leading zero limbs.
func newBuffer(x nat, extra int) *buffer {
	w := make([]uint32, extra+len(x))
	copy(w[extra:], x)
	return &buffer{w: w}
}

// nat returns a normalized copy of the buffer value.
func (b *buffer) nat() nat {
	v := nat(b.w).norm()
	if len(v) == 0 {
		return nil
	}
	return append(nat(nil), v...)
}

// words returns the significant limbs of the buffer without copying.
func (b *buffer) words() nat {
	return nat(b.w).norm()
}

func (b *buffer) isZero() bool {
	return len(b.words()) == 0
}

func (b *buffer) lowestSetBit() int {
	return nat(b.w).trailingZeros()
}

// rsh shifts the buffer right by n bits in place.
func (b *buffer) rsh(n int) {
	if n <= 0 {
		return
	}
	words, nbits := n>>5, uint(n&31)
	if words >= len(b.w) {
		for i := range b.w {
			b.w[i] = 0
		}
		return
	}
	if words > 0 {
		copy(b.w[words:], b.w[:len(b.w)-words])
		for i := 0; i < words; i++ {
			b.w[i] = 0
		}
	}
	if nbits == 0 {
		return
	}
	for i := len(b.w) - 1; i > 0; i-- {
		b.w[i] = b.w[i]>>nbits | b.w[i-1]<<(32-nbits)
	}
	b.w[0] >>= nbits
}

// difference replaces the larger of u and v by |u - v| and returns the sign
// of u - v.
func difference(u, v *buffer) int {
	c := u.words().cmp(v.words())
	if c == 0 {
		return 0
	}
	a, s := u, v
	if c < 0 {
		a, s = v, u
	}
	sw := s.words()
	var borrow uint32
	i := len(a.w) - 1
	for j := len(sw) - 1; j >= 0; i, j = i-1, j-1 {
		a.w[i], borrow = bits.Sub32(a.w[i], sw[j], borrow)
	}
	for ; borrow != 0 && i >= 0; i-- {
		a.w[i], borrow = bits.Sub32(a.w[i], 0, borrow)
	}
	return c
}

// mulAddWord sets the buffer to b*y + z. The buffer must have room for the
// result.
func (b *buffer) mulAddWord(y, z uint32) {
	c := uint64(z)
	for i := len(b.w) - 1; i >= 0; i-- {
		t := uint64(b.w[i])*uint64(y) + c
		b.w[i] = uint32(t)
		c = t >> 32
	}
}

// mulSub subtracts q*v from the len(v)+1 limbs of the buffer starting at
// index at, with v aligned to the low end of that window. It returns the
// borrow out of the window.
func (b *buffer) mulSub(at int, v nat, q uint32) uint32 {
	w := b.w[at : at+len(v)+1]
	var carry uint64
	var borrow uint32
	for i := len(v) - 1; i >= 0; i-- {
		p := uint64(q)*uint64(v[i]) + carry
		carry = p >> 32
		w[i+1], borrow = bits.Sub32(w[i+1], uint32(p), borrow)
	}
	w[0], borrow = bits.Sub32(w[0], uint32(carry), borrow)
	return borrow
}

// addBack adds v into the window used by mulSub, dropping the final carry.
func (b *buffer) addBack(at int, v nat) {
	w := b.w[at : at+len(v)+1]
	var c uint32
	for i := len(v) - 1; i >= 0; i-- {
		w[i+1], c = bits.Add32(w[i+1], v[i], c)
	}
	w[0] += c
}
