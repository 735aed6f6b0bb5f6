package integer

import (
	"math/bits"
)

// GCD returns the greatest common divisor of |x| and |y|. GCD(0, 0) is 0.
func (x *Int) GCD(y *Int) *Int {
	switch {
	case y.sign == 0:
		return x.Abs()
	case x.sign == 0:
		return y.Abs()
	}
	return newInt(1, hybridGCD(x.mag, y.mag))
}

// hybridGCD takes Euclidean remainder steps while the operands differ in
// length by two limbs or more and switches to binary gcd once they are
// close.
func hybridGCD(a, b nat) nat {
	for len(b) != 0 {
		d := len(a) - len(b)
		if d < 2 && d > -2 {
			return binaryGCD(a, b)
		}
		_, r := divMod(a, b)
		a, b = b, r
	}
	return a
}

// binaryGCD is Knuth's algorithm B (TAOCP vol. 2, 4.5.2) on working
// buffers.
func binaryGCD(a, b nat) nat {
	u := newBuffer(a, 0)
	v := newBuffer(b, 0)

	s1, s2 := u.lowestSetBit(), v.lowestSetBit()
	k := min(s1, s2)
	u.rsh(k)
	v.rsh(k)

	t, tsign := u, 1
	if k == s1 {
		t, tsign = v, -1
	}

	for lb := t.lowestSetBit(); lb >= 0; lb = t.lowestSetBit() {
		t.rsh(lb)
		if tsign > 0 {
			u = t
		} else {
			v = t
		}

		uw, vw := u.words(), v.words()
		if len(uw) < 2 && len(vw) < 2 {
			var x, y uint32
			if len(uw) == 1 {
				x = uw[0]
			}
			if len(vw) == 1 {
				y = vw[0]
			}
			return shl(nat{binaryGCDWord(x, y)}.norm(), uint(k))
		}

		if tsign = difference(u, v); tsign == 0 {
			break
		}
		if tsign > 0 {
			t = u
		} else {
			t = v
		}
	}
	return shl(u.nat(), uint(k))
}

func binaryGCDWord(a, b uint32) uint32 {
	if b == 0 {
		return a
	}
	if a == 0 {
		return b
	}
	az, bz := bits.TrailingZeros32(a), bits.TrailingZeros32(b)
	a >>= az
	b >>= bz
	t := min(az, bz)
	for a != b {
		if a > b {
			a -= b
			a >>= bits.TrailingZeros32(a)
		} else {
			b -= a
			b >>= bits.TrailingZeros32(b)
		}
	}
	return a << t
}

// ModInverse returns the y in [0, m) with x*y = 1 mod m. m must be positive
// and x coprime to m.
func (x *Int) ModInverse(m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, ErrUndefined.New("modulus %s not positive", m)
	}
	if m.Equal(One) {
		return Zero, nil
	}

	a := x
	if x.sign < 0 || x.mag.cmp(m.mag) >= 0 {
		a = x.mustMod(m)
	}
	if a.Equal(One) {
		return One, nil
	}
	if a.sign == 0 {
		return nil, ErrUndefined.New("%s not invertible mod %s", x, m)
	}

	if m.mag.bit(0) == 1 {
		return almostInverse(a, m)
	}
	return euclidInverse(a, m)
}

// almostInverse computes a^-1 mod p for odd p with Kaliski's almost inverse
// algorithm, which yields a^-1 * 2^k, and removes the 2^k with a
// Montgomery-style fix-up.
func almostInverse(a, p *Int) (*Int, error) {
	f, g := a, p
	c, d := One, Zero
	k := 0

	if tz := f.LowestSetBit(); tz > 0 {
		f = f.Rsh(tz)
		d = d.Lsh(tz)
		k = tz
	}

	for !f.Equal(One) {
		if f.sign == 0 {
			return nil, ErrUndefined.New("%s not invertible mod %s", a, p)
		}
		if f.Cmp(g) < 0 {
			f, g = g, f
			c, d = d, c
		}

		// Keep f odd-minus-odd divisible by 4 where possible.
		if (f.mag[len(f.mag)-1]^g.mag[len(g.mag)-1])&3 == 0 {
			f = f.Sub(g)
			c = c.Sub(d)
		} else {
			f = f.Add(g)
			c = c.Add(d)
		}

		tz := f.LowestSetBit()
		f = f.Rsh(tz)
		d = d.Lsh(tz)
		k += tz
	}

	return fixup(c.mustMod(p), p, k), nil
}

// fixup returns c * 2^-k mod p for odd p.
func fixup(c, p *Int, k int) *Int {
	// r = -p^-1 mod 2^32.
	r := -inverseMod32(p.mag[len(p.mag)-1])

	for i := 0; i < k>>5; i++ {
		v := r * c.word(0)
		c = c.Add(p.Mul(NewUint64(uint64(v)))).Rsh(32)
	}
	if nbits := k & 31; nbits != 0 {
		v := r * c.word(0)
		v &= 1<<nbits - 1
		c = c.Add(p.Mul(NewUint64(uint64(v)))).Rsh(nbits)
	}

	for c.Cmp(p) >= 0 {
		c = c.Sub(p)
	}
	return c
}

// inverseMod32 returns val^-1 mod 2^32 for odd val by Newton iteration.
func inverseMod32(val uint32) uint32 {
	t := val
	t *= 2 - val*t
	t *= 2 - val*t
	t *= 2 - val*t
	t *= 2 - val*t
	return t
}

// euclidInverse computes a^-1 mod m with the extended Euclidean algorithm.
func euclidInverse(a, m *Int) (*Int, error) {
	r0, r1 := m, a
	t0, t1 := Zero, One
	for r1.sign != 0 {
		qm, rm := divMod(r0.mag, r1.mag)
		q := newInt(1, qm)
		r0, r1 = r1, newInt(1, rm)
		t0, t1 = t1, t0.Sub(q.Mul(t1))
	}
	if !r0.Equal(One) {
		return nil, ErrUndefined.New("%s not invertible mod %s", a, m)
	}
	if t0.sign < 0 {
		t0 = t0.Add(m)
	}
	return t0, nil
}
