package integer

// montgomeryIntrinsicThreshold is the modulus length (in limbs) from which
// Montgomery products use the general multiplication dispatch instead of the
// fixed-length schoolbook loops.
const montgomeryIntrinsicThreshold = 512

// windowThresholds maps exponent bit lengths to sliding window sizes: an
// exponent longer than windowThresholds[w-1] bits uses a window of at least
// w+1 bits.
var windowThresholds = [...]int{7, 25, 81, 241, 673, 1793}

// windowBits returns the number of extra bits in the exponentiation window
// for an exponent of ebits bits.
func windowBits(ebits int, exp nat) int {
	// 65537 is common enough to warrant the smallest window.
	if ebits == 17 && len(exp) == 1 && exp[0] == 65537 {
		return 0
	}
	w := 0
	for w < len(windowThresholds) && ebits > windowThresholds[w] {
		w++
	}
	return w
}

// ModPow returns x**e mod m in [0, m). m must be positive. A negative e
// yields the modular inverse of x**|e|, which requires x coprime to m.
func (x *Int) ModPow(e, m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, ErrUndefined.New("modulus %s not positive", m)
	}

	one := One
	if m.Equal(One) {
		one = Zero
	}
	switch {
	case e.sign == 0:
		return one, nil
	case x.Equal(One):
		return one, nil
	case x.sign == 0 && e.sign > 0:
		return Zero, nil
	case x.Equal(NewInt(-1)) && !e.Bit(0):
		return one, nil
	}

	invert := e.sign < 0
	if invert {
		e = e.Neg()
	}

	base := x
	if x.sign < 0 || x.mag.cmp(m.mag) >= 0 {
		base = x.mustMod(m)
	}

	var result *Int
	if m.mag.bit(0) == 1 {
		result = base.oddModPow(e, m)
	} else {
		// m = m1 * 2^p with m1 odd. Solve each part and recombine by the
		// Chinese remainder theorem.
		p := m.LowestSetBit()
		m1 := m.Rsh(p)
		m2 := One.Lsh(p)

		base2 := x
		if x.sign < 0 || x.mag.cmp(m1.mag) >= 0 {
			base2 = x.mustMod(m1)
		}

		a1 := Zero
		if !m1.Equal(One) {
			a1 = base2.oddModPow(e, m1)
		}
		a2 := base.modPow2(e, p)

		y1, err := m2.ModInverse(m1)
		if err != nil {
			return nil, err
		}
		y2, err := m1.ModInverse(m2)
		if err != nil {
			return nil, err
		}

		result = a1.Mul(m2).Mul(y1).Add(a2.Mul(m1).Mul(y2)).mustMod(m)
	}

	if invert {
		return result.ModInverse(m)
	}
	return result, nil
}

// modPow2 returns x**e mod 2^p.
func (x *Int) modPow2(e *Int, p int) *Int {
	result := One
	base := x.mod2(p)

	limit := e.BitLen()
	if x.Bit(0) && p-1 < limit {
		// Odd residues mod 2^p have order dividing 2^(p-2).
		limit = p - 1
	}

	for i := 0; i < limit; i++ {
		if e.Bit(uint(i)) {
			result = result.Mul(base).mod2(p)
		}
		if i+1 < limit {
			base = base.Square().mod2(p)
		}
	}
	return result
}

// mod2 returns x mod 2^p for non-negative x.
func (x *Int) mod2(p int) *Int {
	if x.BitLen() <= p {
		return x
	}
	n := (p + 31) >> 5
	mag := append(nat(nil), x.mag[len(x.mag)-n:]...)
	if excess := 32*n - p; excess > 0 {
		mag[0] &= 1<<(32-excess) - 1
	}
	return newInt(1, mag.norm())
}

// montgomery holds the fixed state of arithmetic modulo an odd m in
// Montgomery form with R = 2^(32*n).
type montgomery struct {
	mod []uint32
	n   int
	inv uint32
}

func newMontgomery(m *Int) *montgomery {
	return &montgomery{
		mod: m.mag,
		n:   len(m.mag),
		inv: -inverseMod32(m.mag[len(m.mag)-1]),
	}
}

// pad returns x as exactly n limbs.
func (mt *montgomery) pad(x nat) []uint32 {
	z := make([]uint32, mt.n)
	copy(z[mt.n-len(x):], x)
	return z
}

func (mt *montgomery) mul(a, b []uint32) []uint32 {
	product := make([]uint32, 2*mt.n)
	if mt.n < montgomeryIntrinsicThreshold {
		mulInto(product, a, b)
	} else {
		p := mulNat(nat(a).norm(), nat(b).norm())
		copy(product[len(product)-len(p):], p)
	}
	return mt.reduce(product)
}

func (mt *montgomery) square(a []uint32) []uint32 {
	product := make([]uint32, 2*mt.n)
	if mt.n < montgomeryIntrinsicThreshold {
		sqrInto(product, a)
	} else {
		x := newInt(1, nat(a).norm())
		p := x.square(true).mag
		copy(product[len(product)-len(p):], p)
	}
	return mt.reduce(product)
}

// reduce returns t * R^-1 mod m for a 2n limb t < m*R. t is overwritten.
func (mt *montgomery) reduce(t []uint32) []uint32 {
	var c int
	for offset := 0; offset < mt.n; offset++ {
		q := mt.inv * t[len(t)-1-offset]
		carry := mulAddAt(t, mt.mod, offset, q)
		c += int(addOneAt(t, offset, mt.n, carry))
	}
	for c > 0 {
		c += subN(t, mt.mod, mt.n)
	}
	for cmpN(t, mt.mod, mt.n) >= 0 {
		subN(t, mt.mod, mt.n)
	}
	return append([]uint32(nil), t[:mt.n]...)
}

// mulAddAt adds k*in to out with in's last limb aligned offset limbs above
// the end of out. It returns the carry out of the top of that span.
func mulAddAt(out, in []uint32, offset int, k uint32) uint32 {
	var carry uint64
	o := len(out) - 1 - offset
	for j := len(in) - 1; j >= 0; j-- {
		t := uint64(in[j])*uint64(k) + uint64(out[o]) + carry
		out[o] = uint32(t)
		carry = t >> 32
		o--
	}
	return uint32(carry)
}

// addOneAt adds carry at the limb just above the span written by mulAddAt
// and propagates it through at most mlen further limbs. It returns 1 when
// the carry leaves the array.
func addOneAt(a []uint32, offset, mlen int, carry uint32) uint32 {
	o := len(a) - 1 - mlen - offset
	t := uint64(a[o]) + uint64(carry)
	a[o] = uint32(t)
	if t>>32 == 0 {
		return 0
	}
	for mlen--; mlen >= 0; mlen-- {
		o--
		if o < 0 {
			return 1
		}
		a[o]++
		if a[o] != 0 {
			return 0
		}
	}
	return 1
}

// subN subtracts b[:n] from a[:n] and returns -1 on borrow.
func subN(a, b []uint32, n int) int {
	var borrow int64
	for i := n - 1; i >= 0; i-- {
		d := int64(a[i]) - int64(b[i]) + borrow
		a[i] = uint32(d)
		borrow = d >> 32
	}
	return int(borrow)
}

// cmpN compares a[:n] and b[:n] as unsigned numbers.
func cmpN(a, b []uint32, n int) int {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// oddModPow returns x**e mod m for odd m, 0 <= x < m and e > 0, using
// Montgomery multiplication and a left-to-right sliding window over the
// exponent.
func (x *Int) oddModPow(e, m *Int) *Int {
	if e.Equal(One) {
		return x
	}

	mt := newMontgomery(m)
	exp := e.mag
	ebits := exp.bitLen()
	wbits := windowBits(ebits, exp)

	// table[i] holds x^(2i+1) in Montgomery form.
	table := make([][]uint32, 1<<wbits)
	table[0] = mt.pad(x.Lsh(32 * mt.n).mustMod(m).mag)
	if len(table) > 1 {
		sq := mt.square(table[0])
		for i := 1; i < len(table); i++ {
			table[i] = mt.mul(table[i-1], sq)
		}
	}

	var acc []uint32
	for i := ebits - 1; i >= 0; {
		if exp.bit(i) == 0 {
			acc = mt.square(acc)
			i--
			continue
		}

		// The window is bits i..j with bit j set and at most wbits+1 bits.
		j := max(i-wbits, 0)
		for exp.bit(j) == 0 {
			j++
		}
		var window int
		for b := i; b >= j; b-- {
			window = window<<1 | int(exp.bit(b))
		}

		if acc == nil {
			acc = table[window>>1]
		} else {
			for s := 0; s <= i-j; s++ {
				acc = mt.square(acc)
			}
			acc = mt.mul(acc, table[window>>1])
		}
		i = j - 1
	}

	// Leave Montgomery form.
	t := make([]uint32, 2*mt.n)
	copy(t[mt.n:], acc)
	return newInt(1, nat(mt.reduce(t)).norm())
}
