package integer

import (
	"math"
	"math/rand/v2"
)

// DefaultCertainty is the certainty used by NextProbablePrime and
// ProbablePrime: the probability that a composite is reported prime is
// below 2^-100.
const DefaultCertainty = 100

// smallPrimeThreshold is the bit length below which prime searches do not
// need the Lucas-Lehmer test.
const smallPrimeThreshold = 95

// smallPrimes are the odd primes whose product is smallPrimeProduct.
var smallPrimes = [...]uint32{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// smallPrimeProduct is 3*5*...*41.
const smallPrimeProduct = 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41

// hasSmallFactor reports whether w is divisible by one of smallPrimes. w
// must be larger than 41.
func hasSmallFactor(w *Int) bool {
	r := w.mustMod(NewUint64(smallPrimeProduct)).Uint64()
	for _, p := range smallPrimes {
		if r%uint64(p) == 0 {
			return true
		}
	}
	return false
}

// IsProbablePrime reports whether x is probably prime. A true result means
// x is prime with probability at least 1 - 2^-certainty; a false result is
// always correct. A certainty <= 0 always reports true. The sign of x is
// ignored.
func (x *Int) IsProbablePrime(certainty int) bool {
	return x.IsProbablePrimeRand(certainty, nil)
}

// IsProbablePrimeRand is IsProbablePrime with the Miller-Rabin bases drawn
// from rnd. A nil rnd uses the global source.
func (x *Int) IsProbablePrimeRand(certainty int, rnd *rand.Rand) bool {
	if certainty <= 0 {
		return true
	}
	w := x.Abs()
	switch {
	case w.Equal(Two):
		return true
	case !w.Bit(0) || w.Equal(One):
		return false
	}

	if w.BitLen() <= 6 {
		v := uint32(w.Int64())
		for _, p := range smallPrimes {
			if v == p {
				return true
			}
		}
		if v < smallPrimes[len(smallPrimes)-1] {
			return false
		}
	}
	if w.Cmp(NewInt(41)) > 0 && hasSmallFactor(w) {
		return false
	}
	return w.primeToCertainty(certainty, rnd)
}

// primeToCertainty runs the Miller-Rabin rounds for the size of x, followed
// by the Lucas-Lehmer test from 100 bits on. x must be odd and > 2.
func (x *Int) primeToCertainty(certainty int, rnd *rand.Rand) bool {
	n := (min(certainty, math.MaxInt32-1) + 1) / 2

	size := x.BitLen()
	if size < 100 {
		return x.passesMillerRabin(min(50, n), rnd)
	}

	var rounds int
	switch {
	case size < 256:
		rounds = 27
	case size < 512:
		rounds = 15
	case size < 768:
		rounds = 8
	case size < 1024:
		rounds = 4
	default:
		rounds = 2
	}
	return x.passesMillerRabin(min(rounds, n), rnd) && x.passesLucasLehmer()
}

// passesMillerRabin runs iterations rounds of the Miller-Rabin test with
// random bases in (1, x).
func (x *Int) passesMillerRabin(iterations int, rnd *rand.Rand) bool {
	xm1 := x.Sub(One)
	a := xm1.LowestSetBit()
	m := xm1.Rsh(a)

	for i := 0; i < iterations; i++ {
		var b *Int
		for {
			b = randomBits(x.BitLen(), rnd)
			if b.Cmp(One) > 0 && b.Cmp(x) < 0 {
				break
			}
		}

		z, _ := b.ModPow(m, x)
		for j := 0; !(j == 0 && z.Equal(One) || z.Equal(xm1)); {
			if j > 0 && z.Equal(One) {
				return false
			}
			if j++; j == a {
				return false
			}
			z = z.Square().mustMod(x)
		}
	}
	return true
}

// passesLucasLehmer runs the strong Lucas test with the first D in
// 5, -7, 9, -11, ... whose Jacobi symbol (D/x) is -1.
func (x *Int) passesLucasLehmer() bool {
	d := 5
	for jacobi(d, x) != -1 {
		if d < 0 {
			d = -d + 2
		} else {
			d = -(d + 2)
		}
		// Perfect squares have no such D.
		if d == 13 {
			if _, r, _ := x.SqrtRem(); r.sign == 0 {
				return false
			}
		}
	}
	u := lucasLehmerSequence(d, x.Add(One), x)
	return u.mustMod(x).sign == 0
}

// jacobi returns the Jacobi symbol (p/n) for odd n > 0.
func jacobi(p int, n *Int) int {
	if p == 0 {
		return 0
	}

	j := 1
	u := n.mag[len(n.mag)-1]

	if p < 0 {
		p = -p
		if n8 := u & 7; n8 == 3 || n8 == 7 {
			j = -j
		}
	}

	for p&3 == 0 {
		p >>= 2
	}
	if p&1 == 0 {
		p >>= 1
		if (u^u>>1)&2 != 0 {
			j = -j
		}
	}
	if p == 1 {
		return j
	}

	// Quadratic reciprocity, then reduce n mod p.
	if uint32(p)&u&2 != 0 {
		j = -j
	}
	_, r := divWord(n.mag, uint32(p))
	v := int(r)
	for v != 0 {
		for v&3 == 0 {
			v >>= 2
		}
		if v&1 == 0 {
			v >>= 1
			if (p^p>>1)&2 != 0 {
				j = -j
			}
		}
		if v == 1 {
			return j
		}
		v, p = p, v
		if v&p&2 != 0 {
			j = -j
		}
		v %= p
	}
	return 0
}

// lucasLehmerSequence returns U_k mod n of the Lucas sequence with P = 1
// and Q = (1 - z)/4, computed by doubling over the bits of k.
func lucasLehmerSequence(z int, k, n *Int) *Int {
	d := NewInt(int64(z))
	u, v := One, One

	// halve returns a/2 mod n for 0 <= a < n.
	halve := func(a *Int) *Int {
		if a.Bit(0) {
			a = a.Sub(n)
		}
		return a.Rsh(1)
	}

	for i := k.BitLen() - 2; i >= 0; i-- {
		u2 := u.Mul(v).mustMod(n)
		v2 := halve(v.Square().Add(d.Mul(u.Square())).mustMod(n))
		u, v = u2, v2

		if k.Bit(uint(i)) {
			u2 = halve(u.Add(v).mustMod(n))
			v2 = halve(v.Add(d.Mul(u)).mustMod(n))
			u, v = u2, v2
		}
	}
	return u
}

// randomBits returns a uniformly random Int in [0, 2^n).
func randomBits(n int, rnd *rand.Rand) *Int {
	if n <= 0 {
		return Zero
	}
	m := make(nat, (n+31)/32)
	for i := range m {
		if rnd != nil {
			m[i] = rnd.Uint32()
		} else {
			m[i] = rand.Uint32()
		}
	}
	if excess := 32*len(m) - n; excess > 0 {
		m[0] &= 1<<(32-excess) - 1
	}
	return newInt(1, m.norm())
}

// Random returns a uniformly distributed Int in [0, 2^bits). A nil rnd uses
// the global source.
func Random(bits int, rnd *rand.Rand) (*Int, error) {
	if bits < 0 {
		return nil, ErrUndefined.New("negative bit length %d", bits)
	}
	if int64(bits) > maxBitLen {
		return nil, ErrOverflow.New("bit length %d exceeds the supported range", bits)
	}
	return randomBits(bits, rnd), nil
}

// ProbablePrime returns a probable prime of exactly bits bits. The
// probability that it is composite is below 2^-100. A nil rnd uses the
// global source.
func ProbablePrime(bits int, rnd *rand.Rand) (*Int, error) {
	if bits < 2 {
		return nil, ErrUndefined.New("bit length %d < 2", bits)
	}
	if int64(bits) > maxBitLen {
		return nil, ErrOverflow.New("bit length %d exceeds the supported range", bits)
	}

	for {
		p := randomBits(bits, rnd).SetBit(uint(bits - 1))
		if bits > 2 {
			p = p.SetBit(0)
		}
		if bits > 6 && hasSmallFactor(p) {
			continue
		}
		if bits < 4 {
			return p, nil
		}
		if p.primeToCertainty(DefaultCertainty, rnd) {
			return p, nil
		}
	}
}

// NextProbablePrime returns the first probable prime greater than x, which
// must be non-negative. The probability that the result is composite is
// below 2^-100, and no prime between x and the result is skipped.
func (x *Int) NextProbablePrime() (*Int, error) {
	if x.sign < 0 {
		return nil, ErrUndefined.New("start %s < 0", x)
	}
	if x.sign == 0 || x.Equal(One) {
		return Two, nil
	}

	result := x.Add(One)
	if !result.Bit(0) {
		result = result.Add(One)
	}
	for {
		if result.BitLen() > 6 && hasSmallFactor(result) {
			result = result.Add(Two)
			continue
		}
		if result.BitLen() < 4 {
			return result, nil
		}
		if result.IsProbablePrime(DefaultCertainty) {
			return result, nil
		}
		result = result.Add(Two)
	}
}
