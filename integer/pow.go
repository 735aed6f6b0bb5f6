package integer

import "math"

// Pow returns x**e for e >= 0.
func (x *Int) Pow(e int) (*Int, error) {
	if e < 0 {
		return nil, ErrUndefined.New("negative exponent %d", e)
	}
	switch {
	case e == 0:
		return One, nil
	case x.sign == 0 || e == 1:
		return x, nil
	}

	// Factor out powers of two so they become a single shift.
	tz := x.LowestSetBit()
	base := x.Abs().Rsh(tz)
	if powBits(base, tz, e) > maxBitLen-1 {
		return nil, ErrOverflow.New("%s**%d exceeds the supported range", x, e)
	}

	sign := 1
	if x.sign < 0 && e&1 == 1 {
		sign = -1
	}

	var result *Int
	if base.IsInt64() && base.BitLen()*e < 63 {
		v := base.Int64()
		r := int64(1)
		for i := 0; i < e; i++ {
			r *= v
		}
		result = NewInt(r)
	} else {
		result = One
		for p := e; ; {
			if p&1 == 1 {
				result = result.Mul(base)
			}
			if p >>= 1; p == 0 {
				break
			}
			base = base.Square()
		}
	}

	result = result.Lsh(tz * e)
	if sign < 0 {
		return result.Neg(), nil
	}
	return result, nil
}

// powBits estimates the bit length of (base << tz)**e for base >= 1. The
// estimate is within 2^-20 of e*log2(base) + tz*e + 1, which bounds the true
// bit length from above.
func powBits(base *Int, tz, e int) float64 {
	n := base.BitLen()

	var l float64
	if n <= 64 {
		l = math.Log2(float64(base.Uint64()))
	} else {
		l = math.Log2(float64(base.Rsh(n-64).Uint64())) + float64(n-64)
	}

	return float64(e)*(l+float64(tz)) + 1
}

// Sqrt returns floor(sqrt(x)) for x >= 0.
func (x *Int) Sqrt() (*Int, error) {
	if x.sign < 0 {
		return nil, ErrUndefined.New("square root of negative %s", x)
	}
	if x.sign == 0 {
		return Zero, nil
	}

	if x.BitLen() <= 52 {
		// Exact in a float64; the correction handles the last ulp.
		v := x.Int64()
		s := int64(math.Sqrt(float64(v)))
		for s*s > v {
			s--
		}
		for (s+1)*(s+1) <= v {
			s++
		}
		return NewInt(s), nil
	}

	// Newton iteration from an initial guess above the root.
	s := One.Lsh((x.BitLen() + 1) / 2)
	for {
		q, _ := divMod(x.mag, s.mag)
		next := s.Add(newInt(1, q)).Rsh(1)
		if next.Cmp(s) >= 0 {
			return s, nil
		}
		s = next
	}
}

// SqrtRem returns s = floor(sqrt(x)) and r = x - s*s.
func (x *Int) SqrtRem() (s, r *Int, err error) {
	s, err = x.Sqrt()
	if err != nil {
		return nil, nil, err
	}
	return s, x.Sub(s.Square()), nil
}
