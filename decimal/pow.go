package decimal

import "github.com/calebcase/bignum/internal/arith"

// Pow returns d^n exactly, with scale d.Scale()*n. n must lie in
// [0, 999999999].
func (d *Decimal) Pow(n int) (*Decimal, error) {
	if n < 0 || n > maxPowExp {
		return nil, ErrUndefined.New("exponent %d out of range [0, %d]", n, maxPowExp)
	}

	scale, err := checkScale(d.Unscaled(), int64(d.scale)*int64(n))
	if err != nil {
		return nil, err
	}

	v, err := d.Unscaled().Pow(n)
	if err != nil {
		return nil, ErrOverflow.Wrap(err)
	}
	return NewFromInt(v, scale), nil
}

// PowContext returns d^n rounded to mc. n must lie in [-999999999,
// 999999999] and, for a limited context, have no more digits than the
// precision. Negative exponents divide one by the positive power.
//
// The power is built by binary exponentiation at a working precision of
// mc.Precision plus the exponent's digit count plus one, so the result can
// be off by more than one ulp only for exponents near the limit.
func (d *Decimal) PowContext(n int, mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}
	if mc.Precision == 0 {
		return d.Pow(n)
	}
	if n < -maxPowExp || n > maxPowExp {
		return nil, ErrUndefined.New("exponent %d out of range [%d, %d]", n, -maxPowExp, maxPowExp)
	}
	if n == 0 {
		return One, nil
	}

	mag := int32(n)
	if mag < 0 {
		mag = -mag
	}

	digits := arith.Length(uint64(mag))
	if digits > mc.Precision {
		return nil, ErrUndefined.New("exponent %d has more digits than precision %d", n, mc.Precision)
	}
	work := Context{Precision: mc.Precision + digits + 1, Rounding: mc.Rounding}

	var (
		acc  = One
		seen bool
		err  error
	)
	for i := 1; ; i++ {
		// Walk the exponent from its top bit down.
		mag += mag
		if mag < 0 {
			seen = true
			if acc, err = acc.MulContext(d, work); err != nil {
				return nil, err
			}
		}
		if i == 31 {
			break
		}
		if seen {
			if acc, err = acc.square(work); err != nil {
				return nil, err
			}
		}
	}

	if n < 0 {
		if acc, err = One.QuoContext(acc, work); err != nil {
			return nil, err
		}
	}
	return acc.round(mc)
}
