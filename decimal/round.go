package decimal

import (
	"math"

	"github.com/calebcase/bignum/integer"
	"github.com/calebcase/bignum/internal/arith"
)

// divRound returns x * 10^raise / y rounded to an integer with mode, and
// whether the division was exact. y must not be zero and raise must not be
// negative.
func divRound(x *integer.Int, raise int, y *integer.Int, mode RoundingMode) (*integer.Int, bool, error) {
	sign := x.Sign() * y.Sign()
	if sign == 0 {
		return integer.Zero, true, nil
	}

	// Word sized operands divide in 128 bits.
	if x.IsInt64() && y.IsInt64() && raise <= arith.MaxPow10 {
		p, _ := arith.Pow10(uint64(raise))
		ax, ay := arith.Abs(x.Int64()), arith.Abs(y.Int64())
		hi, lo := arith.Mul128(ax, p)
		if q, r, ok := arith.Div128(hi, lo, ay); ok {
			return roundWord(q, r, ay, sign, mode)
		}
	}

	q, r, err := mulTenPow(x, raise).QuoRem(y)
	if err != nil {
		return nil, false, ErrUndefined.Wrap(err)
	}
	if r.IsZero() {
		return q, true, nil
	}

	half := r.Abs().Lsh(1).CmpAbs(y)
	inc, err := needIncrement(mode, sign, half, q.Bit(0))
	if err != nil {
		return nil, false, err
	}
	if inc {
		q = q.Add(integer.NewInt(int64(sign)))
	}
	return q, false, nil
}

// roundWord finishes divRound for an unsigned quotient q with remainder r
// of a division by y.
func roundWord(q, r, y uint64, sign int, mode RoundingMode) (*integer.Int, bool, error) {
	exact := r == 0
	if !exact {
		// Compare r with y - r rather than 2r with y to stay in range.
		half := 0
		switch {
		case r < y-r:
			half = -1
		case r > y-r:
			half = 1
		}
		inc, err := needIncrement(mode, sign, half, q&1 == 1)
		if err != nil {
			return nil, false, err
		}
		if inc {
			if q == math.MaxUint64 {
				v := integer.NewUint64(q).Add(integer.One)
				if sign < 0 {
					v = v.Neg()
				}
				return v, false, nil
			}
			q++
		}
	}

	v := integer.NewUint64(q)
	if sign < 0 {
		v = v.Neg()
	}
	return v, exact, nil
}

// round returns d rounded to mc.Precision digits. Rounding may carry into
// a new leading digit, so it repeats until the precision fits.
func (d *Decimal) round(mc Context) (*Decimal, error) {
	if mc.Precision == 0 {
		return d, nil
	}

	for {
		drop := d.Precision() - mc.Precision
		if drop <= 0 {
			return d, nil
		}

		q, _, err := divRound(d.Unscaled(), 0, tenPow(drop), mc.Rounding)
		if err != nil {
			return nil, err
		}
		scale, err := checkScale(q, int64(d.scale)-int64(drop))
		if err != nil {
			return nil, err
		}
		d = NewFromInt(q, scale)
	}
}

// Round returns d rounded to mc. The scale drops by the number of digits
// removed.
func (d *Decimal) Round(mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}
	return d.round(mc)
}

// SetScale returns the value of d with the given scale. Lowering the scale
// divides the unscaled value by a power of ten and rounds with mode.
func (d *Decimal) SetScale(scale int32, mode RoundingMode) (*Decimal, error) {
	if !mode.Valid() {
		return nil, ErrMalformed.New("invalid rounding mode %d", mode)
	}

	switch {
	case scale == d.scale:
		return d, nil
	case d.Sign() == 0:
		return zeroValue(scale), nil
	case scale > d.scale:
		raise := int64(scale) - int64(d.scale)
		if int64(d.Precision())+raise > maxDigits {
			return nil, ErrOverflow.New("scale %d out of range for %s", scale, d)
		}
		return NewFromInt(mulTenPow(d.Unscaled(), int(raise)), scale), nil
	}

	drop := int64(d.scale) - int64(scale)
	if drop > int64(d.Precision()) {
		// Every digit is dropped; only the rounding of a value below one
		// remains.
		q, _, err := divRound(integer.NewInt(int64(d.Sign())), 0, integer.Ten, mode)
		if err != nil {
			return nil, err
		}
		return NewFromInt(q, scale), nil
	}

	q, _, err := divRound(d.Unscaled(), 0, tenPow(int(drop)), mode)
	if err != nil {
		return nil, err
	}
	return NewFromInt(q, scale), nil
}

// stripZeros removes trailing zeros from v while the scale stays above
// preferred.
func stripZeros(v *integer.Int, scale int64, preferred int64) *Decimal {
	preferred = max(preferred, minScale)
	for v.CmpAbs(integer.Ten) >= 0 && scale > preferred {
		if v.Bit(0) {
			break
		}
		q, r, _ := v.QuoRem(integer.Ten)
		if !r.IsZero() {
			break
		}
		v = q
		scale--
	}
	return NewFromInt(v, int32(scale))
}

// StripTrailingZeros returns the value of d with the smallest scale that
// represents it exactly. Zero becomes 0 with scale 0.
func (d *Decimal) StripTrailingZeros() *Decimal {
	if d.Sign() == 0 {
		return Zero
	}
	return stripZeros(d.Unscaled(), int64(d.scale), minScale)
}

// MovePointLeft returns d with the decimal point moved n places to the
// left. The scale of the result is max(d.Scale()+n, 0).
func (d *Decimal) MovePointLeft(n int32) (*Decimal, error) {
	return d.movePoint(int64(d.scale) + int64(n))
}

// MovePointRight returns d with the decimal point moved n places to the
// right. The scale of the result is max(d.Scale()-n, 0).
func (d *Decimal) MovePointRight(n int32) (*Decimal, error) {
	return d.movePoint(int64(d.scale) - int64(n))
}

func (d *Decimal) movePoint(scale int64) (*Decimal, error) {
	if scale == int64(d.scale) {
		return d, nil
	}

	s, err := scaleArg(d, scale)
	if err != nil {
		return nil, err
	}

	moved := NewFromInt(d.Unscaled(), s)
	if s < 0 {
		return moved.SetScale(0, Unnecessary)
	}
	return moved, nil
}

// ScaleByPowerOfTen returns d * 10^n, computed by adjusting the scale.
func (d *Decimal) ScaleByPowerOfTen(n int32) (*Decimal, error) {
	s, err := scaleArg(d, int64(d.scale)-int64(n))
	if err != nil {
		return nil, err
	}
	return NewFromInt(d.Unscaled(), s), nil
}

// ULP returns the unit in the last place of d: 1 with the scale of d.
func (d *Decimal) ULP() *Decimal {
	return New(1, d.scale)
}
