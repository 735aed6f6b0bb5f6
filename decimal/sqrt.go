package decimal

import "math"

// Sqrt returns the square root of d rounded to mc. The preferred scale is
// d.Scale()/2. With an unlimited context, or with the Unnecessary rounding
// mode, the root must be exact or an ErrInexact error is returned.
//
// The result is computed by Newton iteration from a float64 seed, doubling
// the working precision each step. The half rounding modes iterate to
// twice the requested precision before the final rounding. The directed
// modes then move the rounded result by one ulp in either direction until
// it is the correctly rounded root.
func (d *Decimal) Sqrt(mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}

	switch d.Sign() {
	case -1:
		return nil, ErrUndefined.New("square root of negative value %s", d)
	case 0:
		return zeroValue(d.scale / 2), nil
	}

	preferred := d.scale / 2
	preferredZero := zeroValue(preferred)

	stripped := d.StripTrailingZeros()
	if stripped.isUnscaledOne() && stripped.scale%2 == 0 {
		result := New(1, stripped.scale/2)
		if result.scale != preferred {
			return result.AddContext(preferredZero, mc)
		}
		return result, nil
	}

	// Move the point by an even number of places so the working value lies
	// in [0.1, 10). adjust may fall outside int32 when the scale is near its
	// minimum, but the working scale is the digit count or one less.
	adjust := int64(stripped.scale) - int64(stripped.Precision()) + 1
	if adjust%2 != 0 {
		adjust--
	}
	working := NewFromInt(stripped.Unscaled(), int32(int64(stripped.scale)-adjust))

	guess, err := NewFromFloat64(math.Sqrt(working.Float64()))
	if err != nil {
		return nil, err
	}

	var target int
	switch {
	case mc.Precision == 0:
		target = stripped.Precision()/2 + 1
	case mc.Rounding == HalfUp || mc.Rounding == HalfDown || mc.Rounding == HalfEven:
		target = 2 * mc.Precision
		if target < 0 {
			target = math.MaxInt32 - 2
		}
	default:
		target = mc.Precision
	}

	approx := guess
	for guessPrecision := 15; ; guessPrecision *= 2 {
		tmp := Context{
			Precision: max(guessPrecision, target+2, working.Precision()),
			Rounding:  HalfEven,
		}
		q, err := working.quo(approx, tmp)
		if err != nil {
			return nil, err
		}
		sum, err := approx.AddContext(q, tmp)
		if err != nil {
			return nil, err
		}
		if approx, err = oneHalf.mul(sum); err != nil {
			return nil, err
		}

		if guessPrecision*2 >= target+2 {
			break
		}
	}

	unscaled, err := approx.ScaleByPowerOfTen(int32(-adjust / 2))
	if err != nil {
		return nil, err
	}

	var result *Decimal
	if mc.Rounding == Unnecessary || mc.Precision == 0 {
		mode := mc.Rounding
		if mode == Unnecessary {
			mode = Down
		}
		if result, err = unscaled.round(Context{Precision: target, Rounding: mode}); err != nil {
			return nil, err
		}
		if cmpSquare(result, d) != 0 {
			return nil, ErrInexact.New("square root of %s is not exact", d)
		}
	} else {
		if result, err = unscaled.round(mc); err != nil {
			return nil, err
		}

		switch mc.Rounding {
		case Down, Floor:
			if cmpSquare(result, d) > 0 {
				result = result.Sub(ulpBelow(result))
			} else if next := result.Add(result.ULP()); cmpSquare(next, d) <= 0 {
				if result, err = next.round(mc); err != nil {
					return nil, err
				}
			}
		case Up, Ceiling:
			if cmpSquare(result, d) < 0 {
				if result, err = result.Add(result.ULP()).round(mc); err != nil {
					return nil, err
				}
			} else if prev := result.Sub(ulpBelow(result)); prev.Sign() > 0 && cmpSquare(prev, d) >= 0 {
				result = prev
			}
		}
	}

	if result.scale != preferred {
		return result.StripTrailingZeros().AddContext(preferredZero, Context{Precision: mc.Precision, Rounding: Unnecessary})
	}
	return result, nil
}

// cmpSquare compares r*r with d for positive r and d. The square is never
// built as a Decimal, so its scale may exceed the int32 range.
func cmpSquare(r, d *Decimal) int {
	return cmpNormalized(r.Unscaled().Square(), 2*int64(r.scale), d.Unscaled(), int64(d.scale))
}

// ulpBelow returns the distance from a positive r to the next smaller value
// with the same number of digits: a tenth of an ulp when r is a power of ten.
func ulpBelow(r *Decimal) *Decimal {
	if r.Unscaled().Cmp(tenPow(r.Precision()-1)) == 0 {
		return New(1, r.scale+1)
	}
	return r.ULP()
}
