package decimal

import (
	"github.com/calebcase/bignum/integer"
	"github.com/calebcase/bignum/internal/arith"
)

// align returns the unscaled values of x and y at the larger of the two
// scales.
func align(x, y *Decimal) (xv, yv *integer.Int, scale int32) {
	switch {
	case x.scale == y.scale:
		return x.Unscaled(), y.Unscaled(), x.scale
	case x.scale < y.scale:
		return mulTenPow(x.Unscaled(), int(int64(y.scale)-int64(x.scale))), y.Unscaled(), y.scale
	}
	return x.Unscaled(), mulTenPow(y.Unscaled(), int(int64(x.scale)-int64(y.scale))), x.scale
}

// Add returns x + y with scale max(x.Scale(), y.Scale()).
func (x *Decimal) Add(y *Decimal) *Decimal {
	if x.scale == y.scale && x.compact != inflated && y.compact != inflated {
		if s, ok := arith.AddInt64(x.compact, y.compact); ok {
			return New(s, x.scale)
		}
	}

	xv, yv, scale := align(x, y)
	return NewFromInt(xv.Add(yv), scale)
}

// Sub returns x - y with scale max(x.Scale(), y.Scale()).
func (x *Decimal) Sub(y *Decimal) *Decimal {
	return x.Add(y.Neg())
}

// AddContext returns x + y rounded to mc. The result has the scale of the
// exact sum when the precision allows it.
func (x *Decimal) AddContext(y *Decimal, mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}
	if mc.Precision == 0 {
		return x.Add(y), nil
	}

	xzero, yzero := x.Sign() == 0, y.Sign() == 0
	if xzero || yzero {
		preferred := max(x.scale, y.scale)
		if xzero && yzero {
			return zeroValue(preferred), nil
		}

		nonzero := x
		if xzero {
			nonzero = y
		}
		result, err := nonzero.round(mc)
		if err != nil {
			return nil, err
		}

		switch {
		case result.scale == preferred:
			return result, nil
		case result.scale > preferred:
			return stripZeros(result.Unscaled(), int64(result.scale), int64(preferred)), nil
		}

		// Pad with zeros toward the preferred scale as far as the precision
		// allows.
		room := mc.Precision - result.Precision()
		want := int(int64(preferred) - int64(result.scale))
		return result.SetScale(result.scale+int32(min(room, want)), Unnecessary)
	}

	if x.scale != y.scale {
		x, y = preAlign(x, y, mc)
	}
	return x.Add(y).round(mc)
}

// preAlign replaces the operand whose digits lie entirely below the
// rounding position of the result with a sticky digit of the same sign, so
// the alignment does not build a huge intermediate.
func preAlign(x, y *Decimal, mc Context) (*Decimal, *Decimal) {
	high, low := y, x
	if x.scale < y.scale {
		high, low = x, y
	}

	ulpScale := int64(high.scale) - int64(high.Precision()) + int64(mc.Precision)
	lowDigit := int64(low.scale) - int64(low.Precision()) + 1
	if lowDigit > int64(high.scale)+2 && lowDigit > ulpScale+2 {
		scale, err := checkScale(integer.One, max(int64(high.scale), ulpScale)+3)
		if err == nil {
			low = New(int64(low.Sign()), scale)
		}
	}

	if high == x {
		return high, low
	}
	return low, high
}

// SubContext returns x - y rounded to mc.
func (x *Decimal) SubContext(y *Decimal, mc Context) (*Decimal, error) {
	return x.AddContext(y.Neg(), mc)
}

// mul returns the exact product, failing when the scale is out of range.
func (x *Decimal) mul(y *Decimal) (*Decimal, error) {
	scale := int64(x.scale) + int64(y.scale)

	if x.compact != inflated && y.compact != inflated {
		if p, ok := arith.MulInt64(x.compact, y.compact); ok {
			s, err := checkScale(integer.NewInt(p), scale)
			if err != nil {
				return nil, err
			}
			return New(p, s), nil
		}
	}

	p := x.Unscaled().Mul(y.Unscaled())
	s, err := checkScale(p, scale)
	if err != nil {
		return nil, err
	}
	return NewFromInt(p, s), nil
}

// Mul returns x * y with scale x.Scale() + y.Scale(). It panics with an
// ErrOverflow error when that scale is out of range.
func (x *Decimal) Mul(y *Decimal) *Decimal {
	p, err := x.mul(y)
	if err != nil {
		panic(err)
	}
	return p
}

// MulContext returns x * y rounded to mc.
func (x *Decimal) MulContext(y *Decimal, mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}
	p, err := x.mul(y)
	if err != nil {
		return nil, err
	}
	return p.round(mc)
}

// square returns x * x rounded to mc.
func (x *Decimal) square(mc Context) (*Decimal, error) {
	return x.MulContext(x, mc)
}
