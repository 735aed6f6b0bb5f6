package decimal

import (
	"math"

	"github.com/calebcase/bignum/integer"
)

// checkDivisor rejects division by zero.
func checkDivisor(x, y *Decimal) error {
	if y.Sign() != 0 {
		return nil
	}
	if x.Sign() == 0 {
		return ErrUndefined.New("division undefined: 0 / 0")
	}
	return ErrUndefined.New("division by zero: %s / 0", x)
}

// quoRound returns x * 10^xraise / (y * 10^yraise) rounded with mode as a
// decimal with the given scale. An exact quotient loses trailing zeros
// until its scale reaches preferred.
func quoRound(x *integer.Int, xraise int, y *integer.Int, yraise int, scale int64, mode RoundingMode, preferred int64) (*Decimal, error) {
	if yraise > 0 {
		y = mulTenPow(y, yraise)
	}
	q, exact, err := divRound(x, xraise, y, mode)
	if err != nil {
		return nil, err
	}

	s, err := checkScale(q, scale)
	if err != nil {
		return nil, err
	}
	if exact && preferred != int64(s) {
		return stripZeros(q, int64(s), preferred), nil
	}
	return NewFromInt(q, s), nil
}

// Quo returns the exact quotient x / y with preferred scale x.Scale() -
// y.Scale(). It returns an ErrInexact error when the quotient has a
// non-terminating decimal expansion.
func (x *Decimal) Quo(y *Decimal) (*Decimal, error) {
	if err := checkDivisor(x, y); err != nil {
		return nil, err
	}

	preferred := int64(x.scale) - int64(y.scale)
	if x.Sign() == 0 {
		return saturatedZero(preferred), nil
	}

	// An exact quotient of x by y needs at most this many digits: the
	// divisor contributes at most log2(10) digits per digit of 2s and 5s.
	digits := int64(x.Precision()) + int64(math.Ceil(10*float64(y.Precision())/3))
	mc := Context{Precision: int(min(digits, math.MaxInt32)), Rounding: Unnecessary}

	q, err := x.quo(y, mc)
	if err != nil {
		if ErrInexact.Has(err) {
			return nil, ErrInexact.New("non-terminating decimal expansion: %s / %s", x, y)
		}
		return nil, err
	}

	if preferred > int64(q.scale) {
		s, err := checkScale(q.Unscaled(), preferred)
		if err != nil {
			return nil, err
		}
		return q.SetScale(s, Unnecessary)
	}
	return q, nil
}

// QuoContext returns x / y rounded to mc. With an unlimited context it is
// Quo.
func (x *Decimal) QuoContext(y *Decimal, mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}
	if mc.Precision == 0 {
		return x.Quo(y)
	}
	if err := checkDivisor(x, y); err != nil {
		return nil, err
	}
	return x.quo(y, mc)
}

// quo divides nonzero y into x giving exactly mc.Precision digits before
// the final rounding, so a carry may leave one digit too many.
func (x *Decimal) quo(y *Decimal, mc Context) (*Decimal, error) {
	preferred := int64(x.scale) - int64(y.scale)
	if x.Sign() == 0 {
		return saturatedZero(preferred), nil
	}

	// Treat both unscaled values as fractions in [0.1, 1): xv * 10^-xp and
	// yv * 10^-yp. Making the divisor the larger of the two puts the
	// quotient in [0.1, 1) too.
	xv, xp := x.Unscaled(), int64(x.Precision())
	yv, yp := y.Unscaled(), int64(y.Precision())
	if cmpNormalized(xv, xp, yv, yp) > 0 {
		yp--
	}

	p := int64(mc.Precision)
	scale := preferred + yp - xp + p

	var (
		q   *Decimal
		err error
	)
	if raise := p + yp - xp; raise > 0 {
		q, err = quoRound(xv, int(raise), yv, 0, scale, mc.Rounding, preferred)
	} else {
		q, err = quoRound(xv, 0, yv, int(-raise), scale, mc.Rounding, preferred)
	}
	if err != nil {
		return nil, err
	}

	return q.round(mc)
}

// cmpNormalized compares xv * 10^-xp with yv * 10^-yp by magnitude.
func cmpNormalized(xv *integer.Int, xp int64, yv *integer.Int, yp int64) int {
	switch d := xp - yp; {
	case d < 0:
		return mulTenPow(xv, int(-d)).CmpAbs(yv)
	case d > 0:
		return xv.CmpAbs(mulTenPow(yv, int(d)))
	}
	return xv.CmpAbs(yv)
}

// QuoScale returns x / y with the given scale, rounded with mode.
func (x *Decimal) QuoScale(y *Decimal, scale int32, mode RoundingMode) (*Decimal, error) {
	if !mode.Valid() {
		return nil, ErrMalformed.New("invalid rounding mode %d", mode)
	}
	if err := checkDivisor(x, y); err != nil {
		return nil, err
	}

	// x / y * 10^scale = (xv * 10^(scale+ys-xs)) / yv.
	raise := int64(scale) + int64(y.scale) - int64(x.scale)
	if raise > maxDigits || -raise > maxDigits {
		return nil, ErrOverflow.New("scale %d out of range for %s / %s", scale, x, y)
	}
	if raise >= 0 {
		return quoRound(x.Unscaled(), int(raise), y.Unscaled(), 0, int64(scale), mode, int64(scale))
	}
	return quoRound(x.Unscaled(), 0, y.Unscaled(), int(-raise), int64(scale), mode, int64(scale))
}

// QuoToIntegralValue returns the integer part of x / y with preferred
// scale x.Scale() - y.Scale(). With a limited context the result must fit
// in mc.Precision digits or an ErrInexact error is returned.
func (x *Decimal) QuoToIntegralValue(y *Decimal, mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}
	if err := checkDivisor(x, y); err != nil {
		return nil, err
	}

	preferred := int64(x.scale) - int64(y.scale)
	if mc.Precision == 0 || x.CmpAbs(y) < 0 {
		return x.quoToIntegral(y, preferred)
	}

	result, err := x.quo(y, Context{Precision: mc.Precision, Rounding: Down})
	if err != nil {
		return nil, err
	}

	switch {
	case result.scale < 0:
		// The integer part has more digits than the precision.
		p, err := result.mul(y)
		if err != nil {
			return nil, err
		}
		if x.Sub(p).CmpAbs(y) >= 0 {
			return nil, ErrInexact.New("division impossible: integer part of %s / %s exceeds %d digits", x, y, mc.Precision)
		}
	case result.scale > 0:
		if result, err = result.SetScale(0, Down); err != nil {
			return nil, err
		}
	}

	if room := int64(mc.Precision - result.Precision()); preferred > int64(result.scale) && room > 0 {
		return result.SetScale(int32(int64(result.scale)+min(room, preferred-int64(result.scale))), Unnecessary)
	}
	return stripZeros(result.Unscaled(), int64(result.scale), preferred), nil
}

func (x *Decimal) quoToIntegral(y *Decimal, preferred int64) (*Decimal, error) {
	if x.CmpAbs(y) < 0 {
		return saturatedZero(preferred), nil
	}

	// Enough digits for the whole integer part.
	digits := int64(x.Precision()) + int64(math.Ceil(10*float64(y.Precision())/3)) +
		abs64(int64(x.scale)-int64(y.scale)) + 2
	mc := Context{Precision: int(min(digits, math.MaxInt32)), Rounding: Down}

	q, err := x.quo(y, mc)
	if err != nil {
		return nil, err
	}

	if q.scale > 0 {
		if q, err = q.SetScale(0, Down); err != nil {
			return nil, err
		}
		q = stripZeros(q.Unscaled(), int64(q.scale), preferred)
	}
	if int64(q.scale) < preferred {
		s, err := checkScale(q.Unscaled(), preferred)
		if err != nil {
			return nil, err
		}
		return q.SetScale(s, Unnecessary)
	}
	return q, nil
}

// QuoRem returns the integer part of x / y, as QuoToIntegralValue, and the
// remainder x - q*y.
func (x *Decimal) QuoRem(y *Decimal, mc Context) (q, r *Decimal, err error) {
	q, err = x.QuoToIntegralValue(y, mc)
	if err != nil {
		return nil, nil, err
	}
	p, err := q.mul(y)
	if err != nil {
		return nil, nil, err
	}
	return q, x.Sub(p), nil
}

// Rem returns x - q*y where q is the integer part of x / y. The remainder
// has the sign of x.
func (x *Decimal) Rem(y *Decimal, mc Context) (*Decimal, error) {
	_, r, err := x.QuoRem(y, mc)
	return r, err
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
