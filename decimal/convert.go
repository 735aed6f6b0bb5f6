package decimal

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/calebcase/bignum/integer"
	"github.com/calebcase/bignum/internal/arith"
)

// float64Exact bounds the integers a float64 holds exactly.
const float64Exact = 1 << 53

// float64Pow10 holds the powers of ten a float64 holds exactly.
var float64Pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// NewFromFloat64 returns the exact value of the binary floating point
// number f. The scale is the smallest that represents it, so 0.1 becomes
// 0.1000000000000000055511151231257827021181583404541015625.
func NewFromFloat64(f float64) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrMalformed.New("non-finite value %v", f)
	}
	if f == 0 {
		return Zero, nil
	}

	b := math.Float64bits(f)
	exponent := int((b >> 52) & 0x7ff)
	significand := b & (1<<52 - 1)
	if exponent == 0 {
		exponent = 1
	} else {
		significand |= 1 << 52
	}
	exponent -= 1075

	tz := bits.TrailingZeros64(significand)
	significand >>= tz
	exponent += tz

	v := integer.NewUint64(significand)
	if b>>63 != 0 {
		v = v.Neg()
	}
	if exponent >= 0 {
		return NewFromInt(v.Lsh(exponent), 0), nil
	}

	// m * 2^-k = m * 5^k / 10^k.
	five, err := integer.NewInt(5).Pow(-exponent)
	if err != nil {
		return nil, ErrOverflow.Wrap(err)
	}
	return NewFromInt(v.Mul(five), int32(-exponent)), nil
}

// ValueOfFloat64 returns the decimal with the shortest digit string that
// rounds to f. Like the canonical float formatting it keeps at least one
// fraction digit, so 100.0 has scale 1 and 1e10 has unscaled value 10 and
// scale -9.
func ValueOfFloat64(f float64) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrMalformed.New("non-finite value %v", f)
	}
	if f == 0 {
		return zeroValue(1), nil
	}

	// d.ddde±x
	text := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(text, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return nil, ErrMalformed.New("%q: %v", text, err)
	}
	negative := strings.HasPrefix(mantissa, "-")
	digits := strings.Replace(strings.TrimPrefix(mantissa, "-"), ".", "", 1)

	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		if pad := e + 2 - len(digits); pad > 0 {
			digits += strings.Repeat("0", pad)
		}
	} else if len(digits) == 1 {
		digits += "0"
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, ErrMalformed.New("%q: %v", text, err)
	}
	if negative {
		v = -v
	}
	return New(v, int32(len(digits)-1-e)), nil
}

// Float64 returns the float64 nearest to d. Values beyond the float64
// range become ±Inf.
func (d *Decimal) Float64() float64 {
	if d.compact != inflated {
		abs := arith.Abs(d.compact)
		switch {
		case d.scale == 0 && abs <= float64Exact:
			return float64(d.compact)
		case abs <= float64Exact && d.scale > 0 && int(d.scale) < len(float64Pow10):
			return float64(d.compact) / float64Pow10[d.scale]
		case abs <= float64Exact && d.scale < 0 && int(-d.scale) < len(float64Pow10):
			return float64(d.compact) * float64Pow10[-d.scale]
		}
	}

	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// Int returns the integer part of d, truncating any fraction.
func (d *Decimal) Int() *integer.Int {
	switch {
	case d.scale == 0:
		return d.Unscaled()
	case d.scale < 0:
		return mulTenPow(d.Unscaled(), -int(d.scale))
	case int64(d.scale) > int64(d.Precision()):
		return integer.Zero
	}
	q, _ := d.Unscaled().Quo(tenPow(int(d.scale)))
	return q
}

// IntExact returns d as an integer. A nonzero fraction is an ErrNarrowing
// error.
func (d *Decimal) IntExact() (*integer.Int, error) {
	if d.scale <= 0 {
		return d.Int(), nil
	}
	r, err := d.SetScale(0, Unnecessary)
	if err != nil {
		return nil, ErrNarrowing.New("%s has a nonzero fraction", d)
	}
	return r.Unscaled(), nil
}

// Int64 returns the low 64 bits of the integer part of d in two's
// complement.
func (d *Decimal) Int64() int64 {
	switch {
	case d.compact != inflated && d.scale == 0:
		return d.compact
	case d.Sign() == 0 || int64(d.Precision())-int64(d.scale) <= 0:
		return 0
	case d.scale <= -64:
		// 10^64 is a multiple of 2^64.
		return 0
	}
	return d.Int().Int64()
}

// Int64Exact returns d as an int64. A nonzero fraction or a value out of
// range is an ErrNarrowing error.
func (d *Decimal) Int64Exact() (int64, error) {
	if d.compact != inflated && d.scale == 0 {
		return d.compact, nil
	}
	if d.Sign() == 0 {
		return 0, nil
	}
	if int64(d.Precision())-int64(d.scale) <= 0 {
		return 0, ErrNarrowing.New("%s has a nonzero fraction", d)
	}
	if int64(d.Precision())-int64(d.scale) > 19 {
		return 0, ErrNarrowing.New("%s overflows int64", d)
	}

	v, err := d.IntExact()
	if err != nil {
		return 0, err
	}
	r, err := v.Int64Exact()
	if err != nil {
		return 0, ErrNarrowing.New("%s overflows int64", d)
	}
	return r, nil
}

// Int32Exact returns d as an int32. A nonzero fraction or a value out of
// range is an ErrNarrowing error.
func (d *Decimal) Int32Exact() (int32, error) {
	v, err := d.Int64Exact()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrNarrowing.New("%s overflows int32", d)
	}
	return int32(v), nil
}

// Int16Exact returns d as an int16. A nonzero fraction or a value out of
// range is an ErrNarrowing error.
func (d *Decimal) Int16Exact() (int16, error) {
	v, err := d.Int64Exact()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, ErrNarrowing.New("%s overflows int16", d)
	}
	return int16(v), nil
}

// Int8Exact returns d as an int8. A nonzero fraction or a value out of
// range is an ErrNarrowing error.
func (d *Decimal) Int8Exact() (int8, error) {
	v, err := d.Int64Exact()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, ErrNarrowing.New("%s overflows int8", d)
	}
	return int8(v), nil
}
