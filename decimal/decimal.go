package decimal

import (
	"math"
	"sync/atomic"

	"github.com/calebcase/bignum/integer"
	"github.com/calebcase/bignum/internal/arith"
)

// inflated marks a Decimal whose unscaled value is held in big.
const inflated = math.MinInt64

// Decimal is an immutable decimal number: an arbitrary-precision unscaled
// integer times 10^-scale. Values that differ only in scale, such as 2.0
// and 2.00, are equal under Cmp but not under Equal.
//
// The zero value is 0 with scale 0. A Decimal must not be copied after
// first use.
type Decimal struct {
	compact int64
	big     *integer.Int
	scale   int32

	// Cached. Precision is never 0 once computed.
	prec atomic.Int32
	str  atomic.Pointer[string]
}

var (
	// smallValues holds 0 through 10 with scale 0.
	smallValues [11]*Decimal

	// zeros holds 0 with scales 0 through 15.
	zeros [16]*Decimal

	// Zero is 0 with scale 0.
	Zero *Decimal

	// One is 1 with scale 0.
	One *Decimal

	// Ten is 10 with scale 0.
	Ten *Decimal

	oneHalf  = &Decimal{compact: 5, scale: 1}
	oneTenth = &Decimal{compact: 1, scale: 1}
)

const (
	minScale = int64(math.MinInt32)
	maxScale = int64(math.MaxInt32)

	// maxPowExp bounds the magnitude of the exponent accepted by Pow.
	maxPowExp = 999999999
)

func init() {
	for i := range smallValues {
		smallValues[i] = &Decimal{compact: int64(i)}
	}
	zeros[0] = smallValues[0]
	for i := 1; i < len(zeros); i++ {
		zeros[i] = &Decimal{scale: int32(i)}
	}

	Zero, One, Ten = smallValues[0], smallValues[1], smallValues[10]
}

// New returns unscaled * 10^-scale.
func New(unscaled int64, scale int32) *Decimal {
	switch {
	case scale == 0 && unscaled >= 0 && unscaled < int64(len(smallValues)):
		return smallValues[unscaled]
	case unscaled == 0:
		return zeroValue(scale)
	case unscaled == inflated:
		return &Decimal{compact: inflated, big: integer.NewInt(unscaled), scale: scale}
	}
	return &Decimal{compact: unscaled, scale: scale}
}

// NewFromInt64 returns v with scale 0.
func NewFromInt64(v int64) *Decimal {
	return New(v, 0)
}

// NewFromInt returns unscaled * 10^-scale.
func NewFromInt(unscaled *integer.Int, scale int32) *Decimal {
	if unscaled.IsInt64() {
		return New(unscaled.Int64(), scale)
	}
	return &Decimal{compact: inflated, big: unscaled, scale: scale}
}

// zeroValue returns 0 with the given scale.
func zeroValue(scale int32) *Decimal {
	if scale >= 0 && int(scale) < len(zeros) {
		return zeros[scale]
	}
	return &Decimal{scale: scale}
}

// saturatedZero returns 0 with the scale clamped to the int32 range.
func saturatedZero(scale int64) *Decimal {
	return zeroValue(int32(max(minScale, min(maxScale, scale))))
}

// checkScale validates a computed scale for a result with unscaled value
// v. Zero values saturate since every scale denotes the same number.
func checkScale(v *integer.Int, scale int64) (int32, error) {
	switch {
	case scale >= minScale && scale <= maxScale:
		return int32(scale), nil
	case v.IsZero():
		return int32(max(minScale, min(maxScale, scale))), nil
	case scale > maxScale:
		return 0, ErrOverflow.New("scale %d underflows", scale)
	}
	return 0, ErrOverflow.New("scale %d overflows", scale)
}

// scaleArg validates a scale passed in by the caller as an int64 sum.
func scaleArg(d *Decimal, scale int64) (int32, error) {
	if scale < minScale || scale > maxScale {
		if d.Sign() == 0 {
			return checkScale(integer.Zero, scale)
		}
		return 0, ErrOverflow.New("scale %d out of range", scale)
	}
	return int32(scale), nil
}

// Unscaled returns the unscaled value.
func (d *Decimal) Unscaled() *integer.Int {
	if d.compact != inflated {
		return integer.NewInt(d.compact)
	}
	return d.big
}

// Scale returns the scale: the number of digits to the right of the
// decimal point, or when negative the power of ten the unscaled value is
// multiplied by.
func (d *Decimal) Scale() int32 {
	return d.scale
}

// Sign returns -1, 0 or 1.
func (d *Decimal) Sign() int {
	if d.compact != inflated {
		switch {
		case d.compact < 0:
			return -1
		case d.compact > 0:
			return 1
		}
		return 0
	}
	return d.big.Sign()
}

// IsZero reports whether d is zero, regardless of scale.
func (d *Decimal) IsZero() bool {
	return d.compact == 0
}

// Precision returns the number of digits of the unscaled value. The
// precision of zero is 1.
func (d *Decimal) Precision() int {
	if p := d.prec.Load(); p != 0 {
		return int(p)
	}

	var p int
	if d.compact != inflated {
		p = arith.Length(arith.Abs(d.compact))
	} else {
		p = bigDigitLength(d.big)
	}
	d.prec.Store(int32(p))

	return p
}

// adjusted returns the exponent of the most significant digit.
func (d *Decimal) adjusted() int64 {
	return int64(d.Precision()) - 1 - int64(d.scale)
}

// Abs returns |d|.
func (d *Decimal) Abs() *Decimal {
	if d.Sign() < 0 {
		return d.Neg()
	}
	return d
}

// Neg returns -d.
func (d *Decimal) Neg() *Decimal {
	if d.compact != inflated && d.compact != 0 {
		return New(-d.compact, d.scale)
	}
	if d.compact == 0 {
		return d
	}
	return NewFromInt(d.big.Neg(), d.scale)
}

// AbsContext returns |d| rounded to mc.
func (d *Decimal) AbsContext(mc Context) (*Decimal, error) {
	return d.Abs().Round(mc)
}

// NegContext returns -d rounded to mc.
func (d *Decimal) NegContext(mc Context) (*Decimal, error) {
	return d.Neg().Round(mc)
}

// Plus returns d rounded to mc.
func (d *Decimal) Plus(mc Context) (*Decimal, error) {
	return d.Round(mc)
}

// isUnscaledOne reports whether the unscaled value is 1.
func (d *Decimal) isUnscaledOne() bool {
	return d.compact == 1
}
