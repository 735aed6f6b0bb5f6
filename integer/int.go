package integer

import (
	"math"
	"sync/atomic"
)

// memo caches a derived int attribute. The value is stored offset by two so
// that zero marks an empty cell and -1 stays representable. Concurrent first
// calls may each compute the value; they all store the same result.
type memo struct {
	v atomic.Int64
}

func (m *memo) get(f func() int) int {
	if v := m.v.Load(); v != 0 {
		return int(v - 2)
	}
	r := f()
	m.v.Store(int64(r) + 2)
	return r
}

// Int is an immutable arbitrary-precision signed integer. The zero value is
// zero. An Int must not be copied after first use.
type Int struct {
	sign int
	mag  nat

	bitLen       memo
	bitCount     memo
	lowestSetBit memo
	firstNonzero memo
}

// Interned small values.
var (
	Zero = &Int{}
	One  = newInt(1, nat{1})
	Two  = newInt(1, nat{2})
	Ten  = newInt(1, nat{10})

	posConst, negConst [maxConstant + 1]*Int
)

const maxConstant = 16

func init() {
	for i := 1; i <= maxConstant; i++ {
		posConst[i] = newInt(1, nat{uint32(i)})
		negConst[i] = newInt(-1, nat{uint32(i)})
	}
	posConst[0], negConst[0] = Zero, Zero
	posConst[1], posConst[2], posConst[10] = One, Two, Ten
}

// newInt builds an Int from a sign and a normalized magnitude. It panics
// with an ErrOverflow error when the magnitude is out of range.
func newInt(sign int, mag nat) *Int {
	if len(mag) == 0 {
		return Zero
	}
	if !mag.fits() {
		panic(ErrOverflow.New("magnitude of %d limbs exceeds the supported range", len(mag)))
	}
	return &Int{sign: sign, mag: mag}
}

// checkBitLen panics with an ErrOverflow error when a result of n bits
// cannot be represented.
func checkBitLen(n int64) {
	if n > maxBitLen {
		panic(ErrOverflow.New("bit length %d exceeds the supported range", n))
	}
}

// NewInt returns the Int with value v.
func NewInt(v int64) *Int {
	switch {
	case v == 0:
		return Zero
	case v > 0 && v <= maxConstant:
		return posConst[v]
	case v < 0 && v >= -maxConstant:
		return negConst[-v]
	case v < 0:
		return newInt(-1, natFromUint64(uint64(-v)))
	}
	return newInt(1, natFromUint64(uint64(v)))
}

// NewUint64 returns the Int with value v.
func NewUint64(v uint64) *Int {
	if v <= maxConstant {
		return NewInt(int64(v))
	}
	return newInt(1, natFromUint64(v))
}

// FromSignMagnitude returns the Int with the given sign (-1, 0 or 1) and
// big-endian unsigned magnitude.
func FromSignMagnitude(sign int, mag []byte) (_ *Int, err error) {
	m := natFromBytes(mag)
	switch {
	case sign < -1 || sign > 1:
		return nil, ErrMalformed.New("invalid sign %d", sign)
	case sign == 0 && len(m) != 0:
		return nil, ErrMalformed.New("sign 0 with nonzero magnitude")
	case sign != 0 && len(m) == 0:
		return Zero, nil
	case !m.fits():
		return nil, ErrOverflow.New("magnitude of %d limbs exceeds the supported range", len(m))
	}
	return newInt(sign, m), nil
}

// Sign returns -1, 0 or 1.
func (x *Int) Sign() int { return x.sign }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.sign == 0 }

// Cmp compares x and y and returns -1, 0 or 1.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign > y.sign {
			return 1
		}
		return -1
	}
	switch x.sign {
	case 1:
		return x.mag.cmp(y.mag)
	case -1:
		return y.mag.cmp(x.mag)
	}
	return 0
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int { return x.mag.cmp(y.mag) }

// Equal reports whether x and y have the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Min returns the smaller of x and y.
func (x *Int) Min(y *Int) *Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func (x *Int) Max(y *Int) *Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return newInt(1, x.mag)
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return x
	}
	return newInt(-x.sign, x.mag)
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	switch {
	case y.sign == 0:
		return x
	case x.sign == 0:
		return y
	case x.sign == y.sign:
		return newInt(x.sign, add(x.mag, y.mag))
	}
	switch x.mag.cmp(y.mag) {
	case 1:
		return newInt(x.sign, sub(x.mag, y.mag))
	case -1:
		return newInt(y.sign, sub(y.mag, x.mag))
	}
	return Zero
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// IsInt64 reports whether x fits in an int64.
func (x *Int) IsInt64() bool {
	if len(x.mag) > 2 {
		return false
	}
	u := x.mag.uint64()
	if x.sign < 0 {
		return u <= 1<<63
	}
	return u <= math.MaxInt64
}

// Int64 returns the low 64 bits of x in two's complement, like a
// narrowing conversion.
func (x *Int) Int64() int64 {
	v := int64(x.mag.uint64())
	if x.sign < 0 {
		return -v
	}
	return v
}

// Uint64 returns the low 64 bits of x in two's complement.
func (x *Int) Uint64() uint64 {
	return uint64(x.Int64())
}

// Int64Exact returns x as an int64 or an ErrNarrowing error.
func (x *Int) Int64Exact() (int64, error) {
	if !x.IsInt64() {
		return 0, ErrNarrowing.New("%s out of int64 range", x)
	}
	return x.Int64(), nil
}

// Int32Exact returns x as an int32 or an ErrNarrowing error.
func (x *Int) Int32Exact() (int32, error) {
	v := x.Int64()
	if !x.IsInt64() || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrNarrowing.New("%s out of int32 range", x)
	}
	return int32(v), nil
}

// Int16Exact returns x as an int16 or an ErrNarrowing error.
func (x *Int) Int16Exact() (int16, error) {
	v := x.Int64()
	if !x.IsInt64() || v < math.MinInt16 || v > math.MaxInt16 {
		return 0, ErrNarrowing.New("%s out of int16 range", x)
	}
	return int16(v), nil
}

// Int8Exact returns x as an int8 or an ErrNarrowing error.
func (x *Int) Int8Exact() (int8, error) {
	v := x.Int64()
	if !x.IsInt64() || v < math.MinInt8 || v > math.MaxInt8 {
		return 0, ErrNarrowing.New("%s out of int8 range", x)
	}
	return int8(v), nil
}

// Float64 returns the float64 nearest to x, rounding half to even. Values
// beyond the float64 range become infinities.
func (x *Int) Float64() float64 {
	n := x.mag.bitLen()
	if n == 0 {
		return 0
	}
	var f float64
	if n <= 63 {
		f = float64(int64(x.mag.uint64()))
	} else {
		shift := n - 54
		top := shr(x.mag, uint(shift)).uint64()
		sticky := x.mag.trailingZeros() < shift
		mant := top >> 1
		if top&1 == 1 && (sticky || mant&1 == 1) {
			mant++
		}
		f = math.Ldexp(float64(mant), shift+1)
	}
	if x.sign < 0 {
		return -f
	}
	return f
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	return x.Text(10)
}
