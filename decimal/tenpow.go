package decimal

import (
	"sync"
	"sync/atomic"

	"github.com/calebcase/bignum/integer"
	"github.com/calebcase/bignum/internal/arith"
)

const (
	// tenPowMax is the largest power of ten kept in the cache.
	tenPowMax = 512

	// maxDigits is the number of decimal digits that always fit in the
	// largest supported magnitude.
	maxDigits = int64(integer.MaxMagLength) * 32 * 30103 / 100000
)

// tenPowCache holds 10^0 through 10^(len-1). It grows by doubling under mu;
// readers load the published snapshot without locking.
var tenPowCache struct {
	mu   sync.Mutex
	snap atomic.Pointer[[]*integer.Int]
}

func init() {
	powers := make([]*integer.Int, arith.MaxPow10+1)
	for i := range powers {
		p, _ := arith.Pow10(uint64(i))
		powers[i] = integer.NewUint64(p)
	}
	tenPowCache.snap.Store(&powers)
}

// tenPow returns 10^n for n >= 0.
func tenPow(n int) *integer.Int {
	if powers := *tenPowCache.snap.Load(); n < len(powers) {
		return powers[n]
	}
	if n > tenPowMax {
		p, err := integer.Ten.Pow(n)
		if err != nil {
			panic(ErrOverflow.Wrap(err))
		}
		return p
	}

	tenPowCache.mu.Lock()
	defer tenPowCache.mu.Unlock()

	powers := *tenPowCache.snap.Load()
	if n < len(powers) {
		return powers[n]
	}

	size := len(powers)
	for size <= n {
		size *= 2
	}
	size = min(size, tenPowMax+1)

	grown := make([]*integer.Int, size)
	copy(grown, powers)
	for i := len(powers); i < size; i++ {
		grown[i] = grown[i-1].Mul(integer.Ten)
	}
	tenPowCache.snap.Store(&grown)

	return grown[n]
}

// mulTenPow returns v * 10^n for n >= 0.
func mulTenPow(v *integer.Int, n int) *integer.Int {
	if n == 0 || v.IsZero() {
		return v
	}
	if v.IsInt64() {
		if r, ok := arith.MulPow10Int64(v.Int64(), n); ok {
			return integer.NewInt(r)
		}
	}
	return v.Mul(tenPow(n))
}

// bigDigitLength returns the number of decimal digits of v. 646456993 /
// 2^31 slightly exceeds log10(2), so the estimate is exact or one too
// small.
func bigDigitLength(v *integer.Int) int {
	if v.IsZero() {
		return 1
	}
	v = v.Abs()
	r := int((int64(v.BitLen()) + 1) * 646456993 >> 31)
	if v.CmpAbs(tenPow(r)) < 0 {
		return r
	}
	return r + 1
}
