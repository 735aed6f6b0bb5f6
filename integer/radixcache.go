package integer

import (
	"sync"
	"sync/atomic"
)

// radixPowers[r][i] is r^(2^i).
type radixPowers [MaxRadix + 1][]*Int

// radixCache holds the powers used by recursive radix conversion. Readers
// load the published snapshot without locking; growth happens under mu and
// publishes a new snapshot.
var radixCache struct {
	mu   sync.Mutex
	snap atomic.Pointer[radixPowers]
}

func init() {
	var p radixPowers
	for r := MinRadix; r <= MaxRadix; r++ {
		p[r] = []*Int{NewInt(int64(r))}
	}
	radixCache.snap.Store(&p)
}

// radixPower returns radix^(2^n).
func radixPower(radix, n int) *Int {
	if p := radixCache.snap.Load(); n < len(p[radix]) {
		return p[radix][n]
	}

	radixCache.mu.Lock()
	defer radixCache.mu.Unlock()

	old := radixCache.snap.Load()
	if n < len(old[radix]) {
		return old[radix][n]
	}

	next := *old
	powers := make([]*Int, len(old[radix]), n+1)
	copy(powers, old[radix])
	for len(powers) <= n {
		powers = append(powers, powers[len(powers)-1].Square())
	}
	next[radix] = powers
	radixCache.snap.Store(&next)

	return powers[n]
}
