package integer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Shared values fill their cached properties and the radix power cache
// from many goroutines at once; run with -race.
func TestConcurrentReaders(t *testing.T) {
	x := randomInt(newRand(), 200)
	want := toBig(x).Text(7)
	bitLen := x.Abs().mag.bitLen()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			if got := x.Text(7); got != want {
				return ErrMalformed.New("text mismatch")
			}
			if x.Abs().BitLen() != bitLen {
				return ErrMalformed.New("bit length mismatch")
			}
			_ = x.BitCount()
			_ = x.LowestSetBit()
			_ = x.Hash()
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestConcurrentRadixPowers(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		radix := MinRadix + i%(MaxRadix-MinRadix+1)
		n := 3 + i%4
		g.Go(func() error {
			want, err := NewInt(int64(radix)).Pow(1 << n)
			if err != nil {
				return err
			}
			if !want.Equal(radixPower(radix, n)) {
				return ErrMalformed.New("%d^(2^%d) mismatch", radix, n)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
