package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Shared values fill their cached precision and string from many
// goroutines at once; run with -race.
func TestConcurrentReaders(t *testing.T) {
	d := mustParse(t, "-123456789012345678901234567890.0987654321E-40")
	want := "-1.234567890123456789012345678900987654321E-11"

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			if got := d.String(); got != want {
				return ErrMalformed.New("string mismatch: %s", got)
			}
			if p := d.Precision(); p != 40 {
				return ErrMalformed.New("precision mismatch: %d", p)
			}
			_ = d.Hash()
			_ = d.EngineeringString()
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestConcurrentTenPowers(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		n := 17 + i*7
		g.Go(func() error {
			want, err := New(10, 0).Pow(n)
			if err != nil {
				return err
			}
			if !want.Unscaled().Equal(tenPow(n)) {
				return ErrMalformed.New("10^%d mismatch", n)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
