package arith_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum/internal/arith"
)

func TestLength(t *testing.T) {
	type TC struct {
		Input  uint64
		Output int
	}

	tcs := []TC{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999_999_999, 9},
		{1_000_000_000, 10},
		{math.MaxInt64, 19},
		{1e19 - 1, 19},
		{1e19, 20},
		{math.MaxUint64, 20},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.Input), func(t *testing.T) {
			require.Equal(t, tc.Output, arith.Length(tc.Input))
		})
	}
}

func TestDiv128(t *testing.T) {
	type TC struct {
		Hi, Lo, D uint64
		Q, R      uint64
		OK        bool
		Mark      error
	}

	tcs := []TC{
		{0, 7, 2, 3, 1, true, oops.New("unexpected")},
		{1, 0, 2, 1 << 63, 0, true, oops.New("unexpected")},
		{1, 0, 1, 0, 0, false, oops.New("unexpected")},
		{5, 0, 5, 0, 0, false, oops.New("unexpected")},
		{0, 1, 0, 0, 0, false, oops.New("unexpected")},
		{math.MaxUint64 - 1, math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64 - 1, true, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			q, r, ok := arith.Div128(tc.Hi, tc.Lo, tc.D)
			require.Equal(t, tc.OK, ok, tc.Mark)
			if !ok {
				return
			}
			require.Equal(t, tc.Q, q, tc.Mark)
			require.Equal(t, tc.R, r, tc.Mark)

			hi, lo := arith.Mul128(q, tc.D)
			sum := lo + r
			if sum < lo {
				hi++
			}
			require.Equal(t, tc.Hi, hi, tc.Mark)
			require.Equal(t, tc.Lo, sum, tc.Mark)
		})
	}
}

func TestInt64Overflow(t *testing.T) {
	_, ok := arith.AddInt64(math.MaxInt64, 1)
	require.False(t, ok)

	v, ok := arith.AddInt64(math.MaxInt64, -1)
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64-1), v)

	_, ok = arith.SubInt64(math.MinInt64, 1)
	require.False(t, ok)

	_, ok = arith.MulInt64(math.MinInt64, -1)
	require.False(t, ok)

	v, ok = arith.MulInt64(math.MinInt64/2, 2)
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), v)

	v, ok = arith.MulPow10Int64(-12, 3)
	require.True(t, ok)
	require.Equal(t, int64(-12000), v)

	_, ok = arith.MulPow10Int64(1, 19)
	require.False(t, ok)

	v, ok = arith.MulPow10Int64(1, 18)
	require.True(t, ok)
	require.Equal(t, int64(1e18), v)

	_, ok = arith.MulPow10Int64(10, 18)
	require.False(t, ok)
}
