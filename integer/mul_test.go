package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSelectMul(t *testing.T) {
	type TC struct {
		xlen, ylen int
		want       mulAlgorithm
	}

	tcs := []TC{
		{xlen: 1, ylen: 1, want: schoolbook},
		{xlen: 79, ylen: 10000, want: schoolbook},
		{xlen: 80, ylen: 80, want: karatsuba},
		{xlen: 80, ylen: 239, want: karatsuba},
		{xlen: 239, ylen: 239, want: karatsuba},
		{xlen: 80, ylen: 240, want: toomCook3},
		{xlen: 240, ylen: 80, want: toomCook3},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%dx%d", i, tc.xlen, tc.ylen), func(t *testing.T) {
			require.Equal(t, tc.want, selectMul(tc.xlen, tc.ylen), tc.want.String())
		})
	}

	require.Equal(t, schoolbook, selectSquare(127))
	require.Equal(t, karatsuba, selectSquare(128))
	require.Equal(t, karatsuba, selectSquare(215))
	require.Equal(t, toomCook3, selectSquare(216))
}

func TestMulThresholds(t *testing.T) {
	rnd := newRand()

	lengths := []int{
		karatsubaThreshold - 1, karatsubaThreshold, karatsubaThreshold + 1,
		toomCookThreshold - 1, toomCookThreshold, toomCookThreshold + 1,
	}

	for _, xl := range lengths {
		for _, yl := range []int{1, 2, karatsubaThreshold, xl} {
			t.Run(fmt.Sprintf("%dx%d", xl, yl), func(t *testing.T) {
				x := randomInt(rnd, xl)
				y := randomInt(rnd, yl)

				want := new(big.Int).Mul(toBig(x), toBig(y))
				require.Equal(t, 0, want.Cmp(toBig(x.Mul(y))))
				require.Equal(t, 0, want.Cmp(toBig(y.Mul(x))))

				// Every algorithm must agree with schoolbook regardless
				// of the dispatch.
				school := mulSchoolbook(x.mag, y.mag)
				if diff := cmp.Diff(school, mulKaratsuba(x.Abs(), y.Abs()).mag); diff != "" {
					t.Fatalf("karatsuba mismatch (-want +got):\n%s", diff)
				}
				if diff := cmp.Diff(school, mulToomCook3(x.Abs(), y.Abs()).mag); diff != "" {
					t.Fatalf("toom-cook mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestSquareThresholds(t *testing.T) {
	rnd := newRand()

	lengths := []int{
		multiplySquareThreshold, multiplySquareThreshold + 1,
		karatsubaSquareThreshold - 1, karatsubaSquareThreshold, karatsubaSquareThreshold + 1,
		toomCookSquareThreshold - 1, toomCookSquareThreshold, toomCookSquareThreshold + 1,
	}

	for _, n := range lengths {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			x := randomInt(rnd, n)

			bx := toBig(x)
			want := new(big.Int).Mul(bx, bx)
			require.Equal(t, 0, want.Cmp(toBig(x.Square())))
			require.Equal(t, 0, want.Cmp(toBig(x.Mul(x))))

			school := sqrSchoolbook(x.mag)
			require.Equal(t, school, mulSchoolbook(x.mag, x.mag))
			if diff := cmp.Diff(school, squareKaratsuba(x).mag); diff != "" {
				t.Fatalf("karatsuba mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(school, squareToomCook3(x).mag); diff != "" {
				t.Fatalf("toom-cook mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMulSigns(t *testing.T) {
	rnd := newRand()

	for _, n := range []int{3, karatsubaThreshold, toomCookThreshold} {
		x := randomInt(rnd, n).Abs()
		y := randomInt(rnd, n).Abs()
		p := x.Mul(y)

		require.True(t, p.Equal(x.Neg().Mul(y.Neg())))
		require.True(t, p.Neg().Equal(x.Neg().Mul(y)))
		require.True(t, p.Neg().Equal(x.Mul(y.Neg())))
		require.True(t, Zero.Equal(x.Mul(Zero)))
	}
}

// The recursive products skip the range check, so every piece handed to
// them must be strictly smaller than the operands: slices are at most k
// limbs and the evaluation sums add at most two bits.
func TestToomSliceBounds(t *testing.T) {
	rnd := newRand()

	for _, largest := range []int{240, 241, 242, 243, 500, 1001} {
		t.Run(fmt.Sprintf("%d", largest), func(t *testing.T) {
			k := (largest + 2) / 3
			r := largest - 2*k
			require.Greater(t, r, 0)
			require.LessOrEqual(t, r, k)

			for _, n := range []int{largest, largest - 1, largest / 2, k} {
				x := randomInt(rnd, n)

				var parts []*Int
				total := Zero
				for i := 0; i < 3; i++ {
					s := toomSlice(x, k, r, i, largest)
					require.LessOrEqual(t, len(s.mag), k)
					require.GreaterOrEqual(t, s.Sign(), 0)
					parts = append(parts, s)
				}

				// The slices reassemble |x|.
				for _, s := range parts {
					total = total.Lsh(32 * k).Add(s)
				}
				require.True(t, x.Abs().Equal(total))

				// a2*4 + a1*2 + a0 < 7 * 2^(32k) fits k limbs plus 3 bits.
				v2 := parts[0].Lsh(2).Add(parts[1].Lsh(1)).Add(parts[2])
				require.LessOrEqual(t, v2.BitLen(), 32*k+3)
			}
		})
	}
}

func TestExactDivideBy3(t *testing.T) {
	rnd := newRand()

	for i := 0; i < 100; i++ {
		x := randomInt(rnd, 1+rnd.IntN(10))
		three := x.Mul(NewInt(3))
		require.True(t, x.Equal(three.exactDivideBy3()), "%s", x)
	}
}
