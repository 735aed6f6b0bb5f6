package decimal

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestRoundingTable(t *testing.T) {
	modes := []RoundingMode{Up, Down, Ceiling, Floor, HalfUp, HalfDown, HalfEven, Unnecessary}

	type TC struct {
		input string
		// Results in the order of modes; "" is an ErrInexact error.
		want [8]string
		Mark error
	}

	tcs := []TC{
		{input: "5.5", want: [8]string{"6", "5", "6", "5", "6", "5", "6", ""}, Mark: oops.New("unexpected")},
		{input: "2.5", want: [8]string{"3", "2", "3", "2", "3", "2", "2", ""}, Mark: oops.New("unexpected")},
		{input: "1.6", want: [8]string{"2", "1", "2", "1", "2", "2", "2", ""}, Mark: oops.New("unexpected")},
		{input: "1.1", want: [8]string{"2", "1", "2", "1", "1", "1", "1", ""}, Mark: oops.New("unexpected")},
		{input: "1.0", want: [8]string{"1", "1", "1", "1", "1", "1", "1", "1"}, Mark: oops.New("unexpected")},
		{input: "-1.0", want: [8]string{"-1", "-1", "-1", "-1", "-1", "-1", "-1", "-1"}, Mark: oops.New("unexpected")},
		{input: "-1.1", want: [8]string{"-2", "-1", "-1", "-2", "-1", "-1", "-1", ""}, Mark: oops.New("unexpected")},
		{input: "-1.6", want: [8]string{"-2", "-1", "-1", "-2", "-2", "-2", "-2", ""}, Mark: oops.New("unexpected")},
		{input: "-2.5", want: [8]string{"-3", "-2", "-2", "-3", "-3", "-2", "-2", ""}, Mark: oops.New("unexpected")},
		{input: "-5.5", want: [8]string{"-6", "-5", "-5", "-6", "-6", "-5", "-6", ""}, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		for j, mode := range modes {
			t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.input, mode), func(t *testing.T) {
				d := mustParse(t, tc.input)

				got, err := d.SetScale(0, mode)
				if tc.want[j] == "" {
					require.Error(t, err, tc.Mark)
					require.True(t, ErrInexact.Has(err), tc.Mark)
					return
				}
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.want[j], got.String(), tc.Mark)

				// Rounding to one digit of precision agrees for these
				// inputs.
				r, err := d.Round(Context{Precision: 1, Rounding: mode})
				require.NoError(t, err, tc.Mark)
				require.Equal(t, 0, r.Cmp(got), tc.Mark)
			})
		}
	}
}

func TestRoundingModeNames(t *testing.T) {
	for m := Up; m <= Unnecessary; m++ {
		parsed, err := ParseRoundingMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)

		legacy, err := RoundingModeFromLegacy(int(m))
		require.NoError(t, err)
		require.Equal(t, m, legacy)
	}

	require.Equal(t, "HALF_EVEN", HalfEven.String())
	require.Equal(t, "UNKNOWN", RoundingMode(8).String())
	require.False(t, RoundingMode(8).Valid())

	_, err := ParseRoundingMode("half_even")
	require.True(t, ErrMalformed.Has(err))

	_, err = RoundingModeFromLegacy(8)
	require.True(t, ErrMalformed.Has(err))

	_, err = RoundingModeFromLegacy(-1)
	require.True(t, ErrMalformed.Has(err))
}

func TestContext(t *testing.T) {
	require.Equal(t, "precision=7 roundingMode=HALF_EVEN", Decimal32.String())
	require.Equal(t, "precision=0 roundingMode=HALF_UP", Unlimited.String())

	for _, mc := range []Context{Unlimited, Decimal32, Decimal64, Decimal128, {Precision: 3, Rounding: Floor}} {
		got, err := ParseContextString(mc.String())
		require.NoError(t, err)
		require.Equal(t, mc, got)
	}

	bad := []string{
		"",
		"precision=7",
		"precision=x roundingMode=UP",
		"precision=-1 roundingMode=UP",
		"precision=7 roundingMode=SIDEWAYS",
		"roundingMode=UP precision=7",
	}
	for i, s := range bad {
		t.Run(fmt.Sprintf("[%d]%q", i, s), func(t *testing.T) {
			_, err := ParseContextString(s)
			require.Error(t, err)
			require.True(t, ErrMalformed.Has(err))
		})
	}

	_, err := NewContext(-1, HalfUp)
	require.True(t, ErrMalformed.Has(err))

	_, err = NewContext(5, RoundingMode(9))
	require.True(t, ErrMalformed.Has(err))

	_, err = One.Round(Context{Precision: -1})
	require.True(t, ErrMalformed.Has(err))
}
