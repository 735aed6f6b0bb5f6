package cmd_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum/decimal"
	"github.com/calebcase/bignum/integer"
)

func TestDecimalCommands(t *testing.T) {
	type TC struct {
		args []string
		want string
		Mark error
	}

	tcs := []TC{
		{args: []string{"add", "1.1", "2.20"}, want: "3.30", Mark: oops.New("unexpected")},
		{args: []string{"add", "-p", "2", "1.1", "2.20"}, want: "3.3", Mark: oops.New("unexpected")},
		{args: []string{"sub", "--", "-1.5", "2"}, want: "-3.5", Mark: oops.New("unexpected")},
		{args: []string{"--layout", "plain", "mul", "1E+3", "2"}, want: "2000", Mark: oops.New("unexpected")},
		{args: []string{"mul", "1E+3", "2"}, want: "2E+3", Mark: oops.New("unexpected")},
		{args: []string{"div", "-p", "5", "1", "3"}, want: "0.33333", Mark: oops.New("unexpected")},
		{args: []string{"div", "1", "8"}, want: "0.125", Mark: oops.New("unexpected")},
		{args: []string{"div", "-p", "5", "--rounding", "down", "2", "3"}, want: "0.66666", Mark: oops.New("unexpected")},
		{args: []string{"div", "-p", "5", "--rounding", "HALF_UP", "2", "3"}, want: "0.66667", Mark: oops.New("unexpected")},
		{args: []string{"rem", "7.5", "2"}, want: "1.5", Mark: oops.New("unexpected")},
		{args: []string{"sqrt", "-p", "10", "2"}, want: "1.414213562", Mark: oops.New("unexpected")},
		{args: []string{"sqrt", "1.44"}, want: "1.2", Mark: oops.New("unexpected")},
		{args: []string{"pow", "2", "10"}, want: "1024", Mark: oops.New("unexpected")},
		{args: []string{"pow", "-p", "5", "--", "2", "-2"}, want: "0.25", Mark: oops.New("unexpected")},
		{args: []string{"round", "-p", "3", "123456"}, want: "1.23E+5", Mark: oops.New("unexpected")},
		{args: []string{"round", "-p", "3", "--layout", "eng", "12345"}, want: "12.3E+3", Mark: oops.New("unexpected")},
		{args: []string{"rescale", "--scale", "2", "--rounding", "half-even", "2.345"}, want: "2.34", Mark: oops.New("unexpected")},
		{args: []string{"rescale", "--scale", "2", "2.345"}, want: "2.35", Mark: oops.New("unexpected")},
		{args: []string{"cmp", "2.0", "2.00"}, want: "0", Mark: oops.New("unexpected")},
		{args: []string{"cmp", "--", "-1", "0.5"}, want: "-1", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, strings.Join(tc.args, " ")), func(t *testing.T) {
			out, err := run(tc.args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.want+"\n", out, tc.Mark)
		})
	}
}

func TestIntegerCommands(t *testing.T) {
	type TC struct {
		args []string
		want string
		Mark error
	}

	tcs := []TC{
		{args: []string{"modpow", "4", "13", "497"}, want: "445", Mark: oops.New("unexpected")},
		{args: []string{"gcd", "462", "1071"}, want: "21", Mark: oops.New("unexpected")},
		{args: []string{"--radix", "16", "gcd", "ff", "33"}, want: "33", Mark: oops.New("unexpected")},
		{args: []string{"modinv", "3", "11"}, want: "4", Mark: oops.New("unexpected")},
		{args: []string{"isqrt", "100000000000000000005"}, want: "10000000000", Mark: oops.New("unexpected")},
		{args: []string{"prime", "97"}, want: "true", Mark: oops.New("unexpected")},
		{args: []string{"prime", "--certainty", "50", "91"}, want: "false", Mark: oops.New("unexpected")},
		{args: []string{"next-prime", "100"}, want: "101", Mark: oops.New("unexpected")},
		{args: []string{"radix", "255"}, want: "ff", Mark: oops.New("unexpected")},
		{args: []string{"radix", "--radix", "2", "--to", "10", "101010"}, want: "42", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, strings.Join(tc.args, " ")), func(t *testing.T) {
			out, err := run(tc.args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.want+"\n", out, tc.Mark)
		})
	}
}

func TestInfo(t *testing.T) {
	out, err := run("info", "12345.678")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"value:     12345.678",
		"scale:     3",
		"digits:    8",
		"bits:      24",
		"encoded:   5 B",
		"",
	}, "\n"), out)

	out, err = run("info", strings.Repeat("9", 1234))
	require.NoError(t, err)
	require.Contains(t, out, "digits:    1,234\n")
	require.Contains(t, out, "bits:      4,100\n")
	require.Contains(t, out, "encoded:   514 B\n")
}

func TestStream(t *testing.T) {
	out, err := run("encode", "1", "0.0001")
	require.NoError(t, err)
	require.Equal(t, "22002221\n", out)

	out, err = run("decode", "2200222100")
	require.NoError(t, err)
	require.Equal(t, "1\n0.0001\nnull\n", out)

	out, err = run("encode", "--ints", "--", "1", "-64")
	require.NoError(t, err)
	require.Equal(t, "824081\n", out)

	out, err = run("--radix", "16", "decode", "--ints", "824081")
	require.NoError(t, err)
	require.Equal(t, "1\n-40\n", out)

	_, err = run("decode", "zz")
	require.Error(t, err)

	// An integer stream does not carry a scale trailer.
	_, err = run("decode", "82")
	require.True(t, decimal.ErrMalformed.Has(err), err)
}

func TestErrors(t *testing.T) {
	_, err := run("div", "1", "3")
	require.True(t, decimal.ErrInexact.Has(err), err)

	_, err = run("div", "1", "0")
	require.True(t, decimal.ErrUndefined.Has(err), err)

	_, err = run("add", "1", "x")
	require.True(t, decimal.ErrMalformed.Has(err), err)

	_, err = run("pow", "2", "1.5")
	require.Error(t, err)

	_, err = run("sqrt", "-p", "5", "--", "-4")
	require.True(t, decimal.ErrUndefined.Has(err), err)

	_, err = run("add", "--precision=-1", "1", "2")
	require.True(t, decimal.ErrMalformed.Has(err), err)

	_, err = run("modinv", "2", "4")
	require.True(t, integer.ErrUndefined.Has(err), err)

	_, err = run("gcd", "12", "z")
	require.True(t, integer.ErrMalformed.Has(err), err)

	_, err = run("radix", "--to", "37", "12")
	require.Error(t, err)

	_, err = run("--rounding", "sideways", "add", "1", "2")
	require.Error(t, err)

	_, err = run("--layout", "fancy", "add", "1", "2")
	require.Error(t, err)

	_, err = run("add", "1")
	require.Error(t, err)
}
