package decimal_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum/control"
	"github.com/calebcase/bignum/decimal"
)

var binaryCases = []struct {
	Input  *decimal.Decimal
	Output []byte
	Mark   error
}{
	{
		Input:  decimal.Zero,
		Output: []byte{0x00, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(1, 4),
		Output: []byte{0x02, 0b_0010_0001},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(2047, 2),
		Output: []byte{0x0F, 0xFE, 0b_0001_0001},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(32767, 4),
		Output: []byte{0xFF, 0xFE, 0b_0010_0001},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(1, 18),
		Output: []byte{0x02, 0b_1001_0001},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(123, -1),
		Output: []byte{0xF6, 0b_0000_0101},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(-1, -2),
		Output: []byte{0x03, 0b_0000_1101},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(12345, 100),
		Output: []byte{0x60, 0x72, 0x00, 0x03, 0b_0010_0010},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(1, math.MaxInt32),
		Output: []byte{0x02, 0x03, 0xFF, 0xFF, 0xFF, 0b_1111_1011},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  decimal.New(-1, math.MinInt32),
		Output: []byte{0x03, 0x03, 0xFF, 0xFF, 0xFF, 0b_1111_1111},
		Mark:   oops.New("unexpected"),
	},
}

func TestMarshalBinary(t *testing.T) {
	for i, tc := range binaryCases {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			data, err := tc.Input.MarshalBinary()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, data, tc.Mark)

			d := new(decimal.Decimal)
			err = d.UnmarshalBinary(data)
			require.NoError(t, err, tc.Mark)
			require.True(t, tc.Input.Equal(d), tc.Mark)
			require.Equal(t, tc.Input.String(), d.String(), tc.Mark)
		})
	}
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	type TC struct {
		Input    []byte
		overflow bool
	}

	tcs := []TC{
		{Input: nil},
		{Input: []byte{0b_0000_0101}},
		{Input: []byte{0x02, 0x03, 0xFF, 0b_1111_1111}},
		{Input: []byte{0x02, 0b_0000_0100}},
		{Input: []byte{0x01, 0b_0000_0000}},
		{Input: []byte{0x02, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, overflow: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x", i, tc.Input), func(t *testing.T) {
			err := new(decimal.Decimal).UnmarshalBinary(tc.Input)
			require.Error(t, err)
			if tc.overflow {
				require.True(t, decimal.ErrOverflow.Has(err), err)
			} else {
				require.True(t, decimal.ErrMalformed.Has(err), err)
			}
		})
	}
}

func TestMarshalText(t *testing.T) {
	d := decimal.MustParse("-1.2345E+30")

	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-1.2345E+30", string(text))

	e := new(decimal.Decimal)
	require.NoError(t, e.UnmarshalText(text))
	require.True(t, d.Equal(e))

	err = new(decimal.Decimal).UnmarshalText([]byte("1,5"))
	require.True(t, decimal.ErrMalformed.Has(err))
}

func TestEncode(t *testing.T) {
	type TC struct {
		Input  *decimal.Decimal
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  nil,
			Output: []byte{0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  decimal.Zero,
			Output: []byte{0b_0010_0000, 0x00},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  decimal.New(1, 4),
			Output: []byte{0b_0010_0010, 0x21},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  decimal.New(2047, 2),
			Output: []byte{0b_0001_1111, 0xFE, 0x11},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  decimal.New(32767, 4),
			Output: []byte{0b_0100_0010, 0xFF, 0xFE, 0x21},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  decimal.New(1, 18),
			Output: []byte{0b_0010_0010, 0x91},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  decimal.New(123, -1),
			Output: []byte{0b_0100_0001, 0xF6, 0x05},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  decimal.New(12345, 100),
			Output: []byte{0b_0100_0100, 0x60, 0x72, 0x00, 0x03, 0x22},
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.Input), func(t *testing.T) {
			buf := &bytes.Buffer{}

			err := decimal.Encode(control.NewEncoder(buf), tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, buf.Bytes(), tc.Mark)

			d, err := decimal.Decode(control.NewDecoder(bytes.NewReader(buf.Bytes())))
			require.NoError(t, err, tc.Mark)
			if tc.Input == nil {
				require.Nil(t, d, tc.Mark)
				return
			}
			require.True(t, tc.Input.Equal(d), tc.Mark)
		})
	}
}

func TestEncodeLarge(t *testing.T) {
	d := decimal.MustParse("3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196")

	buf := &bytes.Buffer{}
	require.NoError(t, decimal.Encode(control.NewEncoder(buf), d))
	require.True(t, control.DataSizeSize.Match(buf.Bytes()[0]))

	e, err := decimal.Decode(control.NewDecoder(buf))
	require.NoError(t, err)
	require.True(t, d.Equal(e))
}

func TestDecodeErrors(t *testing.T) {
	_, err := decimal.Decode(control.NewDecoder(bytes.NewReader(nil)))
	require.Error(t, err)
	require.True(t, decimal.ErrMalformed.Has(err))

	_, err = decimal.Decode(control.NewDecoder(bytes.NewReader([]byte{0b_0000_0001})))
	require.Error(t, err)
	require.True(t, decimal.ErrMalformed.Has(err))

	// A one byte payload has no room for the unscaled value.
	_, err = decimal.Decode(control.NewDecoder(bytes.NewReader([]byte{0b_1000_0101})))
	require.Error(t, err)
	require.True(t, decimal.ErrMalformed.Has(err))

	// Truncated DataSize block.
	_, err = decimal.Decode(control.NewDecoder(bytes.NewReader([]byte{0b_0100_0011, 0x01})))
	require.Error(t, err)
	require.True(t, decimal.Error.Has(err))
}
