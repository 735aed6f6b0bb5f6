package control_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum/control"
	"github.com/calebcase/oops"
)

func shortName(i int, data []byte) string {
	sb := &strings.Builder{}

	sb.WriteString(fmt.Sprintf("%02d/", i))

	if len(data) == 0 {
		sb.WriteString("(len=0)")

		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%02x", data[0]))
	prev := data[0]
	var dots bool

	for i, b := range data[1:] {
		if len(data) > 16 && prev == b {
			if !dots {
				if (i+1)%2 == 0 {
					sb.WriteString("_")
				}

				sb.WriteString("..")
				dots = true
			}

			continue
		}

		if (i+1)%2 == 0 {
			sb.WriteString("_")
		}

		sb.WriteString(fmt.Sprintf("%02x", b))
		prev = b
		dots = false
	}

	sb.WriteString(fmt.Sprintf("(len=%d)", len(data)))

	return sb.String()
}

// dataCases pairs data with its expected encoding.
var dataCases = []struct {
	Input  []byte
	Output []byte
	Mark   error
}{
	{
		Input:  []byte{0b_0000_0000},
		Output: []byte{0b_1000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0100_0000},
		Output: []byte{0b_1100_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_1000_0000},
		Output: []byte{0b_0100_0000, 0b_1000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0000_0000, 0b_0000_0000},
		Output: []byte{0b_0010_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0001_0000, 0b_0000_0000},
		Output: []byte{0b_0011_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0010_0000, 0b_0000_0000},
		Output: []byte{0b_0100_0001, 0b_0010_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0000_0000, 0b_0000_0000, 0b_0000_0000},
		Output: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
		Output: []byte{0b_0001_1000, 0b_0000_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
		Output: []byte{0b_0100_0010, 0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  make([]byte, 4),
		Output: append([]byte{0b_0100_0011}, make([]byte, 4)...),
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  make([]byte, 64),
		Output: append([]byte{0b_0111_1111}, make([]byte, 64)...),
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  make([]byte, 65),
		Output: append([]byte{0b_0000_1000, 0b_0100_0000}, make([]byte, 65)...),
		Mark:   oops.New("unexpected"),
	},
	{
		Input: make([]byte, 1024),
		Output: append(
			[]byte{0b_0000_1001, 0b_0000_0011, 0b_1111_1111},
			make([]byte, 1024)...,
		),
		Mark: oops.New("unexpected"),
	},
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestEncoder(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		for i, tc := range dataCases {
			t.Run(shortName(i, tc.Output), func(t *testing.T) {
				output := &bytes.Buffer{}
				e := control.NewEncoder(output)

				err := e.Data(tc.Input)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, len(tc.Output), len(output.Bytes()), tc.Mark)
				require.Equal(t, tc.Output, output.Bytes(), tc.Mark)
			})
		}
	})

	t.Run("empty data", func(t *testing.T) {
		e := control.NewEncoder(&bytes.Buffer{})

		err := e.Data(nil)
		require.Error(t, err)
		require.True(t, control.Error.Has(err))
	})

	t.Run("unbound", func(t *testing.T) {
		type TC struct {
			Fn     func(*control.Encoder) error
			Output []byte
			Mark   error
		}

		tcs := []TC{
			{
				Fn: func(e *control.Encoder) (err error) {
					return e.Data([]byte{0b_0000_0000})
				},
				Output: []byte{0b_0000_0110, 0b_1000_0000, 0b_0000_0100},
				Mark:   oops.New("unexpected"),
			},
			{
				Fn: func(e *control.Encoder) (err error) {
					return nil
				},
				Output: []byte{0b_0000_0110, 0b_0000_0100},
				Mark:   oops.New("unexpected"),
			},
			{
				Fn: func(e *control.Encoder) (err error) {
					err = e.Null()
					if err != nil {
						return err
					}

					return e.Unbound(func(e *control.Encoder) error {
						if e.Depth() != 2 {
							return errors.New("wrong depth")
						}

						return e.Empty()
					})
				},
				Output: []byte{
					0b_0000_0110, // cu
					0b_0000_0000, // n
					0b_0000_0110, // cu
					0b_0000_0001, // e
					0b_0000_0100, // ce
					0b_0000_0100, // ce
				},
				Mark: oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Output), func(t *testing.T) {
				output := &bytes.Buffer{}
				e := control.NewEncoder(output)

				err := e.Unbound(tc.Fn)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Output, output.Bytes(), tc.Mark)
				require.Equal(t, 0, e.Depth(), tc.Mark)
			})
		}
	})

	t.Run("write error", func(t *testing.T) {
		e := control.NewEncoder(failWriter{})

		err := e.Data([]byte{1, 2, 3, 4})
		require.Error(t, err)
		require.True(t, control.Error.Has(err))
	})
}
