package control_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum/control"
	"github.com/calebcase/oops"
)

func TestDecoder(t *testing.T) {
	type TC struct {
		Input []byte
		Types []control.Type
		Data  [][]byte
		Mark  error
	}

	t.Run("read", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_1000_0000},
				Types: []control.Type{control.Data},
				Data:  [][]byte{{0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0100_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Data:  [][]byte{{0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0010_0000, 0b_0000_0000},
				Types: []control.Type{control.Data1},
				Data:  [][]byte{{0b_0000_0000, 0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.Data2},
				Data:  [][]byte{{0b_0000_0000, 0b_0000_0000, 0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSizeSize},
				Data:  [][]byte{{0b_0000_0000}},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0110, 0b_1000_0000, 0b_0000_0100},
				Types: []control.Type{
					control.ContainerUnbounded,
					control.Data,
					control.ContainerEnd,
				},
				Data: [][]byte{nil, {0b_0000_0000}, nil},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0001, 0b_0000_0000},
				Types: []control.Type{control.Empty, control.Null},
				Data:  [][]byte{nil, nil},
				Mark:  oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			name := []string{}
			for _, field := range tc.Types {
				name = append(name, field.Abbr)
			}

			t.Run(strings.Join(name, ","), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewBuffer(tc.Input))

				types := []control.Type{}
				data := [][]byte{}

				for d.Next() {
					field := d.Type()
					types = append(types, field)

					switch field {
					case control.ContainerUnbounded:
						require.NoError(t, d.Enter(), tc.Mark)
						data = append(data, nil)
					case control.ContainerEnd, control.Empty, control.Null:
						data = append(data, nil)
					default:
						b, err := d.Data()
						require.NoError(t, err, tc.Mark)
						data = append(data, b)
					}
				}
				err := d.Err()
				require.NoError(t, err, tc.Mark)

				require.Equal(t, tc.Types, types, tc.Mark)
				require.Equal(t, tc.Data, data, tc.Mark)
				require.Equal(t, 0, d.Depth(), tc.Mark)
				require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
			})
		}
	})

	t.Run("seek", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_1000_0000},
				Types: []control.Type{control.Data},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0100_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0010_0000, 0b_0000_0000},
				Types: []control.Type{control.Data1},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.Data2},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSizeSize},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0110, 0b_1000_0000, 0b_0000_0100},
				Types: []control.Type{
					control.ContainerUnbounded,
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0001},
				Types: []control.Type{control.Empty},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0000},
				Types: []control.Type{control.Null},
				Mark:  oops.New("unexpected"),
			},

			// More nesting situations:
			{
				Input: []byte{
					0b_0000_0110, // cu
					0b_0000_0110, // cu
					0b_1000_0000, // d
					0b_0000_0100, // ce
					0b_0000_0100, // ce
				},
				Types: []control.Type{
					control.ContainerUnbounded,
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{
					0b_1000_0000, // d
					0b_0000_0110, // cu
					0b_0100_0001, // dz
					0b_0000_0000,
					0b_0000_0000,
					0b_0000_0100, // ce
					0b_1000_0000, // d
				},
				Types: []control.Type{
					control.Data,
					control.ContainerUnbounded,
					control.Data,
				},
				Mark: oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			name := []string{}
			for _, field := range tc.Types {
				name = append(name, field.Abbr)
			}

			t.Run(strings.Join(name, ","), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewBuffer(tc.Input))

				types := []control.Type{}

				for d.Next() {
					field := d.Type()
					types = append(types, field)

					t.Logf("Type: %s depth=%d\n", field, d.Depth())
				}
				err := d.Err()
				require.NoError(t, err, tc.Mark)

				require.Equal(t, tc.Types, types, tc.Mark)
				require.Equal(t, 0, d.Depth(), tc.Mark)
				require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
			})
		}
	})

	t.Run("errors", func(t *testing.T) {
		type TC struct {
			Input []byte
			Mark  error
		}

		tcs := []TC{
			// Reserved prefix.
			{Input: []byte{0b_0000_0101}, Mark: oops.New("unexpected")},
			// Container end outside a container.
			{Input: []byte{0b_0000_0100}, Mark: oops.New("unexpected")},
			// Unterminated container.
			{Input: []byte{0b_0000_0110, 0b_1000_0000}, Mark: oops.New("unexpected")},
			// Truncated data.
			{Input: []byte{0b_0100_0011, 0b_0000_0000}, Mark: oops.New("unexpected")},
			// Truncated size.
			{Input: []byte{0b_0000_1001, 0b_0000_0000}, Mark: oops.New("unexpected")},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewReader(tc.Input))

				for d.Next() {
				}
				err := d.Err()
				require.Error(t, err, tc.Mark)
				require.True(t, control.Error.Has(err), spew.Sdump(err))
			})
		}
	})

	t.Run("invalid operation", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader([]byte{0b_0000_0001}))

		require.True(t, d.Next())

		_, err := d.Data()
		require.Error(t, err)

		require.Error(t, d.Enter())
	})
}
