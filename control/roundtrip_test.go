package control_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum/control"
)

func TestRoundtrip(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		for i, tc := range dataCases {
			t.Run(shortName(i, tc.Output), func(t *testing.T) {
				var err error

				output := &bytes.Buffer{}
				e := control.NewEncoder(output)

				err = e.Data(tc.Input)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Output, output.Bytes(), tc.Mark)

				d := control.NewDecoder(output)

				require.True(t, d.Next(), tc.Mark)

				data, err := d.Data()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Input, data, tc.Mark)

				require.False(t, d.Next(), tc.Mark)
				require.NoError(t, d.Err(), tc.Mark)
			})
		}
	})

	t.Run("sequence", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		err := e.Unbound(func(e *control.Encoder) (err error) {
			for _, tc := range dataCases {
				err = e.Data(tc.Input)
				if err != nil {
					return err
				}
			}

			return e.Null()
		})
		require.NoError(t, err)

		d := control.NewDecoder(output)

		require.True(t, d.Next())
		require.Equal(t, control.ContainerUnbounded, d.Type())
		require.NoError(t, d.Enter())

		for _, tc := range dataCases {
			require.True(t, d.Next(), tc.Mark)

			data, err := d.Data()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Input, data, tc.Mark)
		}

		require.True(t, d.Next())
		require.Equal(t, control.Null, d.Type())

		require.True(t, d.Next())
		require.Equal(t, control.ContainerEnd, d.Type())

		require.False(t, d.Next())
		require.NoError(t, d.Err())
	})
}
