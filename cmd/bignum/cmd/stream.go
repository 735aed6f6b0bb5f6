package cmd

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/bignum"
)

// Encode returns the command writing its operands as a hex encoded stream.
func Encode(opts *options) *cobra.Command {
	var ints bool

	cmd := &cobra.Command{
		Use:   "encode X...",
		Short: "Print the binary stream encoding of the operands in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := &bytes.Buffer{}
			e := bignum.NewEncoder(buf)

			if ints {
				xs, err := opts.parseInts(args)
				if err != nil {
					return err
				}

				for _, x := range xs {
					err = e.WriteInt(x)
					if err != nil {
						return err
					}
				}
			} else {
				ds, err := opts.parseDecimals(args)
				if err != nil {
					return err
				}

				for _, d := range ds {
					err = e.WriteDecimal(d)
					if err != nil {
						return err
					}
				}
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))
			return err
		},
	}
	cmd.Flags().BoolVar(&ints, "ints", false, "operands are integers")

	return cmd
}

// Decode returns the command printing the values of a hex encoded stream,
// one per line.
func Decode(opts *options) *cobra.Command {
	var ints bool

	cmd := &cobra.Command{
		Use:   "decode HEX",
		Short: "Print the values of a hex encoded binary stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return Error.Wrap(err)
			}

			d := bignum.NewDecoder(bytes.NewReader(data))
			w := cmd.OutOrStdout()

			for {
				var text string

				if ints {
					x, err := d.ReadInt()
					if errors.Is(err, io.EOF) {
						return nil
					}
					if err != nil {
						return err
					}

					text = "null"
					if x != nil {
						text = x.Text(opts.radix)
					}
				} else {
					v, err := d.ReadDecimal()
					if errors.Is(err, io.EOF) {
						return nil
					}
					if err != nil {
						return err
					}

					text = "null"
					if v != nil {
						text = opts.layout.format(v)
					}
				}

				_, err = fmt.Fprintln(w, text)
				if err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().BoolVar(&ints, "ints", false, "values are integers")

	return cmd
}
