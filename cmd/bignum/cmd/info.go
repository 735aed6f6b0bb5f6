package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/calebcase/bignum/decimal"
)

// Info returns the command describing the representation of a decimal.
func Info(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info X",
		Short: "Describe the representation of X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}

			data, err := x.MarshalBinary()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "value:     %s\n", opts.layout.format(x))
			fmt.Fprintf(w, "scale:     %d\n", x.Scale())
			fmt.Fprintf(w, "digits:    %s\n", humanize.Comma(int64(x.Precision())))
			fmt.Fprintf(w, "bits:      %s\n", humanize.Comma(int64(x.Unscaled().BitLen())))
			_, err = fmt.Fprintf(w, "encoded:   %s\n", humanize.Bytes(uint64(len(data))))

			return err
		},
	}
}
