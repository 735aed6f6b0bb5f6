package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/decimal"
	"github.com/calebcase/bignum/integer"
)

// Error is the class of usage errors reported by the commands.
var Error = errs.Class("bignum")

type options struct {
	precision int
	rounding  roundingFlag
	layout    layoutFlag
	radix     int
}

// context returns the decimal context selected by the flags.
func (o *options) context() (decimal.Context, error) {
	return decimal.NewContext(o.precision, decimal.RoundingMode(o.rounding))
}

func (o *options) parseDecimals(args []string) ([]*decimal.Decimal, error) {
	ds := make([]*decimal.Decimal, len(args))
	for i, arg := range args {
		d, err := decimal.Parse(arg)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}

	return ds, nil
}

func (o *options) parseInts(args []string) ([]*integer.Int, error) {
	xs := make([]*integer.Int, len(args))
	for i, arg := range args {
		x, err := integer.Parse(arg, o.radix)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}

	return xs, nil
}

func (o *options) printDecimal(cmd *cobra.Command, d *decimal.Decimal) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), o.layout.format(d))
	return err
}

func (o *options) printInt(cmd *cobra.Command, x *integer.Int) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), x.Text(o.radix))
	return err
}

// Main returns the root command.
func Main() *cobra.Command {
	opts := &options{
		rounding: roundingFlag(decimal.HalfUp),
		layout:   layoutScientific,
	}

	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision integer and decimal calculator",
		Long: `Arbitrary-precision integer and decimal calculator.

Decimal commands round their result to --precision significant digits with
the --rounding mode; a precision of 0 computes exact results. Integer
commands read and print their operands in --radix.

Negative operands must follow "--", as in: bignum add -- -1.5 2`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run:          func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&opts.precision, "precision", "p", 0, "significant digits of decimal results, 0 for exact")
	flags.Var(&opts.rounding, "rounding", "rounding mode: up, down, ceiling, floor, half-up, half-down, half-even or unnecessary")
	flags.Var(&opts.layout, "layout", "decimal output layout: sci, eng or plain")
	flags.IntVar(&opts.radix, "radix", 10, "radix of integer operands and results")

	rootCmd.AddCommand(decimalCommands(opts)...)
	rootCmd.AddCommand(integerCommands(opts)...)
	rootCmd.AddCommand(Info(opts))
	rootCmd.AddCommand(Encode(opts))
	rootCmd.AddCommand(Decode(opts))

	return rootCmd
}
