package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/bignum/decimal"
)

type binaryOp func(x, y *decimal.Decimal, mc decimal.Context) (*decimal.Decimal, error)

func binary(opts *options, use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " X Y",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc, err := opts.context()
			if err != nil {
				return err
			}

			ds, err := opts.parseDecimals(args)
			if err != nil {
				return err
			}

			z, err := op(ds[0], ds[1], mc)
			if err != nil {
				return err
			}

			return opts.printDecimal(cmd, z)
		},
	}
}

func decimalCommands(opts *options) []*cobra.Command {
	sqrt := &cobra.Command{
		Use:   "sqrt X",
		Short: "Square root of X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc, err := opts.context()
			if err != nil {
				return err
			}

			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}

			z, err := x.Sqrt(mc)
			if err != nil {
				return err
			}

			return opts.printDecimal(cmd, z)
		},
	}

	pow := &cobra.Command{
		Use:   "pow X N",
		Short: "X raised to the integer power N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc, err := opts.context()
			if err != nil {
				return err
			}

			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}

			n, err := strconv.Atoi(args[1])
			if err != nil {
				return Error.New("exponent %q is not an integer", args[1])
			}

			z, err := x.PowContext(n, mc)
			if err != nil {
				return err
			}

			return opts.printDecimal(cmd, z)
		},
	}

	round := &cobra.Command{
		Use:   "round X",
		Short: "X rounded to the precision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc, err := opts.context()
			if err != nil {
				return err
			}

			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}

			z, err := x.Round(mc)
			if err != nil {
				return err
			}

			return opts.printDecimal(cmd, z)
		},
	}

	var scale int32
	rescale := &cobra.Command{
		Use:   "rescale X",
		Short: "X with the given scale, rounded with the rounding mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}

			z, err := x.SetScale(scale, decimal.RoundingMode(opts.rounding))
			if err != nil {
				return err
			}

			return opts.printDecimal(cmd, z)
		},
	}
	rescale.Flags().Int32Var(&scale, "scale", 0, "digits after the decimal point")

	cmp := &cobra.Command{
		Use:   "cmp X Y",
		Short: "Compare X and Y numerically: -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.parseDecimals(args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ds[0].Cmp(ds[1]))
			return err
		},
	}

	return []*cobra.Command{
		binary(opts, "add", "Sum of X and Y", (*decimal.Decimal).AddContext),
		binary(opts, "sub", "Difference of X and Y", (*decimal.Decimal).SubContext),
		binary(opts, "mul", "Product of X and Y", (*decimal.Decimal).MulContext),
		binary(opts, "div", "Quotient of X and Y", (*decimal.Decimal).QuoContext),
		binary(opts, "rem", "Remainder of the integral division of X by Y", (*decimal.Decimal).Rem),
		sqrt,
		pow,
		round,
		rescale,
		cmp,
	}
}
