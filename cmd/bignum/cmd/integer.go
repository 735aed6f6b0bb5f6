package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bignum/integer"
)

// intCommand returns a command taking n integer operands.
func intCommand(opts *options, use, short string, n int, fn func(cmd *cobra.Command, xs []*integer.Int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := opts.parseInts(args)
			if err != nil {
				return err
			}

			return fn(cmd, xs)
		},
	}
}

func integerCommands(opts *options) []*cobra.Command {
	modpow := intCommand(opts, "modpow B E M", "B raised to E modulo M", 3, func(cmd *cobra.Command, xs []*integer.Int) error {
		z, err := xs[0].ModPow(xs[1], xs[2])
		if err != nil {
			return err
		}

		return opts.printInt(cmd, z)
	})

	gcd := intCommand(opts, "gcd A B", "Greatest common divisor of A and B", 2, func(cmd *cobra.Command, xs []*integer.Int) error {
		return opts.printInt(cmd, xs[0].GCD(xs[1]))
	})

	modinv := intCommand(opts, "modinv A M", "Inverse of A modulo M", 2, func(cmd *cobra.Command, xs []*integer.Int) error {
		z, err := xs[0].ModInverse(xs[1])
		if err != nil {
			return err
		}

		return opts.printInt(cmd, z)
	})

	isqrt := intCommand(opts, "isqrt N", "Integer square root of N", 1, func(cmd *cobra.Command, xs []*integer.Int) error {
		z, err := xs[0].Sqrt()
		if err != nil {
			return err
		}

		return opts.printInt(cmd, z)
	})

	var certainty int
	prime := intCommand(opts, "prime N", "Report whether N is probably prime", 1, func(cmd *cobra.Command, xs []*integer.Int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), xs[0].IsProbablePrime(certainty))
		return err
	})
	prime.Flags().IntVar(&certainty, "certainty", 100, "a composite passes with probability below 2^-certainty")

	nextPrime := intCommand(opts, "next-prime N", "Smallest probable prime greater than N", 1, func(cmd *cobra.Command, xs []*integer.Int) error {
		z, err := xs[0].NextProbablePrime()
		if err != nil {
			return err
		}

		return opts.printInt(cmd, z)
	})

	var to int
	radix := intCommand(opts, "radix N", "Print N in another radix", 1, func(cmd *cobra.Command, xs []*integer.Int) error {
		if to < integer.MinRadix || to > integer.MaxRadix {
			return Error.New("radix %d out of range [%d, %d]", to, integer.MinRadix, integer.MaxRadix)
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), xs[0].Text(to))
		return err
	})
	radix.Flags().IntVar(&to, "to", 16, "radix of the result")

	return []*cobra.Command{
		modpow,
		gcd,
		modinv,
		isqrt,
		prime,
		nextPrime,
		radix,
	}
}
