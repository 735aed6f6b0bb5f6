package main

import (
	"os"

	"github.com/calebcase/bignum/cmd/bignum/cmd"
)

func main() {
	if err := cmd.Main().Execute(); err != nil {
		os.Exit(1)
	}
}
