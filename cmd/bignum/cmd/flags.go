package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/calebcase/bignum/decimal"
)

var (
	_ pflag.Value = (*roundingFlag)(nil)
	_ pflag.Value = (*layoutFlag)(nil)
)

// roundingFlag is a decimal.RoundingMode accepting names in any case with
// '-' or '_' separators, so half-even and HALF_EVEN are the same mode.
type roundingFlag decimal.RoundingMode

// Set is part of the pflag.Value interface.
func (f *roundingFlag) Set(s string) error {
	m, err := decimal.ParseRoundingMode(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	if err != nil {
		return err
	}

	*f = roundingFlag(m)

	return nil
}

// String is part of the pflag.Value interface.
func (f *roundingFlag) String() string {
	return strings.ToLower(strings.ReplaceAll(decimal.RoundingMode(*f).String(), "_", "-"))
}

// Type is part of the pflag.Value interface.
func (f *roundingFlag) Type() string {
	return "rounding"
}

// layoutFlag selects how decimal results are printed.
type layoutFlag string

const (
	layoutScientific  layoutFlag = "sci"
	layoutEngineering layoutFlag = "eng"
	layoutPlain       layoutFlag = "plain"
)

// Set is part of the pflag.Value interface.
func (f *layoutFlag) Set(s string) error {
	switch l := layoutFlag(strings.ToLower(s)); l {
	case layoutScientific, layoutEngineering, layoutPlain:
		*f = l
		return nil
	}

	return Error.New("unknown layout %q (want sci, eng or plain)", s)
}

// String is part of the pflag.Value interface.
func (f *layoutFlag) String() string {
	return string(*f)
}

// Type is part of the pflag.Value interface.
func (f *layoutFlag) Type() string {
	return "layout"
}

func (f layoutFlag) format(d *decimal.Decimal) string {
	switch f {
	case layoutEngineering:
		return d.EngineeringString()
	case layoutPlain:
		return d.PlainString()
	}

	return d.String()
}
