package decimal

import (
	"fmt"
	"strconv"
	"strings"
)

// Context bounds the number of significant digits of a result and selects
// how results are rounded to fit. A Precision of 0 means unlimited: results
// are exact and Rounding is not used.
type Context struct {
	Precision int
	Rounding  RoundingMode
}

// Common contexts.
var (
	// Unlimited performs exact arithmetic.
	Unlimited = Context{Precision: 0, Rounding: HalfUp}

	// Decimal32 matches the IEEE 754-2008 decimal32 format: 7 digits,
	// HalfEven.
	Decimal32 = Context{Precision: 7, Rounding: HalfEven}

	// Decimal64 matches the IEEE 754-2008 decimal64 format: 16 digits,
	// HalfEven.
	Decimal64 = Context{Precision: 16, Rounding: HalfEven}

	// Decimal128 matches the IEEE 754-2008 decimal128 format: 34 digits,
	// HalfEven.
	Decimal128 = Context{Precision: 34, Rounding: HalfEven}
)

// NewContext returns a validated context.
func NewContext(precision int, rounding RoundingMode) (Context, error) {
	mc := Context{Precision: precision, Rounding: rounding}
	if err := mc.validate(); err != nil {
		return Context{}, err
	}
	return mc, nil
}

func (mc Context) validate() error {
	if mc.Precision < 0 {
		return ErrMalformed.New("negative precision %d", mc.Precision)
	}
	if !mc.Rounding.Valid() {
		return ErrMalformed.New("invalid rounding mode %d", mc.Rounding)
	}
	return nil
}

// String returns the context as "precision=7 roundingMode=HALF_EVEN".
func (mc Context) String() string {
	return fmt.Sprintf("precision=%d roundingMode=%s", mc.Precision, mc.Rounding)
}

// ParseContextString parses the form produced by Context.String.
func ParseContextString(s string) (Context, error) {
	rest, ok := strings.CutPrefix(s, "precision=")
	if !ok {
		return Context{}, ErrMalformed.New("context %q: missing precision", s)
	}

	digits, mode, ok := strings.Cut(rest, " roundingMode=")
	if !ok {
		return Context{}, ErrMalformed.New("context %q: missing rounding mode", s)
	}

	precision, err := strconv.Atoi(digits)
	if err != nil {
		return Context{}, ErrMalformed.New("context %q: bad precision", s)
	}

	rounding, err := ParseRoundingMode(mode)
	if err != nil {
		return Context{}, err
	}

	return NewContext(precision, rounding)
}
