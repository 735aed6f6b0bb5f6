package decimal

import (
	"strconv"
	"strings"

	"github.com/calebcase/bignum/integer"
)

// Parse reads a decimal of the form
//
//	[+-] digits [. digits] [(e|E) [+-] digits]
//
// where either the integer or the fraction digits may be omitted but not
// both. The scale is the number of fraction digits minus the exponent, so
// "1.50" has scale 2 and "15E+2" has scale -2.
func Parse(s string) (*Decimal, error) {
	var (
		i        int
		negative bool
	)
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	var (
		digits   strings.Builder
		fraction int64
		point    bool
	)
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits.WriteByte(c)
			if point {
				fraction++
			}
			continue
		case c == '.' && !point:
			point = true
			continue
		}
		break
	}
	if digits.Len() == 0 {
		return nil, ErrMalformed.New("%q: no digits", s)
	}

	scale := fraction
	if i < len(s) {
		if s[i] != 'e' && s[i] != 'E' {
			return nil, ErrMalformed.New("%q: unexpected %q at offset %d", s, s[i], i)
		}
		exp, err := parseExponent(s, s[i+1:])
		if err != nil {
			return nil, err
		}
		scale -= exp
	}

	unscaled, err := parseDigits(digits.String())
	if err != nil {
		return nil, err
	}
	if negative {
		unscaled = unscaled.Neg()
	}

	if scale < minScale || scale > maxScale {
		return nil, ErrOverflow.New("%q: scale %d out of range", s, scale)
	}
	return NewFromInt(unscaled, int32(scale)), nil
}

// parseExponent reads the signed exponent following an 'e' in s. Values
// beyond what a scale can absorb are an overflow.
func parseExponent(s, exp string) (int64, error) {
	digits := strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
	if sign := len(exp) - len(strings.TrimLeft(exp, "+-")); sign > 1 {
		return 0, ErrMalformed.New("%q: bad exponent sign", s)
	}
	if len(exp) == 0 || exp == "+" || exp == "-" {
		return 0, ErrMalformed.New("%q: missing exponent digits", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, ErrMalformed.New("%q: bad exponent digit %q", s, digits[i])
		}
	}
	if len(digits) > 11 {
		return 0, ErrOverflow.New("%q: exponent out of range", s)
	}
	if digits == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, ErrMalformed.New("%q: bad exponent", s)
	}
	if exp[0] == '-' {
		v = -v
	}
	return v, nil
}

func parseDigits(digits string) (*integer.Int, error) {
	if len(digits) <= 18 {
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, ErrMalformed.New("%q: %v", digits, err)
		}
		return integer.NewInt(v), nil
	}

	v, err := integer.Parse(digits, 10)
	if err != nil {
		if integer.ErrOverflow.Has(err) {
			return nil, ErrOverflow.Wrap(err)
		}
		return nil, ErrMalformed.Wrap(err)
	}
	return v, nil
}

// ParseContext parses s and rounds the result to mc.
func ParseContext(s string, mc Context) (*Decimal, error) {
	if err := mc.validate(); err != nil {
		return nil, err
	}
	d, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return d.round(mc)
}

// MustParse is like Parse but panics on error. It simplifies the
// initialization of constants.
func MustParse(s string) *Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
