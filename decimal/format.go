package decimal

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical representation of d. Values with a
// non-negative scale and at most six leading zeros after the point print
// plainly; all others use scientific notation with one digit before the
// point:
//
//	New(123, 2)  -> 1.23
//	New(123, -1) -> 1.23E+3
//	New(123, 10) -> 1.23E-8
//
// Parse reads the result back into the same value and scale.
func (d *Decimal) String() string {
	if s := d.str.Load(); s != nil {
		return *s
	}

	var s string
	if d.scale == 0 && d.compact != inflated {
		s = strconv.FormatInt(d.compact, 10)
	} else {
		s = d.layout(true)
	}
	d.str.Store(&s)

	return s
}

// EngineeringString is String with the exponent, when present, a multiple
// of three.
func (d *Decimal) EngineeringString() string {
	return d.layout(false)
}

// PlainString returns d without an exponent.
func (d *Decimal) PlainString() string {
	if d.scale == 0 {
		return d.Unscaled().String()
	}

	var sb strings.Builder
	if d.scale < 0 {
		if d.Sign() == 0 {
			return "0"
		}
		sb.WriteString(d.Unscaled().String())
		sb.WriteString(strings.Repeat("0", -int(d.scale)))
		return sb.String()
	}

	coeff := d.Unscaled().Abs().String()
	if d.Sign() < 0 {
		sb.WriteByte('-')
	}
	writePoint(&sb, coeff, int(d.scale))
	return sb.String()
}

// writePoint writes coeff with a decimal point scale digits from the
// right, padding with zeros when coeff is shorter.
func writePoint(sb *strings.Builder, coeff string, scale int) {
	switch at := len(coeff) - scale; {
	case at > 0:
		sb.WriteString(coeff[:at])
		sb.WriteByte('.')
		sb.WriteString(coeff[at:])
	default:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -at))
		sb.WriteString(coeff)
	}
}

func (d *Decimal) layout(sci bool) string {
	coeff := d.Unscaled().Abs().String()

	var sb strings.Builder
	if d.Sign() < 0 {
		sb.WriteByte('-')
	}

	adjusted := int64(len(coeff)) - 1 - int64(d.scale)
	if d.scale >= 0 && adjusted >= -6 {
		if d.scale == 0 {
			sb.WriteString(coeff)
		} else {
			writePoint(&sb, coeff, int(d.scale))
		}
		return sb.String()
	}

	if sci {
		sb.WriteByte(coeff[0])
		if len(coeff) > 1 {
			sb.WriteByte('.')
			sb.WriteString(coeff[1:])
		}
	} else {
		sig := int(adjusted % 3)
		if sig < 0 {
			sig += 3
		}
		adjusted -= int64(sig)
		sig++

		switch {
		case d.Sign() == 0:
			switch sig {
			case 1:
				sb.WriteByte('0')
			case 2:
				sb.WriteString("0.00")
				adjusted += 3
			case 3:
				sb.WriteString("0.0")
				adjusted += 3
			}
		case sig >= len(coeff):
			sb.WriteString(coeff)
			sb.WriteString(strings.Repeat("0", sig-len(coeff)))
		default:
			sb.WriteString(coeff[:sig])
			sb.WriteByte('.')
			sb.WriteString(coeff[sig:])
		}
	}

	writeExponent(&sb, adjusted)
	return sb.String()
}

func writeExponent(sb *strings.Builder, exp int64) {
	if exp == 0 {
		return
	}
	sb.WriteByte('E')
	if exp > 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(strconv.FormatInt(exp, 10))
}

// sciString returns d in scientific notation regardless of its exponent.
func (d *Decimal) sciString() string {
	coeff := d.Unscaled().Abs().String()

	var sb strings.Builder
	if d.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteByte(coeff[0])
	if len(coeff) > 1 {
		sb.WriteByte('.')
		sb.WriteString(coeff[1:])
	}

	exp := int64(len(coeff)) - 1 - int64(d.scale)
	sb.WriteByte('e')
	if exp >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(strconv.FormatInt(exp, 10))
	return sb.String()
}

// Format implements fmt.Formatter. The verbs are:
//
//	%s, %v  String
//	%f      PlainString; with a precision, rounded HalfEven to that many
//	        fraction digits
//	%e      scientific notation; with a precision, rounded HalfEven to
//	        that many fraction digits
//
// The '+' flag forces a sign, '-' pads on the right and width pads with
// spaces.
func (d *Decimal) Format(s fmt.State, verb rune) {
	if d == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	var text string
	switch verb {
	case 's', 'v':
		text = d.String()
	case 'f', 'F':
		v := d
		if prec, ok := s.Precision(); ok {
			r, err := d.SetScale(int32(prec), HalfEven)
			if err != nil {
				fmt.Fprintf(s, "%%!%c(%v)", verb, err)
				return
			}
			v = r
		}
		text = v.PlainString()
	case 'e', 'E':
		v := d
		if prec, ok := s.Precision(); ok {
			r, err := d.round(Context{Precision: prec + 1, Rounding: HalfEven})
			if err != nil {
				fmt.Fprintf(s, "%%!%c(%v)", verb, err)
				return
			}
			if pad := prec + 1 - r.Precision(); pad > 0 && r.Sign() != 0 {
				r, _ = r.SetScale(r.scale+int32(pad), Unnecessary)
			}
			v = r
		}
		text = v.sciString()
		if verb == 'E' {
			text = strings.ToUpper(text)
		}
	default:
		fmt.Fprintf(s, "%%!%c(*decimal.Decimal=%s)", verb, d.String())
		return
	}

	if s.Flag('+') && d.Sign() >= 0 {
		text = "+" + text
	}

	if width, ok := s.Width(); ok && width > len(text) {
		pad := strings.Repeat(" ", width-len(text))
		if s.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}

	fmt.Fprint(s, text)
}
