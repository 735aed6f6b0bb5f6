package decimal

// Cmp compares the values of x and y, ignoring scale: 2.0 and 2.00 compare
// equal.
func (x *Decimal) Cmp(y *Decimal) int {
	if x.scale == y.scale && x.compact != inflated && y.compact != inflated {
		switch {
		case x.compact < y.compact:
			return -1
		case x.compact > y.compact:
			return 1
		}
		return 0
	}

	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs != ys:
		if xs > ys {
			return 1
		}
		return -1
	case xs == 0:
		return 0
	}
	return xs * x.CmpAbs(y)
}

// CmpAbs compares |x| and |y|.
func (x *Decimal) CmpAbs(y *Decimal) int {
	switch xz, yz := x.Sign() == 0, y.Sign() == 0; {
	case xz && yz:
		return 0
	case xz:
		return -1
	case yz:
		return 1
	}

	// The position of the leading digit decides unless it is shared.
	if xa, ya := x.adjusted(), y.adjusted(); xa != ya {
		if xa < ya {
			return -1
		}
		return 1
	}

	xv, yv, _ := align(x, y)
	return xv.CmpAbs(yv)
}

// Equal reports whether x and y have the same value and scale. 2.0 and 2.00
// are not equal.
func (x *Decimal) Equal(y *Decimal) bool {
	if x == y {
		return true
	}
	if x.scale != y.scale {
		return false
	}
	if x.compact != inflated || y.compact != inflated {
		return x.compact == y.compact
	}
	return x.big.Equal(y.big)
}

// Min returns the smaller of x and y, x when they compare equal.
func (x *Decimal) Min(y *Decimal) *Decimal {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y, x when they compare equal.
func (x *Decimal) Max(y *Decimal) *Decimal {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Hash returns a hash consistent with Equal: values that differ only in
// scale usually hash differently.
func (x *Decimal) Hash() uint32 {
	if x.compact != inflated {
		v := x.compact
		if v < 0 {
			v = -v
		}
		h := uint32(v>>32)*31 + uint32(v)
		if x.compact < 0 {
			h = -h
		}
		return 31*h + uint32(x.scale)
	}
	return 31*x.big.Hash() + uint32(x.scale)
}
