package decimal

// RoundingMode selects how a result that cannot be represented exactly is
// rounded to the digits kept.
type RoundingMode uint8

// The rounding modes. The examples show the result of rounding to an
// integer.
//
//	input      Up  Down  Ceiling  Floor  HalfUp  HalfDown  HalfEven  Unnecessary
//	  5.5       6     5        6      5       6         5         6  error
//	  2.5       3     2        3      2       3         2         2  error
//	  1.6       2     1        2      1       2         2         2  error
//	  1.1       2     1        2      1       1         1         1  error
//	  1.0       1     1        1      1       1         1         1  1
//	 -1.0      -1    -1       -1     -1      -1        -1        -1  -1
//	 -1.1      -2    -1       -1     -2      -1        -1        -1  error
//	 -1.6      -2    -1       -1     -2      -2        -2        -2  error
//	 -2.5      -3    -2       -2     -3      -3        -2        -2  error
//	 -5.5      -6    -5       -5     -6      -6        -5        -6  error
const (
	// Up rounds away from zero.
	Up RoundingMode = iota
	// Down rounds toward zero.
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, ties toward zero.
	HalfDown
	// HalfEven rounds to the nearest neighbor, ties to the even neighbor.
	HalfEven
	// Unnecessary asserts that no rounding is needed; an inexact result
	// is an ErrInexact error.
	Unnecessary
)

var roundingNames = [...]string{
	Up:          "UP",
	Down:        "DOWN",
	Ceiling:     "CEILING",
	Floor:       "FLOOR",
	HalfUp:      "HALF_UP",
	HalfDown:    "HALF_DOWN",
	HalfEven:    "HALF_EVEN",
	Unnecessary: "UNNECESSARY",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return "UNKNOWN"
}

// Valid reports whether m is one of the defined rounding modes.
func (m RoundingMode) Valid() bool {
	return m <= Unnecessary
}

// ParseRoundingMode returns the mode named s, as printed by String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range roundingNames {
		if name == s {
			return RoundingMode(m), nil
		}
	}
	return 0, ErrMalformed.New("unknown rounding mode %q", s)
}

// RoundingModeFromLegacy converts the integer rounding constants used by
// older decimal APIs (0 = UP through 7 = UNNECESSARY) to a RoundingMode.
func RoundingModeFromLegacy(v int) (RoundingMode, error) {
	if v < int(Up) || v > int(Unnecessary) {
		return 0, ErrMalformed.New("invalid legacy rounding mode %d", v)
	}
	return RoundingMode(v), nil
}

// needIncrement reports whether a truncated quotient must move one unit
// away from zero. sign is the sign of the exact result, half is the
// comparison of the discarded fraction with one half and odd reports
// whether the truncated quotient is odd. It is only called for inexact
// results.
func needIncrement(mode RoundingMode, sign, half int, odd bool) (bool, error) {
	switch mode {
	case Unnecessary:
		return false, ErrInexact.New("rounding necessary")
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return sign > 0, nil
	case Floor:
		return sign < 0, nil
	}

	switch {
	case half < 0:
		return false, nil
	case half > 0:
		return true, nil
	}

	switch mode {
	case HalfUp:
		return true, nil
	case HalfDown:
		return false, nil
	case HalfEven:
		return odd, nil
	}
	return false, ErrMalformed.New("invalid rounding mode %d", mode)
}
