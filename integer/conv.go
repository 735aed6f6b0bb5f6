package integer

import (
	"math"
	"strconv"
	"strings"
)

const (
	// MinRadix and MaxRadix bound the radixes accepted by Parse and Text.
	MinRadix = 2
	MaxRadix = 36

	// schoenhageThreshold is the magnitude length (in limbs) from which Text
	// splits the value recursively by powers of the radix.
	schoenhageThreshold = 20
)

var (
	// digitsPerWord[r] is the number of radix r digits that always fit in
	// a limb, and wordRadix[r] is r to that power.
	digitsPerWord [MaxRadix + 1]int
	wordRadix     [MaxRadix + 1]uint32

	// bitsPerDigit[r] is ceil(1024 * log2(r)).
	bitsPerDigit [MaxRadix + 1]int64

	logRadix [MaxRadix + 1]float64
)

func init() {
	for r := MinRadix; r <= MaxRadix; r++ {
		n, p := 0, uint64(1)
		for p*uint64(r) <= math.MaxUint32 {
			p *= uint64(r)
			n++
		}
		digitsPerWord[r] = n
		wordRadix[r] = uint32(p)
		bitsPerDigit[r] = int64(math.Ceil(math.Log2(float64(r)) * 1024))
		logRadix[r] = math.Log(float64(r))
	}
}

// digitValue returns the value of the digit c, or -1.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// Parse returns the Int represented by s in the given radix: an optional
// sign followed by one or more digits. Letters a-z (either case) are the
// digits 10 to 35.
func Parse(s string, radix int) (*Int, error) {
	if radix < MinRadix || radix > MaxRadix {
		return nil, ErrMalformed.New("radix %d out of range", radix)
	}
	if len(s) == 0 {
		return nil, ErrMalformed.New("zero length")
	}

	sign, digits := 1, s
	switch s[0] {
	case '-':
		sign, digits = -1, s[1:]
	case '+':
		digits = s[1:]
	}
	if len(digits) == 0 {
		return nil, ErrMalformed.New("%q has no digits", s)
	}
	for i := 0; i < len(digits); i++ {
		if d := digitValue(digits[i]); d < 0 || d >= radix {
			return nil, ErrMalformed.New("illegal digit %q in %q", digits[i], s)
		}
	}

	digits = strings.TrimLeft(digits, "0")
	if len(digits) == 0 {
		return Zero, nil
	}

	numBits := (int64(len(digits))*bitsPerDigit[radix])>>10 + 1
	if numBits > maxBitLen+1 {
		return nil, ErrOverflow.New("%d digits exceed the supported range", len(digits))
	}
	b := &buffer{w: make([]uint32, (numBits+31)>>5)}

	// The first group takes the digits left over by whole groups.
	per := digitsPerWord[radix]
	first := len(digits) % per
	if first == 0 {
		first = per
	}
	group := digits[:first]
	b.w[len(b.w)-1] = groupValue(group, radix)

	for digits = digits[first:]; len(digits) > 0; digits = digits[per:] {
		b.mulAddWord(wordRadix[radix], groupValue(digits[:per], radix))
	}

	m := b.nat()
	if !m.fits() {
		return nil, ErrOverflow.New("%q exceeds the supported range", s)
	}
	return newInt(sign, m), nil
}

// groupValue returns the value of a validated digit group that fits a limb.
func groupValue(g string, radix int) uint32 {
	var v uint32
	for i := 0; i < len(g); i++ {
		v = v*uint32(radix) + uint32(digitValue(g[i]))
	}
	return v
}

// MustParse is Parse for constants. It panics on error.
func MustParse(s string, radix int) *Int {
	x, err := Parse(s, radix)
	if err != nil {
		panic(err)
	}
	return x
}

// Text returns the representation of x in the given radix with lower-case
// letters for digits above 9. A radix outside [MinRadix, MaxRadix] falls
// back to 10.
func (x *Int) Text(radix int) string {
	if x.sign == 0 {
		return "0"
	}
	if radix < MinRadix || radix > MaxRadix {
		radix = 10
	}

	var sb strings.Builder
	if x.sign < 0 {
		sb.WriteByte('-')
	}
	if len(x.mag) <= schoenhageThreshold {
		smallText(&sb, x.mag, radix, 0)
	} else {
		recursiveText(&sb, x.Abs(), radix, 0)
	}
	return sb.String()
}

// recursiveText writes u >= 0 with Schönhage's divide and conquer: u is
// split by radix^(2^n) with n chosen so both halves are about equal.
// Output is left padded with zeros to digits.
func recursiveText(sb *strings.Builder, u *Int, radix, digits int) {
	if len(u.mag) <= schoenhageThreshold {
		smallText(sb, u.mag, radix, digits)
		return
	}

	b := u.BitLen()
	n := int(math.Round(math.Log(float64(b)*math.Ln2/logRadix[radix])/math.Ln2 - 1))
	v := radixPower(radix, n)

	qm, rm := divMod(u.mag, v.mag)
	expected := 1 << n
	recursiveText(sb, newInt(1, qm), radix, digits-expected)
	recursiveText(sb, newInt(1, rm), radix, expected)
}

// smallText writes the magnitude x by peeling off word sized digit groups.
// Output is left padded with zeros to digits.
func smallText(sb *strings.Builder, x nat, radix, digits int) {
	if len(x) == 0 {
		sb.WriteString(strings.Repeat("0", max(digits, 0)))
		return
	}

	var groups []string
	for len(x) > 0 {
		var r uint32
		x, r = divWord(x, wordRadix[radix])
		groups = append(groups, strconv.FormatUint(uint64(r), radix))
	}

	per := digitsPerWord[radix]
	top := groups[len(groups)-1]
	if pad := digits - (len(top) + per*(len(groups)-1)); pad > 0 {
		sb.WriteString(strings.Repeat("0", pad))
	}
	sb.WriteString(top)
	for i := len(groups) - 2; i >= 0; i-- {
		sb.WriteString(strings.Repeat("0", per-len(groups[i])))
		sb.WriteString(groups[i])
	}
}
