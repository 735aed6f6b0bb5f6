package integer

import (
	"math/bits"
)

const (
	// burnikelZieglerThreshold is the divisor length (in limbs) from which
	// Burnikel-Ziegler division is used.
	burnikelZieglerThreshold = 80

	// burnikelZieglerOffset is the minimum amount by which the dividend
	// must be longer than the divisor for Burnikel-Ziegler division.
	burnikelZieglerOffset = 40
)

// divMod returns u / v and u % v for v != 0.
func divMod(u, v nat) (q, r nat) {
	if len(v) < burnikelZieglerThreshold || len(u)-len(v) < burnikelZieglerOffset {
		return divKnuth(u, v)
	}
	return divBurnikelZiegler(u, v)
}

// divKnuth divides using Knuth's algorithm D (TAOCP vol. 2, 4.3.1).
func divKnuth(u, v nat) (q, r nat) {
	switch c := u.cmp(v); {
	case c < 0:
		return nil, u
	case c == 0:
		return nat{1}, nil
	}
	if len(v) == 1 {
		q, rw := divWord(u, v[0])
		return q, natFromUint64(uint64(rw))
	}

	// Normalize so the top bit of the divisor is set.
	s := uint(bits.LeadingZeros32(v[0]))
	vn := shl(v, s)
	un := newBuffer(shl(u, s), 1)
	if len(un.w) == len(u)+2 {
		// shl grew u by a limb; drop the spare leading zero.
		un.w = un.w[1:]
	}

	n := len(vn)
	m := len(un.w) - n
	q = make(nat, m)
	vh, vl := uint64(vn[0]), uint64(vn[1])

	for j := 0; j < m; j++ {
		num := uint64(un.w[j])<<32 | uint64(un.w[j+1])

		var qhat, rhat uint64
		if uint64(un.w[j]) == vh {
			qhat = 0xffffffff
			rhat = num - qhat*vh
		} else {
			qhat = num / vh
			rhat = num % vh
		}
		for rhat < 1<<32 && qhat*vl > rhat<<32|uint64(un.w[j+2]) {
			qhat--
			rhat += vh
		}

		if un.mulSub(j, vn, uint32(qhat)) != 0 {
			un.addBack(j, vn)
			qhat--
		}
		q[j] = uint32(qhat)
	}

	r = shr(nat(un.w[m:]).norm(), s)
	return q.norm(), append(nat(nil), r...)
}

// QuoRem returns the truncated quotient x/y and the remainder x - q*y. The
// remainder has the sign of x.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	if y.sign == 0 {
		return nil, nil, ErrUndefined.New("division by zero")
	}
	qm, rm := divMod(x.mag, y.mag)
	return newInt(x.sign*y.sign, qm), newInt(x.sign, rm), nil
}

// Quo returns the quotient x/y truncated toward zero.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of the truncated division x/y.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Mod returns x mod m in [0, m). m must be positive.
func (x *Int) Mod(m *Int) (*Int, error) {
	if m.sign <= 0 {
		return nil, ErrUndefined.New("modulus %s not positive", m)
	}
	r, err := x.Rem(m)
	if err != nil {
		return nil, err
	}
	if r.sign < 0 {
		return r.Add(m), nil
	}
	return r, nil
}

// mustMod is Mod for callers that have already checked m > 0.
func (x *Int) mustMod(m *Int) *Int {
	_, rm := divMod(x.mag, m.mag)
	r := newInt(x.sign, rm)
	if r.sign < 0 {
		return r.Add(m)
	}
	return r
}
