package integer

// Bytes returns the minimal big-endian two's complement encoding of x. It
// always holds at least one byte, including the sign bit.
func (x *Int) Bytes() []byte {
	n := x.BitLen()/8 + 1
	b := make([]byte, n)

	var w uint32
	for i, copied := n-1, 4; i >= 0; i, copied = i-1, copied+1 {
		if copied == 4 {
			w = x.word((n - 1 - i) / 4)
			copied = 0
		} else {
			w >>= 8
		}
		b[i] = byte(w)
	}
	return b
}

// FromBytes returns the Int whose big-endian two's complement encoding is
// b.
func FromBytes(b []byte) (*Int, error) {
	if len(b) == 0 {
		return nil, ErrMalformed.New("zero length two's complement encoding")
	}
	m := natFromBytes(b)
	if b[0]&0x80 == 0 {
		if !m.fits() {
			return nil, ErrOverflow.New("%d bytes exceed the supported range", len(b))
		}
		return newInt(1, m), nil
	}

	// Negative: |x| = 2^(8*len(b)) - unsigned(b).
	if int64(len(b))*8 > maxBitLen+1 {
		return nil, ErrOverflow.New("%d bytes exceed the supported range", len(b))
	}
	mag := sub(shl(nat{1}, uint(8*len(b))), m)
	if !mag.fits() {
		return nil, ErrOverflow.New("%d bytes exceed the supported range", len(b))
	}
	return newInt(-1, mag), nil
}

// Hash returns a hash of the value of x, consistent with Equal.
func (x *Int) Hash() uint32 {
	var h uint32
	for _, w := range x.mag {
		h = 31*h + w
	}
	return h * uint32(x.sign)
}
