package integer

import (
	"github.com/calebcase/bignum/control"
)

// zigzag returns the unsigned big-endian bytes of |x|<<1 | negative. Zero
// encodes as a single zero byte.
func (x *Int) zigzag() []byte {
	v := shl(x.mag, 1)
	if x.sign < 0 {
		v[len(v)-1] |= 1
	}
	if len(v) == 0 {
		return []byte{0}
	}

	b := make([]byte, 4*len(v))
	for i, w := range v {
		b[4*i] = byte(w >> 24)
		b[4*i+1] = byte(w >> 16)
		b[4*i+2] = byte(w >> 8)
		b[4*i+3] = byte(w)
	}
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

func fromZigzag(data []byte) (*Int, error) {
	if len(data) == 0 {
		return nil, ErrMalformed.New("zero length encoding")
	}
	m := natFromBytes(data)
	negative := len(m) > 0 && m[len(m)-1]&1 == 1
	m = shr(m, 1)
	if !m.fits() {
		return nil, ErrOverflow.New("%d bytes exceed the supported range", len(data))
	}
	if negative {
		if len(m) == 0 {
			return nil, ErrMalformed.New("negative zero")
		}
		return newInt(-1, m), nil
	}
	return newInt(1, m), nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// magnitude shifted left one bit with the sign in the low bit.
func (x *Int) MarshalBinary() (data []byte, err error) {
	return x.zigzag(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It must only be
// called on a new Int that is not yet shared.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	v, err := fromZigzag(data)
	if err != nil {
		return err
	}

	x.sign, x.mag = v.sign, v.mag

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() (text []byte, err error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It must only be called
// on a new Int that is not yet shared.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text), 10)
	if err != nil {
		return err
	}

	x.sign, x.mag = v.sign, v.mag

	return nil
}

// Encode writes x as a single data field. A nil x is written as Null.
func Encode(e *control.Encoder, x *Int) (err error) {
	defer Error.WrapP(&err)

	if x == nil {
		return e.Null()
	}

	return e.Data(x.zigzag())
}

// Decode reads the next field written by Encode. A Null field decodes to
// nil.
func Decode(d *control.Decoder) (_ *Int, err error) {
	if !d.Next() {
		if d.Err() != nil {
			return nil, Error.Wrap(d.Err())
		}

		return nil, ErrMalformed.New("unexpected end of input")
	}

	if d.Type() == control.Null {
		return nil, nil
	}
	if !d.Type().HasData() {
		return nil, ErrMalformed.New("unexpected field %s", d.Type())
	}

	data, err := d.Data()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return fromZigzag(data)
}
