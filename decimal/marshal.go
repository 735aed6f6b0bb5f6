package decimal

import (
	"github.com/calebcase/bignum/control"
	"github.com/calebcase/bignum/integer"
)

// Scale size codes held in the low two bits of the last byte.
const (
	scaleNone  = 0b00
	scaleSmall = 0b01
	scaleMid   = 0b10
	scaleWide  = 0b11
)

// scaleBytes maps a scale size code to the length of the scale trailer.
var scaleBytes = [...]int{
	scaleNone:  1,
	scaleSmall: 1,
	scaleMid:   3,
	scaleWide:  5,
}

// scaleTrailer returns the trailer recording scale.
func scaleTrailer(scale int32) []byte {
	if scale == 0 {
		return []byte{scaleNone}
	}

	zz := uint64(int64(scale)<<1 ^ int64(scale)>>63)

	var code uint64
	switch {
	case zz < 1<<6:
		code = scaleSmall
	case zz < 1<<22:
		code = scaleMid
	default:
		code = scaleWide
	}

	v := zz<<2 | code
	b := make([]byte, scaleBytes[code])
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// marshal returns the zigzag unscaled value followed by the scale trailer.
func (d *Decimal) marshal() []byte {
	value, _ := d.Unscaled().MarshalBinary()
	return append(value, scaleTrailer(d.scale)...)
}

func unmarshal(data []byte) (*Decimal, error) {
	if len(data) == 0 {
		return nil, ErrMalformed.New("zero length encoding")
	}

	code := data[len(data)-1] & 0b11
	if code == scaleNone && data[len(data)-1] != 0 {
		return nil, ErrMalformed.New("stray bits in empty scale")
	}
	n := scaleBytes[code]
	if len(data) < n+1 {
		return nil, ErrMalformed.New("%d bytes too short for a %d byte scale", len(data), n)
	}

	var zz uint64
	for _, b := range data[len(data)-n:] {
		zz = zz<<8 | uint64(b)
	}
	zz >>= 2
	if zz > 1<<32-1 {
		return nil, ErrOverflow.New("scale out of range")
	}
	scale := int32(zz>>1) ^ -int32(zz&1)

	unscaled := new(integer.Int)
	if err := unscaled.UnmarshalBinary(data[:len(data)-n]); err != nil {
		if integer.ErrOverflow.Has(err) {
			return nil, ErrOverflow.Wrap(err)
		}
		return nil, ErrMalformed.Wrap(err)
	}

	return NewFromInt(unscaled, scale), nil
}

// reset replaces the value of a Decimal that is not yet shared.
func (d *Decimal) reset(v *Decimal) {
	d.compact, d.big, d.scale = v.compact, v.big, v.scale
	d.prec.Store(0)
	d.str.Store(nil)
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// unscaled value shifted left one bit with the sign in the low bit,
// followed by the scale trailer described in the package documentation.
func (d *Decimal) MarshalBinary() (data []byte, err error) {
	return d.marshal(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It must only be
// called on a new Decimal that is not yet shared.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	v, err := unmarshal(data)
	if err != nil {
		return err
	}

	d.reset(v)

	return nil
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (d *Decimal) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It must only be called
// on a new Decimal that is not yet shared.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	d.reset(v)

	return nil
}

// Encode writes d as a single data field. A nil d is written as Null.
func Encode(e *control.Encoder, d *Decimal) (err error) {
	defer Error.WrapP(&err)

	if d == nil {
		return e.Null()
	}

	return e.Data(d.marshal())
}

// Decode reads the next field written by Encode. A Null field decodes to
// nil.
func Decode(dec *control.Decoder) (_ *Decimal, err error) {
	if !dec.Next() {
		if dec.Err() != nil {
			return nil, Error.Wrap(dec.Err())
		}

		return nil, ErrMalformed.New("unexpected end of input")
	}

	if dec.Type() == control.Null {
		return nil, nil
	}
	if !dec.Type().HasData() {
		return nil, ErrMalformed.New("unexpected field %s", dec.Type())
	}

	data, err := dec.Data()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return unmarshal(data)
}
