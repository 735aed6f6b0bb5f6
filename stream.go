package bignum

import (
	"encoding"
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/control"
	"github.com/calebcase/bignum/decimal"
	"github.com/calebcase/bignum/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bignum")

// Encoder writes values to an io.Writer.
type Encoder struct {
	e *control.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		e: control.NewEncoder(w),
	}
}

// WriteInt writes x. A nil x is written as Null.
func (e *Encoder) WriteInt(x *integer.Int) (err error) {
	defer Error.WrapP(&err)

	return integer.Encode(e.e, x)
}

// WriteDecimal writes d. A nil d is written as Null.
func (e *Encoder) WriteDecimal(d *decimal.Decimal) (err error) {
	defer Error.WrapP(&err)

	return decimal.Encode(e.e, d)
}

// WriteInts writes xs as a vector. A nil slice is written as Null.
func (e *Encoder) WriteInts(xs []*integer.Int) (err error) {
	defer Error.WrapP(&err)

	if xs == nil {
		return e.e.Null()
	}

	return e.e.Unbound(func(e *control.Encoder) (err error) {
		for _, x := range xs {
			err = integer.Encode(e, x)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// WriteDecimals writes ds as a vector. A nil slice is written as Null.
func (e *Encoder) WriteDecimals(ds []*decimal.Decimal) (err error) {
	defer Error.WrapP(&err)

	if ds == nil {
		return e.e.Null()
	}

	return e.e.Unbound(func(e *control.Encoder) (err error) {
		for _, d := range ds {
			err = decimal.Encode(e, d)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Decoder reads values written by an Encoder. The read methods return
// io.EOF when the input ends cleanly before the next value.
type Decoder struct {
	d *control.Decoder
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		d: control.NewDecoder(r),
	}
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.d.Consumed()
}

func (d *Decoder) next() (err error) {
	if d.d.Next() {
		return nil
	}
	if d.d.Err() != nil {
		return Error.Wrap(d.d.Err())
	}

	return io.EOF
}

// value unmarshals the current field into u. It returns false for Null.
func (d *Decoder) value(u encoding.BinaryUnmarshaler) (ok bool, err error) {
	if d.d.Type() == control.Null {
		return false, nil
	}
	if !d.d.Type().HasData() {
		return false, Error.New("unexpected field %s", d.d.Type())
	}

	data, err := d.d.Data()
	if err != nil {
		return false, Error.Wrap(err)
	}

	err = u.UnmarshalBinary(data)
	if err != nil {
		return false, Error.Wrap(err)
	}

	return true, nil
}

// vector enters the next field and calls fn for each field inside it. It
// returns false for Null.
func (d *Decoder) vector(fn func() error) (ok bool, err error) {
	err = d.next()
	if err != nil {
		return false, err
	}

	switch d.d.Type() {
	case control.Null:
		return false, nil
	case control.ContainerUnbounded:
	default:
		return false, Error.New("unexpected field %s, want a vector", d.d.Type())
	}

	err = d.d.Enter()
	if err != nil {
		return false, Error.Wrap(err)
	}

	for {
		err = d.next()
		if err != nil {
			return false, err
		}

		if d.d.Type() == control.ContainerEnd {
			return true, nil
		}

		err = fn()
		if err != nil {
			return false, err
		}
	}
}

// ReadInt reads a value written by WriteInt.
func (d *Decoder) ReadInt() (_ *integer.Int, err error) {
	err = d.next()
	if err != nil {
		return nil, err
	}

	x := new(integer.Int)

	ok, err := d.value(x)
	if !ok {
		return nil, err
	}

	return x, nil
}

// ReadDecimal reads a value written by WriteDecimal.
func (d *Decoder) ReadDecimal() (_ *decimal.Decimal, err error) {
	err = d.next()
	if err != nil {
		return nil, err
	}

	v := new(decimal.Decimal)

	ok, err := d.value(v)
	if !ok {
		return nil, err
	}

	return v, nil
}

// ReadInts reads a vector written by WriteInts.
func (d *Decoder) ReadInts() (xs []*integer.Int, err error) {
	xs = []*integer.Int{}

	ok, err := d.vector(func() error {
		x := new(integer.Int)

		ok, err := d.value(x)
		if err != nil {
			return err
		}
		if !ok {
			x = nil
		}

		xs = append(xs, x)

		return nil
	})
	if !ok {
		return nil, err
	}

	return xs, nil
}

// ReadDecimals reads a vector written by WriteDecimals.
func (d *Decoder) ReadDecimals() (ds []*decimal.Decimal, err error) {
	ds = []*decimal.Decimal{}

	ok, err := d.vector(func() error {
		v := new(decimal.Decimal)

		ok, err := d.value(v)
		if err != nil {
			return err
		}
		if !ok {
			v = nil
		}

		ds = append(ds, v)

		return nil
	})
	if !ok {
		return nil, err
	}

	return ds, nil
}

// Skip discards the next value or vector.
func (d *Decoder) Skip() (err error) {
	err = d.next()
	if err != nil {
		return err
	}

	err = d.d.Seek()
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}
