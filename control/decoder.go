package control

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks from an io.Reader one field at a time.
type Decoder struct {
	r io.Reader

	consumed uint64
	depth    int

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

func (d *Decoder) read(b []byte) (err error) {
	_, err = io.ReadFull(d.r, b)
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(len(b))

	return nil
}

// seek discards size bytes of input.
func (d *Decoder) seek(size uint64) (err error) {
	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Seek moves the reading position to the end of the current field. An
// unbounded container that was not entered is skipped as a whole.
func (d *Decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.finished || d.t == Unknown {
		return nil
	}

	switch d.t {
	case DataSize, Data1, Data2, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		if d.t == Data1 || d.t == Data2 {
			// The first byte was the control block.
			size--
		}

		err = d.seek(size)
		if err != nil {
			return err
		}

		d.finished = true
	case ContainerUnbounded:
		// Read fields until the matching ContainerEnd is found. Depth
		// will be one less than our current.
		target := d.depth - 1
		d.finished = true

		for d.Next() {
			if d.t == ContainerEnd && d.depth == target {
				return nil
			}
		}
		if d.err != nil {
			return d.err
		}

		return Error.New("unterminated container")
	default:
		d.finished = true
	}

	return nil
}

// Next advances to the next field. It returns false at the end of input or
// on error; check Err to tell them apart.
func (d *Decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		if err := d.Seek(); err != nil {
			return false
		}
	}

	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	err := d.read(d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			if d.depth != 0 {
				d.err = Error.New("unexpected end of input at depth %d", d.depth)
			}

			return false
		}

		d.err = err

		return false
	}

	t, ok := Classify(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	case ContainerUnbounded:
		d.depth++
	case ContainerEnd:
		if d.depth == 0 {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		d.depth--
		d.finished = true
	}

	d.t = t

	return true
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Type returns the type of the current field.
func (d *Decoder) Type() Type {
	return d.t
}

// Depth returns the number of containers the current field is nested in.
// An unbounded container counts itself.
func (d *Decoder) Depth() int {
	return d.depth
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

// Enter descends into the current unbounded container so the following
// calls to Next return its fields.
func (d *Decoder) Enter() (err error) {
	if d.t != ContainerUnbounded {
		d.err = oops.Trace(ErrInvalidOperation)

		return d.err
	}

	d.finished = true

	return nil
}

// Size returns the number of data bytes in the current field.
func (d *Decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sb := make([]byte, int(d.value[0]&d.t.Mask)+1)

		err = d.read(sb)
		if err != nil {
			return 0, err
		}

		size, ok := sizeValue(sb)
		if !ok || size == 1<<64-1 {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size + 1
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads the data bytes of the current field. If the field does not
// contain data it returns nil and ErrInvalidOperation.
func (d *Decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if d.data != nil {
		return d.data, nil
	}

	if !d.t.HasData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.finished && d.t != Data {
		return nil, Error.New("field already consumed")
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		d.data = make([]byte, size)
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
		if err != nil {
			return nil, err
		}
	default:
		d.data = make([]byte, size)

		err = d.read(d.data)
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}
