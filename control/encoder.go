package control

import (
	"io"
)

// Encoder writes control blocks to an io.Writer.
type Encoder struct {
	w     io.Writer
	depth int
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

func (e *Encoder) write(b ...byte) (err error) {
	_, err = e.w.Write(b)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Data writes data using the shortest block that can carry it. Empty data
// must be written with Empty.
func (e *Encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write(Data.Prefix | data[0])
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write(Data1.Prefix|data[0], data[1])
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write(Data2.Prefix|data[0], data[1], data[2])
	case size <= 64:
		err = e.write(DataSize.Prefix | byte(size-1))
		if err != nil {
			return err
		}

		return e.write(data...)
	}

	sb := sizeBytes(uint64(size - 1))
	if len(sb)-1 > int(DataSizeSize.Mask) {
		return Error.New("unimplemented: size=%d", size)
	}

	err = e.write(DataSizeSize.Prefix | byte(len(sb)-1))
	if err != nil {
		return err
	}

	err = e.write(sb...)
	if err != nil {
		return err
	}

	return e.write(data...)
}

// Unbound writes an unbounded container holding the fields written by fn.
func (e *Encoder) Unbound(fn func(*Encoder) error) (err error) {
	err = e.write(ContainerUnbounded.Prefix)
	if err != nil {
		return err
	}

	e.depth++
	err = fn(e)
	e.depth--
	if err != nil {
		return err
	}

	return e.write(ContainerEnd.Prefix)
}

// Empty writes an Empty block.
func (e *Encoder) Empty() (err error) {
	return e.write(Empty.Prefix)
}

// Null writes a Null block.
func (e *Encoder) Null() (err error) {
	return e.write(Null.Prefix)
}

// Depth returns the number of open containers.
func (e *Encoder) Depth() int {
	return e.depth
}
