package control

// Type is a control block type: the fixed prefix bits of its first byte,
// the mask of the bits available for data or size, and a short name.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// HasData reports whether fields of this type carry data bytes.
func (t Type) HasData() bool {
	switch t {
	case Data, DataSize, Data1, Data2, DataSizeSize:
		return true
	}

	return false
}

func (t Type) String() string {
	if t.Abbr == "" {
		return "unknown"
	}
	return t.Abbr
}

var (
	Unknown            = Type{}
	Data               = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize           = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1              = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2              = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	DataSizeSize       = Type{0b_0000_1000, 0b_0000_0111, "dzz"}
	ContainerUnbounded = Type{0b_0000_0110, 0b_0000_0000, "cu"}
	ContainerEnd       = Type{0b_0000_0100, 0b_0000_0000, "ce"}
	Empty              = Type{0b_0000_0001, 0b_0000_0000, "e"}
	Null               = Type{0b_0000_0000, 0b_0000_0000, "n"}

	// Types lists the recognized control types. The remaining prefixes
	// (0b_0000_0010, 0b_0000_0011, 0b_0000_0101 and 0b_0000_0111) are
	// reserved.
	Types = []Type{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
		ContainerUnbounded,
		ContainerEnd,
		Empty,
		Null,
	}
)

// classes maps every first byte to the index of its type in Types plus one;
// zero marks a reserved byte.
var classes [256]uint8

func init() {
	for b := range classes {
		for i, t := range Types {
			if t.Match(byte(b)) {
				classes[b] = uint8(i + 1)
				break
			}
		}
	}
}

// Classify returns the type of the control block starting with b. Reserved
// bytes return Unknown and false.
func Classify(b byte) (t Type, ok bool) {
	i := classes[b]
	if i == 0 {
		return Unknown, false
	}

	return Types[i-1], true
}
