package nbt

// TagType identifies the payload type of a tag, using the wire-format ids.
type TagType uint8

const (
	TypeEnd TagType = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeByteArray
	TypeString
	TypeList
	TypeCompound
	TypeIntArray
	TypeLongArray
)

var typeNames = [...]string{
	TypeEnd:       "End",
	TypeByte:      "Byte",
	TypeShort:     "Short",
	TypeInt:       "Int",
	TypeLong:      "Long",
	TypeFloat:     "Float",
	TypeDouble:    "Double",
	TypeByteArray: "ByteArray",
	TypeString:    "String",
	TypeList:      "List",
	TypeCompound:  "Compound",
	TypeIntArray:  "IntArray",
	TypeLongArray: "LongArray",
}

func (t TagType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Valid reports whether t is a known wire-format id.
func (t TagType) Valid() bool {
	return t <= TypeLongArray
}

// IsNumeric reports whether t carries a scalar numeric payload.
func (t TagType) IsNumeric() bool {
	return t >= TypeByte && t <= TypeDouble
}

// IsContainer reports whether t holds child tags.
func (t TagType) IsContainer() bool {
	return t == TypeList || t == TypeCompound
}
