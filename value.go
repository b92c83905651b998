package nbt

// Tag is one node of a tag tree. It is a flat record: Type selects which
// payload field is meaningful. Name is empty unless the tag sits in a value
// position of a compound, which stamps the entry key onto it.
type Tag struct {
	Type TagType
	Name string

	Int       int64   // Byte, Short, Int, Long
	Float     float64 // Float, Double
	Str       string  // String
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
	Children  []*Tag // Compound entries in declaration order, and List elements
}

// NewByte creates a Byte tag.
func NewByte(v int8) *Tag {
	return &Tag{Type: TypeByte, Int: int64(v)}
}

// NewShort creates a Short tag.
func NewShort(v int16) *Tag {
	return &Tag{Type: TypeShort, Int: int64(v)}
}

// NewInt creates an Int tag.
func NewInt(v int32) *Tag {
	return &Tag{Type: TypeInt, Int: int64(v)}
}

// NewLong creates a Long tag.
func NewLong(v int64) *Tag {
	return &Tag{Type: TypeLong, Int: v}
}

// NewFloat creates a Float tag.
func NewFloat(v float32) *Tag {
	return &Tag{Type: TypeFloat, Float: float64(v)}
}

// NewDouble creates a Double tag.
func NewDouble(v float64) *Tag {
	return &Tag{Type: TypeDouble, Float: v}
}

// NewString creates a String tag.
func NewString(v string) *Tag {
	return &Tag{Type: TypeString, Str: v}
}

// NewByteArray creates a ByteArray tag owning v.
func NewByteArray(v []int8) *Tag {
	return &Tag{Type: TypeByteArray, ByteArray: v}
}

// NewIntArray creates an IntArray tag owning v.
func NewIntArray(v []int32) *Tag {
	return &Tag{Type: TypeIntArray, IntArray: v}
}

// NewLongArray creates a LongArray tag owning v.
func NewLongArray(v []int64) *Tag {
	return &Tag{Type: TypeLongArray, LongArray: v}
}

// NewCompound creates an empty Compound tag.
func NewCompound() *Tag {
	return &Tag{Type: TypeCompound}
}

// NewList creates an empty List tag.
func NewList() *Tag {
	return &Tag{Type: TypeList}
}

// Append adds a child to a Compound or List tag. Compound entries keep
// declaration order; a repeated key is appended, not replaced.
func (t *Tag) Append(child *Tag) {
	t.Children = append(t.Children, child)
}

// Get returns the first child of a Compound with the given name.
func (t *Tag) Get(name string) (*Tag, bool) {
	for _, child := range t.Children {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

// Len returns the number of children or array elements.
func (t *Tag) Len() int {
	switch t.Type {
	case TypeByteArray:
		return len(t.ByteArray)
	case TypeIntArray:
		return len(t.IntArray)
	case TypeLongArray:
		return len(t.LongArray)
	default:
		return len(t.Children)
	}
}
