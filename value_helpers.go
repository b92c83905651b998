package nbt

// AsInt64 returns the scalar numeric payload widened to int64. Float payloads
// are truncated toward zero; non-numeric tags yield 0.
func (t *Tag) AsInt64() int64 {
	switch t.Type {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return t.Int
	case TypeFloat, TypeDouble:
		return int64(t.Float)
	default:
		return 0
	}
}

// Byte returns the payload narrowed to int8.
func (t *Tag) Byte() int8 {
	return int8(t.AsInt64())
}

// Short returns the payload narrowed to int16.
func (t *Tag) Short() int16 {
	return int16(t.AsInt64())
}

// IntValue returns the payload narrowed to int32.
func (t *Tag) IntValue() int32 {
	return int32(t.AsInt64())
}

// Float32 returns the payload as float32.
func (t *Tag) Float32() float32 {
	switch t.Type {
	case TypeFloat, TypeDouble:
		return float32(t.Float)
	default:
		return float32(t.Int)
	}
}

// Float64 returns the payload as float64.
func (t *Tag) Float64() float64 {
	switch t.Type {
	case TypeFloat, TypeDouble:
		return t.Float
	default:
		return float64(t.Int)
	}
}

// Bool reports whether the numeric payload is non-zero.
func (t *Tag) Bool() bool {
	return t.AsInt64() != 0
}
