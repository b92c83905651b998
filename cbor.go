package nbt

import (
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// ToCBOR encodes the generic projection of a tag tree as CBOR, for
// interchange with tools that do not speak the tag wire format. Unlike
// JSON, CBOR carries NaN and infinities, so every tree round-trips.
func ToCBOR(t *Tag) ([]byte, error) {
	v, err := tagToCBORAny(t)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(v)
}

// FromCBOR decodes a CBOR value into a tag tree. Maps become compounds,
// arrays become lists, integers become Int or Long depending on range.
func FromCBOR(data []byte) (*Tag, error) {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return tagFromAny(v)
}

func tagToCBORAny(t *Tag) (any, error) {
	switch t.Type {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return t.Int, nil
	case TypeFloat, TypeDouble:
		return t.Float, nil
	case TypeString:
		return t.Str, nil
	case TypeByteArray:
		out := make([]int64, len(t.ByteArray))
		for i, v := range t.ByteArray {
			out[i] = int64(v)
		}
		return out, nil
	case TypeIntArray:
		out := make([]int64, len(t.IntArray))
		for i, v := range t.IntArray {
			out[i] = int64(v)
		}
		return out, nil
	case TypeLongArray:
		return t.LongArray, nil
	case TypeList:
		out := make([]any, len(t.Children))
		for i, child := range t.Children {
			v, err := tagToCBORAny(child)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TypeCompound:
		out := make(map[string]any, len(t.Children))
		for _, child := range t.Children {
			v, err := tagToCBORAny(child)
			if err != nil {
				return nil, err
			}
			out[child.Name] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot represent %s tag as cbor", t.Type)
	}
}

func tagFromAny(v any) (*Tag, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return NewByte(1), nil
		}
		return NewByte(0), nil
	case int64:
		return intOrLong(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return NewDouble(float64(val)), nil
		}
		return intOrLong(int64(val)), nil
	case float64:
		return NewDouble(val), nil
	case float32:
		return NewFloat(val), nil
	case string:
		return NewString(val), nil
	case []byte:
		out := make([]int8, len(val))
		for i, b := range val {
			out[i] = int8(b)
		}
		return NewByteArray(out), nil
	case []any:
		tag := NewList()
		for _, elem := range val {
			child, err := tagFromAny(elem)
			if err != nil {
				return nil, err
			}
			tag.Append(child)
		}
		return tag, nil
	case map[string]any:
		tag := NewCompound()
		for key, elem := range val {
			child, err := tagFromAny(elem)
			if err != nil {
				return nil, err
			}
			child.Name = key
			tag.Append(child)
		}
		return tag, nil
	case map[any]any:
		tag := NewCompound()
		for key, elem := range val {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("compound key must be a string, got %T", key)
			}
			child, err := tagFromAny(elem)
			if err != nil {
				return nil, err
			}
			child.Name = name
			tag.Append(child)
		}
		return tag, nil
	default:
		return nil, fmt.Errorf("unsupported cbor type %T", v)
	}
}
