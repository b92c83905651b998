package nbt

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/minio/simdjson-go"
)

// FromJSON parses JSON using simdjson-go and returns an unnamed tag tree.
// Objects become compounds, arrays become lists, integers become Int or Long
// depending on range, other numbers become Double, booleans become Byte.
// JSON null has no tag representation and fails.
func FromJSON(data []byte) (*Tag, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json input is empty")
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return scalarTagFromJSON(trimmed)
	}
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	return tagFromJSONIter(typ, root)
}

func scalarTagFromJSON(data []byte) (*Tag, error) {
	dec := stdjson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err == nil || err != io.EOF {
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	switch val := v.(type) {
	case bool:
		if val {
			return NewByte(1), nil
		}
		return NewByte(0), nil
	case stdjson.Number:
		if i, err := val.Int64(); err == nil {
			return intOrLong(i), nil
		}
		if f, err := val.Float64(); err == nil {
			return NewDouble(f), nil
		}
		return nil, fmt.Errorf("invalid json number: %s", val)
	case string:
		return NewString(val), nil
	default:
		return nil, fmt.Errorf("unsupported scalar json type %T", v)
	}
}

func tagFromJSONIter(typ simdjson.Type, it *simdjson.Iter) (*Tag, error) {
	switch typ {
	case simdjson.TypeBool:
		v, err := it.Bool()
		if err != nil {
			return nil, err
		}
		if v {
			return NewByte(1), nil
		}
		return NewByte(0), nil
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return nil, err
		}
		return intOrLong(v), nil
	case simdjson.TypeUint:
		v, err := it.Uint()
		if err != nil {
			return nil, err
		}
		if v > math.MaxInt64 {
			return NewDouble(float64(v)), nil
		}
		return intOrLong(int64(v)), nil
	case simdjson.TypeFloat:
		v, err := it.Float()
		if err != nil {
			return nil, err
		}
		return NewDouble(v), nil
	case simdjson.TypeString:
		b, err := it.StringBytes()
		if err != nil {
			return nil, err
		}
		return NewString(string(b)), nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		tag := NewCompound()
		var parseErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if parseErr != nil {
				return
			}
			child, err := tagFromJSONIter(elem.Type(), &elem)
			if err != nil {
				parseErr = err
				return
			}
			child.Name = string(key)
			tag.Append(child)
		}, nil)
		if err != nil {
			return nil, err
		}
		if parseErr != nil {
			return nil, parseErr
		}
		return tag, nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		tag := NewList()
		iter := arr.Iter()
		for {
			t := iter.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem := iter
			child, err := tagFromJSONIter(t, &elem)
			if err != nil {
				return nil, err
			}
			tag.Append(child)
		}
		return tag, nil
	default:
		return nil, fmt.Errorf("unsupported json type: %v", typ)
	}
}

func intOrLong(v int64) *Tag {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return NewInt(int32(v))
	}
	return NewLong(v)
}

// ToJSON renders a tag tree as JSON. Names are object keys; unnamed roots
// render as bare values. Float and Double payloads that are NaN or infinite
// have no JSON representation and fail.
func ToJSON(t *Tag) ([]byte, error) {
	v, err := tagToAny(t)
	if err != nil {
		return nil, err
	}
	return stdjson.Marshal(v)
}

func tagToAny(t *Tag) (any, error) {
	switch t.Type {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return t.Int, nil
	case TypeFloat, TypeDouble:
		if math.IsNaN(t.Float) || math.IsInf(t.Float, 0) {
			return nil, fmt.Errorf("cannot represent %v as json", t.Float)
		}
		return t.Float, nil
	case TypeString:
		return t.Str, nil
	case TypeByteArray:
		out := make([]any, len(t.ByteArray))
		for i, v := range t.ByteArray {
			out[i] = int64(v)
		}
		return out, nil
	case TypeIntArray:
		out := make([]any, len(t.IntArray))
		for i, v := range t.IntArray {
			out[i] = int64(v)
		}
		return out, nil
	case TypeLongArray:
		out := make([]any, len(t.LongArray))
		for i, v := range t.LongArray {
			out[i] = v
		}
		return out, nil
	case TypeList:
		out := make([]any, len(t.Children))
		for i, child := range t.Children {
			v, err := tagToAny(child)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TypeCompound:
		out := orderedObject{}
		for _, child := range t.Children {
			v, err := tagToAny(child)
			if err != nil {
				return nil, err
			}
			out = append(out, orderedEntry{key: child.Name, value: v})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot represent %s tag as json", t.Type)
	}
}

// orderedObject marshals compound entries in declaration order, which
// map[string]any would not preserve.
type orderedObject []orderedEntry

type orderedEntry struct {
	key   string
	value any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := stdjson.Marshal(entry.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := stdjson.Marshal(entry.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
