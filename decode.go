package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decode parses a binary tag document and returns the named root tag.
func Decode(b []byte) (*Tag, error) {
	d := &decoder{b: b}
	tag, err := d.readNamedTag()
	if err != nil {
		return nil, err
	}
	if tag.Type == TypeEnd {
		return nil, fmt.Errorf("root tag is End")
	}
	return tag, nil
}

type decoder struct {
	b   []byte
	pos int
}

func (d *decoder) need(n int) error {
	if d.pos+n > len(d.b) {
		return fmt.Errorf("payload too short at offset %d: need %d bytes", d.pos, n)
	}
	return nil
}

func (d *decoder) readNamedTag() (*Tag, error) {
	if err := d.need(1); err != nil {
		return nil, err
	}
	typ := TagType(d.b[d.pos])
	d.pos++
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown tag type %d at offset %d", typ, d.pos-1)
	}
	if typ == TypeEnd {
		return &Tag{Type: TypeEnd}, nil
	}
	name, err := d.readString()
	if err != nil {
		return nil, err
	}
	tag, err := d.readPayload(typ)
	if err != nil {
		return nil, err
	}
	tag.Name = name
	return tag, nil
}

func (d *decoder) readPayload(typ TagType) (*Tag, error) {
	switch typ {
	case TypeByte:
		if err := d.need(1); err != nil {
			return nil, err
		}
		v := int8(d.b[d.pos])
		d.pos++
		return NewByte(v), nil
	case TypeShort:
		v, err := d.readU16()
		if err != nil {
			return nil, err
		}
		return NewShort(int16(v)), nil
	case TypeInt:
		v, err := d.readU32()
		if err != nil {
			return nil, err
		}
		return NewInt(int32(v)), nil
	case TypeLong:
		v, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return NewLong(int64(v)), nil
	case TypeFloat:
		v, err := d.readU32()
		if err != nil {
			return nil, err
		}
		return NewFloat(math.Float32frombits(v)), nil
	case TypeDouble:
		v, err := d.readU64()
		if err != nil {
			return nil, err
		}
		return NewDouble(math.Float64frombits(v)), nil
	case TypeString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case TypeByteArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		if err := d.need(n); err != nil {
			return nil, err
		}
		out := make([]int8, n)
		for i := 0; i < n; i++ {
			out[i] = int8(d.b[d.pos+i])
		}
		d.pos += n
		return NewByteArray(out), nil
	case TypeIntArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		if err := d.need(4 * n); err != nil {
			return nil, err
		}
		out := make([]int32, n)
		for i := 0; i < n; i++ {
			out[i] = int32(binary.BigEndian.Uint32(d.b[d.pos+4*i:]))
		}
		d.pos += 4 * n
		return NewIntArray(out), nil
	case TypeLongArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		if err := d.need(8 * n); err != nil {
			return nil, err
		}
		out := make([]int64, n)
		for i := 0; i < n; i++ {
			out[i] = int64(binary.BigEndian.Uint64(d.b[d.pos+8*i:]))
		}
		d.pos += 8 * n
		return NewLongArray(out), nil
	case TypeList:
		if err := d.need(1); err != nil {
			return nil, err
		}
		elemType := TagType(d.b[d.pos])
		d.pos++
		if !elemType.Valid() {
			return nil, fmt.Errorf("unknown list element type %d at offset %d", elemType, d.pos-1)
		}
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		if elemType == TypeEnd && n > 0 {
			return nil, fmt.Errorf("non-empty list of End at offset %d", d.pos)
		}
		tag := NewList()
		for i := 0; i < n; i++ {
			elem, err := d.readPayload(elemType)
			if err != nil {
				return nil, err
			}
			tag.Append(elem)
		}
		return tag, nil
	case TypeCompound:
		tag := NewCompound()
		for {
			child, err := d.readNamedTag()
			if err != nil {
				return nil, err
			}
			if child.Type == TypeEnd {
				return tag, nil
			}
			tag.Append(child)
		}
	default:
		return nil, fmt.Errorf("unknown tag type %d at offset %d", typ, d.pos)
	}
}

func (d *decoder) readString() (string, error) {
	n, err := d.readU16()
	if err != nil {
		return "", err
	}
	if err := d.need(int(n)); err != nil {
		return "", err
	}
	s := string(d.b[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

func (d *decoder) readCount() (int, error) {
	v, err := d.readU32()
	if err != nil {
		return 0, err
	}
	n := int(int32(v))
	if n < 0 {
		return 0, fmt.Errorf("negative length %d at offset %d", n, d.pos-4)
	}
	return n, nil
}

func (d *decoder) readU16() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(d.b[d.pos:])
	d.pos += 2
	return v, nil
}

func (d *decoder) readU32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(d.b[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) readU64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(d.b[d.pos:])
	d.pos += 8
	return v, nil
}
