package nbt

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Encode serializes a tag tree into the binary wire format. The root is
// written as a named tag.
func Encode(t *Tag) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tag")
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := encodeNamedTag(buf, t); err != nil {
		return nil, err
	}
	out := append([]byte{}, buf.Bytes()...)
	return out, nil
}

func encodeNamedTag(buf *bytebufferpool.ByteBuffer, t *Tag) error {
	if !t.Type.Valid() || t.Type == TypeEnd {
		return fmt.Errorf("cannot encode tag of type %s", t.Type)
	}
	buf.WriteByte(byte(t.Type))
	if err := writeString(buf, t.Name); err != nil {
		return err
	}
	return encodePayload(buf, t)
}

func encodePayload(buf *bytebufferpool.ByteBuffer, t *Tag) error {
	var tmp [8]byte
	switch t.Type {
	case TypeByte:
		buf.WriteByte(byte(int8(t.Int)))
		return nil
	case TypeShort:
		binary.BigEndian.PutUint16(tmp[:2], uint16(int16(t.Int)))
		buf.Write(tmp[:2])
		return nil
	case TypeInt:
		binary.BigEndian.PutUint32(tmp[:4], uint32(int32(t.Int)))
		buf.Write(tmp[:4])
		return nil
	case TypeLong:
		binary.BigEndian.PutUint64(tmp[:], uint64(t.Int))
		buf.Write(tmp[:])
		return nil
	case TypeFloat:
		binary.BigEndian.PutUint32(tmp[:4], math.Float32bits(float32(t.Float)))
		buf.Write(tmp[:4])
		return nil
	case TypeDouble:
		binary.BigEndian.PutUint64(tmp[:], math.Float64bits(t.Float))
		buf.Write(tmp[:])
		return nil
	case TypeString:
		return writeString(buf, t.Str)
	case TypeByteArray:
		binary.BigEndian.PutUint32(tmp[:4], uint32(len(t.ByteArray)))
		buf.Write(tmp[:4])
		for _, v := range t.ByteArray {
			buf.WriteByte(byte(v))
		}
		return nil
	case TypeIntArray:
		binary.BigEndian.PutUint32(tmp[:4], uint32(len(t.IntArray)))
		buf.Write(tmp[:4])
		for _, v := range t.IntArray {
			binary.BigEndian.PutUint32(tmp[:4], uint32(v))
			buf.Write(tmp[:4])
		}
		return nil
	case TypeLongArray:
		binary.BigEndian.PutUint32(tmp[:4], uint32(len(t.LongArray)))
		buf.Write(tmp[:4])
		for _, v := range t.LongArray {
			binary.BigEndian.PutUint64(tmp[:], uint64(v))
			buf.Write(tmp[:])
		}
		return nil
	case TypeList:
		// The wire format requires one element type per list. The text
		// front end is lenient about this; the mismatch surfaces here.
		elemType := TypeEnd
		if len(t.Children) > 0 {
			elemType = t.Children[0].Type
		}
		for _, child := range t.Children {
			if child.Type != elemType {
				return fmt.Errorf("mixed list element types: %s and %s", elemType, child.Type)
			}
		}
		buf.WriteByte(byte(elemType))
		binary.BigEndian.PutUint32(tmp[:4], uint32(len(t.Children)))
		buf.Write(tmp[:4])
		for _, child := range t.Children {
			if err := encodePayload(buf, child); err != nil {
				return err
			}
		}
		return nil
	case TypeCompound:
		for _, child := range t.Children {
			if err := encodeNamedTag(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(byte(TypeEnd))
		return nil
	default:
		return fmt.Errorf("cannot encode tag of type %s", t.Type)
	}
}

func writeString(buf *bytebufferpool.ByteBuffer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string too long: %d bytes", len(s))
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
	buf.Write(tmp[:])
	buf.WriteString(s)
	return nil
}
