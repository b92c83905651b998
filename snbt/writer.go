package snbt

import (
	"math"
	"strconv"
	"strings"

	nbt "github.com/tagforge/nbt-go"
)

// Marshal renders a tag tree in stringified notation. The output parses
// back into an equal tree: numerals carry their width suffix, strings are
// double-quoted with minimal escaping, keys are bare where the unquoted
// alphabet allows.
func Marshal(t *nbt.Tag) string {
	var sb strings.Builder
	writeTag(&sb, t)
	return sb.String()
}

func writeTag(sb *strings.Builder, t *nbt.Tag) {
	switch t.Type {
	case nbt.TypeByte:
		sb.WriteString(strconv.FormatInt(t.Int, 10))
		sb.WriteByte('b')
	case nbt.TypeShort:
		sb.WriteString(strconv.FormatInt(t.Int, 10))
		sb.WriteByte('s')
	case nbt.TypeInt:
		sb.WriteString(strconv.FormatInt(t.Int, 10))
	case nbt.TypeLong:
		sb.WriteString(strconv.FormatInt(t.Int, 10))
		sb.WriteByte('l')
	case nbt.TypeFloat:
		writeFloat(sb, t.Float, 32)
	case nbt.TypeDouble:
		writeFloat(sb, t.Float, 64)
	case nbt.TypeString:
		writeQuoted(sb, t.Str)
	case nbt.TypeByteArray:
		sb.WriteString("[B;")
		for i, v := range t.ByteArray {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
			sb.WriteByte('b')
		}
		sb.WriteByte(']')
	case nbt.TypeIntArray:
		sb.WriteString("[I;")
		for i, v := range t.IntArray {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
		sb.WriteByte(']')
	case nbt.TypeLongArray:
		sb.WriteString("[L;")
		for i, v := range t.LongArray {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(v, 10))
			sb.WriteByte('l')
		}
		sb.WriteByte(']')
	case nbt.TypeList:
		sb.WriteByte('[')
		for i, child := range t.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeTag(sb, child)
		}
		sb.WriteByte(']')
	case nbt.TypeCompound:
		sb.WriteByte('{')
		for i, child := range t.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeKey(sb, child.Name)
			sb.WriteByte(':')
			writeTag(sb, child)
		}
		sb.WriteByte('}')
	}
}

// writeFloat emits the suffixed numeral, or the special tokens the literal
// classifier recognizes for values strconv cannot round-trip.
func writeFloat(sb *strings.Builder, v float64, bits int) {
	suffix := byte('d')
	if bits == 32 {
		suffix = 'f'
	}
	switch {
	case math.IsNaN(v):
		sb.WriteString("NaN")
		sb.WriteByte(suffix)
	case math.IsInf(v, 1):
		sb.WriteString("Infinity")
		sb.WriteByte(suffix)
	case math.IsInf(v, -1):
		sb.WriteString("-Infinity")
		sb.WriteByte(suffix)
	default:
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
		sb.WriteByte(suffix)
	}
}

func writeKey(sb *strings.Builder, key string) {
	if key == "" {
		writeQuoted(sb, key)
		return
	}
	for i := 0; i < len(key); i++ {
		if !isUnquotedChar(key[i]) {
			writeQuoted(sb, key)
			return
		}
	}
	sb.WriteString(key)
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == escapeChar {
			sb.WriteByte(escapeChar)
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
}
