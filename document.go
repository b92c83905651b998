package nbt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression indicates the framing around a binary tag document.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZlib
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// DetectCompression inspects the leading bytes to determine framing.
// A plain document always starts with a tag type id, which never collides
// with the gzip or zlib magic.
func DetectCompression(b []byte) Compression {
	if len(b) < 2 {
		return CompressionNone
	}
	if b[0] == gzipMagic[0] && b[1] == gzipMagic[1] {
		return CompressionGzip
	}
	if b[0] == 0x78 && (uint16(b[0])<<8|uint16(b[1]))%31 == 0 {
		return CompressionZlib
	}
	return CompressionNone
}

// DecodeDocument decodes a binary tag document, transparently inflating
// gzip or zlib framing.
func DecodeDocument(b []byte) (*Tag, error) {
	switch DetectCompression(b) {
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("gzip framing: %w", err)
		}
		defer r.Close()
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("gzip payload: %w", err)
		}
		return Decode(raw)
	case CompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("zlib framing: %w", err)
		}
		defer r.Close()
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("zlib payload: %w", err)
		}
		return Decode(raw)
	default:
		return Decode(b)
	}
}

// EncodeDocument serializes a tag tree with the requested framing.
func EncodeDocument(t *Tag, c Compression) ([]byte, error) {
	raw, err := Encode(t)
	if err != nil {
		return nil, err
	}
	switch c {
	case CompressionNone:
		return raw, nil
	case CompressionGzip:
		var out bytes.Buffer
		w := gzip.NewWriter(&out)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	case CompressionZlib:
		var out bytes.Buffer
		w := zlib.NewWriter(&out)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
}
