package nbt

import (
	"bytes"
	"reflect"
	"testing"
)

func sampleTree() *Tag {
	root := NewCompound()
	root.Name = "root"

	add := func(name string, child *Tag) {
		child.Name = name
		root.Append(child)
	}
	add("byte", NewByte(-5))
	add("short", NewShort(12345))
	add("int", NewInt(-123456789))
	add("long", NewLong(1<<40))
	add("float", NewFloat(1.5))
	add("double", NewDouble(-2.25))
	add("string", NewString("héllo"))
	add("bytes", NewByteArray([]int8{-1, 0, 1}))
	add("ints", NewIntArray([]int32{1 << 20, -7}))
	add("longs", NewLongArray([]int64{1 << 50}))

	list := NewList()
	list.Append(NewString("a"))
	list.Append(NewString("b"))
	add("list", list)

	inner := NewCompound()
	leaf := NewInt(9)
	leaf.Name = "leaf"
	inner.Append(leaf)
	add("inner", inner)

	return root
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleTree()
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant %#v\ngot  %#v", want, got)
	}
}

func TestEncodeRejectsMixedList(t *testing.T) {
	list := NewList()
	list.Append(NewInt(1))
	list.Append(NewString("a"))
	if _, err := Encode(list); err == nil {
		t.Fatal("expected mixed list to fail")
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := [][]byte{
		{},                         // no tag id
		{13},                       // unknown type
		{0},                        // End root
		{byte(TypeInt), 0, 0},      // truncated name
		{byte(TypeInt), 0, 0, 1},   // truncated payload
		{byte(TypeCompound), 0, 0}, // compound without End
		{byte(TypeList), 0, 0, 13, 0, 0, 0, 0},       // unknown element type
		{byte(TypeList), 0, 0, 0, 0, 0, 0, 1},        // non-empty End list
		{byte(TypeByteArray), 0, 0, 255, 0, 0, 0},    // negative length
		{byte(TypeIntArray), 0, 0, 0, 0, 0, 2, 0, 0}, // short array payload
	}
	for _, data := range cases {
		if _, err := Decode(data); err == nil {
			t.Fatalf("expected decode of % x to fail", data)
		}
	}
}

func TestDetectCompression(t *testing.T) {
	plain, err := Encode(sampleTree())
	if err != nil {
		t.Fatal(err)
	}
	if got := DetectCompression(plain); got != CompressionNone {
		t.Fatalf("plain detected as %d", got)
	}
	gz, err := EncodeDocument(sampleTree(), CompressionGzip)
	if err != nil {
		t.Fatal(err)
	}
	if got := DetectCompression(gz); got != CompressionGzip {
		t.Fatalf("gzip detected as %d", got)
	}
	zl, err := EncodeDocument(sampleTree(), CompressionZlib)
	if err != nil {
		t.Fatal(err)
	}
	if got := DetectCompression(zl); got != CompressionZlib {
		t.Fatalf("zlib detected as %d", got)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	want := sampleTree()
	for _, framing := range []Compression{CompressionNone, CompressionGzip, CompressionZlib} {
		doc, err := EncodeDocument(want, framing)
		if err != nil {
			t.Fatalf("framing %d: encode: %v", framing, err)
		}
		got, err := DecodeDocument(doc)
		if err != nil {
			t.Fatalf("framing %d: decode: %v", framing, err)
		}
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("framing %d: roundtrip mismatch", framing)
		}
		if framing != CompressionNone && bytes.Equal(doc, nil) {
			t.Fatal("empty document")
		}
	}
}
