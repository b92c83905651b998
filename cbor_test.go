package nbt

import (
	"math"
	"testing"
)

func TestCBORRoundTrip(t *testing.T) {
	root := NewCompound()
	add := func(name string, child *Tag) {
		child.Name = name
		root.Append(child)
	}
	add("int", NewInt(7))
	add("long", NewLong(1<<40))
	add("double", NewDouble(2.5))
	add("nan", NewDouble(math.NaN()))
	add("str", NewString("hello"))
	add("longs", NewLongArray([]int64{1, 2, 3}))
	list := NewList()
	list.Append(NewString("a"))
	add("list", list)

	data, err := ToCBOR(root)
	if err != nil {
		t.Fatalf("tocbor: %v", err)
	}
	got, err := FromCBOR(data)
	if err != nil {
		t.Fatalf("fromcbor: %v", err)
	}
	if got.Type != TypeCompound || got.Len() != root.Len() {
		t.Fatalf("roundtrip root = %s len %d", got.Type, got.Len())
	}

	// compound order is not preserved through the generic projection;
	// compare by name
	long, ok := got.Get("long")
	if !ok || long.Type != TypeLong || long.Int != 1<<40 {
		t.Fatalf("long = %#v", long)
	}
	nan, ok := got.Get("nan")
	if !ok || !math.IsNaN(nan.Float) {
		t.Fatalf("nan = %#v", nan)
	}
	str, ok := got.Get("str")
	if !ok || str.Str != "hello" {
		t.Fatalf("str = %#v", str)
	}
	longs, ok := got.Get("longs")
	if !ok || longs.Len() != 3 {
		t.Fatalf("longs = %#v", longs)
	}
}

func TestFromCBORRejectsNonStringKeys(t *testing.T) {
	// 0xa1 0x01 0x02 is {1: 2}
	if _, err := FromCBOR([]byte{0xa1, 0x01, 0x02}); err == nil {
		t.Fatal("integer-keyed map should not convert")
	}
}
