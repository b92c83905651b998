package nbt

import (
	"testing"
)

var (
	sinkBytes []byte
	sinkTag   *Tag
)

func benchTree() *Tag {
	root := NewCompound()
	root.Name = "level"
	add := func(name string, child *Tag) {
		child.Name = name
		root.Append(child)
	}
	add("seed", NewLong(8273645187263))
	add("time", NewInt(1_200_000))
	add("hardcore", NewByte(0))
	add("name", NewString("world"))
	add("spawn", NewIntArray([]int32{120, 64, -340}))

	players := NewList()
	for i := 0; i < 16; i++ {
		p := NewCompound()
		id := NewString("player")
		id.Name = "id"
		p.Append(id)
		health := NewFloat(20)
		health.Name = "health"
		p.Append(health)
		pos := NewList()
		pos.Name = "pos"
		pos.Append(NewDouble(1.5))
		pos.Append(NewDouble(64))
		pos.Append(NewDouble(-7.25))
		p.Append(pos)
		players.Append(p)
	}
	add("players", players)
	return root
}

func BenchmarkEncode(b *testing.B) {
	tree := benchTree()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out, err := Encode(tree)
		if err != nil {
			b.Fatal(err)
		}
		sinkBytes = out
	}
}

func BenchmarkDecode(b *testing.B) {
	data, err := Encode(benchTree())
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tag, err := Decode(data)
		if err != nil {
			b.Fatal(err)
		}
		sinkTag = tag
	}
}

func BenchmarkToCBOR(b *testing.B) {
	tree := benchTree()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out, err := ToCBOR(tree)
		if err != nil {
			b.Fatal(err)
		}
		sinkBytes = out
	}
}

func BenchmarkFromJSON(b *testing.B) {
	tree := benchTree()
	tree.Name = ""
	data, err := ToJSON(tree)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tag, err := FromJSON(data)
		if err != nil {
			b.Fatal(err)
		}
		sinkTag = tag
	}
}
