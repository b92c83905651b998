package snbt

import (
	"strings"
	"testing"

	nbt "github.com/tagforge/nbt-go"
)

var (
	sinkTag  *nbt.Tag
	sinkText string
)

func benchInput() string {
	var sb strings.Builder
	sb.WriteString(`{seed: 8273645187263l, name: "world", spawn: [I;120,64,-340], players: [`)
	for i := 0; i < 16; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(`{id: "player", health: 20.0f, pos: [1.5d, 64.0d, -7.25d]}`)
	}
	sb.WriteString(`]}`)
	return sb.String()
}

func BenchmarkParse(b *testing.B) {
	in := benchInput()
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tag, err := Parse(in)
		if err != nil {
			b.Fatal(err)
		}
		sinkTag = tag
	}
}

func BenchmarkMarshal(b *testing.B) {
	tag, err := Parse(benchInput())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkText = Marshal(tag)
	}
}
