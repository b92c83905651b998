package snbt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nbt "github.com/tagforge/nbt-go"
)

func TestMarshalScalars(t *testing.T) {
	testCases := []struct {
		tag  *nbt.Tag
		want string
	}{
		{nbt.NewByte(5), "5b"},
		{nbt.NewShort(-3), "-3s"},
		{nbt.NewInt(42), "42"},
		{nbt.NewLong(7), "7l"},
		{nbt.NewFloat(5), "5f"},
		{nbt.NewDouble(2.5), "2.5d"},
		{nbt.NewString("hi"), `"hi"`},
		{nbt.NewString(`say "hi"`), `"say \"hi\""`},
		{nbt.NewFloat(float32(math.NaN())), "NaNf"},
		{nbt.NewDouble(math.Inf(-1)), "-Infinityd"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Marshal(tc.tag))
	}
}

func TestMarshalContainers(t *testing.T) {
	compound := nbt.NewCompound()
	id := nbt.NewString("stone")
	id.Name = "id"
	compound.Append(id)
	count := nbt.NewByte(3)
	count.Name = "count"
	compound.Append(count)
	spaced := nbt.NewInt(1)
	spaced.Name = "has space"
	compound.Append(spaced)

	assert.Equal(t, `{id:"stone",count:3b,"has space":1}`, Marshal(compound))

	list := nbt.NewList()
	list.Append(nbt.NewInt(1))
	list.Append(nbt.NewInt(2))
	assert.Equal(t, "[1,2]", Marshal(list))

	assert.Equal(t, "[B;1b,2b]", Marshal(nbt.NewByteArray([]int8{1, 2})))
	assert.Equal(t, "[I;7]", Marshal(nbt.NewIntArray([]int32{7})))
	assert.Equal(t, "[L;-1l]", Marshal(nbt.NewLongArray([]int64{-1})))
	assert.Equal(t, "{}", Marshal(nbt.NewCompound()))
	assert.Equal(t, "[]", Marshal(nbt.NewList()))
}

func TestMarshalRoundTrip(t *testing.T) {
	inputs := []string{
		"{}",
		`{a:1,b:"two",c:3.5d}`,
		`{nested:{deep:{deeper:[1,2,3]}}}`,
		"[B;1b,2b,3b]",
		"[I;-2147483648,2147483647]",
		"[L;9223372036854775807l]",
		`["a","b"]`,
		"{big:9223372036854775807l,tiny:-128b}",
		"{f:1.5e+20f}",
	}

	for _, in := range inputs {
		first, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		text := Marshal(first)
		second, err := Parse(text)
		require.NoError(t, err, "rendered %q", text)
		assert.Equal(t, first, second, "input %q rendered %q", in, text)
	}
}
