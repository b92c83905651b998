package nbt

// Clone returns a deep copy of the tag. Array payloads and children are
// copied; the clone shares no mutable state with the original.
func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	out := &Tag{
		Type:  t.Type,
		Name:  t.Name,
		Int:   t.Int,
		Float: t.Float,
		Str:   t.Str,
	}
	if t.ByteArray != nil {
		out.ByteArray = append([]int8{}, t.ByteArray...)
	}
	if t.IntArray != nil {
		out.IntArray = append([]int32{}, t.IntArray...)
	}
	if t.LongArray != nil {
		out.LongArray = append([]int64{}, t.LongArray...)
	}
	if t.Children != nil {
		out.Children = make([]*Tag, len(t.Children))
		for i, child := range t.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}
