package nbt

import (
	stdjson "encoding/json"
	"fmt"
)

// Marshal encodes a Go value into a tag tree using JSON semantics.
func Marshal(v any) (*Tag, error) {
	data, err := stdjson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

// Unmarshal decodes a tag tree into a Go value using JSON semantics.
func Unmarshal(t *Tag, out any) error {
	if out == nil {
		return fmt.Errorf("nil target")
	}
	data, err := ToJSON(t)
	if err != nil {
		return err
	}
	return stdjson.Unmarshal(data, out)
}
