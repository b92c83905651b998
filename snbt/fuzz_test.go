package snbt

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"{}",
		"{a:1}",
		`{a: 1, b: "two", c: [1,2,3]}`,
		"[B;1b,2b,3b]",
		"[I;1,2,3]",
		"[L;1l]",
		`[1,"a",2.0f]`,
		`"a\"b"`,
		"'abc'",
		"NaNf",
		"-Infinityd",
		"5bb",
		"[X;1,2]",
		"{a:{b:{c:{d:1}}}}",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, text string) {
		// TryParse must never fail loudly, for any input
		tag, ok := TryParse(text)
		if !ok {
			return
		}
		if tag == nil {
			t.Fatal("TryParse reported success with a nil tag")
		}
		// a successful parse renders back into parseable text
		rendered := Marshal(tag)
		if _, err := Parse(rendered); err != nil {
			t.Fatalf("rendered text does not parse: %q: %v", rendered, err)
		}
	})
}
