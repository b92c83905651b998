package snbt

import (
	nbt "github.com/tagforge/nbt-go"
)

// MaxDepth bounds the nesting of compounds, lists and arrays. The grammar
// itself places no limit; the counter keeps hostile input from exhausting
// the call stack.
const MaxDepth = 512

// Parse reads one stringified value from text and returns its tag tree.
// Trailing input after the first value is ignored.
func Parse(text string) (*nbt.Tag, error) {
	p := &parser{r: newReader(text)}
	p.r.skipWhitespace()
	return p.readValue()
}

// TryParse is the non-failing variant of Parse. It reports whether text
// parsed, discarding all error detail.
func TryParse(text string) (*nbt.Tag, bool) {
	tag, err := Parse(text)
	if err != nil {
		return nil, false
	}
	return tag, true
}

type parser struct {
	r     *reader
	depth int
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return syntaxErrorf(ErrNestingTooDeep, p.r.in, p.r.pos, "more than %d nested containers", MaxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) readValue() (*nbt.Tag, error) {
	p.r.skipWhitespace()
	if !p.r.canRead(1) {
		return nil, syntaxErrorf(ErrUnexpectedEOF, p.r.in, p.r.pos, "expected value")
	}
	switch p.r.peek(0) {
	case '{':
		return p.readCompound()
	case '[':
		if p.r.canRead(3) && !isQuote(p.r.peek(1)) && p.r.peek(2) == ';' {
			return p.readArray()
		}
		return p.readList()
	default:
		return p.readTypedValue()
	}
}

func (p *parser) readCompound() (*nbt.Tag, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.r.expect('{'); err != nil {
		return nil, err
	}
	tag := nbt.NewCompound()
	p.r.skipWhitespace()
	for p.r.canRead(1) && p.r.peek(0) != '}' {
		key, err := p.readKey()
		if err != nil {
			return nil, err
		}
		p.r.skipWhitespace()
		if err := p.r.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.readValue()
		if err != nil {
			return nil, err
		}
		value.Name = key
		tag.Append(value)
		if !p.hasElementSeparator() {
			break
		}
		if !p.r.canRead(1) {
			return nil, syntaxErrorf(ErrExpectedKey, p.r.in, p.r.pos, "expected key")
		}
	}
	if err := p.r.expect('}'); err != nil {
		return nil, err
	}
	return tag, nil
}

func (p *parser) readKey() (string, error) {
	p.r.skipWhitespace()
	if !p.r.canRead(1) {
		return "", syntaxErrorf(ErrExpectedKey, p.r.in, p.r.pos, "expected key")
	}
	start := p.r.pos
	key, err := p.r.readString()
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", syntaxErrorf(ErrExpectedKey, p.r.in, start, "expected key")
	}
	return key, nil
}

func (p *parser) readList() (*nbt.Tag, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.r.expect('['); err != nil {
		return nil, err
	}
	p.r.skipWhitespace()
	if !p.r.canRead(1) {
		return nil, syntaxErrorf(ErrUnexpectedEOF, p.r.in, p.r.pos, "expected value")
	}
	tag := nbt.NewList()
	for p.r.canRead(1) && p.r.peek(0) != ']' {
		elem, err := p.readValue()
		if err != nil {
			return nil, err
		}
		tag.Append(elem)
		if !p.hasElementSeparator() {
			break
		}
		if !p.r.canRead(1) {
			return nil, syntaxErrorf(ErrUnexpectedEOF, p.r.in, p.r.pos, "expected value")
		}
	}
	if err := p.r.expect(']'); err != nil {
		return nil, err
	}
	return tag, nil
}

func (p *parser) readArray() (*nbt.Tag, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.r.expect('['); err != nil {
		return nil, err
	}
	typePos := p.r.pos
	typeCh := p.r.read()
	if err := p.r.expect(';'); err != nil {
		return nil, err
	}
	p.r.skipWhitespace()
	if !p.r.canRead(1) {
		return nil, syntaxErrorf(ErrUnexpectedEOF, p.r.in, p.r.pos, "expected value")
	}
	switch typeCh {
	case 'B':
		elems, err := readArrayElements[int8](p)
		if err != nil {
			return nil, err
		}
		return nbt.NewByteArray(elems), nil
	case 'I':
		elems, err := readArrayElements[int32](p)
		if err != nil {
			return nil, err
		}
		return nbt.NewIntArray(elems), nil
	case 'L':
		elems, err := readArrayElements[int64](p)
		if err != nil {
			return nil, err
		}
		return nbt.NewLongArray(elems), nil
	default:
		return nil, syntaxErrorf(ErrInvalidArrayType, p.r.in, typePos, "invalid array type '%c'", typeCh)
	}
}

// readArrayElements parses full values and narrows their numeric payload to
// the array's element width, accumulating directly into a typed slice.
func readArrayElements[T int8 | int32 | int64](p *parser) ([]T, error) {
	out := []T{}
	for p.r.canRead(1) && p.r.peek(0) != ']' {
		elem, err := p.readValue()
		if err != nil {
			return nil, err
		}
		out = append(out, T(elem.AsInt64()))
		if !p.hasElementSeparator() {
			break
		}
		if !p.r.canRead(1) {
			return nil, syntaxErrorf(ErrUnexpectedEOF, p.r.in, p.r.pos, "expected value")
		}
	}
	if err := p.r.expect(']'); err != nil {
		return nil, err
	}
	return out, nil
}

// hasElementSeparator consumes a comma and surrounding whitespace. A missing
// comma ends the enclosing entry loop.
func (p *parser) hasElementSeparator() bool {
	p.r.skipWhitespace()
	if p.r.canRead(1) && p.r.peek(0) == ',' {
		p.r.read()
		p.r.skipWhitespace()
		return true
	}
	return false
}

func (p *parser) readTypedValue() (*nbt.Tag, error) {
	if isQuote(p.r.peek(0)) {
		s, err := p.r.readQuotedString()
		if err != nil {
			return nil, err
		}
		return nbt.NewString(s), nil
	}
	start := p.r.pos
	s := p.r.readUnquotedString()
	if s == "" {
		return nil, syntaxErrorf(ErrEmptyLiteral, p.r.in, start, "expected value")
	}
	return classify(s), nil
}
