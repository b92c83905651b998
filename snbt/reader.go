package snbt

import "strings"

const escapeChar = '\\'

// reader owns the single cursor into an immutable input string. It knows
// nothing about the grammar; the parser drives it decision by decision.
type reader struct {
	in  string
	pos int
}

func newReader(in string) *reader {
	return &reader{in: in}
}

// canRead reports whether at least n bytes remain from the cursor.
func (r *reader) canRead(n int) bool {
	return r.pos+n <= len(r.in)
}

// peek returns the byte at cursor+off. Callers must guard with canRead.
func (r *reader) peek(off int) byte {
	return r.in[r.pos+off]
}

// read returns the current byte and advances the cursor.
func (r *reader) read() byte {
	c := r.in[r.pos]
	r.pos++
	return c
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (r *reader) skipWhitespace() {
	for r.canRead(1) && isWhitespace(r.peek(0)) {
		r.pos++
	}
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// isUnquotedChar reports membership in the bare-token alphabet.
func isUnquotedChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

// readUnquotedString consumes the maximal run of bare-token characters.
// The result may be empty.
func (r *reader) readUnquotedString() string {
	start := r.pos
	for r.canRead(1) && isUnquotedChar(r.peek(0)) {
		r.pos++
	}
	return r.in[start:r.pos]
}

// readQuotedString consumes a leading quote and the string it opens.
// The caller guarantees the current byte is a quote.
func (r *reader) readQuotedString() (string, error) {
	quote := r.read()
	return r.readStringUntil(quote)
}

// readStringUntil consumes bytes up to the terminator, honoring a single
// escape character: escape+terminator and escape+escape yield the literal
// byte, anything else after an escape fails.
func (r *reader) readStringUntil(term byte) (string, error) {
	var sb strings.Builder
	escaped := false
	for r.canRead(1) {
		c := r.read()
		if escaped {
			if c == term || c == escapeChar {
				sb.WriteByte(c)
				escaped = false
				continue
			}
			return "", syntaxErrorf(ErrInvalidEscape, r.in, r.pos-1, "invalid escape '\\%c' in quoted string", c)
		}
		switch c {
		case escapeChar:
			escaped = true
		case term:
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", syntaxErrorf(ErrUnterminatedString, r.in, r.pos, "quoted string never closed")
}

// readString reads a quoted string if the cursor sits on a quote, otherwise
// a bare token. Container keys come through here.
func (r *reader) readString() (string, error) {
	if r.canRead(1) && isQuote(r.peek(0)) {
		return r.readQuotedString()
	}
	return r.readUnquotedString(), nil
}

// expect consumes one byte and fails unless it equals c.
func (r *reader) expect(c byte) error {
	if !r.canRead(1) {
		return syntaxErrorf(ErrUnexpectedEOF, r.in, r.pos, "expected '%c'", c)
	}
	if got := r.read(); got != c {
		return syntaxErrorf(ErrUnexpectedCharacter, r.in, r.pos-1, "expected '%c', found '%c'", c, got)
	}
	return nil
}
