// Package snbt parses the stringified text notation for tag trees and
// renders trees back into it. The parser is a recursive-descent grammar
// interpreter over a single byte cursor; there is no separate token pass.
package snbt

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the ways a parse can fail.
type ErrorKind uint8

const (
	ErrUnexpectedEOF ErrorKind = iota
	ErrUnexpectedCharacter
	ErrInvalidEscape
	ErrUnterminatedString
	ErrExpectedKey
	ErrInvalidArrayType
	ErrEmptyLiteral
	ErrNestingTooDeep
)

var errorKindNames = [...]string{
	ErrUnexpectedEOF:       "unexpected end of input",
	ErrUnexpectedCharacter: "unexpected character",
	ErrInvalidEscape:       "invalid escape",
	ErrUnterminatedString:  "unterminated string",
	ErrExpectedKey:         "expected key",
	ErrInvalidArrayType:    "invalid array type",
	ErrEmptyLiteral:        "empty literal",
	ErrNestingTooDeep:      "nesting too deep",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "unknown error"
}

// SyntaxError reports malformed input together with the byte offset the
// cursor had reached when the parse failed.
type SyntaxError struct {
	Kind   ErrorKind
	Input  string
	Offset int
	msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("snbt: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
}

// HighlightLocation will show where the syntax error occurred.
// It places a "^" character on a line below the input at the point
// where the error occurred.
func (e *SyntaxError) HighlightLocation() string {
	offset := e.Offset
	if offset > len(e.Input) {
		offset = len(e.Input)
	}
	return e.Input + "\n" + strings.Repeat(" ", offset) + "^"
}

func syntaxErrorf(kind ErrorKind, input string, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Kind:   kind,
		Input:  input,
		Offset: offset,
		msg:    fmt.Sprintf(format, args...),
	}
}
