package snbt

import (
	"math"
	"strconv"
	"strings"

	nbt "github.com/tagforge/nbt-go"
)

// classify maps a raw bare token to a scalar tag. The suffix rules run in a
// fixed order; a rule whose shape matches but whose numeric conversion fails
// counts as a miss and the next rule is tried, so classification always
// succeeds, bottoming out at a verbatim text tag.
func classify(s string) *nbt.Tag {
	if tag, ok := classifyNumber(s); ok {
		return tag
	}
	if tag, ok := classifyKeyword(s); ok {
		return tag
	}
	return nbt.NewString(s)
}

func classifyNumber(s string) (*nbt.Tag, bool) {
	if len(s) >= 2 {
		body := s[:len(s)-1]
		switch s[len(s)-1] {
		case 'f', 'F':
			if isDecimalBody(body, false) {
				if v, err := strconv.ParseFloat(body, 32); err == nil {
					return nbt.NewFloat(float32(v)), true
				}
			}
		case 'b', 'B':
			if isIntegerBody(body) {
				if v, err := strconv.ParseInt(body, 10, 8); err == nil {
					return nbt.NewByte(int8(v)), true
				}
			}
		case 'l', 'L':
			if isIntegerBody(body) {
				if v, err := strconv.ParseInt(body, 10, 64); err == nil {
					return nbt.NewLong(v), true
				}
			}
		case 's', 'S':
			if isIntegerBody(body) {
				if v, err := strconv.ParseInt(body, 10, 16); err == nil {
					return nbt.NewShort(int16(v)), true
				}
			}
		}
	}
	if isIntegerBody(s) {
		if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			return nbt.NewInt(int32(v)), true
		}
	}
	if len(s) >= 2 && (s[len(s)-1] == 'd' || s[len(s)-1] == 'D') {
		body := s[:len(s)-1]
		if isDecimalBody(body, false) {
			if v, err := strconv.ParseFloat(body, 64); err == nil {
				return nbt.NewDouble(v), true
			}
		}
	}
	if isDecimalBody(s, true) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return nbt.NewDouble(v), true
		}
	}
	return nil, false
}

func classifyKeyword(s string) (*nbt.Tag, bool) {
	switch strings.ToLower(s) {
	case "true":
		return nbt.NewByte(1), true
	case "false":
		return nbt.NewByte(0), true
	case "infinityf":
		return nbt.NewFloat(float32(math.Inf(1))), true
	case "-infinityf":
		return nbt.NewFloat(float32(math.Inf(-1))), true
	case "nanf":
		return nbt.NewFloat(float32(math.NaN())), true
	case "infinity", "infinityd":
		return nbt.NewDouble(math.Inf(1)), true
	case "-infinity", "-infinityd":
		return nbt.NewDouble(math.Inf(-1)), true
	case "nan", "nand":
		return nbt.NewDouble(math.NaN()), true
	}
	return nil, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIntegerBody reports whether s is an optionally signed run of digits with
// no leading zero (a lone "0" is allowed).
func isIntegerBody(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	if s[0] == '0' {
		return len(s) == 1
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isDecimalBody reports whether s is an optionally signed decimal mantissa
// ("12", "12.", "12.5", ".5") with an optional exponent. With requireDot the
// mantissa must contain a decimal point, which keeps bare integers out of
// the no-suffix floating rule.
func isDecimalBody(s string, requireDot bool) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i
	hasDot := false
	if i < len(s) && s[i] == '.' {
		hasDot = true
		i++
	}
	fracStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if intDigits == 0 && i == fracStart {
		return false
	}
	if requireDot && !hasDot {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false
		}
	}
	return i == len(s)
}
