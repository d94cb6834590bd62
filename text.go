package flagserde

import (
	"strconv"
	"strings"
)

const (
	separator = " | "
	hexPrefix = "0x"
)

// Format renders bits as the names of the set flags joined by " | ".
// Bits no name accounts for are appended as a lowercase 0x-prefixed hex
// token, so Parse(Format(bits)) == bits for every value. Zero renders as "".
func (t *Table[B]) Format(bits B) string {
	names, remaining := t.Names(bits)
	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(name)
	}
	if remaining != 0 {
		if len(names) > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(hexPrefix)
		sb.WriteString(strconv.FormatUint(uint64(remaining), 16))
	}
	return sb.String()
}

// FormatStrict renders only the named flags; unnamed bits are dropped.
func (t *Table[B]) FormatStrict(bits B) string {
	names, _ := t.Names(bits)
	return strings.Join(names, separator)
}

// Parse reads the text form produced by Format. Tokens are flag names or
// 0x-prefixed hex values and are combined with bitwise or. Surrounding
// whitespace is ignored and a blank string parses as zero.
func (t *Table[B]) Parse(s string) (B, error) {
	return t.parse(s, true)
}

// ParseStrict is Parse without hex tokens: only names are accepted.
func (t *Table[B]) ParseStrict(s string) (B, error) {
	return t.parse(s, false)
}

// ParseTruncate is Parse with unnamed bits cleared from the result.
func (t *Table[B]) ParseTruncate(s string) (B, error) {
	bits, err := t.parse(s, true)
	if err != nil {
		return 0, err
	}
	return t.Truncate(bits), nil
}

func (t *Table[B]) parse(s string, allowHex bool) (B, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	var bits B
	for _, token := range strings.Split(s, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			return 0, newParseError(ErrEmptyFlag, "", nil)
		}

		if digits, ok := strings.CutPrefix(token, hexPrefix); ok {
			if !allowHex {
				return 0, newParseError(ErrInvalidHexFlag, token, nil)
			}
			v, err := parseHex[B](digits)
			if err != nil {
				return 0, newParseError(ErrInvalidHexFlag, token, err)
			}
			bits |= v
			continue
		}

		v, ok := t.FromName(token)
		if !ok {
			return 0, newParseError(ErrInvalidNamedFlag, token, nil)
		}
		bits |= v
	}
	return bits, nil
}

// parseHex parses bare hex digits into B, rejecting values wider than B.
func parseHex[B Bits](digits string) (B, error) {
	v, err := strconv.ParseUint(digits, 16, widthOf[B]())
	if err != nil {
		return 0, err
	}
	return B(v), nil
}
