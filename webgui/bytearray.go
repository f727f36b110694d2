package webgui

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultLineWidth is the number of bytes per line in the generated array.
const DefaultLineWidth = 30

// DecodeByteArray parses the text between the braces of a C byte array.
// Tokens may be separated by commas, whitespace or both; empty tokens are
// skipped.
func DecodeByteArray(literal string) ([]byte, error) {
	tokens := strings.FieldsFunc(literal, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 || v > 255 {
			return nil, &ParseError{Index: i, Token: tok}
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// EncodeByteArray formats data as decimal, comma separated values with a
// line break after every lineWidth bytes.
func EncodeByteArray(data []byte, lineWidth int) string {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	var sb strings.Builder
	sb.Grow(len(data) * 4)
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(',')
			if i%lineWidth == 0 {
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}
