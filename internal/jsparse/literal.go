package jsparse

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"depwalk/internal/jsast"
)

func (b *builder) literal(n *sitter.Node) jsast.Node {
	pos := b.pos(n)
	raw := b.text(n)
	lit := &jsast.Literal{Position: pos, Raw: raw}

	switch n.Type() {
	case "string":
		lit.Value = Unquote(raw)

	case "template_string":
		for _, c := range named(n) {
			if c.Type() == "template_substitution" {
				return b.unknown(n)
			}
		}

		lit.Value = Unquote(raw)

	case "number":
		v, ok := ParseNumber(raw)
		if !ok {
			return b.unknown(n)
		}

		lit.Value = v

	case "true":
		lit.Value = true

	case "false":
		lit.Value = false

	case "null":
		lit.Value = nil

	case "regex":
		re := jsast.RegExp{}
		if p := n.ChildByFieldName("pattern"); p != nil {
			re.Pattern = b.text(p)
		}

		if f := n.ChildByFieldName("flags"); f != nil {
			re.Flags = b.text(f)
		}

		lit.Value = re
	}

	return lit
}

// Unquote decodes a quoted JavaScript string or template literal without
// substitutions. Malformed escapes keep the escaped character.
func Unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}

	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}

		i++

		switch e := body[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\r':
			// line continuation
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if r, ok := hexRune(body, i+1, 2); ok {
				sb.WriteRune(r)
				i += 2
			} else {
				sb.WriteByte(e)
			}
		case 'u':
			r, width := unicodeEscape(body, i+1)
			if width == 0 {
				sb.WriteByte(e)
				break
			}

			i += width

			if utf16.IsSurrogate(r) {
				if lo, w := unicodeEscapeAfterBackslash(body, i+1); w > 0 {
					if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
						r = pair
						i += w
					}
				}
			}

			sb.WriteRune(r)
		default:
			sb.WriteByte(e)
		}
	}

	return sb.String()
}

func hexRune(s string, at, digits int) (rune, bool) {
	if at+digits > len(s) {
		return 0, false
	}

	v, err := strconv.ParseUint(s[at:at+digits], 16, 32)
	if err != nil {
		return 0, false
	}

	return rune(v), true
}

// unicodeEscape decodes the part of a \u escape after the "u", either four
// hex digits or a braced code point. width is 0 when malformed.
func unicodeEscape(s string, at int) (r rune, width int) {
	if at < len(s) && s[at] == '{' {
		end := strings.IndexByte(s[at:], '}')
		if end < 2 {
			return 0, 0
		}

		v, err := strconv.ParseUint(s[at+1:at+end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}

		return rune(v), end + 1
	}

	r, ok := hexRune(s, at, 4)
	if !ok {
		return 0, 0
	}

	return r, 4
}

// unicodeEscapeAfterBackslash decodes a following "\uXXXX" for the low half
// of a surrogate pair.
func unicodeEscapeAfterBackslash(s string, at int) (rune, int) {
	if at+1 >= len(s) || s[at] != '\\' || s[at+1] != 'u' {
		return 0, 0
	}

	r, w := unicodeEscape(s, at+2)
	if w == 0 {
		return 0, 0
	}

	return r, w + 2
}

// ParseNumber parses a JavaScript numeric literal. BigInt literals are not
// numbers and report false.
func ParseNumber(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, "_", "")
	if s == "" || strings.HasSuffix(s, "n") {
		return 0, false
	}

	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			v, err := strconv.ParseUint(s, 0, 64)
			return float64(v), err == nil
		}

		if isLegacyOctal(s) {
			v, err := strconv.ParseUint(s[1:], 8, 64)
			return float64(v), err == nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)

	return v, err == nil
}

func isLegacyOctal(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}

	return true
}
