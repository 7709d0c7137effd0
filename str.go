package json

import (
	"strings"
	"unicode/utf8"
)

// scanString scans a JSON string body starting just after the opening
// quote. It returns the length of the body (exclusive of the closing
// quote, which is also consumed) and whether the body contains any
// escape sequences (callers can skip unescaping when it doesn't).
// On failure it returns a Kind describing why it failed.
func scanString(data []byte) (bodyLen int, hasEscapes bool, fail Kind, ok bool) {
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '"':
			return i, hasEscapes, 0, true
		case c == '\\':
			hasEscapes = true
			if i+1 >= len(data) {
				return 0, false, EndedInsideQuote, false
			}
			esc := data[i+1]
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				for k := 0; k < 4; k++ {
					if i+2+k >= len(data) {
						return 0, false, EndedInsideQuote, false
					}
					if !isHexDigit(data[i+2+k]) {
						return 0, false, InvalidEscapeChar, false
					}
				}
				i += 6
			default:
				return 0, false, InvalidEscapeChar, false
			}
		case c == '\n' || c == '\t' || c == '\r':
			return 0, false, TabNewlineCRInsideQuotes, false
		case c < 0x20:
			return 0, false, ControlCharInsideQuotes, false
		default:
			i++
		}
	}
	return 0, false, EndedInsideQuote, false
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) rune {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0')
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10
	default:
		return rune(b-'A') + 10
	}
}

// unescapeString decodes the escape sequences in a raw string body
// (as scanned by scanString) into its final UTF-8 content.
func unescapeString(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		switch raw[i+1] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r := decodeHex4(raw[i+2 : i+6])
			i += 6
			if utf16IsHighSurrogate(r) && i+6 <= len(raw) && raw[i] == '\\' && raw[i+1] == 'u' {
				low := decodeHex4(raw[i+2 : i+6])
				if utf16IsLowSurrogate(low) {
					b.WriteRune(utf16Combine(r, low))
					i += 6
					continue
				}
			}
			if utf16IsSurrogate(r) {
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteRune(r)
			}
			continue
		}
		i += 2
	}
	return b.String()
}

func decodeHex4(b []byte) rune {
	return hexVal(b[0])<<12 | hexVal(b[1])<<8 | hexVal(b[2])<<4 | hexVal(b[3])
}

func utf16IsHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func utf16IsLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }
func utf16IsSurrogate(r rune) bool     { return r >= 0xD800 && r <= 0xDFFF }

func utf16Combine(high, low rune) rune {
	return 0x10000 + (high-0xD800)<<10 + (low - 0xDC00)
}
