package utils

import (
	"errors"
	"strings"
)

// Quote wraps text in double quotes, escaping the quote and backslash
// characters and all control bytes. Text payloads are just sequences
// of bytes - they may contain NUL or invalid utf8 - so we do not use
// strconv.Quote, which would re-encode non utf8 bytes as code
// points. Bytes outside the escape set are copied verbatim.
func Quote(in []byte) string {
	out := &strings.Builder{}
	out.Grow(len(in) + 2)

	out.WriteByte('"')
	for _, c := range in {
		switch c {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				out.WriteString(`\x`)
				out.WriteByte(hex_digits[c>>4])
				out.WriteByte(hex_digits[c&0xf])
			} else {
				out.WriteByte(c)
			}
		}
	}
	out.WriteByte('"')

	return out.String()
}

// Unquote reverses Quote byte for byte. Escapes we do not emit are
// still decoded (\' for compatibility with single quoted sources);
// a truncated escape at the end of the text is an error rather than
// silently dropped, since the input here is machine generated.
func Unquote(s string) ([]byte, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return nil, errors.New("text literal is not double quoted")
	}

	in := s[1 : len(s)-1]
	out := make([]byte, 0, len(in))
	end := len(in) - 1
	i := 0

	for i <= end {
		if in[i] != '\\' {
			out = append(out, in[i])
			i++
			continue
		}

		// Escape at the very end has no continuation.
		if i >= end {
			return nil, errors.New("truncated escape in text literal")
		}

		switch in[i+1] {
		case 'x', 'X':
			if i > end-3 {
				return nil, errors.New("truncated hex escape in text literal")
			}
			decoded, err := decode_hex(in[i+2], in[i+3])
			if err != nil {
				return nil, err
			}
			out = append(out, decoded)
			i += 4

		case 'n':
			out = append(out, '\n')
			i += 2

		case 'r':
			out = append(out, '\r')
			i += 2

		case 't':
			out = append(out, '\t')
			i += 2

		case '\\', '"', '\'':
			out = append(out, in[i+1])
			i += 2

		default:
			// Unknown escapes pass the escaped byte through.
			out = append(out, in[i+1])
			i += 2
		}
	}

	return out, nil
}

func decode_hex(left, right uint8) (uint8, error) {
	res := hex_lookup[left]
	if res < 0 {
		return 0, invalidHexError
	}

	res2 := hex_lookup[right]
	if res2 < 0 {
		return 0, invalidHexError
	}

	return uint8(res<<4 | res2), nil
}

var (
	hex_digits      = "0123456789abcdef"
	hex_lookup      = [256]int8{}
	invalidHexError = errors.New("invalid hex escape in text literal")
)

func init() {
	for i := 0; i < 256; i++ {
		hex_lookup[i] = -1
	}

	for i := int8('0'); i <= int8('9'); i++ {
		hex_lookup[i] = i - int8('0')
	}

	for i := int8('a'); i <= int8('f'); i++ {
		hex_lookup[i] = i - int8('a') + 10
	}

	for i := int8('A'); i <= int8('F'); i++ {
		hex_lookup[i] = i - int8('A') + 10
	}
}
