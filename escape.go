package bon

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrBadEscape          = errors.New("invalid escape sequence in string")
)

const hexdigits = "0123456789abcdef"

// AppendQuotedString appends s to dst as a JSON-style double-quoted string
// and returns the extended buffer.  Bytes that are not valid UTF-8 are
// copied through unchanged so ScanQuotedString recovers s exactly.
func AppendQuotedString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for k := 0; k < len(s); {
		if c := s[k]; c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				k++
				continue
			}
			dst = append(dst, s[start:k]...)
			dst = append(dst, '\\')
			if e := esc(c); e != 0 {
				dst = append(dst, e)
			} else {
				// ASCII control codes other than above
				dst = append(dst, 'u', '0', '0', hexdigits[c>>4], hexdigits[c&0xf])
			}
			k++
			start = k
			continue
		}
		// Multibyte sequences, valid or not, are copied verbatim.
		k++
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// QuotedString returns s as a JSON-style double-quoted string.
func QuotedString(s string) string {
	return string(AppendQuotedString(nil, s))
}

func esc(c byte) byte {
	switch c {
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	}
	return 0
}

// ScanQuotedString decodes a JSON-style string whose opening quote has
// already been consumed from data.  It returns the decoded text and the
// number of bytes of data consumed including the closing quote.
func ScanQuotedString(data []byte) (string, int, error) {
	var out []byte
	for k := 0; k < len(data); {
		c := data[k]
		switch c {
		case '"':
			return string(out), k + 1, nil
		case '\\':
			if k+1 >= len(data) {
				return "", k, ErrUnterminatedString
			}
			if e := unesc(data[k+1]); e != 0 {
				out = append(out, e)
				k += 2
				continue
			}
			if data[k+1] != 'u' {
				return "", k, ErrBadEscape
			}
			r, n := unescapeRune(data[k:])
			if n == 0 {
				return "", k, ErrBadEscape
			}
			out = utf8.AppendRune(out, r)
			k += n
		default:
			out = append(out, c)
			k++
		}
	}
	return "", len(data), ErrUnterminatedString
}

func unesc(c byte) byte {
	switch c {
	case '\\', '"', '/':
		return c
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return 0
}

// unescapeRune decodes a \uXXXX sequence, joining a following low
// surrogate when data starts with a high surrogate.  It returns zero
// length if data does not hold a valid sequence.
func unescapeRune(data []byte) (rune, int) {
	r := hex4(data)
	if r < 0 {
		return 0, 0
	}
	if utf16.IsSurrogate(r) {
		if r2 := hex4(data[6:]); r2 >= 0 {
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				return dec, 12
			}
		}
		return utf8.RuneError, 6
	}
	return r, 6
}

func hex4(data []byte) rune {
	if len(data) < 6 || data[0] != '\\' || data[1] != 'u' {
		return -1
	}
	var r rune
	for _, c := range data[2:6] {
		v := Unhex(c)
		if v > 0xf {
			return -1
		}
		r = r<<4 | rune(v)
	}
	return r
}

func Unhex(b byte) byte {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10
	}
	return 255
}
