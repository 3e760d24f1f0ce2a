package cs

import (
	"bytes"
	"unicode/utf8"
)

// fixedString reads a NUL-terminated string out of a fixed-size field.
// A field without a terminator is read to its end. Invalid UTF-8 reads as "".
func fixedString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
