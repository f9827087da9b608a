package domain

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way browsers do for a URI
// component: every UTF-8 byte is escaped except A-Z a-z 0-9 and -_.!~*'().
//
// net/url has no equivalent: QueryEscape turns spaces into '+' and escapes
// !'()*, PathEscape leaves $&+,:;=@ alone.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
