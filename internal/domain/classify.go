package domain

import (
	"regexp"
	"strings"
)

// RecipientClass is the result of classifying a contact string.
type RecipientClass int

const (
	// RecipientHandle is a username, handle or free-text group name.
	RecipientHandle RecipientClass = iota
	// RecipientPhone is a phone number.
	RecipientPhone
)

func (c RecipientClass) String() string {
	if c == RecipientPhone {
		return "phone"
	}
	return "handle"
}

// optional leading +, then digits, whitespace, hyphens or parentheses only.
// Whitespace is the browser's set: ASCII plus \v, Zs spaces (NBSP, thin
// space, ...), U+FEFF and the line/paragraph separators.
var phonePattern = regexp.MustCompile(`^\+?[\d\s\x0B\p{Zs}\x{FEFF}\x{2028}\x{2029}\-()]+$`)

// Classify decides whether info denotes a phone number or a handle.
func Classify(info string) RecipientClass {
	if phonePattern.MatchString(strings.TrimSpace(info)) {
		return RecipientPhone
	}
	return RecipientHandle
}

// DigitsOnly drops every character that is not an ASCII digit.
// Example: "+1 (234) 567-8900" -> "12345678900"
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
