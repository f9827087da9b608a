package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlatform is returned by ParsePlatform for unsupported values.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform is the messaging platform links are generated for.
type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformSMS      Platform = "sms"
	PlatformTelegram Platform = "telegram"
)

// Platforms lists the supported platforms in display order.
var Platforms = []Platform{PlatformWhatsApp, PlatformSMS, PlatformTelegram}

// ParsePlatform accepts "whatsapp", "sms" or "telegram" (case-insensitive).
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
	return p, nil
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformWhatsApp, PlatformSMS, PlatformTelegram:
		return true
	default:
		return false
	}
}

// Label is the human readable platform name attached to generated links.
func (p Platform) Label() string {
	switch p {
	case PlatformWhatsApp:
		return "WhatsApp"
	case PlatformSMS:
		return "SMS"
	case PlatformTelegram:
		return "Telegram"
	default:
		return string(p)
	}
}

// InfoHint is the placeholder shown for the contact info field.
func (p Platform) InfoHint() string {
	if p == PlatformTelegram {
		return "@username or @groupname"
	}
	return "+1234567890 or Group Name"
}
