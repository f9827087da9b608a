package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Contact represents one saved recipient.
//
// Info is free text: a phone number, a Telegram handle or a group name.
// Its meaning depends on the selected platform and is decided by Classify
// at link generation time, never at creation time.
type Contact struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is an opaque unique token assigned on creation.
	ID string `json:"id"`

	// ─────────────────────────────
	// User input (trimmed, non-empty)
	// ─────────────────────────────

	// Name is the display name.
	// Example: "Mom", "Wordle Gang"
	Name string `json:"name"`

	// Info is the contact string.
	// Example: "+1 (234) 567-8900", "@alice", "Wordle Gang"
	Info string `json:"info"`
}

// NewContact builds a contact from raw user input.
// It returns false when either field is empty after trimming.
func NewContact(name, info string) (Contact, bool) {
	name = strings.TrimSpace(name)
	info = strings.TrimSpace(info)
	if name == "" || info == "" {
		return Contact{}, false
	}
	return Contact{
		ID:   uuid.NewString(),
		Name: name,
		Info: info,
	}, true
}
