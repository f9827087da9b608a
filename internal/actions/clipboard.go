// Package actions holds the side-effecting helpers that act on generated
// state: clipboard writes and opening links in the user's browser.
package actions

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// Copier copies text to a clipboard.
type Copier interface {
	Copy(text string) error
	Supported() bool
}

// SystemClipboard writes to the OS clipboard through github.com/atotto/clipboard.
type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Supported is false on hosts without a clipboard utility (headless Linux).
func (SystemClipboard) Supported() bool {
	return !clipboard.Unsupported
}

// MemoryClipboard keeps the last copied text in memory.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	n    int
}

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (m *MemoryClipboard) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.text = text
	m.n++
	return nil
}

func (m *MemoryClipboard) Supported() bool { return true }

// Text returns the last copied text.
func (m *MemoryClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.text
}

// Copies returns how many times Copy was called.
func (m *MemoryClipboard) Copies() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.n
}

var (
	_ Copier = (*SystemClipboard)(nil)
	_ Copier = (*MemoryClipboard)(nil)
)
