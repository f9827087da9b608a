package actions

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/browser"
)

// URLOpener opens a URL outside the process.
type URLOpener interface {
	Open(url string) error
}

// BrowserOpener hands URLs to the default browser or URL handler
// (wa.me, sms: and t.me links are resolved by the OS).
type BrowserOpener struct{}

func NewBrowserOpener() *BrowserOpener {
	// pkg/browser forwards the helper's output to os.Stdout by default.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{}
}

func (BrowserOpener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// RecordingOpener records opened URLs instead of opening them.
// Fail makes Open return an error for matching URLs.
type RecordingOpener struct {
	mu     sync.Mutex
	opened []string
	Fail   func(url string) error
}

func (r *RecordingOpener) Open(url string) error {
	if r.Fail != nil {
		if err := r.Fail(url); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.opened = append(r.opened, url)
	return nil
}

// Opened returns the URLs opened so far, in order.
func (r *RecordingOpener) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.opened))
	copy(out, r.opened)
	return out
}

var (
	_ URLOpener = (*BrowserOpener)(nil)
	_ URLOpener = (*RecordingOpener)(nil)
)
