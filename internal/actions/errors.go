package actions

import "errors"

// ErrClipboardUnsupported is returned when no clipboard is reachable.
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this host")
