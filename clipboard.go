package tabtex

import "github.com/atotto/clipboard"

// Clipboard is a write-only text sink. Renderers call WriteText once, after
// the markup is fully built, and never on an error path.
type Clipboard interface {
	WriteText(s string) error
}

// ClipboardFunc adapts a function to [Clipboard].
type ClipboardFunc func(s string) error

// WriteText calls f(s).
func (f ClipboardFunc) WriteText(s string) error { return f(s) }

// SystemClipboard writes to the operating system clipboard. On Linux it
// needs xclip, xsel, or wl-copy on PATH.
type SystemClipboard struct{}

// WriteText replaces the clipboard contents with s.
func (SystemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(s)
}

// DefaultClipboard is the sink used when no [WithClipboard] option is given.
// Set it to nil to disable copying process-wide.
var DefaultClipboard Clipboard = SystemClipboard{}
