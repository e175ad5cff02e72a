package article

import (
	"fmt"

	"github.com/atotto/clipboard"
)

const (
	// CopiedMessage is shown after a successful copy.
	CopiedMessage = "Code copied to clipboard!"
	// CopyFailedMessage is shown when the clipboard rejects the write.
	CopyFailedMessage = "Failed to copy. Please try manually."
)

// Clipboard is a system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboardWriteAll(text)
}

// Ack is the user-facing outcome of a copy request.
type Ack struct {
	OK      bool
	Message string
	Err     error
}

// Copy writes the block's trimmed text to cb.
func Copy(cb Clipboard, block CodeBlock) Ack {
	if cb == nil {
		return Ack{Message: CopyFailedMessage, Err: fmt.Errorf("%w: no clipboard", ErrClipboardWriteFailed)}
	}
	if err := cb.WriteAll(block.Text); err != nil {
		return Ack{Message: CopyFailedMessage, Err: fmt.Errorf("%w: %v", ErrClipboardWriteFailed, err)}
	}
	return Ack{OK: true, Message: CopiedMessage}
}
