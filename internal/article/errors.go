package article

import "errors"

var (
	// ErrDocumentUnavailable covers every way retrieval can fail: transport
	// errors, non-2xx responses, non-text bodies and unreadable files. Callers
	// never see it from Loader, which substitutes the fallback document.
	ErrDocumentUnavailable = errors.New("document unavailable")

	// ErrInvalidRef is returned by ParseRef for identifiers that cannot be
	// mapped onto a static asset path.
	ErrInvalidRef = errors.New("invalid article identifier")

	// ErrClipboardWriteFailed is reported through Ack when a copy fails.
	ErrClipboardWriteFailed = errors.New("clipboard write failed")
)
