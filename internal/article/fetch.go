package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// maxDocumentSize bounds how much of a response body is read.
const maxDocumentSize = 4 << 20

// Fetcher retrieves the raw markdown for an article.
type Fetcher interface {
	Fetch(ctx context.Context, ref Ref) (string, error)
}

// HTTPFetcher issues GET <BaseURL>/articles/<id>.md against a static asset host.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A zero timeout leaves requests bounded
// only by their context.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, ref Ref) (string, error) {
	u := strings.TrimRight(f.BaseURL, "/") + "/" + ref.URLPath()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building request for %s: %w", ErrDocumentUnavailable, ref, err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching %s: %w", ErrDocumentUnavailable, ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: fetching %s: status %d", ErrDocumentUnavailable, ref, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !isTextContent(ct) {
		return "", fmt.Errorf("%w: fetching %s: unexpected content type %q", ErrDocumentUnavailable, ref, ct)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrDocumentUnavailable, ref, err)
	}
	return decodeBody(ref, body)
}

// isTextContent accepts text/* responses other than HTML. Single-page app
// hosts answer unknown paths with index.html and a 200, which must not be
// mistaken for an article.
func isTextContent(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if mediaType == "text/html" {
		return false
	}
	return strings.HasPrefix(mediaType, "text/")
}

func decodeBody(ref Ref, body []byte) (string, error) {
	if len(body) > maxDocumentSize {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrDocumentUnavailable, ref, maxDocumentSize)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8 text", ErrDocumentUnavailable, ref)
	}
	return string(body), nil
}

// FSFetcher reads articles from a file system rooted at the content directory.
type FSFetcher struct {
	FS fs.FS
}

// Fetch implements Fetcher.
func (f FSFetcher) Fetch(ctx context.Context, ref Ref) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrDocumentUnavailable, ref, err)
	}
	body, err := fs.ReadFile(f.FS, ref.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s not found", ErrDocumentUnavailable, ref)
		}
		return "", fmt.Errorf("%w: reading %s: %w", ErrDocumentUnavailable, ref, err)
	}
	return decodeBody(ref, body)
}
