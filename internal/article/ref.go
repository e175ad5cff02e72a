package article

import (
	"fmt"
	"net/url"
	"strings"
)

// Ref identifies an article. The identifier may contain "/" to address
// nested assets such as "sxhub/2025031102".
type Ref struct {
	id string
}

// ParseRef validates an article identifier. Leading and trailing slashes are
// ignored so "/sxhub/2025031102" and "sxhub/2025031102" name the same article.
func ParseRef(identifier string) (Ref, error) {
	id := strings.Trim(strings.TrimSpace(identifier), "/")
	if id == "" {
		return Ref{}, fmt.Errorf("%w: empty", ErrInvalidRef)
	}
	if strings.ContainsAny(id, "\\?#\x00") {
		return Ref{}, fmt.Errorf("%w: %q contains a reserved character", ErrInvalidRef, identifier)
	}
	if strings.HasSuffix(id, ".md") {
		return Ref{}, fmt.Errorf("%w: %q must not include the .md extension", ErrInvalidRef, identifier)
	}
	for _, seg := range strings.Split(id, "/") {
		switch seg {
		case "", ".", "..":
			return Ref{}, fmt.Errorf("%w: %q has an empty or relative segment", ErrInvalidRef, identifier)
		}
	}
	return Ref{id: id}, nil
}

// String returns the normalized identifier.
func (r Ref) String() string { return r.id }

// IsZero reports whether r was never parsed.
func (r Ref) IsZero() bool { return r.id == "" }

// Path is the asset path relative to the content root: articles/<id>.md.
func (r Ref) Path() string {
	return "articles/" + r.id + ".md"
}

// URLPath is Path with every segment escaped for use in a URL.
func (r Ref) URLPath() string {
	segs := strings.Split(r.Path(), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// Name is the last segment of the identifier, used as a title of last resort.
func (r Ref) Name() string {
	if i := strings.LastIndex(r.id, "/"); i >= 0 {
		return r.id[i+1:]
	}
	return r.id
}
