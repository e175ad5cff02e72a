package article

import (
	"context"

	"go.uber.org/zap"
)

// Loader turns an identifier into a Document. It never fails: any retrieval
// problem yields the variant's fallback body.
type Loader struct {
	fetcher Fetcher
	variant Variant
	logger  *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(fetcher Fetcher, variant Variant, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, variant: variant, logger: logger}
}

// Variant returns the presentation this loader serves.
func (l *Loader) Variant() Variant { return l.variant }

// WithVariant returns a copy of l that falls back with v's text.
func (l *Loader) WithVariant(v Variant) *Loader {
	c := *l
	c.variant = v
	return &c
}

// Load retrieves the article once. No retry is attempted.
func (l *Loader) Load(ctx context.Context, identifier string) Document {
	ref, err := ParseRef(identifier)
	if err != nil {
		l.logger.Debug("article unavailable",
			zap.String("article", identifier),
			zap.Stringer("variant", l.variant),
			zap.Error(err))
		return fallbackDocument(ref, l.variant)
	}

	body, err := l.fetcher.Fetch(ctx, ref)
	if err != nil {
		l.logger.Debug("article unavailable",
			zap.String("article", ref.String()),
			zap.Stringer("variant", l.variant),
			zap.Error(err))
		return fallbackDocument(ref, l.variant)
	}

	return Document{Ref: ref, Variant: l.variant, Body: body, Found: true}
}
