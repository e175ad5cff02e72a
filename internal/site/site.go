// Package site renders the portfolio as HTML: the home page, the article
// list with its modal viewer, full-page articles, the workshop, photo and
// contact pages, category feeds and search.
package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/catalog"
)

// Options configures a Site.
type Options struct {
	Title   string
	Owner   string
	Catalog *catalog.Catalog
	// Loader retrieves articles. Its variant is replaced per route.
	Loader   *article.Loader
	Renderer *article.Renderer
	Feed     *catalog.FeedClient
	// Content is the content root holding articles/ and imgs/.
	Content fs.FS
	Logger  *zap.Logger
	// Now defaults to time.Now. The navbar greeting depends on it.
	Now func() time.Time
}

// Site serves the portfolio pages.
type Site struct {
	opts  Options
	pages map[string]*template.Template
	log   *zap.Logger
}

// New validates opts and parses the page templates.
func New(opts Options) (*Site, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Loader == nil {
		return nil, fmt.Errorf("site: loader is required")
	}
	if opts.Content == nil {
		return nil, fmt.Errorf("site: content file system is required")
	}
	if opts.Renderer == nil {
		opts.Renderer = article.NewRenderer()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Site{opts: opts, pages: pages, log: opts.Logger}, nil
}

// parsePages builds one template set per page, each sharing the layout.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageTemplates))
	for name, body := range pageTemplates {
		tmpl, err := template.New(name).Funcs(templateFuncs).Parse(layoutTemplate)
		if err != nil {
			return nil, fmt.Errorf("parsing layout: %w", err)
		}
		if _, err := tmpl.Parse(body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	frag, err := template.New("fragment").Funcs(templateFuncs).Parse(fragmentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment template: %w", err)
	}
	pages["fragment"] = frag
	return pages, nil
}
