// Package catalog holds the site's static content: the article list, the
// workshop projects, photo albums and contact links.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sxsun/folio/internal/article"
)

// FileName is the catalog file looked up at the content root.
const FileName = "site.yml"

// Article is one entry on the articles page.
type Article struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Tags  []string `yaml:"tags"`
	Slug  string   `yaml:"slug"`
}

// Ref parses the article's slug.
func (a Article) Ref() (article.Ref, error) {
	return article.ParseRef(a.Slug)
}

// ID is the normalized identifier used in URLs, or the raw slug when it does
// not parse.
func (a Article) ID() string {
	ref, err := a.Ref()
	if err != nil {
		return a.Slug
	}
	return ref.String()
}

// Project is a workshop card.
type Project struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Link        string `yaml:"link"`
}

// Contact is a contact card.
type Contact struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Link        string `yaml:"link"`
	DisplayText string `yaml:"display_text"`
	Accent      string `yaml:"accent"`
}

// Album is a photo gallery entry.
type Album struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Images      []string `yaml:"images"`
}

// Profile is the home page introduction.
type Profile struct {
	Headline  string   `yaml:"headline"`
	Welcome   string   `yaml:"welcome"`
	Bio       string   `yaml:"bio"`
	Education string   `yaml:"education"`
	Signature string   `yaml:"signature"`
	Avatar    string   `yaml:"avatar"`
	Social    []Social `yaml:"social"`
}

// Social is a small icon link on the home page.
type Social struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
}

// Catalog is everything the site lists.
type Catalog struct {
	Profile  Profile   `yaml:"profile"`
	Articles []Article `yaml:"articles"`
	Projects []Project `yaml:"projects"`
	Contacts []Contact `yaml:"contacts"`
	Albums   []Album   `yaml:"albums"`
}

// Load reads site.yml from fsys, falling back to the built-in catalog when it
// does not exist, then adds any undiscovered markdown under articles/.
func Load(fsys fs.FS) (*Catalog, error) {
	c, err := readFile(fsys)
	if err != nil {
		return nil, err
	}
	if err := c.Discover(fsys); err != nil {
		return nil, err
	}
	return c, nil
}

func readFile(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	c := Default()
	var fromFile Catalog
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	c.merge(fromFile)
	return c, nil
}

// merge replaces each section of c that other sets.
func (c *Catalog) merge(other Catalog) {
	if other.Profile.Headline != "" {
		c.Profile = other.Profile
	}
	if other.Articles != nil {
		c.Articles = other.Articles
	}
	if other.Projects != nil {
		c.Projects = other.Projects
	}
	if other.Contacts != nil {
		c.Contacts = other.Contacts
	}
	if other.Albums != nil {
		c.Albums = other.Albums
	}
}

// Find returns the listed article whose identifier matches id.
func (c *Catalog) Find(id string) (Article, bool) {
	ref, err := article.ParseRef(id)
	if err != nil {
		return Article{}, false
	}
	for _, a := range c.Articles {
		if a.ID() == ref.String() {
			return a, true
		}
	}
	return Article{}, false
}

// Tags returns the distinct tags across all articles, sorted.
func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, a := range c.Articles {
		for _, t := range a.Tags {
			key := strings.ToLower(t)
			if !seen[key] {
				seen[key] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
