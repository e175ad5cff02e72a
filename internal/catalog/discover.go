package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// articlePattern matches every markdown asset the article viewer can load.
const articlePattern = "articles/**/*.md"

// Discover appends articles found in fsys that the catalog does not already
// list. Discovered articles are ordered by identifier and carry no date or
// tags.
func (c *Catalog) Discover(fsys fs.FS) error {
	matches, err := doublestar.Glob(fsys, articlePattern)
	if err != nil {
		return fmt.Errorf("globbing %s: %w", articlePattern, err)
	}
	sort.Strings(matches)

	listed := make(map[string]bool, len(c.Articles))
	for _, a := range c.Articles {
		listed[a.ID()] = true
	}

	for _, path := range matches {
		id := strings.TrimSuffix(strings.TrimPrefix(path, "articles/"), ".md")
		if listed[id] {
			continue
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		title := extractTitle(data)
		if title == "" {
			title = id[strings.LastIndex(id, "/")+1:]
		}
		c.Articles = append(c.Articles, Article{Title: title, Slug: "/" + id})
		listed[id] = true
	}
	return nil
}

// extractTitle returns the first level-1 ATX heading, skipping fenced code.
func extractTitle(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	inFence := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
