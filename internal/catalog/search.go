package catalog

import "strings"

// Search returns the articles whose title or one of whose tags contains query,
// ignoring case. A blank query matches nothing.
func (c *Catalog) Search(query string) []Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Article
	for _, a := range c.Articles {
		if matches(a, q) {
			results = append(results, a)
		}
	}
	return results
}

func matches(a Article, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	for _, t := range a.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
