package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// FeedErrorMessage is shown when the category feed cannot be loaded.
	FeedErrorMessage = "Failed to load news. Please try again."
	// FeedEmptyMessage is shown for a category without entries.
	FeedEmptyMessage = "No content available for this category."
)

// NewsItem is one entry of a category feed.
type NewsItem struct {
	Title string `json:"title"`
}

type feedResponse struct {
	News []NewsItem `json:"news"`
}

// FeedClient reads category news from the feed service.
type FeedClient struct {
	BaseURL string
	Client  *http.Client
}

// NewFeedClient creates a FeedClient for baseURL.
func NewFeedClient(baseURL string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// News fetches GET <base>/category/<name>.
func (f *FeedClient) News(ctx context.Context, category string) ([]NewsItem, error) {
	u := strings.TrimRight(f.BaseURL, "/") + "/category/" + url.PathEscape(category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching category %s: %w", category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetching category %s: status %d", category, resp.StatusCode)
	}

	var body feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding category %s: %w", category, err)
	}
	return body.News, nil
}
