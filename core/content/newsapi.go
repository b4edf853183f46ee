// ABOUTME: News API client fetches live headlines from the external news provider
// ABOUTME: Maps feed categories to provider topics and normalizes articles to ContentItems

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/interfaces"
)

// APIBackedCategories are the feed categories satisfied by the external
// news provider; everything else is served from the seed datasets.
var APIBackedCategories = []string{
	"technology",
	"environment",
	"finance",
	"sports",
	"entertainment",
	"health",
}

// categoryTopics maps feed categories to provider topic codes.
// Unmapped categories fall back to the general topic.
var categoryTopics = map[string]string{
	"technology":    "technology",
	"environment":   "science",
	"finance":       "business",
	"sports":        "sports",
	"entertainment": "entertainment",
	"health":        "health",
}

const defaultTopic = "general"

// NewsAPIConfig holds the external news provider settings
type NewsAPIConfig struct {
	// BaseURL is the provider API root, e.g. https://newsapi.org/v2
	BaseURL string

	// APIKey authenticates requests against the provider
	APIKey string

	// Country scopes top headlines to a country code
	Country string

	// PageSize is the number of articles requested per category
	PageSize int
}

// NewsAPIClient fetches headlines from the external news provider
type NewsAPIClient struct {
	cfg  NewsAPIConfig
	deps interfaces.Dependencies
}

// NewNewsAPIClient creates a news API client instance
func NewNewsAPIClient(cfg NewsAPIConfig, deps interfaces.Dependencies) *NewsAPIClient {
	if cfg.Country == "" {
		cfg.Country = "us"
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 10
	}
	return &NewsAPIClient{
		cfg:  cfg,
		deps: deps,
	}
}

// topicForCategory resolves the provider topic code for a feed category
func topicForCategory(category string) string {
	if topic, ok := categoryTopics[category]; ok {
		return topic
	}
	return defaultTopic
}

// IsAPIBackedCategory reports whether the category is served by the provider
func IsAPIBackedCategory(category string) bool {
	for _, c := range APIBackedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// newsAPIResponse mirrors the provider's top-headlines payload
type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URLToImage  string `json:"urlToImage"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// FetchByCategories requests headlines for each category sequentially.
// A failed or non-200 category yields zero items for that category; the
// remaining categories are still attempted. Latency scales linearly with
// the category count.
func (c *NewsAPIClient) FetchByCategories(ctx context.Context, categories []string) ([]domain.ContentItem, error) {
	if c.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	items := make([]domain.ContentItem, 0, len(categories)*c.cfg.PageSize)

	for _, category := range categories {
		articles, err := c.fetchCategory(ctx, category)
		if err != nil {
			if c.deps.Logger != nil {
				c.deps.Logger.Warn("News fetch failed for category", map[string]interface{}{
					"category": category,
					"error":    err.Error(),
				})
			}
			continue
		}
		items = append(items, articles...)
	}

	return items, nil
}

// fetchCategory performs a single top-headlines request for one category
func (c *NewsAPIClient) fetchCategory(ctx context.Context, category string) ([]domain.ContentItem, error) {
	endpoint := fmt.Sprintf("%s/top-headlines?category=%s&country=%s&pageSize=%d&apiKey=%s",
		c.cfg.BaseURL,
		url.QueryEscape(topicForCategory(category)),
		url.QueryEscape(c.cfg.Country),
		c.cfg.PageSize,
		url.QueryEscape(c.cfg.APIKey),
	)

	resp, err := c.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("news API returned status %d", resp.StatusCode())
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	var payload newsAPIResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(payload.Articles))
	for i, article := range payload.Articles {
		items = append(items, domain.ContentItem{
			// IDs are only unique per category within one fetch; repeated
			// fetches of the same category reuse them. The store never
			// merges batches by ID, so session-scoped uniqueness suffices.
			ID:          fmt.Sprintf("news-%s-%d", category, i),
			Type:        domain.ContentTypeNews,
			Title:       defaultString(article.Title, "No title"),
			Description: defaultString(article.Description, "No description available"),
			Image:       article.URLToImage,
			URL:         defaultString(article.URL, domain.PlaceholderURL),
			PublishedAt: defaultString(article.PublishedAt, time.Now().UTC().Format(time.RFC3339)),
			Category:    category,
			Source:      defaultString(article.Source.Name, "News API"),
		})
	}

	return items, nil
}

// defaultString returns fallback when s is empty
func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
