package content

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/interfaces"
)

func newTestService() *ContentService {
	return NewContentService(interfaces.Dependencies{}, nil)
}

func TestNewContentService(t *testing.T) {
	service := newTestService()

	if service == nil {
		t.Error("NewContentService returned nil")
	}
}

func TestGetContentByCategories_EmptyCategories(t *testing.T) {
	service := newTestService()

	items, err := service.GetContentByCategories(context.Background(), []string{})

	if err != nil {
		t.Fatalf("GetContentByCategories returned error: %v", err)
	}
	if len(items) == 0 {
		t.Error("empty category selection should serve the default mix, got no items")
	}
	// With no live provider the default mix is the entire seed corpus
	if len(items) != len(AllSeedContent()) {
		t.Errorf("item count = %d, want %d", len(items), len(AllSeedContent()))
	}
}

func TestGetContentByCategories_SeedCategoriesOnly(t *testing.T) {
	service := newTestService()

	items, err := service.GetContentByCategories(context.Background(), []string{"science-fiction"})

	if err != nil {
		t.Fatalf("GetContentByCategories returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("item count = %d, want 1", len(items))
	}
	if items[0].Title != "Dune: Part Two" {
		t.Errorf("title = %q, want %q", items[0].Title, "Dune: Part Two")
	}
}

func TestGetContentByCategories_ResultIsSubsetOfRequested(t *testing.T) {
	service := newTestService()
	requested := []string{"photography", "fitness", "biography"}

	items, err := service.GetContentByCategories(context.Background(), requested)

	if err != nil {
		t.Fatalf("GetContentByCategories returned error: %v", err)
	}
	allowed := make(map[string]bool)
	for _, c := range requested {
		allowed[c] = true
	}
	for _, item := range items {
		if !allowed[item.Category] {
			t.Errorf("item %s has category %q outside the requested set", item.ID, item.Category)
		}
	}
}

func TestGetContentByCategories_APIUnreachableFallsBackToSeed(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	deps := interfaces.Dependencies{HTTPClient: httpClient}
	news := NewNewsAPIClient(NewsAPIConfig{BaseURL: "https://example.test/v2", APIKey: "k"}, deps)
	service := NewContentService(deps, news)

	items, err := service.GetContentByCategories(context.Background(), []string{"technology"})

	if err != nil {
		t.Fatalf("GetContentByCategories returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("item count = %d, want the 2 seeded technology articles", len(items))
	}
	for _, item := range items {
		if item.Category != "technology" {
			t.Errorf("item %s category = %q, want technology", item.ID, item.Category)
		}
	}
}

func TestGetContentByCategories_WholeBatchFallback(t *testing.T) {
	// One category succeeds with an empty article list, the other fails.
	// The live batch is empty overall, so the whole batch falls back to seed.
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "category=technology") {
				return &mockResponse{statusCode: 200, body: `{"articles":[]}`}, nil
			}
			return nil, errors.New("timeout")
		},
	}
	deps := interfaces.Dependencies{HTTPClient: httpClient}
	news := NewNewsAPIClient(NewsAPIConfig{BaseURL: "https://example.test/v2", APIKey: "k"}, deps)
	service := NewContentService(deps, news)

	items, err := service.GetContentByCategories(context.Background(), []string{"technology", "finance"})

	if err != nil {
		t.Fatalf("GetContentByCategories returned error: %v", err)
	}
	want := filterByCategories(NewsSeed(), []string{"technology", "finance"})
	if len(items) != len(want) {
		t.Fatalf("item count = %d, want %d seed items", len(items), len(want))
	}
}

func TestGetContentByCategories_LiveNewsPrecedesSeedItems(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			body := `{"articles":[{"title":"Chip startup raises round","description":"Fresh funding","url":"https://example.test/a","publishedAt":"2026-08-28T10:00:00Z","source":{"name":"Wire"}}]}`
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	deps := interfaces.Dependencies{HTTPClient: httpClient}
	news := NewNewsAPIClient(NewsAPIConfig{BaseURL: "https://example.test/v2", APIKey: "k"}, deps)
	service := NewContentService(deps, news)

	items, err := service.GetContentByCategories(context.Background(), []string{"technology", "photography"})

	if err != nil {
		t.Fatalf("GetContentByCategories returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("item count = %d, want 2", len(items))
	}
	if items[0].Type != domain.ContentTypeNews || items[0].Title != "Chip startup raises round" {
		t.Errorf("first item should be the live article, got %q", items[0].Title)
	}
	if items[1].Category != "photography" {
		t.Errorf("second item category = %q, want photography", items[1].Category)
	}
}

func TestGetContentByCategories_UsesCachedAggregate(t *testing.T) {
	cached := `[{"id":"1","type":"news","title":"Cached","description":"From cache","publishedAt":"2026-08-28T10:00:00Z","category":"technology","source":"Cache"}]`
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			if key != "content:technology" {
				t.Errorf("cache key = %q, want content:technology", key)
			}
			return []byte(cached), nil
		},
	}
	service := NewContentService(interfaces.Dependencies{Cache: cache}, nil)

	items, err := service.GetContentByCategories(context.Background(), []string{"technology"})

	if err != nil {
		t.Fatalf("GetContentByCategories returned error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Cached" {
		t.Errorf("expected the cached aggregate, got %+v", items)
	}
}

func TestGetContentByCategories_CacheKeyOrderIndependent(t *testing.T) {
	if aggregateCacheKey([]string{"b", "a"}) != aggregateCacheKey([]string{"a", "b"}) {
		t.Error("cache key should not depend on category order")
	}
}

func TestSearchContent_CaseInsensitive(t *testing.T) {
	service := newTestService()

	lower, err := service.SearchContent(context.Background(), "climate")
	if err != nil {
		t.Fatalf("SearchContent returned error: %v", err)
	}
	upper, err := service.SearchContent(context.Background(), "CLIMATE")
	if err != nil {
		t.Fatalf("SearchContent returned error: %v", err)
	}

	if len(lower) == 0 {
		t.Fatal("expected matches for 'climate'")
	}
	if len(lower) != len(upper) {
		t.Errorf("case changed the result count: %d vs %d", len(lower), len(upper))
	}
}

func TestSearchContent_MatchesDescription(t *testing.T) {
	service := newTestService()

	results, err := service.SearchContent(context.Background(), "finish line")

	if err != nil {
		t.Fatalf("SearchContent returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "7" {
		t.Errorf("expected the marathon post (ID 7), got %+v", results)
	}
}

func TestSearchContent_MatchesCategory(t *testing.T) {
	service := newTestService()

	results, err := service.SearchContent(context.Background(), "fiction")

	if err != nil {
		t.Fatalf("SearchContent returned error: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Dune: Part Two" {
		t.Errorf("expected Dune: Part Two via its category, got %+v", results)
	}
}

func TestSearchContent_EmptyQuery(t *testing.T) {
	service := newTestService()

	for _, query := range []string{"", "   ", "\t"} {
		results, err := service.SearchContent(context.Background(), query)
		if err != nil {
			t.Fatalf("SearchContent(%q) returned error: %v", query, err)
		}
		if len(results) != 0 {
			t.Errorf("SearchContent(%q) = %d results, want 0", query, len(results))
		}
	}
}

func TestSearchContent_NoMatches(t *testing.T) {
	service := newTestService()

	results, err := service.SearchContent(context.Background(), "xyzzy-no-such-content")

	if err != nil {
		t.Fatalf("SearchContent returned error: %v", err)
	}
	if results == nil {
		t.Error("no matches should yield an empty slice, not nil")
	}
	if len(results) != 0 {
		t.Errorf("result count = %d, want 0", len(results))
	}
}

func TestGetTrendingContent_AtMostSix(t *testing.T) {
	service := newTestService()

	items, err := service.GetTrendingContent(context.Background())

	if err != nil {
		t.Fatalf("GetTrendingContent returned error: %v", err)
	}
	if len(items) > 6 {
		t.Errorf("trending returned %d items, want at most 6", len(items))
	}
}

func TestGetTrendingContent_ItemsComeFromSeedCorpus(t *testing.T) {
	service := newTestService()

	items, err := service.GetTrendingContent(context.Background())

	if err != nil {
		t.Fatalf("GetTrendingContent returned error: %v", err)
	}
	known := make(map[string]bool)
	for _, item := range AllSeedContent() {
		known[item.ID] = true
	}
	seen := make(map[string]bool)
	for _, item := range items {
		if !known[item.ID] {
			t.Errorf("trending item %s is not in the corpus", item.ID)
		}
		if seen[item.ID] {
			t.Errorf("trending item %s appeared twice", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestGetTrendingContent_DeterministicWithSeededSource(t *testing.T) {
	first := newTestService()
	first.SetRandSource(rand.New(rand.NewSource(42)))
	second := newTestService()
	second.SetRandSource(rand.New(rand.NewSource(42)))

	a, err := first.GetTrendingContent(context.Background())
	if err != nil {
		t.Fatalf("GetTrendingContent returned error: %v", err)
	}
	b, err := second.GetTrendingContent(context.Background())
	if err != nil {
		t.Fatalf("GetTrendingContent returned error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("position %d differs: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}
