// ABOUTME: Content service aggregates live and seed content for the personalized feed
// ABOUTME: Provides aggregation, search and trending operations independent of the HTTP layer

package content

import (
	"context"
	"encoding/json"
	"math/rand"
	"sort"
	"strings"
	"time"

	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/interfaces"
)

// aggregateCacheTTL bounds how long a merged category result is reused
const aggregateCacheTTL = 5 * time.Minute

// trendingSampleSize caps how many items a trending call returns
const trendingSampleSize = 6

// defaultCategories are fetched when the caller selects no categories
var defaultCategories = []string{"technology", "finance"}

// ContentService handles feed aggregation, search and trending
type ContentService struct {
	deps interfaces.Dependencies
	news *NewsAPIClient
	rand *rand.Rand
}

// NewContentService creates a new content service instance.
// A nil news client disables live fetching; every aggregation then resolves
// from the seed datasets.
func NewContentService(deps interfaces.Dependencies, news *NewsAPIClient) *ContentService {
	return &ContentService{
		deps: deps,
		news: news,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRandSource replaces the random source used by trending selection,
// making it deterministic under test
func (s *ContentService) SetRandSource(r *rand.Rand) {
	s.rand = r
}

// GetContentByCategories aggregates content for the requested categories.
// API-backed categories are fetched from the news provider with a
// whole-batch seed fallback; other categories are served from the movie
// and social seed datasets. API items come first, in category request
// order, followed by seed items in dataset order.
func (s *ContentService) GetContentByCategories(ctx context.Context, categories []string) ([]domain.ContentItem, error) {
	if cached := s.getCachedAggregate(ctx, categories); cached != nil {
		return cached, nil
	}

	var result []domain.ContentItem

	if len(categories) == 0 {
		result = s.defaultContent(ctx)
	} else {
		newsCategories, otherCategories := partitionCategories(categories)

		var newsContent []domain.ContentItem
		if len(newsCategories) > 0 {
			newsContent = s.fetchLiveNews(ctx, newsCategories)
			if len(newsContent) == 0 {
				// Whole-batch fallback, not per-category
				newsContent = filterByCategories(NewsSeed(), newsCategories)
			}
		}

		var otherContent []domain.ContentItem
		if len(otherCategories) > 0 {
			otherContent = filterByCategories(append(MovieSeed(), SocialSeed()...), otherCategories)
		}

		result = append(newsContent, otherContent...)
	}

	s.cacheAggregate(ctx, categories, result)

	return result, nil
}

// defaultContent serves the empty-category case: a default live fetch plus
// the movie/social seed data, or the entire seed corpus when the fetch
// yields nothing
func (s *ContentService) defaultContent(ctx context.Context) []domain.ContentItem {
	defaultNews := s.fetchLiveNews(ctx, defaultCategories)
	if len(defaultNews) > 0 {
		result := defaultNews
		result = append(result, MovieSeed()...)
		result = append(result, SocialSeed()...)
		return result
	}

	return AllSeedContent()
}

// fetchLiveNews requests live headlines, treating every failure as an
// empty result so the caller can fall back to seed data
func (s *ContentService) fetchLiveNews(ctx context.Context, categories []string) []domain.ContentItem {
	if s.news == nil {
		return nil
	}

	items, err := s.news.FetchByCategories(ctx, categories)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("News API unavailable, using seed data", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}

	return items
}

// partitionCategories splits the requested categories into API-backed and
// seed-served sets, preserving request order within each
func partitionCategories(categories []string) (newsCategories, otherCategories []string) {
	for _, c := range categories {
		if IsAPIBackedCategory(c) {
			newsCategories = append(newsCategories, c)
		} else {
			otherCategories = append(otherCategories, c)
		}
	}
	return newsCategories, otherCategories
}

// SearchContent performs a case-insensitive substring search over the seed
// corpus, matching title, description and category. A whitespace-only query
// returns an empty result. Live API content is out of search scope.
func (s *ContentService) SearchContent(ctx context.Context, query string) ([]domain.ContentItem, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.ContentItem{}, nil
	}

	results := make([]domain.ContentItem, 0)
	for _, item := range AllSeedContent() {
		item := item
		if matchesQuery(&item, query) {
			results = append(results, item)
		}
	}

	return results, nil
}

// GetTrendingContent returns up to six items sampled without replacement
// from the seed corpus. Order is not stable across calls.
func (s *ContentService) GetTrendingContent(ctx context.Context) ([]domain.ContentItem, error) {
	all := AllSeedContent()

	s.rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	if len(all) > trendingSampleSize {
		all = all[:trendingSampleSize]
	}

	return all, nil
}

// aggregateCacheKey derives a stable cache key from the category set
func aggregateCacheKey(categories []string) string {
	sorted := append([]string(nil), categories...)
	sort.Strings(sorted)
	return "content:" + strings.Join(sorted, ",")
}

// getCachedAggregate retrieves a cached aggregation result, nil on any miss
func (s *ContentService) getCachedAggregate(ctx context.Context, categories []string) []domain.ContentItem {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, aggregateCacheKey(categories))
	if err != nil || data == nil {
		return nil
	}

	var items []domain.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	return items
}

// cacheAggregate stores an aggregation result (cache errors ignored)
func (s *ContentService) cacheAggregate(ctx context.Context, categories []string, items []domain.ContentItem) {
	if s.deps.Cache == nil || len(items) == 0 {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}

	_ = s.deps.Cache.Set(ctx, aggregateCacheKey(categories), data, aggregateCacheTTL)
}
