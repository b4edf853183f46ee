// ABOUTME: Seed content corpus backing the feed when no live data is available
// ABOUTME: Provides the static news, movie and social datasets and filters over them

package content

import (
	"strings"
	"time"

	"pulsefeed-api/core/domain"
)

// seedTime stamps a seed item relative to now, RFC3339 like live articles
func seedTime(ago time.Duration) string {
	return time.Now().Add(-ago).UTC().Format(time.RFC3339)
}

// NewsSeed returns the static news dataset
func NewsSeed() []domain.ContentItem {
	return []domain.ContentItem{
		{
			ID:          "1",
			Type:        domain.ContentTypeNews,
			Title:       "AI Revolution in Healthcare: New Breakthrough in Medical Diagnosis",
			Description: "Scientists have developed an AI system that can diagnose diseases with 95% accuracy, revolutionizing healthcare delivery worldwide.",
			Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(0),
			Category:    "technology",
			Source:      "TechNews Today",
		},
		{
			ID:          "2",
			Type:        domain.ContentTypeNews,
			Title:       "Global Climate Summit Reaches Historic Agreement",
			Description: "World leaders unite on ambitious climate targets, setting unprecedented goals for carbon neutrality by 2030.",
			Image:       "https://images.unsplash.com/photo-1569163139394-de4e4f43e4e3?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(1 * time.Hour),
			Category:    "environment",
			Source:      "Global Environmental News",
		},
		{
			ID:          "3",
			Type:        domain.ContentTypeNews,
			Title:       "Cryptocurrency Market Sees Major Recovery",
			Description: "Bitcoin and major altcoins surge as institutional investors show renewed confidence in digital assets.",
			Image:       "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(2 * time.Hour),
			Category:    "finance",
			Source:      "CryptoDaily",
		},
		{
			ID:          "8",
			Type:        domain.ContentTypeNews,
			Title:       "Major Tech Companies Announce Green Energy Initiatives",
			Description: "Leading technology firms commit to 100% renewable energy across all operations by 2025.",
			Image:       "https://images.unsplash.com/photo-1497435334941-8c899ee9e8e9?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(3 * time.Hour),
			Category:    "technology",
			Source:      "Tech Today",
		},
		{
			ID:          "9",
			Type:        domain.ContentTypeNews,
			Title:       "Stock Markets Reach All-Time Highs Amid Economic Recovery",
			Description: "Major indices surge as investor confidence returns following strong quarterly earnings reports.",
			Image:       "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(4 * time.Hour),
			Category:    "finance",
			Source:      "Financial Times",
		},
		{
			ID:          "10",
			Type:        domain.ContentTypeNews,
			Title:       "Olympic Games 2024: Record-Breaking Performances",
			Description: "Athletes continue to break world records in multiple events, showcasing incredible human potential.",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(5 * time.Hour),
			Category:    "sports",
			Source:      "Sports Central",
		},
	}
}

// MovieSeed returns the static movie dataset
func MovieSeed() []domain.ContentItem {
	return []domain.ContentItem{
		{
			ID:          "4",
			Type:        domain.ContentTypeMovie,
			Title:       "Dune: Part Two",
			Description: "The epic continuation of Paul Atreides journey as he unites with Chani and the Fremen.",
			Image:       "https://images.unsplash.com/photo-1489599511446-51fb3a33e01a?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(0),
			Category:    "science-fiction",
			Source:      "MovieDB",
		},
		{
			ID:          "5",
			Type:        domain.ContentTypeMovie,
			Title:       "Oppenheimer",
			Description: "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
			Image:       "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(30 * time.Minute),
			Category:    "biography",
			Source:      "MovieDB",
		},
	}
}

// SocialSeed returns the static social dataset
func SocialSeed() []domain.ContentItem {
	return []domain.ContentItem{
		{
			ID:          "6",
			Type:        domain.ContentTypeSocial,
			Title:       "Amazing sunset captured from my balcony!",
			Description: "Mother nature never fails to amaze me. This view from my new apartment is absolutely breathtaking.",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(15 * time.Minute),
			Category:    "photography",
			Source:      "Instagram",
		},
		{
			ID:          "7",
			Type:        domain.ContentTypeSocial,
			Title:       "Just finished my first marathon!",
			Description: "After months of training, I finally crossed the finish line. The feeling is indescribable!",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&h=400&fit=crop",
			URL:         domain.PlaceholderURL,
			PublishedAt: seedTime(20 * time.Minute),
			Category:    "fitness",
			Source:      "Twitter",
		},
	}
}

// AllSeedContent returns the full seed corpus in dataset order:
// news first, then movies, then social posts
func AllSeedContent() []domain.ContentItem {
	all := NewsSeed()
	all = append(all, MovieSeed()...)
	all = append(all, SocialSeed()...)
	return all
}

// filterByCategories returns the items whose category is in the given set,
// preserving dataset order
func filterByCategories(items []domain.ContentItem, categories []string) []domain.ContentItem {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}

	filtered := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if _, ok := set[item.Category]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// matchesQuery performs a case-insensitive substring test against the
// item's title, description and category
func matchesQuery(item *domain.ContentItem, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Description), q) ||
		strings.Contains(strings.ToLower(item.Category), q)
}
