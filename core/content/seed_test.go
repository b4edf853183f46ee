package content

import (
	"testing"

	"pulsefeed-api/core/domain"
)

func TestAllSeedContent_DatasetOrder(t *testing.T) {
	all := AllSeedContent()

	if len(all) != 10 {
		t.Fatalf("corpus size = %d, want 10", len(all))
	}

	// News first, then movies, then social posts
	wantTypes := []domain.ContentType{
		domain.ContentTypeNews, domain.ContentTypeNews, domain.ContentTypeNews,
		domain.ContentTypeNews, domain.ContentTypeNews, domain.ContentTypeNews,
		domain.ContentTypeMovie, domain.ContentTypeMovie,
		domain.ContentTypeSocial, domain.ContentTypeSocial,
	}
	for i, item := range all {
		if item.Type != wantTypes[i] {
			t.Errorf("position %d type = %q, want %q", i, item.Type, wantTypes[i])
		}
	}
}

func TestAllSeedContent_UniqueIDsAndValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range AllSeedContent() {
		if seen[item.ID] {
			t.Errorf("duplicate seed ID %s", item.ID)
		}
		seen[item.ID] = true

		if err := item.Validate(); err != nil {
			t.Errorf("seed item %s invalid: %v", item.ID, err)
		}
	}
}

func TestFilterByCategories(t *testing.T) {
	filtered := filterByCategories(NewsSeed(), []string{"finance"})

	if len(filtered) != 2 {
		t.Fatalf("filtered count = %d, want 2", len(filtered))
	}
	for _, item := range filtered {
		if item.Category != "finance" {
			t.Errorf("item %s category = %q, want finance", item.ID, item.Category)
		}
	}
}

func TestFilterByCategories_NoMatch(t *testing.T) {
	filtered := filterByCategories(NewsSeed(), []string{"photography"})

	if len(filtered) != 0 {
		t.Errorf("filtered count = %d, want 0", len(filtered))
	}
}

func TestMatchesQuery(t *testing.T) {
	item := &domain.ContentItem{
		Title:       "Just finished my first marathon!",
		Description: "After months of training, I finally crossed the finish line.",
		Category:    "fitness",
	}

	cases := []struct {
		query string
		want  bool
	}{
		{"marathon", true},
		{"MARATHON", true},
		{"finish line", true},
		{"fitness", true},
		{"opera", false},
	}

	for _, tc := range cases {
		if got := matchesQuery(item, tc.query); got != tc.want {
			t.Errorf("matchesQuery(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}
