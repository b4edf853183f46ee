// ABOUTME: Content slice holds the transient feed state: items, search results, loading
// ABOUTME: Operations are pure transitions; request tokens discard stale async responses

package state

import (
	"sync"

	"pulsefeed-api/core/domain"
)

// ContentState is a snapshot of the content slice
type ContentState struct {
	Items         []domain.ContentItem `json:"items"`
	SearchResults []domain.ContentItem `json:"searchResults"`
	Loading       bool                 `json:"loading"`
	Error         string               `json:"error,omitempty"`
	SearchQuery   string               `json:"searchQuery"`
	HasMore       bool                 `json:"hasMore"`
	Page          int                  `json:"page"`
}

// ContentSlice owns the transient content state. No operation here performs
// I/O; all fetching is the caller's responsibility.
type ContentSlice struct {
	mu    sync.Mutex
	state ContentState

	// Monotonic tokens; only the latest issued load/search may commit.
	loadToken   uint64
	searchToken uint64
}

// NewContentSlice creates a content slice with the initial state
func NewContentSlice() *ContentSlice {
	return &ContentSlice{
		state: ContentState{
			Items:         []domain.ContentItem{},
			SearchResults: []domain.ContentItem{},
			HasMore:       true,
			Page:          1,
		},
	}
}

// Snapshot returns a copy of the current state
func (s *ContentSlice) Snapshot() ContentState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Items = append([]domain.ContentItem(nil), s.state.Items...)
	snap.SearchResults = append([]domain.ContentItem(nil), s.state.SearchResults...)
	return snap
}

// SetLoading sets the loading flag
func (s *ContentSlice) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
}

// SetError sets the user-visible error message; empty clears it
func (s *ContentSlice) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = msg
}

// SetItems replaces the displayed items wholesale
func (s *ContentSlice) SetItems(items []domain.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = append([]domain.ContentItem(nil), items...)
}

// AppendItems appends a batch to the displayed items
func (s *ContentSlice) AppendItems(items []domain.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = append(s.state.Items, items...)
}

// SetSearchResults replaces the search results
func (s *ContentSlice) SetSearchResults(results []domain.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchResults = append([]domain.ContentItem(nil), results...)
}

// SetSearchQuery records the last search query string
func (s *ContentSlice) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchQuery = query
}

// UpdateItem replaces the item with a matching ID; no-op when absent
func (s *ContentSlice) UpdateItem(item domain.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ID == item.ID {
			s.state.Items[i] = item
			return
		}
	}
}

// ReorderItems replaces the items wholesale with a caller-supplied order
func (s *ContentSlice) ReorderItems(items []domain.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = append([]domain.ContentItem(nil), items...)
}

// SetHasMore sets the pagination has-more flag
func (s *ContentSlice) SetHasMore(hasMore bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.HasMore = hasMore
}

// SetPage sets the current page number
func (s *ContentSlice) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Page = page
}

// IncrementPage advances the page number by one
func (s *ContentSlice) IncrementPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Page++
}

// Reset clears the items and restores pagination to its initial state
func (s *ContentSlice) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = []domain.ContentItem{}
	s.state.Page = 1
	s.state.HasMore = true
}

// BeginLoad issues a new load token and flags loading. Responses committed
// with an older token are discarded, so whichever load was issued last wins
// regardless of completion order.
func (s *ContentSlice) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadToken++
	s.state.Loading = true
	s.state.Error = ""
	return s.loadToken
}

// CompleteLoad commits a load result if its token is still the latest.
// Returns false when the response was stale and dropped.
func (s *ContentSlice) CompleteLoad(token uint64, items []domain.ContentItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.loadToken {
		return false
	}

	s.state.Items = append([]domain.ContentItem(nil), items...)
	s.state.Loading = false
	return true
}

// FailLoad records a load failure if its token is still the latest
func (s *ContentSlice) FailLoad(token uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.loadToken {
		return false
	}

	s.state.Loading = false
	s.state.Error = msg
	return true
}

// BeginSearch issues a new search token and records the query
func (s *ContentSlice) BeginSearch(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchToken++
	s.state.SearchQuery = query
	return s.searchToken
}

// CompleteSearch commits search results if the token is still the latest
func (s *ContentSlice) CompleteSearch(token uint64, results []domain.ContentItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.searchToken {
		return false
	}

	s.state.SearchResults = append([]domain.ContentItem(nil), results...)
	return true
}
