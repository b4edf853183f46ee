// ABOUTME: UserPreferences domain model holds the persisted user configuration
// ABOUTME: Provides defaults and normalization for values loaded from storage

package domain

import "errors"

// FeedLayout selects how the feed is rendered
type FeedLayout string

// The supported feed layouts
const (
	FeedLayoutGrid FeedLayout = "grid"
	FeedLayoutList FeedLayout = "list"
)

// IsValid reports whether the layout is a supported value
func (l FeedLayout) IsValid() bool {
	return l == FeedLayoutGrid || l == FeedLayoutList
}

// SupportedLanguages is the fixed language set offered by the settings surface
var SupportedLanguages = []string{"en", "es", "fr", "de", "it", "pt", "ja", "ko", "zh"}

// UserPreferences is the persisted, user-scoped configuration
type UserPreferences struct {
	// Categories is the ordered set of selected feed categories
	Categories []string `json:"categories"`

	// DarkMode enables the dark theme
	DarkMode bool `json:"darkMode"`

	// FavoriteItems is the ordered set of favorited item IDs
	FavoriteItems []string `json:"favoriteItems"`

	// Language is the UI language code
	Language string `json:"language"`

	// FeedLayout is either grid or list
	FeedLayout FeedLayout `json:"feedLayout"`

	// NotificationsEnabled toggles notification delivery
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

// DefaultPreferences returns the built-in preference defaults used when no
// persisted state exists or the persisted state cannot be parsed
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Categories:           []string{"technology", "business", "entertainment"},
		DarkMode:             false,
		FavoriteItems:        []string{},
		Language:             "en",
		FeedLayout:           FeedLayoutGrid,
		NotificationsEnabled: true,
	}
}

// Normalize fills zero-valued fields with defaults, matching the merge the
// original storage load performed over partial persisted objects
func (p *UserPreferences) Normalize() {
	defaults := DefaultPreferences()

	if p.Categories == nil {
		p.Categories = defaults.Categories
	}
	if p.FavoriteItems == nil {
		p.FavoriteItems = defaults.FavoriteItems
	}
	if p.Language == "" {
		p.Language = defaults.Language
	}
	if !p.FeedLayout.IsValid() {
		p.FeedLayout = defaults.FeedLayout
	}
}

// Validate checks if the preferences carry supported values
func (p *UserPreferences) Validate() error {
	if !p.FeedLayout.IsValid() {
		return errors.New("feed layout must be grid or list")
	}

	if p.Language == "" {
		return errors.New("language cannot be empty")
	}

	return nil
}

// IsFavorite reports whether the item ID is in the favorites set.
// Membership is a linear scan; the set stays small in practice.
func (p *UserPreferences) IsFavorite(id string) bool {
	for _, fav := range p.FavoriteItems {
		if fav == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so store snapshots cannot alias internal slices
func (p *UserPreferences) Clone() UserPreferences {
	clone := *p
	clone.Categories = append([]string(nil), p.Categories...)
	clone.FavoriteItems = append([]string(nil), p.FavoriteItems...)
	return clone
}
