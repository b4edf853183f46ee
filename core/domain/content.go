// ABOUTME: ContentItem domain model represents a single unit of feed content
// ABOUTME: Covers news articles, movie entries and social posts with one shape

package domain

import "errors"

// ContentType identifies the kind of a content item
type ContentType string

// The closed set of content types
const (
	ContentTypeNews   ContentType = "news"
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSocial ContentType = "social"
)

// IsValid reports whether the content type is one of the known values
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeNews, ContentTypeMovie, ContentTypeSocial:
		return true
	}
	return false
}

// PlaceholderURL is substituted when an item carries no link
const PlaceholderURL = "#"

// ContentItem represents an individual entry in the personalized feed
type ContentItem struct {
	// ID is the unique identifier within a loaded batch
	ID string `json:"id"`

	// Type is one of news, movie or social
	Type ContentType `json:"type"`

	// Title is the item's headline
	Title string `json:"title"`

	// Description contains the item's summary text
	Description string `json:"description"`

	// Image is an optional image URL
	Image string `json:"image,omitempty"`

	// URL links to the full content, placeholder when absent
	URL string `json:"url,omitempty"`

	// PublishedAt is an RFC3339 timestamp string, used for display only
	PublishedAt string `json:"publishedAt"`

	// Category is a free-form category string
	Category string `json:"category"`

	// Source names where the item came from, display only
	Source string `json:"source"`

	// IsFavorite is carried for API compatibility; favorites are tracked
	// by ID on the preferences, not on the item itself
	IsFavorite bool `json:"isFavorite,omitempty"`
}

// KnownCategories is the fixed category set offered by the settings surface.
// Item categories are not validated against it.
var KnownCategories = []string{
	"technology",
	"business",
	"entertainment",
	"sports",
	"science",
	"health",
	"environment",
	"finance",
	"politics",
	"travel",
	"food",
	"fashion",
	"photography",
	"fitness",
	"music",
	"movies",
	"books",
	"art",
	"education",
	"lifestyle",
}

// IsKnownCategory reports whether the category appears in KnownCategories
func IsKnownCategory(category string) bool {
	for _, c := range KnownCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Validate checks if the item has valid required fields
func (c *ContentItem) Validate() error {
	if c.ID == "" {
		return errors.New("content item ID cannot be empty")
	}

	if !c.Type.IsValid() {
		return errors.New("content item type must be news, movie or social")
	}

	if c.Title == "" {
		return errors.New("content item title cannot be empty")
	}

	if c.Description == "" {
		return errors.New("content item description cannot be empty")
	}

	return nil
}

// Link returns the item URL, falling back to the placeholder
func (c *ContentItem) Link() string {
	if c.URL == "" {
		return PlaceholderURL
	}
	return c.URL
}
