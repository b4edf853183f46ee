// ABOUTME: Request DTOs for content-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import "strings"

// ReorderItemsRequest represents the request body for a wholesale reorder
type ReorderItemsRequest struct {
	// IDs is the full item ID list in the new display order
	IDs []string `json:"ids" minItems:"1" doc:"Item IDs in the new display order"`
}

// UpdateItemRequest represents the request body for updating a single item
type UpdateItemRequest struct {
	ID          string `json:"id" required:"true" doc:"Item ID to update"`
	Title       string `json:"title,omitempty" doc:"Replacement title"`
	Description string `json:"description,omitempty" doc:"Replacement description"`
	IsFavorite  bool   `json:"isFavorite,omitempty" doc:"Favorite display flag"`
}

// SplitCategories parses a comma-separated category list, dropping empty
// entries. An empty input yields an empty (not nil) slice so the
// aggregation default path triggers.
func SplitCategories(raw string) []string {
	categories := []string{}
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}
