// ABOUTME: Pagination utilities for content items
// ABOUTME: Provides functions to paginate aggregated items for API responses

package content

import "pulsefeed-api/core/domain"

// PaginateItems returns a paginated slice of content items
func PaginateItems(items []domain.ContentItem, page, perPage int) []domain.ContentItem {
	// Handle invalid page
	if page < 1 {
		page = 1
	}

	// Handle invalid perPage
	if perPage < 1 {
		perPage = 10
	}

	// Calculate start and end indices
	start := (page - 1) * perPage
	end := start + perPage

	// Check if start is beyond items
	if start >= len(items) {
		return []domain.ContentItem{}
	}

	// Adjust end if it's beyond items
	if end > len(items) {
		end = len(items)
	}

	// Return the paginated slice
	return items[start:end]
}

// HasMorePages reports whether items remain past the given page
func HasMorePages(total, page, perPage int) bool {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return page*perPage < total
}
