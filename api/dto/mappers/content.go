// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"pulsefeed-api/api/dto/responses"
	"pulsefeed-api/core/domain"
)

// ToContentItemResponse converts a domain ContentItem to its response DTO
func ToContentItemResponse(item *domain.ContentItem) *responses.ContentItemResponse {
	if item == nil {
		return nil
	}

	return &responses.ContentItemResponse{
		ID:          item.ID,
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		Image:       item.Image,
		URL:         item.Link(),
		PublishedAt: item.PublishedAt,
		Category:    item.Category,
		Source:      item.Source,
		IsFavorite:  item.IsFavorite,
	}
}

// ToContentItemResponses converts multiple domain ContentItems to DTOs
func ToContentItemResponses(items []domain.ContentItem) []responses.ContentItemResponse {
	result := make([]responses.ContentItemResponse, 0, len(items))

	for i := range items {
		if r := ToContentItemResponse(&items[i]); r != nil {
			result = append(result, *r)
		}
	}

	return result
}

// MarkFavorites sets the favorite flag on each response item that appears in
// the user's favorite set
func MarkFavorites(items []responses.ContentItemResponse, prefs *domain.UserPreferences) {
	if prefs == nil {
		return
	}

	for i := range items {
		items[i].IsFavorite = prefs.IsFavorite(items[i].ID)
	}
}
