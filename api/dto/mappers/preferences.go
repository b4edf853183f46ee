// ABOUTME: Mappers for converting preferences and state snapshots to API DTOs
// ABOUTME: Keeps the store types out of the HTTP layer

package mappers

import (
	"pulsefeed-api/api/dto/responses"
	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/state"
)

// ToPreferencesResponse converts domain UserPreferences to its response DTO
func ToPreferencesResponse(prefs *domain.UserPreferences) *responses.PreferencesResponse {
	if prefs == nil {
		return nil
	}

	return &responses.PreferencesResponse{
		Categories:           append([]string{}, prefs.Categories...),
		DarkMode:             prefs.DarkMode,
		FavoriteItems:        append([]string{}, prefs.FavoriteItems...),
		Language:             prefs.Language,
		FeedLayout:           string(prefs.FeedLayout),
		NotificationsEnabled: prefs.NotificationsEnabled,
	}
}

// ToNotificationResponses converts queued notifications to DTOs
func ToNotificationResponses(notifications []state.Notification) []responses.NotificationResponse {
	result := make([]responses.NotificationResponse, 0, len(notifications))

	for _, n := range notifications {
		result = append(result, responses.NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Message:   n.Message,
			Timestamp: n.Timestamp,
		})
	}

	return result
}

// ToContentStateResponse converts a content slice snapshot to its DTO
func ToContentStateResponse(snap state.ContentState) responses.ContentStateResponse {
	return responses.ContentStateResponse{
		Items:         ToContentItemResponses(snap.Items),
		SearchResults: ToContentItemResponses(snap.SearchResults),
		Loading:       snap.Loading,
		Error:         snap.Error,
		SearchQuery:   snap.SearchQuery,
		HasMore:       snap.HasMore,
		Page:          snap.Page,
	}
}

// ToUIStateResponse converts a ui slice snapshot to its DTO
func ToUIStateResponse(snap state.UIState) responses.UIStateResponse {
	return responses.UIStateResponse{
		SidebarCollapsed:  snap.SidebarCollapsed,
		ActiveSection:     string(snap.ActiveSection),
		SearchModalOpen:   snap.SearchModalOpen,
		SettingsModalOpen: snap.SettingsModalOpen,
		Notifications:     ToNotificationResponses(snap.Notifications),
	}
}
