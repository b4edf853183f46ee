// ABOUTME: Response DTOs for preference-related API endpoints
// ABOUTME: Mirrors the persisted preferences shape

package responses

// PreferencesResponse represents the user preferences in API responses
type PreferencesResponse struct {
	Categories           []string `json:"categories" doc:"Ordered list of selected categories"`
	DarkMode             bool     `json:"darkMode" doc:"Dark theme enabled"`
	FavoriteItems        []string `json:"favoriteItems" doc:"Favorited item IDs"`
	Language             string   `json:"language" doc:"UI language code"`
	FeedLayout           string   `json:"feedLayout" doc:"Feed layout: grid or list"`
	NotificationsEnabled bool     `json:"notificationsEnabled" doc:"Notification delivery enabled"`
}
