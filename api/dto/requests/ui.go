// ABOUTME: Request DTOs for ui-state API endpoints
// ABOUTME: Provides validation for section switches and notifications

package requests

// SetSectionRequest represents the request body for switching the active section
type SetSectionRequest struct {
	// Section is one of feed, trending, favorites, settings
	Section string `json:"section" required:"true" enum:"feed,trending,favorites,settings" doc:"Active section"`
}

// SetSidebarRequest represents the request body for setting the sidebar state
type SetSidebarRequest struct {
	// Collapsed is the desired sidebar state
	Collapsed bool `json:"collapsed" doc:"Whether the sidebar is collapsed"`
}

// SetModalRequest represents the request body for setting a modal flag
type SetModalRequest struct {
	// Open is the desired modal state
	Open bool `json:"open" doc:"Whether the modal is open"`
}

// AddNotificationRequest represents the request body for queueing a notification
type AddNotificationRequest struct {
	// Type classifies the notification
	Type string `json:"type" required:"true" enum:"success,error,info,warning" doc:"Notification type"`

	// Message is the notification text
	Message string `json:"message" required:"true" minLength:"1" doc:"Notification message"`
}
