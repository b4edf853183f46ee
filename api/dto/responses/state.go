// ABOUTME: Response DTOs for store state snapshots
// ABOUTME: Exposes the content and ui slices for diagnostics

package responses

// NotificationResponse represents a queued UI notification
type NotificationResponse struct {
	ID        string `json:"id" doc:"Notification ID"`
	Type      string `json:"type" doc:"Notification type"`
	Message   string `json:"message" doc:"Notification message"`
	Timestamp int64  `json:"timestamp" doc:"Creation time, unix milliseconds"`
}

// ContentStateResponse represents the content slice snapshot
type ContentStateResponse struct {
	Items         []ContentItemResponse `json:"items" doc:"Currently displayed items"`
	SearchResults []ContentItemResponse `json:"searchResults" doc:"Last search results"`
	Loading       bool                  `json:"loading" doc:"Whether a load is in flight"`
	Error         string                `json:"error,omitempty" doc:"User-visible error message"`
	SearchQuery   string                `json:"searchQuery" doc:"Last search query"`
	HasMore       bool                  `json:"hasMore" doc:"Whether more pages remain"`
	Page          int                   `json:"page" doc:"Current page number"`
}

// UIStateResponse represents the ui slice snapshot
type UIStateResponse struct {
	SidebarCollapsed  bool                   `json:"sidebarCollapsed" doc:"Sidebar collapsed flag"`
	ActiveSection     string                 `json:"activeSection" doc:"Active section"`
	SearchModalOpen   bool                   `json:"searchModalOpen" doc:"Search modal flag"`
	SettingsModalOpen bool                   `json:"settingsModalOpen" doc:"Settings modal flag"`
	Notifications     []NotificationResponse `json:"notifications" doc:"Queued notifications"`
}

// StateResponse represents the full transient store snapshot
type StateResponse struct {
	Content ContentStateResponse `json:"content" doc:"Content slice state"`
	UI      UIStateResponse      `json:"ui" doc:"UI slice state"`
}
