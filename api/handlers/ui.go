// ABOUTME: UI-state handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for navigation flags, modals and notifications

package handlers

import (
	"context"
	"net/http"

	"pulsefeed-api/api/dto/mappers"
	"pulsefeed-api/api/dto/requests"
	"pulsefeed-api/api/dto/responses"
	"pulsefeed-api/core/state"

	"github.com/danielgtaylor/huma/v2"
)

// UIHandler handles ui-state HTTP requests
type UIHandler struct {
	store *state.Store
}

// NewUIHandler creates a new ui-state handler
func NewUIHandler(store *state.Store) *UIHandler {
	return &UIHandler{store: store}
}

// RegisterRoutes registers all ui-state routes
func (h *UIHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getState",
		Method:      http.MethodGet,
		Path:        "/state",
		Summary:     "Get the transient state snapshot",
		Description: "Returns the content and ui slices for diagnostics and hydration",
		Tags:        []string{"State"},
	}, h.GetState)

	huma.Register(api, huma.Operation{
		OperationID: "setActiveSection",
		Method:      http.MethodPut,
		Path:        "/ui/section",
		Summary:     "Switch the active section",
		Tags:        []string{"UI"},
	}, h.SetActiveSection)

	huma.Register(api, huma.Operation{
		OperationID: "toggleSidebar",
		Method:      http.MethodPost,
		Path:        "/ui/sidebar/toggle",
		Summary:     "Toggle the sidebar",
		Tags:        []string{"UI"},
	}, h.ToggleSidebar)

	huma.Register(api, huma.Operation{
		OperationID: "setSidebar",
		Method:      http.MethodPut,
		Path:        "/ui/sidebar",
		Summary:     "Set the sidebar state",
		Tags:        []string{"UI"},
	}, h.SetSidebar)

	huma.Register(api, huma.Operation{
		OperationID: "setSearchModal",
		Method:      http.MethodPut,
		Path:        "/ui/modals/search",
		Summary:     "Open or close the search modal",
		Tags:        []string{"UI"},
	}, h.SetSearchModal)

	huma.Register(api, huma.Operation{
		OperationID: "setSettingsModal",
		Method:      http.MethodPut,
		Path:        "/ui/modals/settings",
		Summary:     "Open or close the settings modal",
		Tags:        []string{"UI"},
	}, h.SetSettingsModal)

	huma.Register(api, huma.Operation{
		OperationID: "addNotification",
		Method:      http.MethodPost,
		Path:        "/ui/notifications",
		Summary:     "Queue a notification",
		Tags:        []string{"UI"},
	}, h.AddNotification)

	huma.Register(api, huma.Operation{
		OperationID: "removeNotification",
		Method:      http.MethodDelete,
		Path:        "/ui/notifications/{id}",
		Summary:     "Remove a notification",
		Tags:        []string{"UI"},
	}, h.RemoveNotification)

	huma.Register(api, huma.Operation{
		OperationID: "clearNotifications",
		Method:      http.MethodDelete,
		Path:        "/ui/notifications",
		Summary:     "Clear all notifications",
		Tags:        []string{"UI"},
	}, h.ClearNotifications)
}

// UIStateOutput is the shared output shape for ui-state operations
type UIStateOutput struct {
	Body responses.UIStateResponse
}

// GetStateInput defines the input for the GetState operation
type GetStateInput struct{}

// GetStateOutput defines the output for the GetState operation
type GetStateOutput struct {
	Body responses.StateResponse
}

// GetState handles the GET /state endpoint
func (h *UIHandler) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	return &GetStateOutput{
		Body: responses.StateResponse{
			Content: mappers.ToContentStateResponse(h.store.Content.Snapshot()),
			UI:      mappers.ToUIStateResponse(h.store.UI.Snapshot()),
		},
	}, nil
}

// SetActiveSectionInput defines the input for the SetActiveSection operation
type SetActiveSectionInput struct {
	Body requests.SetSectionRequest `json:"body"`
}

// SetActiveSection handles the PUT /ui/section endpoint
func (h *UIHandler) SetActiveSection(ctx context.Context, input *SetActiveSectionInput) (*UIStateOutput, error) {
	section := state.Section(input.Body.Section)
	if !section.IsValid() {
		return nil, huma.Error400BadRequest("Unknown section: " + input.Body.Section)
	}

	h.store.UI.SetActiveSection(section)
	return h.uiState(), nil
}

// ToggleSidebarInput defines the input for the ToggleSidebar operation
type ToggleSidebarInput struct{}

// ToggleSidebar handles the POST /ui/sidebar/toggle endpoint
func (h *UIHandler) ToggleSidebar(ctx context.Context, input *ToggleSidebarInput) (*UIStateOutput, error) {
	h.store.UI.ToggleSidebar()
	return h.uiState(), nil
}

// SetSidebarInput defines the input for the SetSidebar operation
type SetSidebarInput struct {
	Body requests.SetSidebarRequest `json:"body"`
}

// SetSidebar handles the PUT /ui/sidebar endpoint
func (h *UIHandler) SetSidebar(ctx context.Context, input *SetSidebarInput) (*UIStateOutput, error) {
	h.store.UI.SetSidebarCollapsed(input.Body.Collapsed)
	return h.uiState(), nil
}

// SetModalInput defines the input for the modal operations
type SetModalInput struct {
	Body requests.SetModalRequest `json:"body"`
}

// SetSearchModal handles the PUT /ui/modals/search endpoint
func (h *UIHandler) SetSearchModal(ctx context.Context, input *SetModalInput) (*UIStateOutput, error) {
	h.store.UI.SetSearchModalOpen(input.Body.Open)
	return h.uiState(), nil
}

// SetSettingsModal handles the PUT /ui/modals/settings endpoint
func (h *UIHandler) SetSettingsModal(ctx context.Context, input *SetModalInput) (*UIStateOutput, error) {
	h.store.UI.SetSettingsModalOpen(input.Body.Open)
	return h.uiState(), nil
}

// AddNotificationInput defines the input for the AddNotification operation
type AddNotificationInput struct {
	Body requests.AddNotificationRequest `json:"body"`
}

// AddNotificationOutput defines the output for the AddNotification operation
type AddNotificationOutput struct {
	Body responses.NotificationResponse
}

// AddNotification handles the POST /ui/notifications endpoint
func (h *UIHandler) AddNotification(ctx context.Context, input *AddNotificationInput) (*AddNotificationOutput, error) {
	ntype := state.NotificationType(input.Body.Type)
	if !ntype.IsValid() {
		return nil, huma.Error400BadRequest("Unknown notification type: " + input.Body.Type)
	}

	n := h.store.UI.AddNotification(ntype, input.Body.Message)

	return &AddNotificationOutput{
		Body: responses.NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Message:   n.Message,
			Timestamp: n.Timestamp,
		},
	}, nil
}

// RemoveNotificationInput defines the input for the RemoveNotification operation
type RemoveNotificationInput struct {
	ID string `path:"id" doc:"Notification ID"`
}

// RemoveNotification handles the DELETE /ui/notifications/{id} endpoint
func (h *UIHandler) RemoveNotification(ctx context.Context, input *RemoveNotificationInput) (*UIStateOutput, error) {
	h.store.UI.RemoveNotification(input.ID)
	return h.uiState(), nil
}

// ClearNotificationsInput defines the input for the ClearNotifications operation
type ClearNotificationsInput struct{}

// ClearNotifications handles the DELETE /ui/notifications endpoint
func (h *UIHandler) ClearNotifications(ctx context.Context, input *ClearNotificationsInput) (*UIStateOutput, error) {
	h.store.UI.ClearNotifications()
	return h.uiState(), nil
}

// uiState snapshots the ui slice into the shared output shape
func (h *UIHandler) uiState() *UIStateOutput {
	return &UIStateOutput{Body: mappers.ToUIStateResponse(h.store.UI.Snapshot())}
}
