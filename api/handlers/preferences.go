// ABOUTME: Preference handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for user preferences and favorites

package handlers

import (
	"context"
	"net/http"

	"pulsefeed-api/api/dto/mappers"
	"pulsefeed-api/api/dto/requests"
	"pulsefeed-api/api/dto/responses"
	"pulsefeed-api/core/content"
	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/state"

	"github.com/danielgtaylor/huma/v2"
)

// PreferencesHandler handles preference-related HTTP requests
type PreferencesHandler struct {
	store *state.Store
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(store *state.Store) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

// RegisterRoutes registers all preference-related routes
func (h *PreferencesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getPreferences",
		Method:      http.MethodGet,
		Path:        "/preferences",
		Summary:     "Get user preferences",
		Tags:        []string{"Preferences"},
	}, h.GetPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "updateCategories",
		Method:      http.MethodPut,
		Path:        "/preferences/categories",
		Summary:     "Replace the selected categories",
		Tags:        []string{"Preferences"},
	}, h.UpdateCategories)

	huma.Register(api, huma.Operation{
		OperationID: "toggleDarkMode",
		Method:      http.MethodPost,
		Path:        "/preferences/darkmode/toggle",
		Summary:     "Toggle dark mode",
		Tags:        []string{"Preferences"},
	}, h.ToggleDarkMode)

	huma.Register(api, huma.Operation{
		OperationID: "updateLanguage",
		Method:      http.MethodPut,
		Path:        "/preferences/language",
		Summary:     "Change the UI language",
		Tags:        []string{"Preferences"},
	}, h.UpdateLanguage)

	huma.Register(api, huma.Operation{
		OperationID: "updateLayout",
		Method:      http.MethodPut,
		Path:        "/preferences/layout",
		Summary:     "Change the feed layout",
		Tags:        []string{"Preferences"},
	}, h.UpdateLayout)

	huma.Register(api, huma.Operation{
		OperationID: "toggleNotifications",
		Method:      http.MethodPost,
		Path:        "/preferences/notifications/toggle",
		Summary:     "Toggle notification delivery",
		Tags:        []string{"Preferences"},
	}, h.ToggleNotifications)

	huma.Register(api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/favorites",
		Summary:     "List favorited items",
		Description: "Resolves the favorite ID set against the loaded and curated items",
		Tags:        []string{"Favorites"},
	}, h.ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPost,
		Path:        "/favorites/{id}",
		Summary:     "Add an item to favorites",
		Description: "Adding an ID already present leaves the set unchanged",
		Tags:        []string{"Favorites"},
	}, h.AddFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/favorites/{id}",
		Summary:     "Remove an item from favorites",
		Tags:        []string{"Favorites"},
	}, h.RemoveFavorite)
}

// PreferencesOutput is the shared output shape for preference operations
type PreferencesOutput struct {
	Body responses.PreferencesResponse
}

// GetPreferencesInput defines the input for the GetPreferences operation
type GetPreferencesInput struct{}

// GetPreferences handles the GET /preferences endpoint
func (h *PreferencesHandler) GetPreferences(ctx context.Context, input *GetPreferencesInput) (*PreferencesOutput, error) {
	prefs := h.store.Preferences.Snapshot()
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}

// UpdateCategoriesInput defines the input for the UpdateCategories operation
type UpdateCategoriesInput struct {
	Body requests.UpdateCategoriesRequest `json:"body"`
}

// UpdateCategories handles the PUT /preferences/categories endpoint
func (h *PreferencesHandler) UpdateCategories(ctx context.Context, input *UpdateCategoriesInput) (*PreferencesOutput, error) {
	for _, c := range input.Body.Categories {
		if !domain.IsKnownCategory(c) {
			return nil, huma.Error400BadRequest("Unknown category: " + c)
		}
	}

	prefs := h.store.Preferences.UpdateCategories(ctx, input.Body.Categories)
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}

// ToggleDarkModeInput defines the input for the ToggleDarkMode operation
type ToggleDarkModeInput struct{}

// ToggleDarkMode handles the POST /preferences/darkmode/toggle endpoint
func (h *PreferencesHandler) ToggleDarkMode(ctx context.Context, input *ToggleDarkModeInput) (*PreferencesOutput, error) {
	prefs := h.store.Preferences.ToggleDarkMode(ctx)
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}

// UpdateLanguageInput defines the input for the UpdateLanguage operation
type UpdateLanguageInput struct {
	Body requests.UpdateLanguageRequest `json:"body"`
}

// UpdateLanguage handles the PUT /preferences/language endpoint
func (h *PreferencesHandler) UpdateLanguage(ctx context.Context, input *UpdateLanguageInput) (*PreferencesOutput, error) {
	supported := false
	for _, lang := range domain.SupportedLanguages {
		if lang == input.Body.Language {
			supported = true
			break
		}
	}
	if !supported {
		return nil, huma.Error400BadRequest("Unsupported language: " + input.Body.Language)
	}

	prefs := h.store.Preferences.UpdateLanguage(ctx, input.Body.Language)
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}

// UpdateLayoutInput defines the input for the UpdateLayout operation
type UpdateLayoutInput struct {
	Body requests.UpdateLayoutRequest `json:"body"`
}

// UpdateLayout handles the PUT /preferences/layout endpoint
func (h *PreferencesHandler) UpdateLayout(ctx context.Context, input *UpdateLayoutInput) (*PreferencesOutput, error) {
	layout := domain.FeedLayout(input.Body.Layout)
	if !layout.IsValid() {
		return nil, huma.Error400BadRequest("Feed layout must be grid or list")
	}

	prefs := h.store.Preferences.UpdateFeedLayout(ctx, layout)
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}

// ToggleNotificationsInput defines the input for the ToggleNotifications operation
type ToggleNotificationsInput struct{}

// ToggleNotifications handles the POST /preferences/notifications/toggle endpoint
func (h *PreferencesHandler) ToggleNotifications(ctx context.Context, input *ToggleNotificationsInput) (*PreferencesOutput, error) {
	prefs := h.store.Preferences.ToggleNotifications(ctx)
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}

// ListFavoritesInput defines the input for the ListFavorites operation
type ListFavoritesInput struct{}

// ListFavoritesOutput defines the output for the ListFavorites operation
type ListFavoritesOutput struct {
	Body responses.SearchResponse
}

// ListFavorites handles the GET /favorites endpoint. IDs that resolve to
// neither a loaded item nor a curated item are skipped.
func (h *PreferencesHandler) ListFavorites(ctx context.Context, input *ListFavoritesInput) (*ListFavoritesOutput, error) {
	prefs := h.store.Preferences.Snapshot()
	snap := h.store.Content.Snapshot()

	byID := make(map[string]domain.ContentItem)
	for _, item := range content.AllSeedContent() {
		byID[item.ID] = item
	}
	for _, item := range snap.Items {
		byID[item.ID] = item
	}

	favorites := make([]domain.ContentItem, 0, len(prefs.FavoriteItems))
	for _, id := range prefs.FavoriteItems {
		if item, ok := byID[id]; ok {
			favorites = append(favorites, item)
		}
	}

	itemResponses := mappers.ToContentItemResponses(favorites)
	mappers.MarkFavorites(itemResponses, &prefs)

	return &ListFavoritesOutput{
		Body: responses.SearchResponse{Results: itemResponses},
	}, nil
}

// FavoriteInput defines the input for the favorite add/remove operations
type FavoriteInput struct {
	ID string `path:"id" doc:"Content item ID"`
}

// AddFavorite handles the POST /favorites/{id} endpoint
func (h *PreferencesHandler) AddFavorite(ctx context.Context, input *FavoriteInput) (*PreferencesOutput, error) {
	prefs := h.store.Preferences.AddFavorite(ctx, input.ID)
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}

// RemoveFavorite handles the DELETE /favorites/{id} endpoint
func (h *PreferencesHandler) RemoveFavorite(ctx context.Context, input *FavoriteInput) (*PreferencesOutput, error) {
	prefs := h.store.Preferences.RemoveFavorite(ctx, input.ID)
	return &PreferencesOutput{Body: *mappers.ToPreferencesResponse(&prefs)}, nil
}
