// ABOUTME: Content handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for feed aggregation, search, trending and reordering

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
	"pulsefeed-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// ContentProvider interface defines the methods needed from the content service
type ContentProvider interface {
	GetContentByCategories(ctx context.Context, categories []string) ([]domain.ContentItem, error)
	SearchContent(ctx context.Context, query string) ([]domain.ContentItem, error)
	GetTrendingContent(ctx context.Context) ([]domain.ContentItem, error)
}

// ContentHandler handles content-related HTTP requests
type ContentHandler struct {
	contentService ContentProvider
	store          *state.Store
	flags          featureflags.Manager
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService ContentProvider, store *state.Store, flags featureflags.Manager) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		store:          store,
		flags:          flags,
	}
}

// RegisterRoutes registers all content-related routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getContent",
		Method:      http.MethodGet,
		Path:        "/content",
		Summary:     "Get aggregated content",
		Description: "Aggregates live and curated content for the selected categories. An empty category list serves the default mix.",
		Tags:        []string{"Content"},
	}, h.GetContent)

	huma.Register(api, huma.Operation{
		OperationID: "searchContent",
		Method:      http.MethodGet,
		Path:        "/content/search",
		Summary:     "Search content",
		Description: "Case-insensitive substring search over title, description and category of the curated datasets",
		Tags:        []string{"Content"},
	}, h.SearchContent)

	huma.Register(api, huma.Operation{
		OperationID: "getTrendingContent",
		Method:      http.MethodGet,
		Path:        "/content/trending",
		Summary:     "Get trending content",
		Description: "Returns up to six randomly selected items from the curated datasets",
		Tags:        []string{"Content"},
	}, h.GetTrending)

	huma.Register(api, huma.Operation{
		OperationID: "reorderContent",
		Method:      http.MethodPut,
		Path:        "/content/order",
		Summary:     "Reorder displayed content",
		Description: "Replaces the displayed item order wholesale with the supplied ID list",
		Tags:        []string{"Content"},
	}, h.ReorderContent)

	huma.Register(api, huma.Operation{
		OperationID: "updateContentItem",
		Method:      http.MethodPut,
		Path:        "/content/item",
		Summary:     "Update a displayed content item",
		Description: "Replaces display fields of a currently loaded item",
		Tags:        []string{"Content"},
	}, h.UpdateItem)
}

// GetContentInput defines the input for the GetContent operation
type GetContentInput struct {
	Categories string `query:"categories" doc:"Comma-separated category list; empty for the default mix"`
	Page       int    `query:"page,omitempty" minimum:"1" default:"1" doc:"Page number"`
	PerPage    int    `query:"per_page,omitempty" minimum:"1" maximum:"100" default:"10" doc:"Items per page"`
}

// GetContentOutput defines the output for the GetContent operation
type GetContentOutput struct {
	Body responses.FeedResponse
}

// GetContent handles the GET /content endpoint
func (h *ContentHandler) GetContent(ctx context.Context, input *GetContentInput) (*GetContentOutput, error) {
	categories := requests.SplitCategories(input.Categories)

	// Issue a load token so a stale response can never clobber a newer one
	token := h.store.Content.BeginLoad()

	items, err := h.contentService.GetContentByCategories(ctx, categories)
	if err != nil {
		h.store.Content.FailLoad(token, "Failed to load content")
		return nil, toHumaError(err)
	}

	h.store.Content.CompleteLoad(token, items)

	if input.Page == 0 {
		input.Page = 1
	}
	if input.PerPage == 0 {
		input.PerPage = 10
	}

	page := content.PaginateItems(items, input.Page, input.PerPage)
	h.store.Content.SetPage(input.Page)
	h.store.Content.SetHasMore(content.HasMorePages(len(items), input.Page, input.PerPage))

	itemResponses := mappers.ToContentItemResponses(page)
	prefs := h.store.Preferences.Snapshot()
	mappers.MarkFavorites(itemResponses, &prefs)

	return &GetContentOutput{
		Body: responses.FeedResponse{
			Items:      itemResponses,
			TotalItems: len(items),
			Page:       input.Page,
			PerPage:    input.PerPage,
			HasMore:    content.HasMorePages(len(items), input.Page, input.PerPage),
		},
	}, nil
}

// SearchContentInput defines the input for the SearchContent operation
type SearchContentInput struct {
	Query string `query:"q" doc:"Search query; empty or whitespace yields no results"`
}

// SearchContentOutput defines the output for the SearchContent operation
type SearchContentOutput struct {
	Body responses.SearchResponse
}

// SearchContent handles the GET /content/search endpoint
func (h *ContentHandler) SearchContent(ctx context.Context, input *SearchContentInput) (*SearchContentOutput, error) {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.SearchEnabled) {
		return nil, huma.Error404NotFound("Search is disabled")
	}

	token := h.store.Content.BeginSearch(input.Query)

	results, err := h.contentService.SearchContent(ctx, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	h.store.Content.CompleteSearch(token, results)

	itemResponses := mappers.ToContentItemResponses(results)
	prefs := h.store.Preferences.Snapshot()
	mappers.MarkFavorites(itemResponses, &prefs)

	return &SearchContentOutput{
		Body: responses.SearchResponse{
			Query:   input.Query,
			Results: itemResponses,
		},
	}, nil
}

// GetTrendingInput defines the input for the GetTrending operation
type GetTrendingInput struct{}

// GetTrendingOutput defines the output for the GetTrending operation
type GetTrendingOutput struct {
	Body responses.TrendingResponse
}

// GetTrending handles the GET /content/trending endpoint
func (h *ContentHandler) GetTrending(ctx context.Context, input *GetTrendingInput) (*GetTrendingOutput, error) {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.TrendingEnabled) {
		return nil, huma.Error404NotFound("Trending is disabled")
	}

	items, err := h.contentService.GetTrendingContent(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	itemResponses := mappers.ToContentItemResponses(items)
	prefs := h.store.Preferences.Snapshot()
	mappers.MarkFavorites(itemResponses, &prefs)

	return &GetTrendingOutput{
		Body: responses.TrendingResponse{Items: itemResponses},
	}, nil
}

// ReorderContentInput defines the input for the ReorderContent operation
type ReorderContentInput struct {
	Body requests.ReorderItemsRequest `json:"body"`
}

// ReorderContentOutput defines the output for the ReorderContent operation
type ReorderContentOutput struct {
	Body responses.FeedResponse
}

// ReorderContent handles the PUT /content/order endpoint. The ID list is the
// complete new display order; items not listed are dropped from the view.
func (h *ContentHandler) ReorderContent(ctx context.Context, input *ReorderContentInput) (*ReorderContentOutput, error) {
	snap := h.store.Content.Snapshot()

	byID := make(map[string]domain.ContentItem, len(snap.Items))
	for _, item := range snap.Items {
		byID[item.ID] = item
	}

	reordered := make([]domain.ContentItem, 0, len(input.Body.IDs))
	for _, id := range input.Body.IDs {
		item, ok := byID[id]
		if !ok {
			return nil, huma.Error400BadRequest("Unknown item ID: " + id)
		}
		reordered = append(reordered, item)
	}

	h.store.Content.ReorderItems(reordered)

	itemResponses := mappers.ToContentItemResponses(reordered)
	prefs := h.store.Preferences.Snapshot()
	mappers.MarkFavorites(itemResponses, &prefs)

	return &ReorderContentOutput{
		Body: responses.FeedResponse{
			Items:      itemResponses,
			TotalItems: len(reordered),
			Page:       snap.Page,
			PerPage:    len(reordered),
			HasMore:    snap.HasMore,
		},
	}, nil
}

// UpdateItemInput defines the input for the UpdateItem operation
type UpdateItemInput struct {
	Body requests.UpdateItemRequest `json:"body"`
}

// UpdateItemOutput defines the output for the UpdateItem operation
type UpdateItemOutput struct {
	Body responses.ContentItemResponse
}

// UpdateItem handles the PUT /content/item endpoint
func (h *ContentHandler) UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error) {
	snap := h.store.Content.Snapshot()

	var current *domain.ContentItem
	for i := range snap.Items {
		if snap.Items[i].ID == input.Body.ID {
			current = &snap.Items[i]
			break
		}
	}
	if current == nil {
		return nil, huma.Error404NotFound("Item not loaded: " + input.Body.ID)
	}

	updated := *current
	if input.Body.Title != "" {
		updated.Title = input.Body.Title
	}
	if input.Body.Description != "" {
		updated.Description = input.Body.Description
	}
	updated.IsFavorite = input.Body.IsFavorite

	h.store.Content.UpdateItem(updated)

	return &UpdateItemOutput{
		Body: *mappers.ToContentItemResponse(&updated),
	}, nil
}
