// ABOUTME: Response DTOs for content-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// ContentItemResponse represents a content item in API responses
type ContentItemResponse struct {
	ID          string `json:"id" doc:"Unique identifier for the item"`
	Type        string `json:"type" doc:"Item type: news, movie or social"`
	Title       string `json:"title" doc:"Item title"`
	Description string `json:"description" doc:"Item description"`
	Image       string `json:"image,omitempty" doc:"Image URL"`
	URL         string `json:"url" doc:"Link to the full content"`
	PublishedAt string `json:"publishedAt" doc:"Publication timestamp, RFC3339"`
	Category    string `json:"category" doc:"Item category"`
	Source      string `json:"source" doc:"Item source"`
	IsFavorite  bool   `json:"isFavorite" doc:"Whether the item is in the user's favorites"`
}

// FeedResponse represents an aggregated feed page
type FeedResponse struct {
	Items      []ContentItemResponse `json:"items" doc:"Aggregated content items"`
	TotalItems int                   `json:"total_items" doc:"Total items before pagination"`
	Page       int                   `json:"page" doc:"Current page number"`
	PerPage    int                   `json:"per_page" doc:"Items per page"`
	HasMore    bool                  `json:"has_more" doc:"Whether more pages remain"`
}

// SearchResponse represents search results for a query
type SearchResponse struct {
	Query   string                `json:"query" doc:"The search query"`
	Results []ContentItemResponse `json:"results" doc:"Matching items"`
}

// TrendingResponse represents the trending selection
type TrendingResponse struct {
	Items []ContentItemResponse `json:"items" doc:"Trending items, at most six"`
}
