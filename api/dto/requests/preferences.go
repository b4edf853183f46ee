// ABOUTME: Request DTOs for preference-related API endpoints
// ABOUTME: Provides validation for preference mutations

package requests

// UpdateCategoriesRequest represents the request body for replacing the
// selected category set
type UpdateCategoriesRequest struct {
	// Categories is the ordered category selection
	Categories []string `json:"categories" doc:"Ordered list of selected categories"`
}

// UpdateLanguageRequest represents the request body for changing the UI language
type UpdateLanguageRequest struct {
	// Language is the UI language code
	Language string `json:"language" required:"true" minLength:"2" doc:"Language code, e.g. en"`
}

// UpdateLayoutRequest represents the request body for changing the feed layout
type UpdateLayoutRequest struct {
	// Layout is either grid or list
	Layout string `json:"layout" required:"true" enum:"grid,list" doc:"Feed layout mode"`
}
