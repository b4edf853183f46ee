// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"pulsefeed-api/core/domain"
)

// PreferenceStorage defines the interface for user preference persistence.
// Every save overwrites the whole object; there is no incremental update.
type PreferenceStorage interface {
	// Save persists the full preferences object
	Save(ctx context.Context, prefs *domain.UserPreferences) error

	// Load retrieves the persisted preferences.
	// Returns nil without error when nothing has been persisted yet.
	Load(ctx context.Context) (*domain.UserPreferences, error)
}
