// ABOUTME: Store composes the three independent state slices into one container
// ABOUTME: Built explicitly at startup and passed to every component that needs it

package state

import (
	"context"

	"pulsefeed-api/core/interfaces"
)

// Store is the process-wide state container. It owns the content, ui and
// preferences slices exclusively; services and handlers read snapshots and
// dispatch operations, never holding independent copies.
type Store struct {
	Content     *ContentSlice
	UI          *UISlice
	Preferences *PreferencesSlice
}

// NewStore builds the store, loading persisted preferences once. Absence or
// a load failure falls back to the built-in defaults silently.
func NewStore(ctx context.Context, deps interfaces.Dependencies, storage interfaces.PreferenceStorage) *Store {
	return &Store{
		Content:     NewContentSlice(),
		UI:          NewUISlice(),
		Preferences: NewPreferencesSlice(ctx, storage, deps.Logger),
	}
}
