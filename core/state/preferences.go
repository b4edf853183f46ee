// ABOUTME: Preferences slice holds user preferences with persistence after each commit
// ABOUTME: Transitions are pure; the storage write runs as an explicit follow-up step

package state

import (
	"context"
	"sync"

	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/interfaces"
)

// ThemeApplier receives the dark-mode state synchronously with each toggle.
// The presentation layer hangs its theme switch off this hook.
type ThemeApplier interface {
	ApplyTheme(darkMode bool)
}

// PreferencesSlice owns the user preferences. Every mutation applies a pure
// transition under the lock, then persists the full object as a follow-up
// step outside it. Persistence failures are logged and never corrupt the
// in-memory state.
type PreferencesSlice struct {
	mu      sync.Mutex
	prefs   domain.UserPreferences
	storage interfaces.PreferenceStorage
	logger  interfaces.Logger
	theme   ThemeApplier
}

// NewPreferencesSlice loads persisted preferences once, falling back to
// defaults when nothing is stored or the stored object cannot be parsed
func NewPreferencesSlice(ctx context.Context, storage interfaces.PreferenceStorage, logger interfaces.Logger) *PreferencesSlice {
	prefs := domain.DefaultPreferences()

	if storage != nil {
		if loaded, err := storage.Load(ctx); err == nil && loaded != nil {
			loaded.Normalize()
			prefs = *loaded
		} else if err != nil && logger != nil {
			logger.Warn("Failed to load preferences, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &PreferencesSlice{
		prefs:   prefs,
		storage: storage,
		logger:  logger,
	}
}

// SetThemeApplier installs the synchronous dark-mode hook
func (s *PreferencesSlice) SetThemeApplier(theme ThemeApplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

// Snapshot returns a deep copy of the current preferences
func (s *PreferencesSlice) Snapshot() domain.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Clone()
}

// UpdateCategories replaces the selected category set
func (s *PreferencesSlice) UpdateCategories(ctx context.Context, categories []string) domain.UserPreferences {
	s.mu.Lock()
	s.prefs.Categories = append([]string(nil), categories...)
	snap := s.prefs.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return snap
}

// ToggleDarkMode flips the dark-mode flag. The theme hook fires
// synchronously with the state change, before persistence.
func (s *PreferencesSlice) ToggleDarkMode(ctx context.Context) domain.UserPreferences {
	s.mu.Lock()
	s.prefs.DarkMode = !s.prefs.DarkMode
	snap := s.prefs.Clone()
	theme := s.theme
	s.mu.Unlock()

	if theme != nil {
		theme.ApplyTheme(snap.DarkMode)
	}

	s.persist(ctx, snap)
	return snap
}

// AddFavorite adds an item ID to the favorites set. Adding an ID that is
// already present leaves the set unchanged and skips the persistence write.
func (s *PreferencesSlice) AddFavorite(ctx context.Context, id string) domain.UserPreferences {
	s.mu.Lock()
	if s.prefs.IsFavorite(id) {
		snap := s.prefs.Clone()
		s.mu.Unlock()
		return snap
	}
	s.prefs.FavoriteItems = append(s.prefs.FavoriteItems, id)
	snap := s.prefs.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return snap
}

// RemoveFavorite removes an item ID from the favorites set
func (s *PreferencesSlice) RemoveFavorite(ctx context.Context, id string) domain.UserPreferences {
	s.mu.Lock()
	kept := s.prefs.FavoriteItems[:0]
	for _, fav := range s.prefs.FavoriteItems {
		if fav != id {
			kept = append(kept, fav)
		}
	}
	s.prefs.FavoriteItems = kept
	snap := s.prefs.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return snap
}

// UpdateLanguage sets the UI language code
func (s *PreferencesSlice) UpdateLanguage(ctx context.Context, language string) domain.UserPreferences {
	s.mu.Lock()
	s.prefs.Language = language
	snap := s.prefs.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return snap
}

// UpdateFeedLayout sets the feed layout mode
func (s *PreferencesSlice) UpdateFeedLayout(ctx context.Context, layout domain.FeedLayout) domain.UserPreferences {
	s.mu.Lock()
	s.prefs.FeedLayout = layout
	snap := s.prefs.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return snap
}

// ToggleNotifications flips the notifications-enabled flag
func (s *PreferencesSlice) ToggleNotifications(ctx context.Context) domain.UserPreferences {
	s.mu.Lock()
	s.prefs.NotificationsEnabled = !s.prefs.NotificationsEnabled
	snap := s.prefs.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return snap
}

// persist writes the full preferences object after a transition commits
func (s *PreferencesSlice) persist(ctx context.Context, snap domain.UserPreferences) {
	if s.storage == nil {
		return
	}

	if err := s.storage.Save(ctx, &snap); err != nil && s.logger != nil {
		s.logger.Error("Failed to persist preferences", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
