// ABOUTME: Cache-backed preference storage with whole-object JSON overwrite
// ABOUTME: Persists user preferences under a single fixed key per the storage contract

package cachestore

import (
	"context"
	"encoding/json"

	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/interfaces"
)

// DefaultPreferencesKey is the fixed storage key for the preferences object
const DefaultPreferencesKey = "userPreferences"

// PreferenceStore implements PreferenceStorage over any Cache backend.
// With the SQLite backend the preferences survive restarts; with the
// memory backend they live for the process lifetime.
type PreferenceStore struct {
	cache interfaces.Cache
	key   string
}

// NewPreferenceStore creates a preference store over the given cache.
// An empty key selects DefaultPreferencesKey.
func NewPreferenceStore(cache interfaces.Cache, key string) *PreferenceStore {
	if key == "" {
		key = DefaultPreferencesKey
	}
	return &PreferenceStore{
		cache: cache,
		key:   key,
	}
}

// Save overwrites the persisted preferences with the full object
func (s *PreferenceStore) Save(ctx context.Context, prefs *domain.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	// TTL 0: preferences never expire
	return s.cache.Set(ctx, s.key, data, 0)
}

// Load retrieves the persisted preferences. A missing key or an unparsable
// object yields (nil, nil) so callers fall back to defaults silently.
func (s *PreferenceStore) Load(ctx context.Context) (*domain.UserPreferences, error) {
	data, err := s.cache.Get(ctx, s.key)
	if err != nil || data == nil {
		return nil, nil
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, nil
	}

	return &prefs, nil
}
