package cachestore

import (
	"context"
	"testing"
	"time"

	"pulsefeed-api/core/domain"
	"pulsefeed-api/infrastructure/cache/memory"
)

func newTestStore() *PreferenceStore {
	return NewPreferenceStore(memory.NewMemoryCache(0, time.Minute), "")
}

func TestPreferenceStore_RoundTrip(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	prefs := domain.UserPreferences{
		Categories:           []string{"sports", "music"},
		DarkMode:             true,
		FavoriteItems:        []string{"4", "7"},
		Language:             "pt",
		FeedLayout:           domain.FeedLayoutList,
		NotificationsEnabled: true,
	}

	if err := store.Save(ctx, &prefs); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil after Save")
	}
	if loaded.Language != "pt" || !loaded.DarkMode || len(loaded.FavoriteItems) != 2 {
		t.Errorf("loaded preferences differ: %+v", loaded)
	}
}

func TestPreferenceStore_LoadMissingReturnsNilNil(t *testing.T) {
	store := newTestStore()

	loaded, err := store.Load(context.Background())

	if err != nil {
		t.Errorf("Load error = %v, want nil for a missing key", err)
	}
	if loaded != nil {
		t.Errorf("Load = %+v, want nil for a missing key", loaded)
	}
}

func TestPreferenceStore_CorruptObjectReturnsNilNil(t *testing.T) {
	cache := memory.NewMemoryCache(0, time.Minute)
	store := NewPreferenceStore(cache, "")
	ctx := context.Background()

	cache.Set(ctx, DefaultPreferencesKey, []byte("{not json"), 0)

	loaded, err := store.Load(ctx)

	if err != nil || loaded != nil {
		t.Errorf("Load = (%+v, %v), want (nil, nil) for a corrupt object", loaded, err)
	}
}

func TestPreferenceStore_SaveOverwritesWholeObject(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	first := domain.DefaultPreferences()
	first.FavoriteItems = []string{"1", "2"}
	store.Save(ctx, &first)

	second := domain.DefaultPreferences()
	second.FavoriteItems = []string{"9"}
	store.Save(ctx, &second)

	loaded, _ := store.Load(ctx)
	if loaded == nil || len(loaded.FavoriteItems) != 1 || loaded.FavoriteItems[0] != "9" {
		t.Errorf("expected the second object to fully replace the first, got %+v", loaded)
	}
}

func TestPreferenceStore_CustomKey(t *testing.T) {
	cache := memory.NewMemoryCache(0, time.Minute)
	store := NewPreferenceStore(cache, "prefs:alt")
	ctx := context.Background()

	prefs := domain.DefaultPreferences()
	store.Save(ctx, &prefs)

	if _, err := cache.Get(ctx, "prefs:alt"); err != nil {
		t.Error("preferences should be stored under the custom key")
	}
	if _, err := cache.Get(ctx, DefaultPreferencesKey); err == nil {
		t.Error("default key should be untouched")
	}
}
