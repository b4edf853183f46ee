package state

import (
	"context"
	"errors"
	"testing"

	"pulsefeed-api/core/domain"
	"pulsefeed-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStorage is a mock implementation of the PreferenceStorage interface
type mockStorage struct {
	saveFunc func(ctx context.Context, prefs *domain.UserPreferences) error
	loadFunc func(ctx context.Context) (*domain.UserPreferences, error)
	saved    []domain.UserPreferences
}

func (m *mockStorage) Save(ctx context.Context, prefs *domain.UserPreferences) error {
	m.saved = append(m.saved, prefs.Clone())
	if m.saveFunc != nil {
		return m.saveFunc(ctx, prefs)
	}
	return nil
}

func (m *mockStorage) Load(ctx context.Context) (*domain.UserPreferences, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return nil, nil
}

// mockTheme records theme applications
type mockTheme struct {
	applied []bool
}

func (m *mockTheme) ApplyTheme(darkMode bool) {
	m.applied = append(m.applied, darkMode)
}

func TestNewPreferencesSlice_NoStoredState(t *testing.T) {
	slice := NewPreferencesSlice(context.Background(), &mockStorage{}, nil)

	prefs := slice.Snapshot()
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestNewPreferencesSlice_LoadsStoredState(t *testing.T) {
	stored := domain.UserPreferences{
		Categories:    []string{"sports"},
		DarkMode:      true,
		FavoriteItems: []string{"4"},
		Language:      "de",
		FeedLayout:    domain.FeedLayoutList,
	}
	storage := &mockStorage{
		loadFunc: func(ctx context.Context) (*domain.UserPreferences, error) {
			clone := stored.Clone()
			return &clone, nil
		},
	}

	slice := NewPreferencesSlice(context.Background(), storage, nil)

	prefs := slice.Snapshot()
	assert.Equal(t, []string{"sports"}, prefs.Categories)
	assert.True(t, prefs.DarkMode)
	assert.Equal(t, "de", prefs.Language)
}

func TestNewPreferencesSlice_LoadErrorFallsBackToDefaults(t *testing.T) {
	storage := &mockStorage{
		loadFunc: func(ctx context.Context) (*domain.UserPreferences, error) {
			return nil, errors.New("backend down")
		},
	}

	slice := NewPreferencesSlice(context.Background(), storage, nil)

	assert.Equal(t, domain.DefaultPreferences(), slice.Snapshot())
}

func TestNewPreferencesSlice_PartialStateNormalized(t *testing.T) {
	storage := &mockStorage{
		loadFunc: func(ctx context.Context) (*domain.UserPreferences, error) {
			return &domain.UserPreferences{DarkMode: true}, nil
		},
	}

	slice := NewPreferencesSlice(context.Background(), storage, nil)

	prefs := slice.Snapshot()
	assert.True(t, prefs.DarkMode)
	assert.Equal(t, domain.DefaultPreferences().Categories, prefs.Categories)
	assert.Equal(t, "en", prefs.Language)
	assert.Equal(t, domain.FeedLayoutGrid, prefs.FeedLayout)
}

func TestUpdateCategories_PersistsFullObject(t *testing.T) {
	storage := &mockStorage{}
	slice := NewPreferencesSlice(context.Background(), storage, nil)

	prefs := slice.UpdateCategories(context.Background(), []string{"science", "travel"})

	assert.Equal(t, []string{"science", "travel"}, prefs.Categories)
	require.Len(t, storage.saved, 1)
	// The whole object is written, not a categories-only patch
	assert.Equal(t, prefs, storage.saved[0])
}

func TestToggleDarkMode_AppliesThemeBeforePersist(t *testing.T) {
	storage := &mockStorage{}
	slice := NewPreferencesSlice(context.Background(), storage, nil)
	theme := &mockTheme{}
	slice.SetThemeApplier(theme)

	prefs := slice.ToggleDarkMode(context.Background())

	assert.True(t, prefs.DarkMode)
	require.Len(t, theme.applied, 1)
	assert.True(t, theme.applied[0])

	prefs = slice.ToggleDarkMode(context.Background())
	assert.False(t, prefs.DarkMode)
	require.Len(t, theme.applied, 2)
	assert.False(t, theme.applied[1])
}

func TestAddFavorite(t *testing.T) {
	storage := &mockStorage{}
	slice := NewPreferencesSlice(context.Background(), storage, nil)

	prefs := slice.AddFavorite(context.Background(), "4")

	assert.Equal(t, []string{"4"}, prefs.FavoriteItems)
	assert.Len(t, storage.saved, 1)
}

func TestAddFavorite_DuplicateIsNoop(t *testing.T) {
	storage := &mockStorage{}
	slice := NewPreferencesSlice(context.Background(), storage, nil)
	slice.AddFavorite(context.Background(), "4")

	prefs := slice.AddFavorite(context.Background(), "4")

	assert.Equal(t, []string{"4"}, prefs.FavoriteItems)
	// The duplicate add skips the persistence write
	assert.Len(t, storage.saved, 1)
}

func TestRemoveFavorite(t *testing.T) {
	storage := &mockStorage{}
	slice := NewPreferencesSlice(context.Background(), storage, nil)
	slice.AddFavorite(context.Background(), "4")
	slice.AddFavorite(context.Background(), "7")

	prefs := slice.RemoveFavorite(context.Background(), "4")

	assert.Equal(t, []string{"7"}, prefs.FavoriteItems)
}

func TestRemoveFavorite_AbsentStillPersists(t *testing.T) {
	storage := &mockStorage{}
	slice := NewPreferencesSlice(context.Background(), storage, nil)

	prefs := slice.RemoveFavorite(context.Background(), "nope")

	assert.Empty(t, prefs.FavoriteItems)
	assert.Len(t, storage.saved, 1)
}

func TestUpdateLanguageAndLayout(t *testing.T) {
	storage := &mockStorage{}
	slice := NewPreferencesSlice(context.Background(), storage, nil)

	prefs := slice.UpdateLanguage(context.Background(), "ja")
	assert.Equal(t, "ja", prefs.Language)

	prefs = slice.UpdateFeedLayout(context.Background(), domain.FeedLayoutList)
	assert.Equal(t, domain.FeedLayoutList, prefs.FeedLayout)

	assert.Len(t, storage.saved, 2)
}

func TestToggleNotifications(t *testing.T) {
	slice := NewPreferencesSlice(context.Background(), &mockStorage{}, nil)

	prefs := slice.ToggleNotifications(context.Background())

	assert.False(t, prefs.NotificationsEnabled)
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	storage := &mockStorage{
		saveFunc: func(ctx context.Context, prefs *domain.UserPreferences) error {
			return errors.New("disk full")
		},
	}
	slice := NewPreferencesSlice(context.Background(), storage, nil)

	prefs := slice.AddFavorite(context.Background(), "4")

	assert.Equal(t, []string{"4"}, prefs.FavoriteItems)
	assert.Equal(t, []string{"4"}, slice.Snapshot().FavoriteItems)
}

func TestNewStore_ComposesSlices(t *testing.T) {
	store := NewStore(context.Background(), interfaces.Dependencies{}, &mockStorage{})

	require.NotNil(t, store.Content)
	require.NotNil(t, store.UI)
	require.NotNil(t, store.Preferences)
}
