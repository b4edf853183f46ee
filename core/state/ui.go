// ABOUTME: UI slice holds transient navigation flags and the notification queue
// ABOUTME: All operations are pure flag and queue transitions with no side effects

package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Section identifies the active application section
type Section string

// The navigable sections
const (
	SectionFeed      Section = "feed"
	SectionTrending  Section = "trending"
	SectionFavorites Section = "favorites"
	SectionSettings  Section = "settings"
)

// IsValid reports whether the section is a known value
func (s Section) IsValid() bool {
	switch s {
	case SectionFeed, SectionTrending, SectionFavorites, SectionSettings:
		return true
	}
	return false
}

// NotificationType classifies a queued notification
type NotificationType string

// The notification types
const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// IsValid reports whether the notification type is a known value
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSuccess, NotificationError, NotificationInfo, NotificationWarning:
		return true
	}
	return false
}

// Notification is a queued UI notification
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Timestamp int64            `json:"timestamp"`
}

// UIState is a snapshot of the ui slice
type UIState struct {
	SidebarCollapsed  bool           `json:"sidebarCollapsed"`
	ActiveSection     Section        `json:"activeSection"`
	SearchModalOpen   bool           `json:"searchModalOpen"`
	SettingsModalOpen bool           `json:"settingsModalOpen"`
	Notifications     []Notification `json:"notifications"`
}

// UISlice owns the transient UI state
type UISlice struct {
	mu    sync.Mutex
	state UIState
}

// NewUISlice creates a ui slice with the initial state
func NewUISlice() *UISlice {
	return &UISlice{
		state: UIState{
			ActiveSection: SectionFeed,
			Notifications: []Notification{},
		},
	}
}

// Snapshot returns a copy of the current state
func (s *UISlice) Snapshot() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Notifications = append([]Notification(nil), s.state.Notifications...)
	return snap
}

// ToggleSidebar flips the sidebar-collapsed flag
func (s *UISlice) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SidebarCollapsed = !s.state.SidebarCollapsed
}

// SetSidebarCollapsed sets the sidebar-collapsed flag
func (s *UISlice) SetSidebarCollapsed(collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SidebarCollapsed = collapsed
}

// SetActiveSection switches the active section
func (s *UISlice) SetActiveSection(section Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveSection = section
}

// ToggleSearchModal flips the search modal flag
func (s *UISlice) ToggleSearchModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchModalOpen = !s.state.SearchModalOpen
}

// SetSearchModalOpen sets the search modal flag
func (s *UISlice) SetSearchModalOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchModalOpen = open
}

// ToggleSettingsModal flips the settings modal flag
func (s *UISlice) ToggleSettingsModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SettingsModalOpen = !s.state.SettingsModalOpen
}

// SetSettingsModalOpen sets the settings modal flag
func (s *UISlice) SetSettingsModalOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SettingsModalOpen = open
}

// AddNotification appends a notification with a generated ID and timestamp,
// returning the queued entry
func (s *UISlice) AddNotification(ntype NotificationType, message string) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Type:      ntype,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = append(s.state.Notifications, n)
	return n
}

// RemoveNotification removes the notification with the given ID; no-op when absent
func (s *UISlice) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Notifications[:0]
	for _, n := range s.state.Notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.state.Notifications = kept
}

// ClearNotifications empties the notification queue
func (s *UISlice) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = []Notification{}
}
