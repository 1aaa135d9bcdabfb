// Package session holds the per-user state shared by every screen-equivalent use case.
package session

import (
	"sync"
	"time"

	"keepposted/internal/domain/entity"
)

const defaultSenderName = "Me"

// Snapshot is a point-in-time copy of a session's observable state.
type Snapshot struct {
	ID                 string                       `json:"id"`
	UserID             string                       `json:"user_id"`
	Email              string                       `json:"email"`
	FullName           string                       `json:"full_name"`
	HomeLocationName   string                       `json:"home_location_name"`
	HomeCoordinate     *entity.Coordinate           `json:"home_coordinate,omitempty"`
	SelectedCoordinate *entity.Coordinate           `json:"selected_coordinate,omitempty"`
	CurrentCoordinate  *entity.Coordinate           `json:"current_coordinate,omitempty"`
	Permission         entity.LocationAuthorization `json:"location_permission"`
	Activities         []entity.ActivityEntry       `json:"activities"`
}

// Session is the owned state of one signed-in user.
// Every mutation goes through the session lock; readers get copies.
type Session struct {
	id          string
	defaultHome string
	createdAt   time.Time

	mu             sync.RWMutex
	userID         string
	email          string
	fullName       string
	homeName       string
	homeCoordinate *entity.Coordinate
	selected       *entity.Coordinate
	current        *entity.Coordinate
	permission     entity.LocationAuthorization
	activities     []entity.ActivityEntry

	components map[string]any
	closers    []func()
	closed     bool
}

func newSession(id, userID, email, defaultHome string, now time.Time) *Session {
	return &Session{
		id:          id,
		defaultHome: defaultHome,
		createdAt:   now,
		userID:      userID,
		email:       email,
		homeName:    defaultHome,
		permission:  entity.LocationNotDetermined,
		components:  make(map[string]any),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// CreatedAt returns when the session was opened.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// UserID returns the signed-in user's identifier, empty after Reset.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userID
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]entity.ActivityEntry, len(s.activities))
	copy(activities, s.activities)

	return Snapshot{
		ID:                 s.id,
		UserID:             s.userID,
		Email:              s.email,
		FullName:           s.fullName,
		HomeLocationName:   s.homeName,
		HomeCoordinate:     copyCoordinate(s.homeCoordinate),
		SelectedCoordinate: copyCoordinate(s.selected),
		CurrentCoordinate:  copyCoordinate(s.current),
		Permission:         s.permission,
		Activities:         activities,
	}
}

// SetFullName records the display name.
func (s *Session) SetFullName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fullName = name
}

// ApplyProfile copies the persisted profile fields into the session.
// Absent fields leave the current values untouched.
func (s *Session) ApplyProfile(profile *entity.UserProfile) {
	if profile == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.FullName != "" {
		s.fullName = profile.FullName
	}
	if profile.Email != "" {
		s.email = profile.Email
	}
	if profile.HomeLocationName != "" {
		s.homeName = profile.HomeLocationName
	}
	if profile.HomeCoordinate != nil {
		s.homeCoordinate = copyCoordinate(profile.HomeCoordinate)
	}
}

// SetHomeLocation replaces the home label and coordinate together.
func (s *Session) SetHomeLocation(name string, coordinate *entity.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.homeName = name
	s.homeCoordinate = copyCoordinate(coordinate)
}

// SetSelectedCoordinate overwrites the scratch coordinate consumed by confirm.
func (s *Session) SetSelectedCoordinate(c entity.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = &c
}

// SelectedCoordinate returns the scratch coordinate, if any.
func (s *Session) SelectedCoordinate() *entity.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCoordinate(s.selected)
}

// PublishCurrentCoordinate fills the device coordinate slot and makes it the selection.
func (s *Session) PublishCurrentCoordinate(c entity.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &c
	selected := c
	s.selected = &selected
}

// CurrentCoordinate returns the device coordinate slot.
func (s *Session) CurrentCoordinate() *entity.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCoordinate(s.current)
}

// Permission returns the recorded location authorization status.
func (s *Session) Permission() entity.LocationAuthorization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.permission
}

// SetPermission records the location authorization status.
func (s *Session) SetPermission(status entity.LocationAuthorization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.permission = status
}

// AddActivity prepends a new entry to the activity log.
func (s *Session) AddActivity(title string, now time.Time) entity.ActivityEntry {
	entry := entity.NewActivityEntry(title, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append([]entity.ActivityEntry{entry}, s.activities...)

	return entry
}

// Activities returns the log newest first.
func (s *Session) Activities() []entity.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.ActivityEntry, len(s.activities))
	copy(out, s.activities)

	return out
}

// SenderName is the postcard sender: full name, else email, else "Me".
func (s *Session) SenderName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.fullName != "":
		return s.fullName
	case s.email != "":
		return s.email
	default:
		return defaultSenderName
	}
}

// Reset clears identity, profile, selection and activities and restores the default home.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = ""
	s.email = ""
	s.fullName = ""
	s.homeName = s.defaultHome
	s.homeCoordinate = nil
	s.selected = nil
	s.current = nil
	s.activities = nil
	s.permission = entity.LocationNotDetermined
}

// Component returns the per-session value stored under key, creating it with newFn on first use.
// Values implementing Close() are closed with the session. newFn runs under the session lock.
func Component[T any](s *Session, key string, newFn func() T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.components[key]; ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}

	v := newFn()
	s.components[key] = v
	if c, ok := any(v).(interface{ Close() }); ok {
		s.closers = append(s.closers, c.Close)
	}

	return v
}

// OnClose registers fn to run when the session closes.
func (s *Session) OnClose(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		go fn()

		return
	}
	s.closers = append(s.closers, fn)
}

// Close runs the cleanup hooks once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	closers := s.closers
	s.closers = nil
	s.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

// Closed reports whether Close has run.
func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

func copyCoordinate(c *entity.Coordinate) *entity.Coordinate {
	if c == nil {
		return nil
	}
	out := *c

	return &out
}
