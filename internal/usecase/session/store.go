package session

import (
	"sync"
	"time"

	"keepposted/config"
	domainerrors "keepposted/internal/domain/errors"

	"github.com/google/uuid"
)

// Store owns every open session.
type Store struct {
	defaultHome string
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store using the configured default home label.
func NewStore(cfg *config.Config) *Store {
	defaultHome := config.DefaultHomeLocationName
	if cfg != nil && cfg.Session != nil && cfg.Session.DefaultHomeLocationName != "" {
		defaultHome = cfg.Session.DefaultHomeLocationName
	}

	return &Store{
		defaultHome: defaultHome,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

// Create opens a session for the given identity.
func (st *Store) Create(userID, email string) *Session {
	sess := newSession(uuid.NewString(), userID, email, st.defaultHome, st.now())

	st.mu.Lock()
	st.sessions[sess.id] = sess
	st.mu.Unlock()

	return sess
}

// Get looks up an open session.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	return sess, nil
}

// Close removes the session and runs its cleanup hooks.
func (st *Store) Close(id string) error {
	st.mu.Lock()
	sess, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}
	sess.Close()

	return nil
}

// CloseAll closes every open session.
func (st *Store) CloseAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

// Len returns the number of open sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}
