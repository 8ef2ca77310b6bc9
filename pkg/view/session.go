package view

import (
	"sync"
)

// TokenStore persists a session token between runs of a client.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStore is a TokenStore held in memory, for tests and for
// clients that do not persist sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Session is the explicit auth-state object passed through the view
// layer: initialized from storage, set on login, cleared on logout.
type Session struct {
	store TokenStore
	token string
}

// NewSession initializes a session from the store.
func NewSession(store TokenStore) (*Session, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, token: token}, nil
}

// Token returns the current session token, empty when logged out.
func (s *Session) Token() string {
	return s.token
}

// LoggedIn reports whether a token is present.
func (s *Session) LoggedIn() bool {
	return s.token != ""
}

// SetToken records a freshly issued token (on login).
func (s *Session) SetToken(token string) error {
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Clear drops the token (on logout).
func (s *Session) Clear() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.token = ""
	return nil
}
