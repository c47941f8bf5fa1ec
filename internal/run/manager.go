package run

import (
	"errors"
	"sync"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager owns the live sessions, one per user at most. A second start for
// the same user hands back the existing session instead of double-starting.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session // by session ID
	byUser   map[string]*Session
	onUpdate func(Snapshot)
}

func NewManager(onUpdate func(Snapshot)) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		byUser:   map[string]*Session{},
		onUpdate: onUpdate,
	}
}

// Start creates and starts a session for the user, or returns the one
// already running.
func (m *Manager) Start(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byUser[userID]; ok {
		return existing
	}

	session := NewSession(userID, m.onUpdate)
	session.Start()
	m.sessions[session.ID] = session
	m.byUser[userID] = session
	return session
}

// Get looks up a live session by ID.
func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Finish removes the session from the live set, stops it and returns the
// finalized summary. The summary stays with the caller; if persisting it
// fails downstream, the aggregates are not lost with the removed session.
func (m *Manager) Finish(sessionID string) (Summary, error) {
	m.mu.Lock()
	session, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return Summary{}, ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	delete(m.byUser, session.UserID)
	m.mu.Unlock()

	return session.Stop(), nil
}
