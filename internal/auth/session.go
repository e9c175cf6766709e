package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/metrics"
)

// Session is the server-side record a bearer token maps to. The role claim
// gates privileged routes.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionManager keeps sessions in process memory. Like the mock store,
// sessions do not survive a restart; the always-available bootstrap login
// makes that acceptable.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

func (m *SessionManager) Create(userID, name, email, role string) Session {
	s := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Role:      role,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	return s
}

// Get returns the session for the token, dropping it when expired.
func (m *SessionManager) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		metrics.ActiveSessions.Set(float64(len(m.sessions)))
		return Session{}, false
	}
	return s, true
}

func (m *SessionManager) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()
}
