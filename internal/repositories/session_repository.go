package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mroyme/NL2SQL/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the in-memory session store. Sessions live for the
// duration of one UI connection and are never persisted.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
	ttl      time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]*models.Session),
		ttl:      ttl,
	}
}

func (r *SessionRepository) Create() *models.Session {
	session := &models.Session{}
	session.Prepare()
	session.ExpiresAt = time.Now().Add(r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session
}

// FindByID returns a live session and extends its expiry. Expired sessions
// are dropped and reported as not found.
func (r *SessionRepository) FindByID(id uuid.UUID) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	session.ExpiresAt = time.Now().Add(r.ttl)
	return session, nil
}

func (r *SessionRepository) DeleteExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, session := range r.sessions {
		if now.After(session.ExpiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
