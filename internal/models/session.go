package models

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoGeneratedSQL is returned when execute or explain is attempted before
// any SQL has been generated in the session.
var ErrNoGeneratedSQL = errors.New("no generated SQL in session")

// SessionState labels the workflow position of a session.
type SessionState string

const (
	StateEmpty     SessionState = "empty"
	StateGenerated SessionState = "generated"
	StateExecuted  SessionState = "executed"
)

// Session holds one user's interactive state: the current generated SQL,
// the current results, and the append-only history. All state transitions
// go through the methods below; the mutex exists because gin serves
// requests for the same session concurrently.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time

	mu       sync.Mutex
	sql      string
	database string
	tables   []string
	results  *ResultSet
	history  []HistoryEntry
}

func (s *Session) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
}

// SetGenerated stores freshly generated SQL, resets any previous results,
// and appends the history entry. Tables are copied so the entry is a
// snapshot of the selection, not a live reference.
func (s *Session) SetGenerated(sql, database string, tables []string, entry HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sql = sql
	s.database = database
	s.tables = append([]string(nil), tables...)
	s.results = nil
	entry.Tables = append([]string(nil), entry.Tables...)
	s.history = append(s.history, entry)
}

// GeneratedSQL returns the current SQL and the database it was generated
// against. Both are empty until SetGenerated has been called.
func (s *Session) GeneratedSQL() (sql, database string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sql, s.database
}

// SetResults stores an execution result. It fails if no SQL is generated.
func (s *Session) SetResults(rs *ResultSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sql == "" {
		return ErrNoGeneratedSQL
	}
	s.results = rs
	return nil
}

// Tables returns a copy of the selection snapshotted at generation time.
func (s *Session) Tables() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tables...)
}

// Clear discards the generated SQL and results. History is retained.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sql = ""
	s.database = ""
	s.tables = nil
	s.results = nil
}

// State derives the workflow state from what the session holds.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// RecentHistory returns up to limit entries, most recent first.
// limit <= 0 returns everything.
func (s *Session) RecentHistory(limit int) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.history)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]HistoryEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.history[i])
	}
	return out
}

func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// SessionView is the JSON shape of a session's current state.
type SessionView struct {
	ID           uuid.UUID    `json:"id"`
	State        SessionState `json:"state"`
	GeneratedSQL string       `json:"generated_sql,omitempty"`
	Database     string       `json:"database,omitempty"`
	Tables       []string     `json:"tables,omitempty"`
	Results      *ResultSet   `json:"results,omitempty"`
	HistoryCount int          `json:"history_count"`
}

// View snapshots the session for rendering.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionView{
		ID:           s.ID,
		State:        s.stateLocked(),
		GeneratedSQL: s.sql,
		Database:     s.database,
		Tables:       append([]string(nil), s.tables...),
		Results:      s.results,
		HistoryCount: len(s.history),
	}
}

func (s *Session) stateLocked() SessionState {
	switch {
	case s.results != nil:
		return StateExecuted
	case s.sql != "":
		return StateGenerated
	default:
		return StateEmpty
	}
}
