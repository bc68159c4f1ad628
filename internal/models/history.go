package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one generation: the question asked, the SQL the
// generator produced, and the table selection at that moment.
type HistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question"`
	SQL       string    `json:"sql"`
	Tables    []string  `json:"tables"`
}

func (e *HistoryEntry) Prepare() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
}
