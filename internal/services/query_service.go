package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mroyme/NL2SQL/internal/metrics"
	"github.com/mroyme/NL2SQL/internal/models"
	"github.com/mroyme/NL2SQL/internal/repositories"
)

var (
	ErrQuestionRequired = errors.New("question is required")
	ErrUnknownDatabase  = errors.New("unknown database")
	ErrTablesRequired   = errors.New("at least one table must be selected")
)

// QueryService drives the per-session workflow: generate SQL from a
// question, execute it, clear, and read back history.
type QueryService struct {
	generator    *GeneratorService
	executor     *ExecutorService
	schemaRepo   *repositories.SchemaRepository
	sessionRepo  *repositories.SessionRepository
	historyLimit int
}

func NewQueryService(
	generator *GeneratorService,
	executor *ExecutorService,
	schemaRepo *repositories.SchemaRepository,
	sessionRepo *repositories.SessionRepository,
	historyLimit int,
) *QueryService {
	return &QueryService{
		generator:    generator,
		executor:     executor,
		schemaRepo:   schemaRepo,
		sessionRepo:  sessionRepo,
		historyLimit: historyLimit,
	}
}

// Generate validates the request, runs the mock generator, stores the SQL
// in the session and appends a history entry. Results from any previous
// execution are reset.
func (s *QueryService) Generate(ctx context.Context, sessionID uuid.UUID, question, database string, tables []string) (string, *models.HistoryEntry, error) {
	if strings.TrimSpace(question) == "" {
		return "", nil, ErrQuestionRequired
	}
	if !s.schemaRepo.HasDatabase(database) {
		return "", nil, ErrUnknownDatabase
	}
	if len(tables) == 0 {
		return "", nil, ErrTablesRequired
	}

	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return "", nil, err
	}

	sql, err := s.generator.Generate(ctx, question, tables, database)
	if err != nil {
		return "", nil, err
	}

	entry := models.HistoryEntry{
		Question: question,
		SQL:      sql,
		Tables:   tables,
	}
	entry.Prepare()
	session.SetGenerated(sql, database, tables, entry)

	metrics.QueriesGeneratedTotal.Inc()
	return sql, &entry, nil
}

// Execute runs the mock executor against the session's generated SQL.
func (s *QueryService) Execute(ctx context.Context, sessionID uuid.UUID) (*models.ResultSet, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	sql, database := session.GeneratedSQL()
	if sql == "" {
		return nil, models.ErrNoGeneratedSQL
	}

	results, err := s.executor.Execute(ctx, sql, database)
	if err != nil {
		return nil, err
	}
	if err := session.SetResults(results); err != nil {
		return nil, err
	}

	metrics.QueriesExecutedTotal.Inc()
	return results, nil
}

// Clear drops the session's SQL and results but keeps its history.
func (s *QueryService) Clear(sessionID uuid.UUID) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return err
	}
	session.Clear()
	return nil
}

// State returns the session's current view.
func (s *QueryService) State(sessionID uuid.UUID) (*models.SessionView, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	view := session.View()
	return &view, nil
}

// History returns recent entries, most recent first. limit <= 0 falls back
// to the configured display limit.
func (s *QueryService) History(sessionID uuid.UUID, limit int) ([]models.HistoryEntry, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.historyLimit
	}
	return session.RecentHistory(limit), nil
}

// Explanation is the canned query breakdown shown by the explain action.
type Explanation struct {
	Tables    []string `json:"tables"`
	Operation string   `json:"operation"`
	Purpose   string   `json:"purpose"`
}

// Explain returns a canned breakdown of the current generated SQL.
func (s *QueryService) Explain(sessionID uuid.UUID) (*Explanation, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	sql, _ := session.GeneratedSQL()
	if sql == "" {
		return nil, models.ErrNoGeneratedSQL
	}

	return &Explanation{
		Tables:    session.Tables(),
		Operation: "Data retrieval/aggregation",
		Purpose:   "Answers the natural language question provided",
	}, nil
}
