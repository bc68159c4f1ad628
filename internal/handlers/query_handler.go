package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mroyme/NL2SQL/internal/models"
	"github.com/mroyme/NL2SQL/internal/repositories"
	"github.com/mroyme/NL2SQL/internal/responses"
	"github.com/mroyme/NL2SQL/internal/services"
)

type QueryHandler struct {
	queryService *services.QueryService
}

func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

type GenerateRequest struct {
	Question string   `json:"question" binding:"required"`
	Database string   `json:"database" binding:"required"`
	Tables   []string `json:"tables" binding:"required"`
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("sessionID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}

// Generate produces SQL for a natural-language question.
func (h *QueryHandler) Generate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Missing session")
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: question, database and tables are required")
		return
	}

	sql, entry, err := h.queryService.Generate(c.Request.Context(), id, req.Question, req.Database, req.Tables)
	if err != nil {
		h.failQuery(c, err, "Failed to generate SQL")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"sql":           sql,
		"history_entry": entry,
	}, "SQL query generated successfully")
}

// Execute runs the session's generated SQL against the mock executor.
func (h *QueryHandler) Execute(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Missing session")
		return
	}

	results, err := h.queryService.Execute(c.Request.Context(), id)
	if err != nil {
		h.failQuery(c, err, "Failed to execute query")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"results":      results,
		"row_count":    results.RowCount,
		"column_count": results.ColumnCount(),
		"summary":      results.NumericSummary(),
	}, "Query executed successfully")
}

// Clear resets the generated SQL and results; history is retained.
func (h *QueryHandler) Clear(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Missing session")
		return
	}

	if err := h.queryService.Clear(id); err != nil {
		h.failQuery(c, err, "Failed to clear session")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Session cleared")
}

// GetState returns the session's current workspace view.
func (h *QueryHandler) GetState(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Missing session")
		return
	}

	view, err := h.queryService.State(id)
	if err != nil {
		h.failQuery(c, err, "Failed to read session state")
		return
	}

	responses.Success(c, http.StatusOK, view, "")
}

// GetHistory returns recent history entries, most recent first.
func (h *QueryHandler) GetHistory(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Missing session")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid limit")
			return
		}
		limit = parsed
	}

	history, err := h.queryService.History(id, limit)
	if err != nil {
		h.failQuery(c, err, "Failed to read history")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	}, "")
}

// Explain returns a canned breakdown of the generated SQL.
func (h *QueryHandler) Explain(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Missing session")
		return
	}

	explanation, err := h.queryService.Explain(id)
	if err != nil {
		h.failQuery(c, err, "Failed to explain query")
		return
	}

	responses.Success(c, http.StatusOK, explanation, "")
}

// CopySQL acknowledges the copy action. No clipboard I/O happens server-side.
func (h *QueryHandler) CopySQL(c *gin.Context) {
	h.acknowledge(c, requireGenerated, "SQL copied to clipboard!")
}

// CopyData acknowledges the copy action for result data.
func (h *QueryHandler) CopyData(c *gin.Context) {
	h.acknowledge(c, requireExecuted, "Data copied to clipboard!")
}

// DownloadCSV acknowledges the export action. No file is produced.
func (h *QueryHandler) DownloadCSV(c *gin.Context) {
	h.acknowledge(c, requireExecuted, "CSV download started!")
}

const (
	requireGenerated = models.StateGenerated
	requireExecuted  = models.StateExecuted
)

func (h *QueryHandler) acknowledge(c *gin.Context, required models.SessionState, message string) {
	id, ok := sessionID(c)
	if !ok {
		responses.Fail(c, http.StatusInternalServerError, nil, "Missing session")
		return
	}

	view, err := h.queryService.State(id)
	if err != nil {
		h.failQuery(c, err, "Failed to read session state")
		return
	}

	switch required {
	case requireGenerated:
		if view.State == models.StateEmpty {
			responses.Fail(c, http.StatusConflict, models.ErrNoGeneratedSQL, "Nothing to copy")
			return
		}
	case requireExecuted:
		if view.State != models.StateExecuted {
			responses.Fail(c, http.StatusConflict, nil, "No results available")
			return
		}
	}

	responses.Success(c, http.StatusOK, nil, message)
}

func (h *QueryHandler) failQuery(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrQuestionRequired),
		errors.Is(err, services.ErrUnknownDatabase),
		errors.Is(err, services.ErrTablesRequired):
		responses.Fail(c, http.StatusBadRequest, err, message)
	case errors.Is(err, models.ErrNoGeneratedSQL):
		responses.Fail(c, http.StatusConflict, err, message)
	case errors.Is(err, repositories.ErrSessionNotFound):
		responses.Fail(c, http.StatusNotFound, err, message)
	default:
		responses.Fail(c, http.StatusInternalServerError, err, message)
	}
}
