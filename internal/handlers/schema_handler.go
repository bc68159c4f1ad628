package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mroyme/NL2SQL/internal/repositories"
	"github.com/mroyme/NL2SQL/internal/responses"
	"github.com/mroyme/NL2SQL/internal/services"
)

type SchemaHandler struct {
	schemaService *services.SchemaService
}

func NewSchemaHandler(schemaService *services.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// ListDatabases returns the catalog's database names and table counts.
func (h *SchemaHandler) ListDatabases(c *gin.Context) {
	responses.Success(c, http.StatusOK, gin.H{
		"databases": h.schemaService.ListDatabases(),
	}, "")
}

// ListTables returns the tables of one database.
func (h *SchemaHandler) ListTables(c *gin.Context) {
	database := c.Param("database")

	tables, err := h.schemaService.ListTables(database)
	if err != nil {
		h.failSchema(c, err)
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"database": database,
		"tables":   tables,
	}, "")
}

// GetTable returns one table's DDL and column list.
func (h *SchemaHandler) GetTable(c *gin.Context) {
	database := c.Param("database")
	table := c.Param("table")

	schema, err := h.schemaService.GetTable(database, table)
	if err != nil {
		h.failSchema(c, err)
		return
	}

	responses.Success(c, http.StatusOK, schema, "")
}

func (h *SchemaHandler) failSchema(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrDatabaseNotFound) || errors.Is(err, repositories.ErrTableNotFound) {
		responses.Fail(c, http.StatusNotFound, err, "Not found")
		return
	}
	responses.Fail(c, http.StatusInternalServerError, err, "Schema lookup failed")
}
