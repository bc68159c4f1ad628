package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mroyme/NL2SQL/internal/handlers"
)

type SchemaRoutes struct {
	handler *handlers.SchemaHandler
}

func NewSchemaRoutes(handler *handlers.SchemaHandler) *SchemaRoutes {
	return &SchemaRoutes{handler: handler}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	schema := router.Group("/databases")
	{
		schema.GET("", r.handler.ListDatabases)
		schema.GET("/:database/tables", r.handler.ListTables)
		schema.GET("/:database/tables/:table", r.handler.GetTable)
	}
}
