package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mroyme/NL2SQL/internal/handlers"
)

type QueryRoutes struct {
	handler *handlers.QueryHandler
	session gin.HandlerFunc
}

func NewQueryRoutes(handler *handlers.QueryHandler, session gin.HandlerFunc) *QueryRoutes {
	return &QueryRoutes{handler: handler, session: session}
}

func (r *QueryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	query := router.Group("/query")
	query.Use(r.session)
	{
		query.GET("", r.handler.GetState)
		query.POST("/generate", r.handler.Generate)
		query.POST("/execute", r.handler.Execute)
		query.POST("/clear", r.handler.Clear)
		query.GET("/history", r.handler.GetHistory)
		query.POST("/explain", r.handler.Explain)

		// Simulated UI actions; acknowledgment only
		query.POST("/copy-sql", r.handler.CopySQL)
		query.POST("/copy-data", r.handler.CopyData)
		query.POST("/download-csv", r.handler.DownloadCSV)
	}
}
