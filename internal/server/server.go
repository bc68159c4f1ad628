package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/mroyme/NL2SQL/internal/config"
	"github.com/mroyme/NL2SQL/internal/handlers"
	"github.com/mroyme/NL2SQL/internal/middlewares"
	"github.com/mroyme/NL2SQL/internal/repositories"
	"github.com/mroyme/NL2SQL/internal/routes"
	"github.com/mroyme/NL2SQL/internal/services"
)

func NewServer() *http.Server {
	cfg := config.Load()

	// Dependency injection
	schemaRepo := repositories.NewSchemaRepository()
	sessionRepo := repositories.NewSessionRepository(cfg.SessionTTL)

	generator := services.NewGeneratorService(cfg.GenerateDelay)
	executor := services.NewExecutorService(cfg.ExecuteDelay)
	queryService := services.NewQueryService(generator, executor, schemaRepo, sessionRepo, cfg.HistoryDisplayLimit)
	schemaService := services.NewSchemaService(schemaRepo)

	queryHandler := handlers.NewQueryHandler(queryService)
	schemaHandler := handlers.NewSchemaHandler(schemaService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middlewares.Metrics())

	sessionMiddleware := middlewares.Session(sessionRepo, int(cfg.SessionTTL.Seconds()))
	routes.RegisterRoutes(router, schemaHandler, queryHandler, sessionMiddleware)

	// Periodically drop expired sessions
	go func() {
		ticker := time.NewTicker(cfg.SessionTTL / 2)
		defer ticker.Stop()
		for range ticker.C {
			if removed := sessionRepo.DeleteExpired(); removed > 0 {
				log.Printf("Removed %d expired sessions", removed)
			}
		}
	}()

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
