package server

import (
	"fmt"
	"net/http"
	"time"

	"rental-hub/internal/config"
	custommiddleware "rental-hub/internal/middleware"
	"rental-hub/internal/transport"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer wires the HTTP adapter around an application store
func NewServer(cfg *config.Config, logger *zap.Logger, appStore transport.AppStore) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment()))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"store":  appStore.Name(),
		})
	})

	// Register routes
	transport.NewStateHandler(appStore, logger).RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:        fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:     router,
			IdleTimeout: time.Minute,
			ReadTimeout: 10 * time.Second,
			// No write timeout: /api/state/events holds its response open
		},
		config: cfg,
		logger: logger,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if err := s.Server.Close(); err != nil {
		s.logger.Error("Failed to close listeners", zap.Error(err))
		return err
	}

	s.logger.Sync()
	return nil
}
