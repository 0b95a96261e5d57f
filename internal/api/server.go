package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/ignite/professional-directory/internal/service/professional"
)

// Server represents the API server.
type Server struct {
	router      *chi.Mux
	server      *http.Server
	svc         *professional.Service
	db          *sql.DB
	redisClient *redis.Client
	cache       *ListCache
}

// NewServer creates a new API server. db and redisClient may be nil (dev
// mode runs on the in-memory repository with no cache); the health checker
// reports nil dependencies as not configured. cacheTTL bounds the list
// cache; zero or negative falls back to 30 seconds.
func NewServer(svc *professional.Service, db *sql.DB, redisClient *redis.Client, cacheTTL time.Duration) *Server {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	s := &Server{
		svc:         svc,
		db:          db,
		redisClient: redisClient,
		cache:       NewListCache(redisClient, cacheTTL),
	}
	s.router = s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler, for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
