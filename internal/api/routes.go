package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// setupRoutes configures middleware and all API routes.
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	hc := NewHealthChecker(s.db, s.redisClient)
	r.Get("/health", hc.HandleHealth)
	r.Get("/health/live", hc.HandleLiveness)
	r.Get("/health/ready", hc.HandleReadiness)

	r.Route("/api/professionals", func(r chi.Router) {
		r.Get("/", s.handleListProfessionals)
		r.Post("/", s.handleCreateProfessional)
		r.Post("/bulk", s.handleBulkUpsert)
		r.Get("/{id}", s.handleGetProfessional)
		r.Put("/{id}", s.handleUpdateProfessional)
		r.Delete("/{id}", s.handleDeleteProfessional)
	})

	return r
}
