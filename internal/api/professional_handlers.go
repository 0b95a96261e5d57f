package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/professional-directory/internal/domain"
	"github.com/ignite/professional-directory/internal/service/professional"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func isRequiredFieldErr(err error) bool {
	var rf *professional.RequiredFieldError
	return errors.As(err, &rf)
}

// writeServiceError maps service-layer errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, professional.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, professional.ErrMissingIdentifier),
		errors.Is(err, professional.ErrInvalidEmail),
		errors.Is(err, professional.ErrInvalidPhone),
		errors.Is(err, professional.ErrDuplicateEmail),
		errors.Is(err, professional.ErrDuplicatePhone),
		errors.Is(err, professional.ErrInvalidSource),
		isRequiredFieldErr(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[api] internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// handleListProfessionals returns professionals, optionally filtered by
// ?source= and searched by ?q=, newest first.
//
//	GET /api/professionals?source=partner&q=acme&page=1&limit=25
func (s *Server) handleListProfessionals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pag := ParsePagination(r, 25, 200)

	f := professional.Filter{
		Source: r.URL.Query().Get("source"),
		Search: r.URL.Query().Get("q"),
		Limit:  pag.Limit,
		Offset: pag.Offset,
	}

	if cached, ok := s.cache.Get(ctx, f); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	list, total, err := s.svc.List(ctx, f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []domain.Professional{}
	}

	resp := NewPaginatedResponse(list, pag, total)
	body, err := json.Marshal(resp)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	s.cache.Set(ctx, f, body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// handleCreateProfessional creates a single record with full validation.
//
//	POST /api/professionals
func (s *Server) handleCreateProfessional(w http.ResponseWriter, r *http.Request) {
	var in professional.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := s.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.cache.Invalidate(r.Context())
	writeJSON(w, http.StatusCreated, rec)
}

// handleGetProfessional fetches one record by id.
//
//	GET /api/professionals/{id}
func (s *Server) handleGetProfessional(w http.ResponseWriter, r *http.Request) {
	rec, err := s.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleUpdateProfessional applies a partial update to one record.
//
//	PUT /api/professionals/{id}
func (s *Server) handleUpdateProfessional(w http.ResponseWriter, r *http.Request) {
	var in professional.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := s.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.cache.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, rec)
}

// handleDeleteProfessional removes one record.
//
//	DELETE /api/professionals/{id}
func (s *Server) handleDeleteProfessional(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	s.cache.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
