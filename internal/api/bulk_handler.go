package api

import (
	"encoding/json"
	"net/http"

	"github.com/ignite/professional-directory/internal/service/professional"
)

// handleBulkUpsert reconciles a batch of payloads against the directory.
//
// The only request-level failure is a body that is not a JSON array; every
// per-item failure is reported in the errors array with the item's index,
// and the response status is 200 even when all items fail. Callers must
// inspect errors to detect partial failure.
//
//	POST /api/professionals/bulk
func (s *Server) handleBulkUpsert(w http.ResponseWriter, r *http.Request) {
	var batch []professional.Input
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeError(w, http.StatusBadRequest, "Expected a list of items.")
		return
	}
	// A JSON null decodes into a nil slice without error; an empty list
	// decodes into a non-nil one. Only a list payload is acceptable.
	if batch == nil {
		writeError(w, http.StatusBadRequest, "Expected a list of items.")
		return
	}

	res := s.svc.Reconcile(r.Context(), batch)

	if len(res.Created)+len(res.Updated) > 0 {
		s.cache.Invalidate(r.Context())
	}
	writeJSON(w, http.StatusOK, res)
}
