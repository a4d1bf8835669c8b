package handler

import (
	"net/http"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// GetMapState handles GET /api/map/state?tag=&scope=. An absent scope
// defaults to the world view; an unknown scope is rejected.
func (s *Server) GetMapState(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeBadRequest(w, "query parameter tag is required")
		return
	}

	scope, err := domain.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.maps.State(tag, scope))
}
