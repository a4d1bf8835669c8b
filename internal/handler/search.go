package handler

import "net/http"

// SearchPlaces handles GET /api/search?q=. The search service debounces
// queries and only answers for the newest one; a superseded request is
// answered with 204 so the client simply drops it.
func (s *Server) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}
