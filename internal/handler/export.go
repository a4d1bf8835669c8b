package handler

import (
	"io"
	"net/http"
)

// ExportVisits handles GET /api/export: the full visit list as a
// downloadable JSON document.
func (s *Server) ExportVisits(w http.ResponseWriter, _ *http.Request) {
	data, err := s.export.Export()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="travel-footprints.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ImportVisits handles POST /api/import?confirm=true. The body is a JSON
// array as produced by export; it replaces every stored visit, so
// confirm=true is mandatory.
func (s *Server) ImportVisits(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "failed to read request body")
		return
	}

	restored, err := s.export.Import(data, r.URL.Query().Get("confirm") == "true")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"restored": restored})
}
