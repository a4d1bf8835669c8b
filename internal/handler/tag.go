package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TagsResponse is the body of GET /api/tags.
type TagsResponse struct {
	Tags   []string `json:"tags"`
	Active string   `json:"active"`
}

// TagNameRequest carries a tag name in a request body.
type TagNameRequest struct {
	Name string `json:"name"`
}

// ListTags handles GET /api/tags.
func (s *Server) ListTags(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, TagsResponse{Tags: s.tags.List(), Active: s.tags.Active()})
}

// AddTag handles POST /api/tags. The new tag becomes active.
func (s *Server) AddTag(w http.ResponseWriter, r *http.Request) {
	var req TagNameRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := s.tags.Add(req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, TagsResponse{Tags: s.tags.List(), Active: s.tags.Active()})
}

// SetActiveTag handles PUT /api/tags/active.
func (s *Server) SetActiveTag(w http.ResponseWriter, r *http.Request) {
	var req TagNameRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := s.tags.SetActive(req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TagsResponse{Tags: s.tags.List(), Active: s.tags.Active()})
}

// RenameTag handles PUT /api/tags/{name}. Visits recorded under the old
// name and the active selection follow the rename.
func (s *Server) RenameTag(w http.ResponseWriter, r *http.Request) {
	var req TagNameRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := s.tags.Rename(chi.URLParam(r, "name"), req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TagsResponse{Tags: s.tags.List(), Active: s.tags.Active()})
}

// DeleteTag handles DELETE /api/tags/{name}?confirm=true. Visits recorded
// under the tag stay; only the tag itself leaves the set. confirm=true is
// still mandatory because the selection is lost.
func (s *Server) DeleteTag(w http.ResponseWriter, r *http.Request) {
	_, err := s.tags.Delete(chi.URLParam(r, "name"), r.URL.Query().Get("confirm") == "true")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TagsResponse{Tags: s.tags.List(), Active: s.tags.Active()})
}
