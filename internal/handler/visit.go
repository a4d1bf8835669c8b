package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/service"
)

// AddVisitRequest is the body of POST /api/visits.
type AddVisitRequest struct {
	Candidate domain.Candidate `json:"candidate"`
	Tag       string           `json:"tag"`
}

// AddVisitResponse pairs the stored visit with the map state the client
// should apply: the visit's scope with a follow-up camera move centered on
// the new footprint.
type AddVisitResponse struct {
	Visit domain.Visit      `json:"visit"`
	Map   *service.MapState `json:"map,omitempty"`
}

// DuplicateVisitResponse is the 409 body: the visit that already holds the
// (tag, name, country) triple, plus the map state recentering on it, so the
// client lands on the existing footprint instead of adding a second one.
type DuplicateVisitResponse struct {
	Error    ErrorDetail       `json:"error"`
	Existing domain.Visit      `json:"existing"`
	Map      *service.MapState `json:"map,omitempty"`
}

// ListVisits handles GET /api/visits?tag=. Visits come back most recent
// date first.
func (s *Server) ListVisits(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeBadRequest(w, "query parameter tag is required")
		return
	}
	writeJSON(w, http.StatusOK, s.visits.List(tag))
}

// AddVisit handles POST /api/visits. A duplicate returns 409 with the
// existing visit in the body.
func (s *Server) AddVisit(w http.ResponseWriter, r *http.Request) {
	var req AddVisitRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	visit, err := s.visits.Add(req.Candidate, req.Tag)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			dup := DuplicateVisitResponse{
				Error:    ErrorDetail{Code: "duplicate", Message: unwrapMessage(err)},
				Existing: visit,
			}
			if state, stateErr := s.maps.StateForVisit(visit.ID, req.Tag); stateErr == nil {
				dup.Map = &state
			}
			writeJSON(w, http.StatusConflict, dup)
			return
		}
		writeError(w, err)
		return
	}

	resp := AddVisitResponse{Visit: visit}
	if state, err := s.maps.StateForVisit(visit.ID, req.Tag); err == nil {
		resp.Map = &state
	}
	writeJSON(w, http.StatusCreated, resp)
}

// DeleteVisit handles DELETE /api/visits/{id}.
func (s *Server) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	if err := s.visits.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteVisitsByTag handles DELETE /api/visits?tag=&confirm=true. It wipes
// every footprint under the tag, so confirm=true is mandatory.
func (s *Server) DeleteVisitsByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeBadRequest(w, "query parameter tag is required")
		return
	}

	deleted, err := s.visits.DeleteByTag(tag, r.URL.Query().Get("confirm") == "true")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

// ListPresets handles GET /api/visits/presets.
func (s *Server) ListPresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.visits.Presets())
}

// GetStats handles GET /api/stats?tag=.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeBadRequest(w, "query parameter tag is required")
		return
	}
	writeJSON(w, http.StatusOK, s.visits.Stats(tag))
}
