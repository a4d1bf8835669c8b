// Package handler implements the HTTP handlers for the Footprints API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, visit.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/service"
)

// VisitServicer defines the business operations the visit handlers depend
// on. Defining the interface here (in the consumer package) lets handler
// tests inject a mock without touching the store or service layer.
type VisitServicer interface {
	Add(c domain.Candidate, tag string) (domain.Visit, error)
	List(tag string) []domain.Visit
	Delete(id string) error
	DeleteByTag(tag string, confirmed bool) (int, error)
	Presets() []domain.Candidate
	Stats(tag string) service.TagStats
}

// TagServicer defines the business operations the tag handlers depend on.
type TagServicer interface {
	List() []string
	Active() string
	SetActive(tag string) error
	Add(name string) error
	Rename(oldName, newName string) error
	Delete(tag string, confirmed bool) (string, error)
}

// SearchServicer defines the place-search operation the search handler
// depends on.
type SearchServicer interface {
	Search(ctx context.Context, query string) ([]domain.Candidate, error)
}

// MapServicer defines the map-state operations the map handlers depend on.
type MapServicer interface {
	State(tag string, scope domain.Scope) service.MapState
	StateForVisit(id, tag string) (service.MapState, error)
}

// ExportServicer defines the backup operations the export handlers depend on.
type ExportServicer interface {
	Export() ([]byte, error)
	Import(data []byte, confirmed bool) (int, error)
}

// Server holds the handlers' dependencies.
type Server struct {
	visits VisitServicer
	tags   TagServicer
	search SearchServicer
	maps   MapServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(visits VisitServicer, tags TagServicer, search SearchServicer, maps MapServicer, export ExportServicer) *Server {
	return &Server{
		visits: visits,
		tags:   tags,
		search: search,
		maps:   maps,
		export: export,
	}
}

// Routes mounts every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/visits", func(r chi.Router) {
			r.Get("/", s.ListVisits)
			r.Post("/", s.AddVisit)
			r.Delete("/", s.DeleteVisitsByTag)
			r.Get("/presets", s.ListPresets)
			r.Delete("/{id}", s.DeleteVisit)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", s.ListTags)
			r.Post("/", s.AddTag)
			r.Put("/active", s.SetActiveTag)
			r.Put("/{name}", s.RenameTag)
			r.Delete("/{name}", s.DeleteTag)
		})

		r.Get("/search", s.SearchPlaces)
		r.Get("/map/state", s.GetMapState)
		r.Get("/stats", s.GetStats)
		r.Get("/export", s.ExportVisits)
		r.Post("/import", s.ImportVisits)
	})

	return r
}
