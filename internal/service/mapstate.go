package service

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/mapfilter"
	"github.com/tmarchal/footprints/backend/internal/view"
)

// MapState is a full snapshot of the render surface for one (tag, scope)
// pair: layer visibility, per-layer filters, camera constraints, the camera
// target, and the footprint point data. Clients apply it verbatim.
type MapState struct {
	Scope     domain.Scope               `json:"scope"`
	Layers    map[string]bool            `json:"layers"`
	Filters   map[string]mapfilter.Expr  `json:"filters"`
	MaxBounds *view.Bounds               `json:"maxBounds"`
	MinZoom   float64                    `json:"minZoom"`
	MaxZoom   float64                    `json:"maxZoom"`
	Camera    view.Camera                `json:"camera"`
	Focus     *view.Camera               `json:"focus,omitempty"`
	Points    *geojson.FeatureCollection `json:"points"`
}

// MapService computes MapState snapshots by replaying the view controller
// against a recording surface.
type MapService struct {
	store VisitStore
}

// NewMapService constructs a MapService backed by the provided store.
func NewMapService(s VisitStore) *MapService {
	return &MapService{store: s}
}

// State returns the surface snapshot for tag in scope.
func (s *MapService) State(tag string, scope domain.Scope) MapState {
	surface := newStateSurface()
	ctrl := view.NewController(surface)
	ctrl.SetScope(scope, s.store.Visits(), tag)
	return surface.state(scope)
}

// StateForVisit returns the snapshot that follows adding visit id under tag:
// the scope switches to the visit's country and the snapshot carries a
// second camera target centered on the visit.
func (s *MapService) StateForVisit(id, tag string) (MapState, error) {
	var visit domain.Visit
	found := false
	visits := s.store.Visits()
	for _, v := range visits {
		if v.ID == id {
			visit, found = v, true
			break
		}
	}
	if !found {
		return MapState{}, fmt.Errorf("service.MapService.StateForVisit: %w", domain.ErrNotFound)
	}

	surface := newStateSurface()
	surface.completeEases = true
	ctrl := view.NewController(surface)
	ctrl.FocusVisit(visit, visits, tag)

	state := surface.state(ctrl.Scope())
	if len(surface.eases) > 1 {
		focus := surface.eases[1]
		state.Camera = surface.eases[0]
		state.Focus = &focus
	}
	return state, nil
}

// stateSurface records controller commands into a MapState. With
// completeEases set it invokes EaseTo completion callbacks synchronously, so
// chained camera moves land in eases in order.
type stateSurface struct {
	layers        map[string]bool
	filters       map[string]mapfilter.Expr
	maxBounds     *view.Bounds
	minZoom       float64
	maxZoom       float64
	eases         []view.Camera
	points        *geojson.FeatureCollection
	completeEases bool
}

var _ view.RenderSurface = (*stateSurface)(nil)

func newStateSurface() *stateSurface {
	return &stateSurface{
		layers:  make(map[string]bool),
		filters: make(map[string]mapfilter.Expr),
	}
}

func (s *stateSurface) SetLayerVisibility(layerID string, visible bool) {
	s.layers[layerID] = visible
}

func (s *stateSurface) SetFilter(layerID string, filter mapfilter.Expr) {
	s.filters[layerID] = filter
}

func (s *stateSurface) SetMaxBounds(bounds *view.Bounds) {
	s.maxBounds = bounds
}

func (s *stateSurface) SetZoomRange(minZoom, maxZoom float64) {
	s.minZoom, s.maxZoom = minZoom, maxZoom
}

func (s *stateSurface) EaseTo(camera view.Camera, done func()) {
	s.eases = append(s.eases, camera)
	if s.completeEases && done != nil {
		done()
	}
}

func (s *stateSurface) SetPointData(fc *geojson.FeatureCollection) {
	s.points = fc
}

func (s *stateSurface) state(scope domain.Scope) MapState {
	state := MapState{
		Scope:     scope,
		Layers:    s.layers,
		Filters:   s.filters,
		MaxBounds: s.maxBounds,
		MinZoom:   s.minZoom,
		MaxZoom:   s.maxZoom,
		Points:    s.points,
	}
	if len(s.eases) > 0 {
		state.Camera = s.eases[len(s.eases)-1]
	}
	return state
}
