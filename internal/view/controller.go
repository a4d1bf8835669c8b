package view

import (
	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/mapfilter"
	"github.com/tmarchal/footprints/backend/internal/resolve"
	"github.com/tmarchal/footprints/backend/internal/store"
)

// PointsLayer is the always-visible footprint point layer.
const PointsLayer = "trip-points-layer"

// FocusZoom is the zoom level used when centering on a newly added visit.
const FocusZoom = 4

// ScopeConfig holds the fixed layer and camera constants of one scope.
type ScopeConfig struct {
	// Layers is the scope's layer group in render order:
	// base fill, base line, highlight fill, highlight line.
	Layers [4]string
	// HighlightLayers are the two layers that receive the region filter.
	HighlightLayers [2]string
	// NameProp is the feature property region keys match against.
	NameProp string

	Camera    Camera
	MinZoom   float64
	MaxZoom   float64
	MaxBounds *Bounds // nil means unrestricted panning
}

// scopeConfigs carries the per-scope constants of the three views.
var scopeConfigs = map[domain.Scope]ScopeConfig{
	domain.ScopeWorld: {
		Layers:          [4]string{"countries-base-fill", "countries-base-line", "countries-hi", "countries-hi-line"},
		HighlightLayers: [2]string{"countries-hi", "countries-hi-line"},
		NameProp:        mapfilter.WorldNameProp,
		Camera:          Camera{Center: [2]float64{0, 20}, Zoom: 1.5},
		MinZoom:         1,
		MaxZoom:         5,
	},
	domain.ScopeCN: {
		Layers:          [4]string{"cn-base-fill", "cn-base-line", "cn-hi", "cn-hi-line"},
		HighlightLayers: [2]string{"cn-hi", "cn-hi-line"},
		NameProp:        mapfilter.CNNameProp,
		Camera:          Camera{Center: [2]float64{104, 28}, Zoom: 1.0},
		MinZoom:         2,
		MaxZoom:         6,
		MaxBounds:       &Bounds{{60, -10}, {160, 60}},
	},
	domain.ScopeUS: {
		Layers:          [4]string{"us-base-fill", "us-base-line", "us-hi", "us-hi-line"},
		HighlightLayers: [2]string{"us-hi", "us-hi-line"},
		NameProp:        mapfilter.USNameProp,
		Camera:          Camera{Center: [2]float64{-98, 38}, Zoom: 3.0},
		MinZoom:         2,
		MaxZoom:         7,
		MaxBounds:       &Bounds{{-180, 10}, {-50, 75}},
	},
}

// ConfigFor returns the fixed constants of a scope.
func ConfigFor(scope domain.Scope) ScopeConfig {
	return scopeConfigs[scope]
}

// Controller is the scope state machine. All transitions are externally
// triggered and always legal; the only implicit transition is the scope
// switch that follows adding a visit (FocusVisit).
type Controller struct {
	surface RenderSurface
	scope   domain.Scope
}

// NewController builds a Controller over the given surface, starting on the
// world view. Call SetScope to push the initial state to the surface.
func NewController(surface RenderSurface) *Controller {
	return &Controller{surface: surface, scope: domain.ScopeWorld}
}

// Scope returns the current scope.
func (c *Controller) Scope() domain.Scope {
	return c.scope
}

// SetScope enters a scope: hides every scope layer, shows the new scope's
// group, applies the scope's camera constraints and target, and recomputes
// the filters for (visits, tag).
func (c *Controller) SetScope(scope domain.Scope, visits []domain.Visit, tag string) {
	c.enterScope(scope, visits, tag, nil)
}

// Refresh recomputes and applies the highlight filter, the point filter, and
// the point data for the current scope. Call it on every records or tag change.
func (c *Controller) Refresh(visits []domain.Visit, tag string) {
	cfg := scopeConfigs[c.scope]

	keys := resolve.Keys(visits, tag, c.scope)
	regionFilter := mapfilter.Region(cfg.NameProp, keys)
	for _, layer := range cfg.HighlightLayers {
		c.surface.SetFilter(layer, regionFilter)
	}

	c.surface.SetFilter(PointsLayer, mapfilter.Points(tag, c.scope))
	c.surface.SetPointData(mapfilter.PointFeatures(store.ByTag(visits, tag)))
}

// FocusVisit reacts to a newly added visit: the scope switches to the one
// matching the visit's country, and once the scope's own camera move has
// completed, a second move centers on the visit at FocusZoom. The second move
// is driven by the first move's completion callback.
func (c *Controller) FocusVisit(v domain.Visit, visits []domain.Visit, tag string) {
	scope := domain.ScopeForCountry(v.Place.CountryISO2)
	focus := Camera{Center: [2]float64{v.Place.Lon, v.Place.Lat}, Zoom: FocusZoom}
	c.enterScope(scope, visits, tag, func() {
		c.surface.EaseTo(focus, nil)
	})
}

func (c *Controller) enterScope(scope domain.Scope, visits []domain.Visit, tag string, done func()) {
	c.scope = scope
	cfg := scopeConfigs[scope]

	for s, other := range scopeConfigs {
		if s == scope {
			continue
		}
		for _, layer := range other.Layers {
			c.surface.SetLayerVisibility(layer, false)
		}
	}
	for _, layer := range cfg.Layers {
		c.surface.SetLayerVisibility(layer, true)
	}

	c.surface.SetMaxBounds(cfg.MaxBounds)
	c.surface.SetZoomRange(cfg.MinZoom, cfg.MaxZoom)
	c.surface.EaseTo(cfg.Camera, done)

	c.Refresh(visits, tag)
}
