// Package view drives the rendering surface: which layers are visible, what
// the camera may see, and which filter expressions the highlight and point
// layers carry. The surface itself (a MapLibre-style vector map) lives on the
// other side of the RenderSurface boundary.
package view

import (
	"github.com/paulmach/orb/geojson"

	"github.com/tmarchal/footprints/backend/internal/mapfilter"
)

// Camera is a center/zoom target for the map camera.
type Camera struct {
	Center [2]float64 `json:"center"` // lon, lat
	Zoom   float64    `json:"zoom"`
}

// Bounds is a [southwest, northeast] lon/lat rectangle limiting panning.
type Bounds [2][2]float64

// RenderSurface is the command interface the controller drives.
//
// EaseTo reports animation completion through the done callback (which may be
// nil). Sequenced camera moves are chained on that callback instead of a
// fixed timer, so a second move can never start from a half-finished first
// move.
type RenderSurface interface {
	SetLayerVisibility(layerID string, visible bool)
	SetFilter(layerID string, filter mapfilter.Expr)
	SetMaxBounds(bounds *Bounds) // nil clears the restriction
	SetZoomRange(minZoom, maxZoom float64)
	EaseTo(camera Camera, done func())
	SetPointData(fc *geojson.FeatureCollection)
}
