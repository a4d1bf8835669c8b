package view_test

import (
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/mapfilter"
	"github.com/tmarchal/footprints/backend/internal/view"
)

// fakeSurface records every command the controller issues, in order.
type fakeSurface struct {
	visibility map[string]bool
	filters    map[string]mapfilter.Expr
	maxBounds  *view.Bounds
	minZoom    float64
	maxZoom    float64
	eases      []view.Camera
	points     *geojson.FeatureCollection

	// completeEases makes EaseTo invoke its done callback synchronously,
	// simulating an animation that finishes.
	completeEases bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		visibility: map[string]bool{},
		filters:    map[string]mapfilter.Expr{},
	}
}

func (f *fakeSurface) SetLayerVisibility(id string, visible bool) { f.visibility[id] = visible }
func (f *fakeSurface) SetFilter(id string, filter mapfilter.Expr) { f.filters[id] = filter }
func (f *fakeSurface) SetMaxBounds(b *view.Bounds)                { f.maxBounds = b }
func (f *fakeSurface) SetZoomRange(minZoom, maxZoom float64) {
	f.minZoom, f.maxZoom = minZoom, maxZoom
}
func (f *fakeSurface) EaseTo(c view.Camera, done func()) {
	f.eases = append(f.eases, c)
	if f.completeEases && done != nil {
		done()
	}
}
func (f *fakeSurface) SetPointData(fc *geojson.FeatureCollection) { f.points = fc }

var _ view.RenderSurface = (*fakeSurface)(nil)

func cnVisit(tag string) domain.Visit {
	return domain.Visit{
		ID:   "v-cn",
		Date: "2025-04-01",
		Tag:  tag,
		Place: domain.PlaceRef{
			Name:        "Hangzhou, China",
			Lat:         30.274,
			Lon:         120.155,
			CountryISO2: "CN",
			Admin1:      "Zhejiang Province",
		},
	}
}

// ---- SetScope --------------------------------------------------------------

func TestController_SetScope_ShowsOnlyScopeLayers(t *testing.T) {
	surface := newFakeSurface()
	c := view.NewController(surface)

	c.SetScope(domain.ScopeCN, nil, "Me")

	assert.Equal(t, domain.ScopeCN, c.Scope())
	for _, layer := range []string{"cn-base-fill", "cn-base-line", "cn-hi", "cn-hi-line"} {
		assert.True(t, surface.visibility[layer], "layer %s visible", layer)
	}
	for _, layer := range []string{"countries-base-fill", "countries-hi", "us-base-fill", "us-hi-line"} {
		assert.False(t, surface.visibility[layer], "layer %s hidden", layer)
	}
}

func TestController_SetScope_AppliesCameraConstants(t *testing.T) {
	surface := newFakeSurface()
	c := view.NewController(surface)

	c.SetScope(domain.ScopeUS, nil, "Me")

	require.Len(t, surface.eases, 1)
	assert.Equal(t, view.Camera{Center: [2]float64{-98, 38}, Zoom: 3.0}, surface.eases[0])
	assert.Equal(t, 2.0, surface.minZoom)
	assert.Equal(t, 7.0, surface.maxZoom)
	require.NotNil(t, surface.maxBounds)
	assert.Equal(t, view.Bounds{{-180, 10}, {-50, 75}}, *surface.maxBounds)
}

func TestController_SetScope_WorldClearsBounds(t *testing.T) {
	surface := newFakeSurface()
	c := view.NewController(surface)
	c.SetScope(domain.ScopeCN, nil, "Me")
	require.NotNil(t, surface.maxBounds)

	c.SetScope(domain.ScopeWorld, nil, "Me")

	assert.Nil(t, surface.maxBounds)
}

func TestController_SetScope_EmptyVisitsGetSentinelFilter(t *testing.T) {
	surface := newFakeSurface()
	c := view.NewController(surface)

	c.SetScope(domain.ScopeWorld, nil, "Me")

	want := mapfilter.Region(mapfilter.WorldNameProp, nil)
	assert.Equal(t, want, surface.filters["countries-hi"])
	assert.Equal(t, want, surface.filters["countries-hi-line"])
}

// ---- Refresh ---------------------------------------------------------------

func TestController_Refresh_AppliesRegionAndPointFilters(t *testing.T) {
	surface := newFakeSurface()
	c := view.NewController(surface)
	visits := []domain.Visit{cnVisit("Me")}

	c.SetScope(domain.ScopeCN, visits, "Me")

	wantRegion := mapfilter.Region("name", []string{"Zhejiang Province", "Zhejiang", "浙江省"})
	assert.Equal(t, wantRegion, surface.filters["cn-hi"])
	assert.Equal(t, wantRegion, surface.filters["cn-hi-line"])

	assert.Equal(t, mapfilter.Points("Me", domain.ScopeCN), surface.filters[view.PointsLayer])
	require.NotNil(t, surface.points)
	assert.Len(t, surface.points.Features, 1)
}

func TestController_Refresh_OtherTagsExcludedFromPoints(t *testing.T) {
	surface := newFakeSurface()
	c := view.NewController(surface)
	visits := []domain.Visit{cnVisit("Me"), cnVisit("Couple")}

	c.SetScope(domain.ScopeWorld, visits, "Couple")

	require.NotNil(t, surface.points)
	assert.Len(t, surface.points.Features, 1)
	assert.Equal(t, "Couple", surface.points.Features[0].Properties["tag"])
}

// ---- FocusVisit ------------------------------------------------------------

func TestController_FocusVisit_SwitchesScopeByCountry(t *testing.T) {
	surface := newFakeSurface()
	surface.completeEases = true
	c := view.NewController(surface)

	v := cnVisit("Me")
	c.FocusVisit(v, []domain.Visit{v}, "Me")

	assert.Equal(t, domain.ScopeCN, c.Scope())
}

func TestController_FocusVisit_SecondMoveChainedOnCompletion(t *testing.T) {
	surface := newFakeSurface()
	c := view.NewController(surface)
	v := cnVisit("Me")

	// Animation never completes: only the scope's own camera move happens.
	c.FocusVisit(v, []domain.Visit{v}, "Me")
	require.Len(t, surface.eases, 1)
	assert.Equal(t, view.ConfigFor(domain.ScopeCN).Camera, surface.eases[0])

	// With completing animations, the focus move follows the scope move.
	surface2 := newFakeSurface()
	surface2.completeEases = true
	c2 := view.NewController(surface2)
	c2.FocusVisit(v, []domain.Visit{v}, "Me")

	require.Len(t, surface2.eases, 2)
	assert.Equal(t, view.Camera{Center: [2]float64{120.155, 30.274}, Zoom: view.FocusZoom}, surface2.eases[1])
}

func TestController_FocusVisit_NonCNUSGoesWorld(t *testing.T) {
	surface := newFakeSurface()
	surface.completeEases = true
	c := view.NewController(surface)
	c.SetScope(domain.ScopeCN, nil, "Me")

	v := domain.Visit{
		ID: "v-jp", Date: "2025-04-01", Tag: "Me",
		Place: domain.PlaceRef{Name: "Kyoto", Lat: 35.0, Lon: 135.7, CountryISO2: "JP"},
	}
	c.FocusVisit(v, []domain.Visit{v}, "Me")

	assert.Equal(t, domain.ScopeWorld, c.Scope())
}
