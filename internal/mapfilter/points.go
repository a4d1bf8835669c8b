package mapfilter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// PointFeatures builds the GeoJSON feature collection backing the footprint
// point layer. Every visit becomes one point feature; the property bag
// carries what the point filter and the hover popup need.
func PointFeatures(visits []domain.Visit) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, v := range visits {
		f := geojson.NewFeature(orb.Point{v.Place.Lon, v.Place.Lat})
		f.Properties = geojson.Properties{
			"id":          v.ID,
			"name":        v.Place.Name,
			"date":        v.Date,
			"tag":         v.Tag,
			"countryIso2": v.Place.CountryISO2,
		}
		fc.Append(f)
	}
	return fc
}
