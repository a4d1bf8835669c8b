package service

import "github.com/tmarchal/footprints/backend/internal/domain"

// presetCities is a curated list of popular destinations shown for
// one-click adding, no geocoder round trip needed.
var presetCities = []domain.Candidate{
	{DisplayName: "Beijing, China", Lat: 39.904, Lon: 116.407, CountryISO2: "CN", Admin1: "Beijing"},
	{DisplayName: "Shenzhen, China", Lat: 22.5455, Lon: 114.068, CountryISO2: "CN", Admin1: "Guangdong"},
	{DisplayName: "Hong Kong, China", Lat: 22.319, Lon: 114.169, CountryISO2: "HK", Admin1: "Hong Kong"},
	{DisplayName: "Tokyo, Japan", Lat: 35.689, Lon: 139.691, CountryISO2: "JP", Admin1: "Tokyo"},
	{DisplayName: "New York, USA", Lat: 40.712, Lon: -74.006, CountryISO2: "US", Admin1: "New York"},
	{DisplayName: "Los Angeles, USA", Lat: 34.052, Lon: -118.243, CountryISO2: "US", Admin1: "California"},
	{DisplayName: "London, UK", Lat: 51.507, Lon: -0.127, CountryISO2: "GB", Admin1: "England"},
	{DisplayName: "Paris, France", Lat: 48.856, Lon: 2.352, CountryISO2: "FR", Admin1: "Île-de-France"},
	{DisplayName: "Singapore", Lat: 1.352, Lon: 103.819, CountryISO2: "SG", Admin1: "Singapore"},
	{DisplayName: "Sydney, Australia", Lat: -33.868, Lon: 151.209, CountryISO2: "AU", Admin1: "New South Wales"},
}

// Presets returns the built-in quick-add candidates.
func (s *VisitService) Presets() []domain.Candidate {
	out := make([]domain.Candidate, len(presetCities))
	copy(out, presetCities)
	return out
}
