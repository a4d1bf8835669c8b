// Package domain contains the core data types for the Footprints backend.
// This package has zero external dependencies and is imported by every other
// internal package (geo, store, resolve, service, handler).
package domain

// PlaceRef is the location half of a visit: the confirmed geocoder candidate
// frozen at the moment the user added it.
// Admin1 is whatever free text the geocoder returned for the first-level
// administrative division — no canonical form is enforced at storage time.
// Canonicalization happens only at resolve time (see the resolve package).
type PlaceRef struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CountryISO2 string  `json:"countryIso2"` // 2-letter uppercase, or "" when unknown
	Admin1      string  `json:"admin1,omitempty"`
}

// Visit is a single recorded footprint. Visits are immutable after creation:
// they are created when the user confirms a candidate and destroyed by
// explicit deletion, never updated.
type Visit struct {
	ID    string   `json:"id"`
	Date  string   `json:"date"` // "2006-01-02" — lexicographic order is date order
	Tag   string   `json:"tag"`
	Place PlaceRef `json:"place"`
}

// Candidate is a geocoder search result offered to the user before it
// becomes a stored visit.
type Candidate struct {
	DisplayName string  `json:"displayName"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CountryISO2 string  `json:"countryIso2"`
	Admin1      string  `json:"admin1,omitempty"`
}
