// Package service contains the business logic for the Footprints API.
// Services validate inputs, enforce policy, and orchestrate store and
// geocoder calls. No HTTP and no persistence details live here — services
// depend on narrow interfaces, not implementations.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/geo"
	"github.com/tmarchal/footprints/backend/internal/store"
)

// VisitStore defines the store operations the visit, map, and export
// services depend on. *store.Store satisfies it; tests inject a mock.
type VisitStore interface {
	Visits() []domain.Visit
	VisitsByTag(tag string) []domain.Visit
	AddVisit(v domain.Visit) (domain.Visit, error)
	DeleteVisit(id string) error
	DeleteVisitsByTag(tag string) int
	ReplaceVisits(visits []domain.Visit)
}

// VisitService implements the add/list/delete flows for visits.
type VisitService struct {
	store VisitStore

	// now and newID are injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewVisitService constructs a VisitService backed by the provided store.
func NewVisitService(s VisitStore) *VisitService {
	return &VisitService{
		store: s,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Add turns a confirmed candidate into a stored visit under tag.
//
// Hong Kong and Macau candidates are rewritten to country CN with a fixed
// admin1 before storage, permanently routing them into China-scope
// resolution. An exact (tag, display name, country) duplicate is rejected
// with ErrDuplicate and the existing visit is returned so the caller can
// recenter on it.
func (s *VisitService) Add(c domain.Candidate, tag string) (domain.Visit, error) {
	if tag == "" {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Add: %w: tag is required", domain.ErrValidation)
	}
	if c.DisplayName == "" {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Add: %w: display name is required", domain.ErrValidation)
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Add: %w: coordinates out of range", domain.ErrValidation)
	}

	place := domain.PlaceRef{
		Name:        c.DisplayName,
		Lat:         c.Lat,
		Lon:         c.Lon,
		CountryISO2: c.CountryISO2,
		Admin1:      c.Admin1,
	}
	switch c.CountryISO2 {
	case "HK":
		place.CountryISO2, place.Admin1 = "CN", "Hong Kong"
	case "MO":
		place.CountryISO2, place.Admin1 = "CN", "Macau"
	}

	visit := domain.Visit{
		ID:    s.newID(),
		Date:  s.now().UTC().Format("2006-01-02"),
		Tag:   tag,
		Place: place,
	}

	stored, err := s.store.AddVisit(visit)
	if err != nil {
		// On ErrDuplicate, stored is the existing visit.
		return stored, fmt.Errorf("service.VisitService.Add: %w", err)
	}
	return stored, nil
}

// List returns the visits recorded under tag, most recent date first.
func (s *VisitService) List(tag string) []domain.Visit {
	return store.SortedByDateDesc(s.store.VisitsByTag(tag))
}

// Delete removes a single visit by id.
func (s *VisitService) Delete(id string) error {
	if err := s.store.DeleteVisit(id); err != nil {
		return fmt.Errorf("service.VisitService.Delete: %w", err)
	}
	return nil
}

// DeleteByTag removes every visit under tag. The operation is irreversible,
// so the caller must pass confirmed=true.
func (s *VisitService) DeleteByTag(tag string, confirmed bool) (int, error) {
	if !confirmed {
		return 0, fmt.Errorf("service.VisitService.DeleteByTag: %w: confirmation required", domain.ErrValidation)
	}
	return s.store.DeleteVisitsByTag(tag), nil
}

// TagStats summarizes one tag's footprint list for the stats card.
type TagStats struct {
	Countries  int           `json:"countries"`
	Footprints int           `json:"footprints"`
	Codes      []CountryFlag `json:"codes"`
}

// CountryFlag pairs a country code with its flag emoji.
type CountryFlag struct {
	Code string `json:"code"`
	Flag string `json:"flag"`
}

// Stats computes the country and footprint counts for tag, with one flag
// entry per distinct country in first-visited order.
func (s *VisitService) Stats(tag string) TagStats {
	visits := s.store.VisitsByTag(tag)
	codes := store.DistinctCountryCodes(visits)

	stats := TagStats{
		Countries:  len(codes),
		Footprints: len(visits),
		Codes:      make([]CountryFlag, 0, len(codes)),
	}
	for _, code := range codes {
		stats.Codes = append(stats.Codes, CountryFlag{Code: code, Flag: geo.FlagEmoji(code)})
	}
	return stats
}
