// Package store holds the in-memory visit and tag state and persists it as
// JSON snapshots through the repo.KV boundary.
//
// The browser original kept this state in a single-threaded event loop; the
// Go translation guards it with one mutex instead. All reads return copies so
// callers never observe later mutations.
package store

import (
	"sort"
	"strings"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// The functions in this file are pure reducers over a visit slice. They are
// used by the Store methods below and by the resolve package, and are exported
// so they can be tested without constructing a Store.

// ByTag returns the visits recorded under tag, preserving the insertion order
// of the backing slice (most-recent-first, because new visits are prepended).
func ByTag(visits []domain.Visit, tag string) []domain.Visit {
	out := []domain.Visit{}
	for _, v := range visits {
		if v.Tag == tag {
			out = append(out, v)
		}
	}
	return out
}

// SortedByDateDesc returns a copy of visits ordered by date descending.
// Dates are ISO 8601 strings, so lexicographic comparison is date comparison.
// The sort is stable: ties keep their original relative order.
func SortedByDateDesc(visits []domain.Visit) []domain.Visit {
	out := append([]domain.Visit(nil), visits...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// DistinctCountryCodes returns the unique upper-cased country codes present
// in visits, in first-seen order. Empty codes are excluded.
func DistinctCountryCodes(visits []domain.Visit) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, v := range visits {
		code := strings.ToUpper(strings.TrimSpace(v.Place.CountryISO2))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// FindDuplicate returns the first visit matching the exact (tag, display
// name, country) triple, or false when none exists. Used by the add flow to
// reject accidental re-adds; duplicates across tags or with different display
// names are allowed.
func FindDuplicate(visits []domain.Visit, tag, name, countryISO2 string) (domain.Visit, bool) {
	for _, v := range visits {
		if v.Tag == tag && v.Place.Name == name && v.Place.CountryISO2 == countryISO2 {
			return v, true
		}
	}
	return domain.Visit{}, false
}
