// Package resolve computes which map regions must be highlighted for a given
// set of visits. It reconciles the geocoder's free-text naming against the
// fixed vocabulary of the vector data: ISO 3166-1 alpha-2 codes on the world
// view, province/state name strings on the CN and US views.
package resolve

import (
	"strings"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/geo"
	"github.com/tmarchal/footprints/backend/internal/store"
)

// TaiwanKey is the region key of the Taiwan feature in the countries vector
// data, which models it separately from mainland China.
const TaiwanKey = "CN-TW"

// Keys resolves the set of region keys to highlight for (visits, tag, scope).
// The result is deterministic and order-stable for identical input.
//
// Keys are deliberately over-inclusive on the CN and US views: every
// plausible spelling of a division name is offered, because the filter the
// keys feed is a membership test against actual feature names and unmatched
// keys are harmless. Unresolvable names degrade to fewer keys, never to an
// error.
func Keys(visits []domain.Visit, tag string, scope domain.Scope) []string {
	current := store.ByTag(visits, tag)

	switch scope {
	case domain.ScopeCN:
		return cnKeys(current)
	case domain.ScopeUS:
		return usKeys(current)
	default:
		return worldKeys(current)
	}
}

// worldKeys returns the distinct country codes, with one fixup: a mainland
// China visit also highlights the Taiwan feature, keeping the China highlight
// visually contiguous. The rule is one-directional — Taiwan never implies CN.
func worldKeys(visits []domain.Visit) []string {
	codes := store.DistinctCountryCodes(visits)
	for _, c := range codes {
		if c == "CN" {
			codes = appendUnique(codes, TaiwanKey)
			break
		}
	}
	return codes
}

// cnKeys unions the candidate province keys of every CN visit.
func cnKeys(visits []domain.Visit) []string {
	keys := []string{}
	seen := map[string]bool{}
	for _, v := range visits {
		if strings.ToUpper(v.Place.CountryISO2) != "CN" || v.Place.Admin1 == "" {
			continue
		}
		for _, k := range geo.CNProvinceKeys(v.Place.Admin1) {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// usKeys unions, for every US visit with an admin1, the raw text and its
// normalized state name.
func usKeys(visits []domain.Visit) []string {
	keys := []string{}
	seen := map[string]bool{}
	add := func(k string) {
		if k != "" && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, v := range visits {
		if strings.ToUpper(v.Place.CountryISO2) != "US" || v.Place.Admin1 == "" {
			continue
		}
		add(strings.TrimSpace(v.Place.Admin1))
		if name, ok := geo.NormalizeUSState(v.Place.Admin1); ok {
			add(name)
		}
	}
	return keys
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
