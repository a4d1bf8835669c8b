// Package mapfilter compiles resolved region keys and tag/scope predicates
// into the declarative filter expressions consumed by the MapLibre rendering
// surface, and builds the footprint point feature collection.
package mapfilter

import "github.com/tmarchal/footprints/backend/internal/domain"

// Expr is a MapLibre filter expression. It marshals to the JSON array form
// the style spec expects, e.g. ["in", ["get", "name"], ["literal", [...]]].
type Expr []any

// Feature name properties per scope. The world layer matches on the ISO code
// property of the countries data; the CN and US layers match on the plain
// "name" property of their respective province/state data.
const (
	WorldNameProp = "ISO3166-1-Alpha-2"
	CNNameProp    = "name"
	USNameProp    = "name"
)

// NamePropFor returns the feature property region keys are matched against
// in the given scope.
func NamePropFor(scope domain.Scope) string {
	if scope == domain.ScopeWorld {
		return WorldNameProp
	}
	return CNNameProp
}

// Region compiles a membership test of a feature's name property against the
// literal key set.
//
// An empty key set compiles to a singleton containing the empty string — a
// sentinel no real feature name matches — rather than to no filter at all.
// Omitting the filter would make the highlight layer show every feature;
// "no visits" must render as "no highlight".
func Region(prop string, keys []string) Expr {
	if len(keys) == 0 {
		keys = []string{""}
	}
	literal := make([]any, len(keys))
	for i, k := range keys {
		literal[i] = k
	}
	return Expr{"in", Expr{"get", prop}, Expr{"literal", literal}}
}

// Points compiles the filter for the footprint point layer: the point's tag
// must equal the active tag, and on the CN/US views the point's country must
// match the scope. The world view has no country conjunct.
func Points(tag string, scope domain.Scope) Expr {
	tagEq := Expr{"==", Expr{"get", "tag"}, tag}

	var country string
	switch scope {
	case domain.ScopeCN:
		country = "CN"
	case domain.ScopeUS:
		country = "US"
	default:
		return Expr{"all", tagEq}
	}
	return Expr{"all", tagEq, Expr{"==", Expr{"get", "countryIso2"}, country}}
}
