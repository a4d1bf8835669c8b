package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/resolve"
)

func visit(tag, iso2, admin1 string) domain.Visit {
	return domain.Visit{
		ID:   "id-" + iso2 + "-" + admin1,
		Date: "2025-01-01",
		Tag:  tag,
		Place: domain.PlaceRef{
			Name:        admin1,
			CountryISO2: iso2,
			Admin1:      admin1,
		},
	}
}

// ---- world scope -----------------------------------------------------------

func TestKeys_World_DistinctCountries(t *testing.T) {
	visits := []domain.Visit{
		visit("Me", "JP", "Tokyo"),
		visit("Me", "JP", "Osaka"),
		visit("Me", "FR", "Île-de-France"),
		visit("Couple", "IT", "Lazio"), // other tag, excluded
	}

	keys := resolve.Keys(visits, "Me", domain.ScopeWorld)

	assert.ElementsMatch(t, []string{"JP", "FR"}, keys)
}

func TestKeys_World_MainlandChinaImpliesTaiwan(t *testing.T) {
	visits := []domain.Visit{visit("Me", "CN", "Zhejiang Province")}

	keys := resolve.Keys(visits, "Me", domain.ScopeWorld)

	assert.Contains(t, keys, "CN")
	assert.Contains(t, keys, resolve.TaiwanKey)
}

func TestKeys_World_TaiwanFixupIsOneDirectional(t *testing.T) {
	// A record carrying the Taiwan key directly must not pull in mainland CN.
	visits := []domain.Visit{visit("Me", resolve.TaiwanKey, "")}

	keys := resolve.Keys(visits, "Me", domain.ScopeWorld)

	assert.NotContains(t, keys, "CN")
}

// ---- cn scope --------------------------------------------------------------

func TestKeys_CN_UnionsCandidateKeysAcrossRecords(t *testing.T) {
	visits := []domain.Visit{
		visit("Me", "CN", "Zhejiang Province"),
		visit("Me", "CN", "Beijing"),
		visit("Me", "JP", "Tokyo"), // wrong country, excluded
	}

	keys := resolve.Keys(visits, "Me", domain.ScopeCN)

	assert.ElementsMatch(t, []string{
		"Zhejiang Province", "Zhejiang", "浙江省",
		"Beijing", "北京市",
	}, keys)
}

func TestKeys_CN_EmptyWhenNoChinaVisits(t *testing.T) {
	visits := []domain.Visit{visit("Me", "JP", "Tokyo")}

	keys := resolve.Keys(visits, "Me", domain.ScopeCN)

	assert.Empty(t, keys)
}

// ---- us scope --------------------------------------------------------------

func TestKeys_US_RawAndNormalized(t *testing.T) {
	visits := []domain.Visit{
		visit("Me", "US", "CA"),
		visit("Me", "US", "Washington D.C."),
	}

	keys := resolve.Keys(visits, "Me", domain.ScopeUS)

	assert.ElementsMatch(t, []string{
		"CA", "California",
		"Washington D.C.", "District of Columbia",
	}, keys)
}

func TestKeys_US_MissingAdmin1Skipped(t *testing.T) {
	visits := []domain.Visit{visit("Me", "US", "")}

	keys := resolve.Keys(visits, "Me", domain.ScopeUS)

	assert.Empty(t, keys)
}

// ---- cross-scope properties ------------------------------------------------

func TestKeys_EmptyIffNoMatchingRecords(t *testing.T) {
	visits := []domain.Visit{
		visit("Me", "JP", "Tokyo"),
		visit("Couple", "CN", "Zhejiang Province"),
	}

	for _, tc := range []struct {
		tag   string
		scope domain.Scope
		empty bool
	}{
		{"Me", domain.ScopeWorld, false},
		{"Me", domain.ScopeCN, true},
		{"Me", domain.ScopeUS, true},
		{"Couple", domain.ScopeCN, false},
		{"Nobody", domain.ScopeWorld, true},
	} {
		keys := resolve.Keys(visits, tc.tag, tc.scope)
		if tc.empty {
			assert.Empty(t, keys, "tag=%s scope=%s", tc.tag, tc.scope)
		} else {
			assert.NotEmpty(t, keys, "tag=%s scope=%s", tc.tag, tc.scope)
		}
	}
}

func TestKeys_Idempotent(t *testing.T) {
	visits := []domain.Visit{
		visit("Me", "CN", "Zhejiang Province"),
		visit("Me", "US", "CA"),
		visit("Me", "JP", "Tokyo"),
	}

	for _, scope := range []domain.Scope{domain.ScopeWorld, domain.ScopeCN, domain.ScopeUS} {
		first := resolve.Keys(visits, "Me", scope)
		second := resolve.Keys(visits, "Me", scope)
		require.ElementsMatch(t, first, second, "scope=%s", scope)
	}
}
