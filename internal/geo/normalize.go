// Package geo normalizes the free-text administrative-division names returned
// by the geocoder into the canonical keys used by the map's vector data.
// All functions are pure and total: unmappable input yields ("", false) or an
// empty slice, never an error.
package geo

import (
	"regexp"
	"strings"
)

var (
	usCommonwealthPrefix = regexp.MustCompile(`(?i)^Commonwealth of\s+`)
	usStateSuffix        = regexp.MustCompile(`(?i)\s+State$`)
	usCommonwealthSuffix = regexp.MustCompile(`(?i)\s+Commonwealth$`)
	usCountryTailUS      = regexp.MustCompile(`(?i),\s*United States.*$`)
	usCountryTailUSA     = regexp.MustCompile(`(?i),\s*USA.*$`)
	usTwoLetter          = regexp.MustCompile(`^[A-Za-z]{2}$`)
	whitespace           = regexp.MustCompile(`\s+`)

	// Suffixes Nominatim appends to CN division names, e.g. "Zhejiang Province".
	cnSuffix = regexp.MustCompile(`(?i)( Province| City| Autonomous Region| AR| SAR)`)
)

// dcSpellings holds the accepted spellings of Washington DC after uppercasing,
// dot removal, and whitespace collapse.
var dcSpellings = map[string]bool{
	"DC":                   true,
	"D C":                  true,
	"DISTRICT OF COLUMBIA": true,
	"WASHINGTON DC":        true,
	"WASHINGTON D C":       true,
}

// NormalizeUSState converts a raw geocoder admin1 string into the canonical
// full state name, reporting ok=false when the input cannot be mapped.
// Handles the "Commonwealth of X" / "X State" decorations, a trailing
// ", United States" / ", USA", every common spelling of Washington DC, and
// two-letter USPS abbreviations. Anything else is treated as already being a
// full state name and is returned with internal whitespace collapsed.
func NormalizeUSState(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	s = usCommonwealthPrefix.ReplaceAllString(s, "")
	s = usStateSuffix.ReplaceAllString(s, "")
	s = usCommonwealthSuffix.ReplaceAllString(s, "")
	s = usCountryTailUS.ReplaceAllString(s, "")
	s = usCountryTailUSA.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	up := strings.ToUpper(s)
	up = strings.ReplaceAll(up, ".", "")
	up = whitespace.ReplaceAllString(up, " ")
	up = strings.TrimSpace(up)
	if dcSpellings[up] {
		return "District of Columbia", true
	}

	if usTwoLetter.MatchString(s) {
		name, ok := usAbbrToName[strings.ToUpper(s)]
		return name, ok
	}

	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// CNProvinceKeys expands a raw geocoder admin1 string into the set of keys
// under which the matching CN province feature might be named: the raw text,
// the text with English suffixes stripped, and the Chinese equivalent of the
// stripped text. Empties and duplicates are removed; order is raw, cleaned,
// Chinese. The caller unions these over all records, so keys that match no
// feature are harmless.
func CNProvinceKeys(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	clean := strings.TrimSpace(cnSuffix.ReplaceAllString(s, ""))
	zh := cnEnToZh[clean]

	keys := make([]string, 0, 3)
	seen := make(map[string]bool, 3)
	for _, k := range []string{s, clean, zh} {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// FlagEmoji returns the flag emoji for a 2-letter country code by shifting
// each letter into the regional-indicator block, or "" for invalid input.
func FlagEmoji(iso2 string) string {
	code := strings.ToUpper(strings.TrimSpace(iso2))
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}
