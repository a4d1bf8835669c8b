package domain

import "fmt"

// Scope selects which administrative vocabulary and map layers are active:
// country-level for the world, province-level for China, state-level for the US.
// The three scopes are mutually exclusive UI state; a scope is never persisted.
type Scope string

const (
	ScopeWorld Scope = "world"
	ScopeCN    Scope = "cn"
	ScopeUS    Scope = "us"
)

// ParseScope converts the wire form of a scope into a Scope.
// An empty string defaults to ScopeWorld.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", string(ScopeWorld):
		return ScopeWorld, nil
	case string(ScopeCN):
		return ScopeCN, nil
	case string(ScopeUS):
		return ScopeUS, nil
	}
	return "", fmt.Errorf("%w: unknown scope %q", ErrValidation, s)
}

// ScopeForCountry returns the scope a freshly added visit should switch the
// map to: CN and US have dedicated province/state views, everything else
// lands on the world view.
func ScopeForCountry(iso2 string) Scope {
	switch iso2 {
	case "CN":
		return ScopeCN
	case "US":
		return ScopeUS
	}
	return ScopeWorld
}
