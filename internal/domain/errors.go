package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown scope).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when adding a visit whose (tag, name, country)
// triple already exists. This is a policy rejection, not a data-integrity
// constraint: the same place may be recorded under a different tag or under
// a different display name. Handlers should map this to HTTP 409 and include
// the existing record so the client can recenter on it.
var ErrDuplicate = errors.New("duplicate visit")
