// Package repo contains the persistence drivers for the Footprints backend.
// The application state is two JSON snapshots (visits and tags) stored under
// opaque string keys; this package only moves bytes and never interprets them.
package repo

import "context"

// Storage keys for the application snapshots. The values are kept compatible
// with the browser build of the app, which used the same keys in localStorage.
const (
	KeyVisits = "travel-footprints:trips"
	KeyTags   = "travel-footprints:tags"
)

// KV is the minimal key-value boundary the store persists through.
// Get returns domain.ErrNotFound (wrapped) when the key has never been written.
// Implementations: Postgres (pg.go) and Redis (redis.go).
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
