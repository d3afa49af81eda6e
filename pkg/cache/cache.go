// Package cache stores pipeline results keyed by content hashes.
//
// # Backends
//
//   - [FileCache]: JSON envelopes under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: caching disabled
//
// # Keys
//
// A [Keyer] turns content hashes and render options into keys. Solutions are
// keyed by the hash of the tile text and the motif, artifacts by the hash of
// the solution document and the options that affect the bytes produced.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.SolutionKey(cache.Hash(input), cache.Hash([]byte(motif)))
package cache

import (
	"context"
	"time"
)

// Default time-to-live per cached stage.
const (
	TTLSolution = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with expiring entries.
//
// Get reports a miss with ok == false and a nil error. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
