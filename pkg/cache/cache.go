// Package cache provides pluggable caching backends for stackaudit.
//
// The [Cache] interface abstracts over storage backends so the same code
// path serves the CLI (file-based cache under the user cache dir) and the
// scan API server (Redis or MongoDB for shared state across instances).
//
// Backends:
//   - [FileCache]: entries as files under a directory, for CLI usage
//   - [RedisCache]: Redis-backed, for running the scan API behind a balancer
//   - [MongoCache]: MongoDB-backed with a TTL index on expiry
//   - [NullCache]: no-op, for tests and --no-cache runs
//
// Keys are produced by a [Keyer] so that namespacing stays consistent
// across registries and scan records.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; expired entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry;
	// a negative TTL stores an entry that is already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the different record types.
type Keyer interface {
	// HTTPKey generates a key for a cached registry HTTP response.
	HTTPKey(registry, pkg string) string

	// ScanKey generates a key for a stored scan result.
	ScanKey(scanID string) string
}

// DefaultKeyer is the standard key scheme: plain prefixed keys for
// registry responses, hashed keys are left to the backend.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
// Format: http:<registry>:<pkg>
func (k *DefaultKeyer) HTTPKey(registry, pkg string) string {
	return "http:" + registry + ":" + pkg
}

// ScanKey generates a key for scan result storage.
// Format: scan:<scanID>
func (k *DefaultKeyer) ScanKey(scanID string) string {
	return "scan:" + scanID
}
