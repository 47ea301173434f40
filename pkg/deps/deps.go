package deps

import (
	"context"
	"time"
)

// DefaultCacheTTL is the default HTTP cache duration for registry lookups.
const DefaultCacheTTL = 24 * time.Hour

// Dependency is one entry parsed from a manifest file.
type Dependency struct {
	Name    string  `json:"name"`              // Package name as declared in the manifest
	Version string  `json:"version"`           // Declared version or constraint (may be empty)
	License *string `json:"license,omitempty"` // Declared license; nil until resolved or when unknown
}

// Options configures manifest parsing and license resolution behavior.
type Options struct {
	CacheTTL time.Duration        // HTTP cache duration (default: 24h)
	Refresh  bool                 // Bypass cache for fresh data
	Logger   func(string, ...any) // Progress/error callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Resolver fetches the declared license of a package from its registry.
type Resolver interface {
	// Name returns the registry identifier (e.g., "crates", "npm").
	Name() string

	// ResolveLicense returns the license expression the registry reports
	// for the package. An empty string means the registry has no license
	// on record.
	ResolveLicense(ctx context.Context, pkg string, refresh bool) (string, error)
}

// VersionResolver is an optional Resolver extension that looks up the
// latest published version of a package. It fills in versions for
// manifests that declare ranges or omit versions entirely.
type VersionResolver interface {
	ResolveVersion(ctx context.Context, pkg string, refresh bool) (string, error)
}
